package domain

// Input and output naming conventions.
const (
	// DefaultPattern is the glob matched against file names in the working directory.
	DefaultPattern = "experiment_*_entropies.csv"

	// DefaultOutput is the chart document written after a successful run.
	DefaultOutput = "entropy_plots.html"
)

// Required column names. Matching is case-sensitive.
const (
	ColumnGeneration = "Generation"
	ColumnEntropy    = "Entropy"
)

// LabelPrefix precedes the run identifier in every series label.
const LabelPrefix = "Experiment "

// Default layout strings.
const (
	DefaultTitle       = "Entropy Over Generations for All Experiments"
	DefaultXAxisTitle  = "Generation"
	DefaultYAxisTitle  = "Soup Entropy"
	DefaultLegendTitle = "Experiment"
	DefaultHoverMode   = "x unified"
)
