/*
Package entroplot overlays the entropy curves of many experiment runs in one
interactive chart.

Each run is a CSV file named after the pattern experiment_<id>_entropies.csv
with at least a Generation and an Entropy column. entroplot finds the files
in a directory, turns each valid one into a line series labelled
"Experiment <id>", and writes a standalone HTML chart that opens offline.

# Pipeline

  - Discovery: files matching the pattern, sorted lexicographically (so
    experiment_10 comes before experiment_2).
  - Series building: one series per file. Unreadable files are reported as
    errors, files missing a required column as warnings; neither stops the run.
  - Rendering: one line trace per series, unified hover on the x axis,
    written atomically to entropy_plots.html.

# Usage

	package main

	import (
		"context"
		"errors"
		"log"

		"github.com/aretw0/entroplot"
		"github.com/aretw0/entroplot/pkg/domain"
	)

	func main() {
		p, err := entroplot.New(".")
		if err != nil {
			log.Fatal(err)
		}

		_, err = p.Plot(context.Background(), domain.DefaultOutput)
		if err != nil && !errors.Is(err, domain.ErrNoInputFiles) {
			log.Fatal(err)
		}
	}
*/
package entroplot
