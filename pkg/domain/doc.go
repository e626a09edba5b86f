/*
Package domain contains the core models of the entroplot pipeline.

It defines the entities that flow from input discovery to chart rendering and
stays free of I/O, parsing, and presentation concerns.

# Key Entities

  - Series: one experiment run's (Generation, Entropy) line, labelled for the legend.
  - Layout: the shared display configuration (titles, legend, hover behaviour).
  - Figure: the append-only accumulator of Series plus its Layout.
*/
package domain
