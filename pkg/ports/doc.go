/*
Package ports defines the driven ports (interfaces) of the entroplot pipeline.

These interfaces decouple the pipeline from its concrete adapters, allowing
the same discovery and series building to feed a file, an HTTP response, or a
test double.

# Key Interfaces

  - FigureRenderer: serializes a finished Figure into a document.
  - Reporter: receives the user-facing diagnostics of a run.
*/
package ports
