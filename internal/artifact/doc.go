// Package artifact provides the accumulating description of one generated
// node type.
//
// A Builder is append-only: rules add fields, methods, initializer steps,
// atomic-field registrations and suppressed diagnostics, but can never
// read or remove what other rules added. Build snapshots the builder into
// an Artifact that the renderer consumes.
//
// Method bodies are not source text. They are short sequences of Steps
// ("load field X with strategy Y into z", "invoke z.Get()", "return z")
// so that the memory-ordering strategy of every field access stays
// explicit and checkable before any Go code is printed.
package artifact
