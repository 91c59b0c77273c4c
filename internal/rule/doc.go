// Package rule composes orthogonal generation rules into node artifacts.
//
// Each Rule owns one concern, for example the key field or the
// access-order links. For a given variant the Engine runs the
// applicable rules of its catalogue in declaration order against one
// artifact.Builder, then finalizes the artifact:
//   - every registered atomic field gets a compare-and-swap method
//   - the accumulated initializer steps become the initNode method
//   - member names are checked for uniqueness and promised members
//     for presence
//
// Rules never look at each other's output. When two concerns must agree,
// for example on the name of the value field, they agree through the
// variant.Config and the shared field specs of this package.
//
// Field accessors are produced by the field access synthesizer
// (access.go). The declaration, accessors and atomic registration of a
// field all derive from a single fieldSpec.
package rule
