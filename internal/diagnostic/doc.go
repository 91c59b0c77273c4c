// Package diagnostic provides structured errors, warnings and infos
// reported while resolving which node variants to generate.
//
// Key capabilities:
//   - Invalid variant errors with the offending manifest entry
//   - Duplicate selection warnings
//   - Reports of ancestors added to complete the hierarchy
package diagnostic
