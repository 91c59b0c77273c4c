// Package gen renders node artifacts into deterministic Go source.
//
// Generation approach uses text/template + x/tools/imports for readable,
// gofmt-clean Go code.
//
// Access strategies map onto sync/atomic as follows:
//   - Plain: direct field access, (*T)(n.f) for references
//   - AcquireRelease: atomic.Load*/atomic.Store*
//   - AtomicUpdate: atomic.CompareAndSwap*
//
// Every node file is accompanied by factory.go, which maps variant names
// to constructors.
package gen
