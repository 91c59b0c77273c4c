// Package variant describes the requested node variants.
//
// A variant is fully determined by three axes:
//   - key strength: strong or weak
//   - value strength: strong, weak or soft
//   - an ordered list of optional features
//
// Variants form a hierarchy. The parent of a variant is the same variant
// with its last feature removed; a variant without features is the base
// variant and is the only one that physically stores the key and value.
// Every other variant embeds its parent and adds exactly one feature.
//
// Names encode the axes: key letter (P strong, F weak), value letter
// (S strong, W weak, D soft) and the feature aliases in canonical order,
// e.g. "PSAWMS" or "FDRMW".
package variant
