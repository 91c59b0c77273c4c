// Package manifest reads and writes the YAML file that selects which node
// variants to generate.
//
// A variant is selected either by its encoded name or by its axes:
//
//	version: "1"
//	package: node
//	variants:
//	  - name: PSAW
//	  - keys: weak
//	    values: soft
//	    features: [expireAfterAccess, maximumWeight]
//
// Resolve validates the entries and completes the selection with every
// ancestor, since each variant embeds its parent.
package manifest
