package variant

import (
	"slices"
	"strings"
)

// Enumerate returns every supported variant, sorted by name.
//
// The cross-product covers both key strengths, all value strengths and
// every subset of {A, W, R} combined with at most one maximum feature.
// Since features are canonically ordered, every prefix of an enumerated
// variant is itself enumerated, so the result is closed under Parent.
func Enumerate() []Config {
	optional := []Feature{ExpireAfterAccess, ExpireAfterWrite, RefreshAfterWrite}
	bounds := [][]Feature{nil, {MaximumSize}, {MaximumWeight}}

	var res []Config

	for _, keys := range []Strength{Strong, Weak} {
		for _, values := range []Strength{Strong, Weak, Soft} {
			for mask := 0; mask < 1<<len(optional); mask++ {
				var features []Feature

				for i, f := range optional {
					if mask&(1<<i) != 0 {
						features = append(features, f)
					}
				}

				for _, bound := range bounds {
					res = append(res, MustNew(keys, values, append(slices.Clone(features), bound...)...))
				}
			}
		}
	}

	SortByName(res)

	return res
}

// SortByName orders configurations by their encoded name.
func SortByName(configs []Config) {
	slices.SortFunc(configs, func(a, b Config) int {
		return strings.Compare(a.Name(), b.Name())
	})
}

// Closure returns the given configurations together with all of their
// ancestors, deduplicated and sorted by name.
func Closure(configs []Config) []Config {
	seen := make(map[string]struct{}, len(configs))

	var res []Config

	add := func(c Config) {
		if _, ok := seen[c.Name()]; ok {
			return
		}

		seen[c.Name()] = struct{}{}
		res = append(res, c)
	}

	for _, c := range configs {
		for _, a := range c.Ancestors() {
			add(a)
		}

		add(c)
	}

	SortByName(res)

	return res
}
