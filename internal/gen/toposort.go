package gen

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"node-generator/internal/variant"
)

// ErrMissingParent reports a variant whose parent is not generated.
var ErrMissingParent = errors.New("parent variant not selected")

// topoSort returns indices in dependency order.
//
// Nodes are by index in the input slice.
// depsFn(i) yields indices that must come before i.
//
// The result is deterministic: when multiple nodes are available, we pick the
// smallest index. If a cycle exists, an error is returned.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		deps := depsFn(i)
		for _, d := range deps {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	// Deterministic traversal.
	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		return nil, errors.New("cycle detected")
	}

	return order, nil
}

// orderByHierarchy sorts configurations so that every parent precedes its
// children, breaking ties by name. Every parent must be present.
func orderByHierarchy(configs []variant.Config) ([]variant.Config, error) {
	sorted := slices.Clone(configs)
	variant.SortByName(sorted)

	index := make(map[string]int, len(sorted))
	for i, c := range sorted {
		if _, dup := index[c.Name()]; dup {
			return nil, fmt.Errorf("variant %s selected twice", c.Name())
		}

		index[c.Name()] = i
	}

	deps := make([][]int, len(sorted))

	for i, c := range sorted {
		parent, ok := c.Parent()
		if !ok {
			continue
		}

		p, ok := index[parent.Name()]
		if !ok {
			return nil, fmt.Errorf("%w: %s embeds %s", ErrMissingParent, c.Name(), parent.Name())
		}

		deps[i] = []int{p}
	}

	order, err := topoSort(len(sorted), func(i int) []int { return deps[i] })
	if err != nil {
		return nil, err
	}

	res := make([]variant.Config, len(order))
	for i, j := range order {
		res[i] = sorted[j]
	}

	return res, nil
}
