package rule

// DefaultCatalogue returns the node rules in their fixed execution order.
//
// The order only matters for output layout: declaration first, then
// constructors (whose parent delegation must be the first initializer
// step), then the base fields, lifecycle, and finally the optional
// features from the most to the least fundamental.
func DefaultCatalogue() []Rule {
	return []Rule{
		AddSubtype{},
		AddConstructors{},
		AddKey{},
		AddValue{},
		AddHealth{},
		AddExpiration{},
		AddMaximum{},
		AddDeques{},
	}
}
