package variant

import "node-generator/internal/common"

// Feature is an optional node capability. The numeric order of the
// constants is the canonical order in which features appear in names and
// in the variant hierarchy.
type Feature int

const (
	ExpireAfterAccess Feature = iota
	ExpireAfterWrite
	RefreshAfterWrite
	MaximumSize
	MaximumWeight

	// featureTotal is the number of declared features.
	featureTotal = int(iota)
)

var featureAliases = [featureTotal]string{
	ExpireAfterAccess: "A",
	ExpireAfterWrite:  "W",
	RefreshAfterWrite: "R",
	MaximumSize:       "MS",
	MaximumWeight:     "MW",
}

var featureNames = [featureTotal]string{
	ExpireAfterAccess: "expireAfterAccess",
	ExpireAfterWrite:  "expireAfterWrite",
	RefreshAfterWrite: "refreshAfterWrite",
	MaximumSize:       "maximumSize",
	MaximumWeight:     "maximumWeight",
}

// String returns the manifest name of the feature.
func (f Feature) String() string {
	if !f.IsValid() {
		return common.UnknownStr
	}

	return featureNames[f]
}

// Alias returns the short name used inside variant names.
func (f Feature) Alias() string {
	if !f.IsValid() {
		return common.UnknownStr
	}

	return featureAliases[f]
}

// IsValid returns true if the feature is a declared value.
func (f Feature) IsValid() bool {
	return f >= 0 && int(f) < featureTotal
}

// IsMaximum returns true for the bounding features.
func (f Feature) IsMaximum() bool {
	return f == MaximumSize || f == MaximumWeight
}

// ParseFeature parses a manifest feature name.
func ParseFeature(s string) (Feature, bool) {
	for i, name := range featureNames {
		if name == s {
			return Feature(i), true
		}
	}

	return 0, false
}

// AllFeatures returns every declared feature in canonical order.
func AllFeatures() []Feature {
	res := make([]Feature, featureTotal)
	for i := range res {
		res[i] = Feature(i)
	}

	return res
}
