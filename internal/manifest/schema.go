package manifest

// File represents the root of a variant manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the package name of the generated code.
	Package string `yaml:"package,omitempty"`

	// Variants lists the selected variants.
	Variants []Entry `yaml:"variants"`
}

// Entry selects one variant.
type Entry struct {
	// Name is the encoded variant name, e.g. "FDAMW". It excludes the
	// axis fields below.
	Name string `yaml:"name,omitempty"`

	// Keys is the key strength: strong or weak. Defaults to strong.
	Keys string `yaml:"keys,omitempty"`

	// Values is the value strength: strong, weak or soft. Defaults to strong.
	Values string `yaml:"values,omitempty"`

	// Features lists feature names in canonical order.
	Features []string `yaml:"features,omitempty,flow"`
}

// hasAxes reports whether any axis field is set.
func (e Entry) hasAxes() bool {
	return e.Keys != "" || e.Values != "" || len(e.Features) > 0
}
