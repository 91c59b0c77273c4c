package manifest

import (
	"errors"
	"fmt"

	"node-generator/internal/diagnostic"
	"node-generator/internal/variant"
)

// Resolve validates every entry and returns the selected configurations
// together with their ancestors, sorted by name.
//
// Invalid entries are reported as errors and skipped, repeated
// selections as warnings, and ancestors added implicitly as infos.
func (f *File) Resolve() ([]variant.Config, diagnostic.Diagnostics) {
	var (
		diags    diagnostic.Diagnostics
		selected []variant.Config
	)

	seen := make(map[string]string, len(f.Variants))

	for i, e := range f.Variants {
		where := fmt.Sprintf("variants[%d]", i)

		cfg, err := e.config()
		if err != nil {
			name := e.Name

			var verr *variant.ValidationError
			if errors.As(err, &verr) {
				name = verr.Variant
			}

			diags.AddError(diagnostic.CodeInvalidVariant, err.Error(), name, where)

			continue
		}

		if first, ok := seen[cfg.Name()]; ok {
			diags.AddWarning(diagnostic.CodeDuplicate, "already selected by "+first, cfg.Name(), where)
			continue
		}

		seen[cfg.Name()] = where
		selected = append(selected, cfg)
	}

	if len(selected) == 0 && !diags.HasErrors() {
		diags.AddError(diagnostic.CodeEmptySelection, "no variants selected", "", "")
	}

	closure := variant.Closure(selected)
	for _, c := range closure {
		if _, ok := seen[c.Name()]; !ok {
			diags.AddInfo(diagnostic.CodeAncestorAdded, "added as an ancestor of a selected variant", c.Name(), "")
		}
	}

	return closure, diags
}

func (e Entry) config() (variant.Config, error) {
	if e.Name != "" {
		if e.hasAxes() {
			return variant.Config{}, errors.New("name and keys/values/features are mutually exclusive")
		}

		return variant.Parse(e.Name)
	}

	keys, values := variant.Strong, variant.Strong

	if e.Keys != "" {
		s, ok := variant.ParseStrength(e.Keys)
		if !ok {
			return variant.Config{}, fmt.Errorf("unknown key strength %q", e.Keys)
		}

		keys = s
	}

	if e.Values != "" {
		s, ok := variant.ParseStrength(e.Values)
		if !ok {
			return variant.Config{}, fmt.Errorf("unknown value strength %q", e.Values)
		}

		values = s
	}

	features := make([]variant.Feature, 0, len(e.Features))
	for _, name := range e.Features {
		f, ok := variant.ParseFeature(name)
		if !ok {
			return variant.Config{}, fmt.Errorf("unknown feature %q", name)
		}

		features = append(features, f)
	}

	return variant.New(keys, values, features...)
}

// FromConfigs returns a manifest selecting the given configurations by
// their axes, in the given order.
func FromConfigs(pkg string, configs []variant.Config) *File {
	f := &File{
		Version:  defaultVersion,
		Package:  pkg,
		Variants: make([]Entry, 0, len(configs)),
	}

	for _, c := range configs {
		e := Entry{Keys: c.Keys().String(), Values: c.Values().String()}
		for _, feat := range c.Features() {
			e.Features = append(e.Features, feat.String())
		}

		f.Variants = append(f.Variants, e)
	}

	return f
}
