package variant

import (
	"slices"
	"strings"
)

// Config describes one requested node variant. It is immutable: all state
// is unexported and every accessor returns a copy.
type Config struct {
	keys     Strength
	values   Strength
	features []Feature
}

// New validates the axes and returns the corresponding configuration.
// Features must be listed in canonical order without duplicates.
func New(keys, values Strength, features ...Feature) (Config, error) {
	name := sketchName(keys, values, features)

	if !keys.IsValid() {
		return Config{}, invalid(name, "unknown key strength %d", int(keys))
	}

	if !values.IsValid() {
		return Config{}, invalid(name, "unknown value strength %d", int(values))
	}

	if keys == Soft {
		return Config{}, invalid(name, "soft keys are not supported")
	}

	hasMaximum := false

	for i, f := range features {
		if !f.IsValid() {
			return Config{}, invalid(name, "unknown feature %d", int(f))
		}

		if i > 0 && features[i-1] >= f {
			if features[i-1] == f {
				return Config{}, invalid(name, "feature %s requested twice", f)
			}

			if !(features[i-1].IsMaximum() && f.IsMaximum()) {
				return Config{}, invalid(name, "feature %s must precede %s", f, features[i-1])
			}
		}

		if f.IsMaximum() {
			if hasMaximum {
				return Config{}, invalid(name, "maximumSize and maximumWeight are mutually exclusive")
			}

			hasMaximum = true
		}
	}

	return Config{
		keys:     keys,
		values:   values,
		features: slices.Clone(features),
	}, nil
}

// MustNew is like New but panics on an invalid combination.
// It is intended for tests and static catalogues.
func MustNew(keys, values Strength, features ...Feature) Config {
	c, err := New(keys, values, features...)
	if err != nil {
		panic(err)
	}

	return c
}

// Parse decodes a variant name such as "PSAWMS".
func Parse(name string) (Config, error) {
	if len(name) < 2 {
		return Config{}, invalid(name, "name is too short")
	}

	var keys, values Strength

	switch name[0] {
	case 'P':
		keys = Strong
	case 'F':
		keys = Weak
	default:
		return Config{}, invalid(name, "unknown key letter %q", name[0])
	}

	switch name[1] {
	case 'S':
		values = Strong
	case 'W':
		values = Weak
	case 'D':
		values = Soft
	default:
		return Config{}, invalid(name, "unknown value letter %q", name[1])
	}

	var features []Feature

	for rest := name[2:]; rest != ""; {
		switch {
		case strings.HasPrefix(rest, "MS"):
			features = append(features, MaximumSize)
			rest = rest[2:]
		case strings.HasPrefix(rest, "MW"):
			features = append(features, MaximumWeight)
			rest = rest[2:]
		case rest[0] == 'A':
			features = append(features, ExpireAfterAccess)
			rest = rest[1:]
		case rest[0] == 'W':
			features = append(features, ExpireAfterWrite)
			rest = rest[1:]
		case rest[0] == 'R':
			features = append(features, RefreshAfterWrite)
			rest = rest[1:]
		default:
			return Config{}, invalid(name, "unknown feature alias at %q", rest)
		}
	}

	return New(keys, values, features...)
}

// Keys returns the key strength.
func (c Config) Keys() Strength { return c.keys }

// Values returns the value strength.
func (c Config) Values() Strength { return c.values }

// Features returns a copy of the ordered feature list.
func (c Config) Features() []Feature { return slices.Clone(c.features) }

// IsBaseVariant reports whether this variant physically holds key and value.
func (c Config) IsBaseVariant() bool { return len(c.features) == 0 }

// IsStrongKeys reports whether keys are held directly.
func (c Config) IsStrongKeys() bool { return c.keys == Strong }

// IsStrongValues reports whether values are held directly.
func (c Config) IsStrongValues() bool { return c.values == Strong }

// Has reports whether the variant or one of its ancestors provides f.
func (c Config) Has(f Feature) bool { return slices.Contains(c.features, f) }

// Generates reports whether this level of the hierarchy introduces f.
func (c Config) Generates(f Feature) bool {
	return len(c.features) > 0 && c.features[len(c.features)-1] == f
}

// Inherits reports whether f is provided by an ancestor.
func (c Config) Inherits(f Feature) bool {
	return len(c.features) > 1 && slices.Contains(c.features[:len(c.features)-1], f)
}

// HasMaximum reports whether the variant is bounded by size or weight.
func (c Config) HasMaximum() bool {
	return c.Has(MaximumSize) || c.Has(MaximumWeight)
}

// Parent returns the variant this one embeds. The base variant has none.
func (c Config) Parent() (Config, bool) {
	if c.IsBaseVariant() {
		return Config{}, false
	}

	return Config{
		keys:     c.keys,
		values:   c.values,
		features: slices.Clone(c.features[:len(c.features)-1]),
	}, true
}

// Ancestors returns the parent chain from the base variant down to the
// direct parent.
func (c Config) Ancestors() []Config {
	res := make([]Config, 0, len(c.features))
	for i := range c.features {
		res = append(res, Config{
			keys:     c.keys,
			values:   c.values,
			features: slices.Clone(c.features[:i]),
		})
	}

	return res
}

// Name returns the encoded variant name.
func (c Config) Name() string {
	return sketchName(c.keys, c.values, c.features)
}

// String implements fmt.Stringer.
func (c Config) String() string { return c.Name() }

// Equal reports whether both configurations describe the same variant.
func (c Config) Equal(other Config) bool {
	return c.keys == other.keys && c.values == other.values && slices.Equal(c.features, other.features)
}

// KeyReferenceType returns the holder type that wraps a non-strong key.
// It returns an empty string for strong keys.
func (c Config) KeyReferenceType() string {
	if c.IsStrongKeys() {
		return ""
	}

	return "WeakKeyReference[K]"
}

// NewKeyReferenceFunc returns the constructor of KeyReferenceType.
func (c Config) NewKeyReferenceFunc() string {
	if c.IsStrongKeys() {
		return ""
	}

	return "NewWeakKeyReference[K]"
}

// ValueReferenceType returns the holder type that wraps a non-strong value.
// It returns an empty string for strong values.
func (c Config) ValueReferenceType() string {
	switch c.values {
	case Weak:
		return "WeakValueReference[K, V]"
	case Soft:
		return "SoftValueReference[K, V]"
	default:
		return ""
	}
}

// NewValueReferenceFunc returns the constructor of ValueReferenceType.
func (c Config) NewValueReferenceFunc() string {
	switch c.values {
	case Weak:
		return "NewWeakValueReference[K, V]"
	case Soft:
		return "NewSoftValueReference[K, V]"
	default:
		return ""
	}
}

// sketchName encodes the axes without validating them, so that rejected
// combinations can still be named in errors.
func sketchName(keys, values Strength, features []Feature) string {
	var sb strings.Builder

	sb.WriteByte(keyLetter(keys))
	sb.WriteByte(valueLetter(values))

	for _, f := range features {
		sb.WriteString(f.Alias())
	}

	return sb.String()
}
