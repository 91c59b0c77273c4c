package variant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keys     Strength
		values   Strength
		features []Feature
		reason   string
	}{
		{"soft keys", Soft, Strong, nil, "soft keys are not supported"},
		{"unknown key", Strength(7), Strong, nil, "unknown key strength"},
		{"unknown value", Strong, Strength(-1), nil, "unknown value strength"},
		{"unknown feature", Strong, Strong, []Feature{Feature(42)}, "unknown feature"},
		{"duplicate", Strong, Strong, []Feature{ExpireAfterAccess, ExpireAfterAccess}, "requested twice"},
		{"order", Strong, Strong, []Feature{ExpireAfterWrite, ExpireAfterAccess}, "must precede"},
		{"both maximums", Strong, Strong, []Feature{MaximumSize, MaximumWeight}, "mutually exclusive"},
		{"both maximums reversed", Strong, Weak, []Feature{MaximumWeight, MaximumSize}, "mutually exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.keys, tt.values, tt.features...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.reason)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
		})
	}
}

func TestNew_Predicates(t *testing.T) {
	t.Parallel()

	c := MustNew(Weak, Soft, ExpireAfterAccess, RefreshAfterWrite, MaximumWeight)

	assert.Equal(t, "FDARMW", c.Name())
	assert.False(t, c.IsBaseVariant())
	assert.False(t, c.IsStrongKeys())
	assert.False(t, c.IsStrongValues())
	assert.True(t, c.Has(RefreshAfterWrite))
	assert.False(t, c.Has(ExpireAfterWrite))
	assert.True(t, c.Generates(MaximumWeight))
	assert.False(t, c.Generates(ExpireAfterAccess))
	assert.True(t, c.Inherits(ExpireAfterAccess))
	assert.False(t, c.Inherits(MaximumWeight))
	assert.True(t, c.HasMaximum())
	assert.Equal(t, "WeakKeyReference[K]", c.KeyReferenceType())
	assert.Equal(t, "SoftValueReference[K, V]", c.ValueReferenceType())
	assert.Equal(t, "NewSoftValueReference[K, V]", c.NewValueReferenceFunc())

	base := MustNew(Strong, Strong)
	assert.True(t, base.IsBaseVariant())
	assert.Empty(t, base.KeyReferenceType())
	assert.Empty(t, base.ValueReferenceType())
	assert.False(t, base.Generates(ExpireAfterAccess))
}

func TestConfig_IsImmutable(t *testing.T) {
	t.Parallel()

	features := []Feature{ExpireAfterAccess, ExpireAfterWrite}
	c := MustNew(Strong, Strong, features...)

	features[0] = RefreshAfterWrite
	got := c.Features()
	got[1] = MaximumSize

	assert.Equal(t, "PSAW", c.Name())
}

func TestConfig_Hierarchy(t *testing.T) {
	t.Parallel()

	c := MustNew(Strong, Weak, ExpireAfterAccess, ExpireAfterWrite, MaximumSize)

	parent, ok := c.Parent()
	require.True(t, ok)
	assert.Equal(t, "PWAW", parent.Name())

	var names []string
	for _, a := range c.Ancestors() {
		names = append(names, a.Name())
	}

	assert.Equal(t, []string{"PW", "PWA", "PWAW"}, names)

	_, ok = MustNew(Strong, Weak).Parent()
	assert.False(t, ok)
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range Enumerate() {
		parsed, err := Parse(c.Name())
		require.NoError(t, err, c.Name())
		assert.True(t, c.Equal(parsed), c.Name())
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "P", "XS", "PX", "PSZ", "PSM", "PSWA", "PDMSMW", "FSAA"} {
		_, err := Parse(name)
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}
}

func TestEnumerate(t *testing.T) {
	t.Parallel()

	all := Enumerate()
	require.Len(t, all, 144)

	seen := make(map[string]struct{}, len(all))
	for i, c := range all {
		if i > 0 {
			assert.Less(t, all[i-1].Name(), c.Name())
		}

		seen[c.Name()] = struct{}{}
	}

	for _, c := range all {
		if parent, ok := c.Parent(); ok {
			assert.Contains(t, seen, parent.Name(), "enumeration must be closed under Parent")
		}
	}
}

func TestClosure(t *testing.T) {
	t.Parallel()

	res := Closure([]Config{
		MustNew(Weak, Strong, ExpireAfterWrite, MaximumSize),
		MustNew(Weak, Strong, ExpireAfterWrite),
	})

	var names []string
	for _, c := range res {
		names = append(names, c.Name())
	}

	assert.Equal(t, []string{"FS", "FSW", "FSWMS"}, names)
}

func TestStrengthAndFeatureNames(t *testing.T) {
	t.Parallel()

	for _, s := range []Strength{Strong, Weak, Soft} {
		parsed, ok := ParseStrength(s.String())
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	for _, f := range AllFeatures() {
		parsed, ok := ParseFeature(f.String())
		require.True(t, ok)
		assert.Equal(t, f, parsed)
	}

	assert.Equal(t, "unknown", Strength(9).String())
	assert.Equal(t, "unknown", Feature(9).Alias())

	_, ok := ParseFeature("stats")
	assert.False(t, ok)
}
