package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"node-generator/internal/diagnostic"
	"node-generator/internal/variant"
)

func names(configs []variant.Config) []string {
	res := make([]string, len(configs))
	for i, c := range configs {
		res[i] = c.Name()
	}

	return res
}

func TestParse(t *testing.T) {
	t.Parallel()

	data := `
package: node
variants:
  - name: PSAW
  - keys: weak
    values: soft
    features: [expireAfterAccess, maximumWeight]
`

	f, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "node", f.Package)
	require.Len(t, f.Variants, 2)
	assert.Equal(t, "PSAW", f.Variants[0].Name)
	assert.Equal(t, []string{"expireAfterAccess", "maximumWeight"}, f.Variants[1].Features)

	configs, diags := f.Resolve()
	require.True(t, diags.IsValid(), diags.Error())
	assert.Equal(t, []string{"FD", "FDA", "FDAMW", "PS", "PSA", "PSAW"}, names(configs))
	assert.Len(t, diags.Infos, 4)
	assert.Empty(t, diags.Warnings)
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("variants: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest YAML")
}

func TestResolve_Diagnostics(t *testing.T) {
	t.Parallel()

	f := &File{Variants: []Entry{
		{Keys: "soft"},
		{Name: "PSWA"},
		{Name: "PS", Keys: "weak"},
		{Values: "brittle"},
		{Features: []string{"expireEventually"}},
		{Name: "PW"},
		{Keys: "strong", Values: "weak"},
	}}

	configs, diags := f.Resolve()

	assert.Equal(t, []string{"PW"}, names(configs))
	require.Len(t, diags.Errors, 5)
	require.Len(t, diags.Warnings, 1)
	assert.Empty(t, diags.Infos)

	for _, d := range diags.Errors {
		assert.Equal(t, diagnostic.CodeInvalidVariant, d.Code)
	}

	assert.Equal(t, "variants[0]", diags.Errors[0].Entry)
	assert.Equal(t, "FS", diags.Errors[0].Variant)
	assert.Contains(t, diags.Errors[1].Message, "must precede")
	assert.Contains(t, diags.Errors[2].Message, "mutually exclusive")
	assert.Equal(t, "variants[6]", diags.Warnings[0].Entry)
	assert.Contains(t, diags.Warnings[0].Message, "variants[5]")
}

func TestResolve_Empty(t *testing.T) {
	t.Parallel()

	configs, diags := (&File{}).Resolve()
	assert.Empty(t, configs)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeEmptySelection, diags.Errors[0].Code)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "variants.yaml")
	all := variant.Enumerate()

	require.NoError(t, WriteFile(FromConfigs("node", all), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "features: [expireAfterAccess, expireAfterWrite]")

	f, err := LoadFile(path)
	require.NoError(t, err)

	configs, diags := f.Resolve()
	require.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
	assert.Empty(t, diags.Infos)
	assert.Equal(t, names(all), names(configs))
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
