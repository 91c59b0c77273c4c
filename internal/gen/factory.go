package gen

import (
	"text/template"

	"node-generator/internal/variant"
)

const factoryFilename = "factory.go"

// factoryData holds the data of the factory file.
type factoryData struct {
	PackageName string
	Variants    []string
}

// generateFactory renders the lookup from variant names to constructors.
func (g *Generator) generateFactory(configs []variant.Config) (*GeneratedFile, error) {
	data := &factoryData{PackageName: g.config.PackageName}
	for _, c := range configs {
		data.Variants = append(data.Variants, c.Name())
	}

	return g.render(factoryTemplate, factoryFilename, data)
}

var factoryTemplate = template.Must(template.New("factory").Parse(`// Code generated by node-generator. DO NOT EDIT.

package {{.PackageName}}

// Factory creates a node of one variant.
type Factory[K comparable, V any] func(key K, value V, weight int32, now int64) Node[K, V]

// Lookup returns the factory of the named variant.
func Lookup[K comparable, V any](name string) (Factory[K, V], bool) {
	switch name {
{{- range .Variants}}
	case "{{.}}":
		return func(key K, value V, weight int32, now int64) Node[K, V] {
			return New{{.}}(key, value, weight, now)
		}, true
{{- end}}
	default:
		return nil, false
	}
}

// Variants returns the names of all generated variants, parents first.
func Variants() []string {
	return []string{
{{- range .Variants}}
		"{{.}}",
{{- end}}
	}
}
`))
