package gen

import (
	"fmt"
	"strings"

	"node-generator/internal/artifact"
)

// commentWidth is the column at which generated comments are wrapped.
const commentWidth = 76

// templateData holds all data needed for the node template.
type templateData struct {
	PackageName string
	Filename    string
	Imports     []string
	TypeName    string
	TypeParams  string
	Doc         []string
	Directive   string
	Embeds      []string
	Fields      []fieldData
	Methods     []methodData
}

// fieldData is one struct field line.
type fieldData struct {
	Name    string
	Type    string
	Comment string
}

// methodData is one rendered method or function.
type methodData struct {
	Comment   []string
	Signature string
	Body      []string
}

// buildTemplateData constructs the template data of one artifact.
func (g *Generator) buildTemplateData(art *artifact.Artifact) (*templateData, error) {
	data := &templateData{
		PackageName: g.config.PackageName,
		Filename:    filename(art.Name),
		TypeName:    art.Name,
		TypeParams:  artifact.TypeParams,
		Doc:         art.Doc,
		Embeds:      art.Embeds,
	}

	if len(art.Suppressed) > 0 {
		data.Directive = "nolint:" + strings.Join(art.Suppressed, ",")
	}

	for _, f := range art.Fields {
		data.Fields = append(data.Fields, fieldData{
			Name:    f.Name,
			Type:    f.GoType(),
			Comment: g.fieldComment(f),
		})
	}

	for _, m := range art.Methods {
		md, err := g.buildMethod(art.Name, m)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, err)
		}

		data.Methods = append(data.Methods, md)
	}

	data.Imports = collectImports(data)

	return data, nil
}

func (g *Generator) buildMethod(typeName string, m artifact.Method) (methodData, error) {
	md := methodData{Signature: signature(typeName, m)}

	if g.config.GenerateComments && m.Comment != "" {
		md.Comment = wrapText(m.Comment, commentWidth)
	}

	for _, step := range m.Body {
		stmt, err := renderStep(step)
		if err != nil {
			return methodData{}, err
		}

		md.Body = append(md.Body, strings.Split(stmt, "\n")...)
	}

	return md, nil
}

// fieldComment documents the referent and access strategy of a field.
func (g *Generator) fieldComment(f artifact.Field) string {
	if f.Comment != "" || !g.config.GenerateComments {
		return f.Comment
	}

	if f.Storage == artifact.StoragePointer {
		return fmt.Sprintf("*%s, %s", f.Type, f.Strategy)
	}

	return f.Strategy.String()
}

// signature renders everything between "func " and the opening brace.
func signature(typeName string, m artifact.Method) string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Name + " " + p.Type
	}

	var results string

	switch len(m.Results) {
	case 0:
	case 1:
		results = " " + m.Results[0]
	default:
		results = " (" + strings.Join(m.Results, ", ") + ")"
	}

	if m.Kind == artifact.KindFunc {
		return fmt.Sprintf("%s%s(%s)%s", m.Name, artifact.TypeParams, strings.Join(params, ", "), results)
	}

	return fmt.Sprintf("(%s *%s%s) %s(%s)%s",
		receiver, typeName, artifact.TypeArgs, m.Name, strings.Join(params, ", "), results)
}

// collectImports returns the packages referenced by the rendered code.
func collectImports(data *templateData) []string {
	var text strings.Builder

	for _, f := range data.Fields {
		text.WriteString(f.Type + "\n")
	}

	for _, m := range data.Methods {
		text.WriteString(m.Signature + "\n")

		for _, line := range m.Body {
			text.WriteString(line + "\n")
		}
	}

	var imports []string

	code := text.String()
	if strings.Contains(code, "atomic.") {
		imports = append(imports, "sync/atomic")
	}

	if strings.Contains(code, "unsafe.") {
		imports = append(imports, "unsafe")
	}

	return imports
}

func filename(typeName string) string {
	return strings.ToLower(typeName) + ".go"
}

// wrapText splits text into lines of at most width columns.
func wrapText(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)

	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}

		if line.Len() > 0 {
			line.WriteByte(' ')
		}

		line.WriteString(word)
	}

	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return lines
}
