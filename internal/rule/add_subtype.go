package rule

import (
	"fmt"
	"strings"

	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// AddSubtype declares the node type and what it embeds: the node defaults
// for a base variant, the parent variant otherwise.
type AddSubtype struct{}

func (AddSubtype) Name() string { return "AddSubtype" }

func (AddSubtype) Applies(variant.Config) bool { return true }

func (AddSubtype) Provides(cfg variant.Config) []string {
	parent, ok := cfg.Parent()
	if !ok {
		return []string{artifact.EmbeddedName(defaultsType)}
	}

	return []string{parent.Name()}
}

func (AddSubtype) Execute(cfg variant.Config, b *artifact.Builder) {
	doc := []string{fmt.Sprintf("%s is a cache node with %s keys and %s values.", cfg.Name(), cfg.Keys(), cfg.Values())}

	parent, ok := cfg.Parent()
	if !ok {
		b.Declare(cfg.Name(), doc...).Embed(defaultsType)
		return
	}

	names := make([]string, 0, len(cfg.Features()))
	for _, f := range cfg.Features() {
		names = append(names, f.String())
	}

	doc = append(doc, "Features: "+strings.Join(names, ", ")+".")
	b.Declare(cfg.Name(), doc...).Embed(parent.Name() + artifact.TypeArgs)
}
