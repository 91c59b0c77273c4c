package rule

import (
	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// AddMaximum adds the bookkeeping of size and weight bounded caches: the
// queue the node belongs to and, for weighted caches, its weights.
type AddMaximum struct{}

func (AddMaximum) Name() string { return "AddMaximum" }

func (AddMaximum) Applies(cfg variant.Config) bool {
	return cfg.Generates(variant.MaximumSize) || cfg.Generates(variant.MaximumWeight)
}

func (AddMaximum) Provides(cfg variant.Config) []string {
	if cfg.Generates(variant.MaximumWeight) {
		return []string{"queueType", "weight", "policyWeight"}
	}

	return []string{"queueType"}
}

func (AddMaximum) Execute(cfg variant.Config, b *artifact.Builder) {
	specs := []fieldSpec{queueTypeSpec}
	if cfg.Generates(variant.MaximumWeight) {
		specs = append(specs, weightSpec, policyWeightSpec)
	}

	for _, s := range specs {
		declare(b, s, "")
		b.AddMethod(newGetter(s, artifact.AccessPlain)).
			AddMethod(newSetter(s, artifact.AccessPlain))
	}

	if cfg.Generates(variant.MaximumWeight) {
		b.AddInit(weightSpec.store("weight", false, artifact.AccessPlain))
	}
}
