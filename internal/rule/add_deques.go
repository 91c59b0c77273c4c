package rule

import (
	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

var (
	prevInAccessOrder = linkSpec("prevInAccessOrder", "PreviousInAccessOrder")
	nextInAccessOrder = linkSpec("nextInAccessOrder", "NextInAccessOrder")
	prevInWriteOrder  = linkSpec("prevInWriteOrder", "PreviousInWriteOrder")
	nextInWriteOrder  = linkSpec("nextInWriteOrder", "NextInWriteOrder")
)

// AddDeques adds the intrusive links of the access-order and write-order
// deques. Links are only touched under the eviction lock and are plain.
//
// The access-order deque serves both expire-after-access and the maximum
// bound, so it is added by whichever of them comes first in the hierarchy.
type AddDeques struct{}

func (AddDeques) Name() string { return "AddDeques" }

func (r AddDeques) Applies(cfg variant.Config) bool {
	return r.addsAccessOrder(cfg) || cfg.Generates(variant.ExpireAfterWrite)
}

func (r AddDeques) Execute(cfg variant.Config, b *artifact.Builder) {
	var links []fieldSpec
	if r.addsAccessOrder(cfg) {
		links = append(links, prevInAccessOrder, nextInAccessOrder)
	}

	if cfg.Generates(variant.ExpireAfterWrite) {
		links = append(links, prevInWriteOrder, nextInWriteOrder)
	}

	for _, s := range links {
		declare(b, s, "")
		b.AddMethod(newGetter(s, artifact.AccessPlain)).
			AddMethod(newSetter(s, artifact.AccessPlain))
	}
}

func (AddDeques) addsAccessOrder(cfg variant.Config) bool {
	parent, ok := cfg.Parent()
	if !ok {
		return false
	}

	return usesAccessOrder(cfg) && !usesAccessOrder(parent)
}

func usesAccessOrder(cfg variant.Config) bool {
	return cfg.Has(variant.ExpireAfterAccess) || cfg.HasMaximum()
}
