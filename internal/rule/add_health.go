package rule

import (
	"fmt"

	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// AddHealth adds the node lifecycle: alive, then retired once removed
// from the hash table, then dead once removed from the policies. The
// state is encoded by replacing the key reference with a sentinel.
type AddHealth struct{}

func (AddHealth) Name() string { return "AddHealth" }

func (AddHealth) Applies(cfg variant.Config) bool {
	return cfg.IsBaseVariant()
}

func (AddHealth) Provides(variant.Config) []string {
	return []string{"IsAlive", "IsRetired", "IsDead", "Retire", "Die"}
}

func (r AddHealth) Execute(cfg variant.Config, b *artifact.Builder) {
	b.AddMethod(artifact.Method{
		Name:    "IsAlive",
		Results: []string{"bool"},
		Body: []artifact.Step{
			artifact.Raw{Code: "key := n.GetKeyReference()\nreturn key != " + retiredKey + " && key != " + deadKey},
		},
	}).AddMethod(artifact.Method{
		Name:    "IsRetired",
		Results: []string{"bool"},
		Body:    []artifact.Step{artifact.Raw{Code: "return n.GetKeyReference() == " + retiredKey}},
	}).AddMethod(artifact.Method{
		Name:    "IsDead",
		Results: []string{"bool"},
		Body:    []artifact.Step{artifact.Raw{Code: "return n.GetKeyReference() == " + deadKey}},
	})

	b.AddMethod(artifact.Method{Name: "Retire", Body: r.transition(cfg, retiredKey, false)}).
		AddMethod(artifact.Method{Name: "Die", Body: r.transition(cfg, deadKey, true)})
}

// transition replaces the key reference with a sentinel. A weak key is
// cleared first so the collector can reclaim it; a dying collected value
// has its holder cleared as well.
func (AddHealth) transition(cfg variant.Config, sentinel string, dying bool) []artifact.Step {
	if cfg.IsStrongValues() {
		key := keySpec(cfg)

		var steps []artifact.Step
		if key.indirect() {
			steps = append(steps, key.loadRaw("ref", artifact.AccessAcquireRelease), clearWeakKey(cfg))
		}

		return append(steps, key.store(sentinel, false, artifact.AccessAcquireRelease))
	}

	value := valueSpec(cfg)
	steps := []artifact.Step{value.load("valueRef", artifact.AccessAcquireRelease)}

	if !cfg.IsStrongKeys() {
		steps = append(steps,
			artifact.Invoke{Into: []string{"ref"}, Recv: "valueRef", Func: "KeyReference"},
			clearWeakKey(cfg),
		)
	}

	if dying {
		steps = append(steps, artifact.Invoke{Recv: "valueRef", Func: "Clear"})
	}

	return append(steps, artifact.Invoke{Recv: "valueRef", Func: "SetKeyReference", Args: []string{sentinel}})
}

// clearWeakKey clears the key holder held in ref unless the node already
// left the alive state and ref is a sentinel.
func clearWeakKey(cfg variant.Config) artifact.Raw {
	return artifact.Raw{Code: fmt.Sprintf("if ref != %s && ref != %s {\n\t(*%s)(ref).Clear()\n}",
		retiredKey, deadKey, cfg.KeyReferenceType())}
}
