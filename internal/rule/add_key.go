package rule

import (
	"fmt"

	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// plainReadComment documents the visibility contract of the collected
// value key accessors.
const plainReadComment = "The value field is only ever published with a release store, so this " +
	"plain load always observes a fully constructed holder. It may observe " +
	"either the previous or the newly published holder."

const zeroKeyComment = "GetKey returns the zero value once the node is retired or dead, " +
	"or when a weak key has been reclaimed."

// AddKey adds the key to the base variant.
//
// With strong values the key has its own field. With collected values the
// key is only reachable through the value holder, which keeps a
// back-reference to it so that reclamation can report the key.
type AddKey struct{}

func (AddKey) Name() string { return "AddKey" }

func (AddKey) Applies(cfg variant.Config) bool {
	return cfg.IsBaseVariant()
}

func (r AddKey) Execute(cfg variant.Config, b *artifact.Builder) {
	if cfg.IsStrongValues() {
		r.addIfStrongValue(cfg, b)
	} else {
		r.addIfCollectedValue(cfg, b)
	}
}

func (AddKey) Provides(cfg variant.Config) []string {
	if cfg.IsStrongValues() {
		return []string{"key", "GetKey", "GetKeyReference", "casKey"}
	}

	return []string{"GetKey", "GetKeyReference"}
}

func (AddKey) addIfStrongValue(cfg variant.Config, b *artifact.Builder) {
	key := keySpec(cfg)

	declare(b, key, "")
	b.AddMethod(artifact.Method{
		Name:    "GetKey",
		Results: []string{"K"},
		Comment: zeroKeyComment,
		Body: append([]artifact.Step{
			key.loadRaw("ref", artifact.AccessPlain),
			sentinelGuard("ref", "K"),
		}, derefKey(cfg)...),
	}).
		AddMethod(newGetRef(key)).
		AddInit(key.store("keyRef", false, artifact.AccessPlain))
	registerAtomic(b, key)
}

func (AddKey) addIfCollectedValue(cfg variant.Config, b *artifact.Builder) {
	value := valueSpec(cfg)
	if !value.indirect() {
		defect("AddKey", "collected value branch reached for %s with strong values", cfg.Name())
	}

	b.AddMethod(artifact.Method{
		Name:    "GetKeyReference",
		Results: []string{"unsafe.Pointer"},
		Comment: plainReadComment,
		Body: []artifact.Step{
			value.load("valueRef", artifact.AccessPlain),
			artifact.Invoke{Into: []string{"ref"}, Recv: "valueRef", Func: "KeyReference"},
			artifact.Return{Value: "ref"},
		},
	})

	getKey := []artifact.Step{
		value.load("valueRef", artifact.AccessPlain),
		artifact.Invoke{Into: []string{"ref"}, Recv: "valueRef", Func: "KeyReference"},
		sentinelGuard("ref", "K"),
	}

	b.AddMethod(artifact.Method{
		Name:    "GetKey",
		Results: []string{"K"},
		Comment: zeroKeyComment,
		Body:    append(getKey, derefKey(cfg)...),
	})
	b.Suppress("gosec")
}

// derefKey reads the key out of the reference held in ref: a strong key
// is dereferenced, a weak key is asked for its referent.
func derefKey(cfg variant.Config) []artifact.Step {
	if cfg.IsStrongKeys() {
		return []artifact.Step{
			artifact.Cast{Into: "key", From: "ref", Type: "K"},
			artifact.Return{Value: "key", Deref: true},
		}
	}

	return []artifact.Step{
		artifact.Cast{Into: "keyRef", From: "ref", Type: cfg.KeyReferenceType()},
		artifact.Invoke{Into: []string{"key", "_"}, Recv: "keyRef", Func: "Get"},
		artifact.Return{Value: "key"},
	}
}

// sentinelGuard returns the zero referent from the enclosing getter when
// ref holds a lifecycle sentinel instead of a key reference.
func sentinelGuard(ref, referent string) artifact.Raw {
	return artifact.Raw{Code: fmt.Sprintf("if %s == %s || %s == %s {\n\tvar zero %s\n\treturn zero\n}",
		ref, retiredKey, ref, deadKey, referent)}
}
