package rule

import (
	"fmt"

	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// AddValue adds the value to the base variant.
type AddValue struct{}

func (AddValue) Name() string { return "AddValue" }

func (AddValue) Applies(cfg variant.Config) bool {
	return cfg.IsBaseVariant()
}

func (AddValue) Provides(variant.Config) []string {
	return []string{"value", "GetValue", "GetValueReference", "SetValue", "casValue"}
}

func (r AddValue) Execute(cfg variant.Config, b *artifact.Builder) {
	value := valueSpec(cfg)
	declare(b, value, "")

	if cfg.IsStrongValues() {
		b.AddMethod(newGetter(value, artifact.AccessAcquireRelease)).
			AddMethod(newGetRef(value)).
			AddMethod(newSetter(value, artifact.AccessAcquireRelease)).
			AddInit(value.store("value", true, artifact.AccessPlain))
	} else {
		r.addCollected(cfg, value, b)
	}

	registerAtomic(b, value)
}

func (AddValue) addCollected(cfg variant.Config, value fieldSpec, b *artifact.Builder) {
	newRef := cfg.NewValueReferenceFunc()

	// A reclaimed referent is only trusted when the holder was not
	// replaced concurrently; otherwise the fresh holder is read again.
	b.AddMethod(artifact.Method{
		Name:    "GetValue",
		Results: []string{"V"},
		Body: []artifact.Step{artifact.Raw{Code: fmt.Sprintf(`for {
	valueRef := (*%s)(atomic.LoadPointer(&n.value))
	value, ok := valueRef.Get()
	if ok || unsafe.Pointer(valueRef) == atomic.LoadPointer(&n.value) {
		return value
	}
}`, value.holder)}},
	})

	b.AddMethod(newGetRef(value)).
		AddMethod(artifact.Method{
			Name:   "SetValue",
			Params: []artifact.Param{{Name: "value", Type: "V"}},
			Body: []artifact.Step{
				value.load("oldRef", artifact.AccessAcquireRelease),
				artifact.Invoke{Into: []string{"keyRef"}, Recv: "oldRef", Func: "KeyReference"},
				artifact.Invoke{Into: []string{"ref"}, Func: newRef, Args: []string{"keyRef", "value"}},
				value.store("ref", false, artifact.AccessAcquireRelease),
				artifact.Invoke{Recv: "oldRef", Func: "Clear"},
			},
		}).
		AddInit(
			artifact.Invoke{Into: []string{"valueRef"}, Func: newRef, Args: []string{"keyRef", "value"}},
			value.store("valueRef", false, artifact.AccessPlain),
		)
	b.Suppress("gosec")
}
