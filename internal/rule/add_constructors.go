package rule

import (
	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// AddConstructors adds the exported constructor and, for derived variants,
// the delegation of initNode to the parent.
type AddConstructors struct{}

func (AddConstructors) Name() string { return "AddConstructors" }

func (AddConstructors) Applies(variant.Config) bool { return true }

func (AddConstructors) Provides(cfg variant.Config) []string {
	return []string{"New" + cfg.Name()}
}

func (AddConstructors) Execute(cfg variant.Config, b *artifact.Builder) {
	typ := cfg.Name() + artifact.TypeArgs

	body := []artifact.Step{artifact.Raw{Code: "n := new(" + typ + ")"}}
	if cfg.IsStrongKeys() {
		body = append(body, artifact.Raw{Code: "keyRef := unsafe.Pointer(&key)"})
	} else {
		body = append(body,
			artifact.Invoke{Into: []string{"weakKey"}, Func: cfg.NewKeyReferenceFunc(), Args: []string{"key"}},
			artifact.Raw{Code: "keyRef := unsafe.Pointer(weakKey)"},
		)
	}

	body = append(body,
		artifact.Invoke{Recv: "n", Func: initMethod, Args: initArgs()},
		artifact.Return{Value: "n"},
	)

	b.AddMethod(artifact.Method{
		Kind: artifact.KindFunc,
		Name: "New" + cfg.Name(),
		Params: []artifact.Param{
			{Name: "key", Type: "K"},
			{Name: "value", Type: "V"},
			{Name: "weight", Type: "int32"},
			{Name: "now", Type: "int64"},
		},
		Results: []string{"*" + typ},
		Body:    body,
		Comment: "New" + cfg.Name() + " creates a " + cfg.Name() + " node.",
	})

	if parent, ok := cfg.Parent(); ok {
		b.AddInit(artifact.Invoke{Recv: "n." + parent.Name(), Func: initMethod, Args: initArgs()})
	}
}
