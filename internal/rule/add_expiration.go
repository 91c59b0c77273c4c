package rule

import (
	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// AddExpiration adds the timestamps used by expiration and refresh.
//
// accessTime is read and written plainly: a lost update only delays
// expiration slightly. writeTime is published with release stores and,
// with refresh, updated by compare-and-swap to claim a refresh.
type AddExpiration struct{}

func (AddExpiration) Name() string { return "AddExpiration" }

func (AddExpiration) Applies(cfg variant.Config) bool {
	return cfg.Generates(variant.ExpireAfterAccess) ||
		cfg.Generates(variant.ExpireAfterWrite) ||
		cfg.Generates(variant.RefreshAfterWrite)
}

func (AddExpiration) Provides(cfg variant.Config) []string {
	switch {
	case cfg.Generates(variant.ExpireAfterAccess):
		return []string{"accessTime", "GetAccessTime", "SetAccessTime"}
	case cfg.Generates(variant.ExpireAfterWrite):
		return []string{"writeTime", "GetWriteTime", "SetWriteTime"}
	default:
		return []string{"casWriteTime"}
	}
}

func (r AddExpiration) Execute(cfg variant.Config, b *artifact.Builder) {
	switch {
	case cfg.Generates(variant.ExpireAfterAccess):
		declare(b, accessTimeSpec, "")
		b.AddMethod(newGetter(accessTimeSpec, artifact.AccessPlain)).
			AddMethod(newSetter(accessTimeSpec, artifact.AccessPlain)).
			AddInit(accessTimeSpec.store("now", false, artifact.AccessPlain))

	case cfg.Generates(variant.ExpireAfterWrite):
		r.addWriteTime(b)

	case cfg.Generates(variant.RefreshAfterWrite):
		if !cfg.Has(variant.ExpireAfterWrite) {
			r.addWriteTime(b)
		}

		registerAtomic(b, writeTimeSpec)
	}
}

func (AddExpiration) addWriteTime(b *artifact.Builder) {
	declare(b, writeTimeSpec, "")
	b.AddMethod(newGetter(writeTimeSpec, artifact.AccessPlain)).
		AddMethod(newSetter(writeTimeSpec, artifact.AccessAcquireRelease)).
		AddInit(writeTimeSpec.store("now", false, artifact.AccessPlain))
}
