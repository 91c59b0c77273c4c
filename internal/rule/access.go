package rule

import (
	"node-generator/internal/artifact"
)

// fieldSpec describes one field and how its accessors are named. All of
// a field's accessors and its atomic registration derive from the same
// fieldSpec and agree on storage and referent type.
type fieldSpec struct {
	// name is the struct field name.
	name string
	// accessor is the exported stem of the accessor names, e.g. "Key".
	accessor string
	// storage is the physical representation.
	storage artifact.Storage
	// referent is the type accessors expose, e.g. "K" or "int64".
	referent string
	// holder is the reference-holder type when the referent is held
	// indirectly. Empty means the referent is stored directly.
	holder string
	// strategy is the ordering tag of the field declaration.
	strategy artifact.AccessStrategy
}

// indirect reports whether the referent is reached through a holder.
func (s fieldSpec) indirect() bool {
	return s.holder != ""
}

// pointee is the type an unsafe.Pointer field points to.
func (s fieldSpec) pointee() string {
	if s.indirect() {
		return s.holder
	}

	return s.referent
}

func (s fieldSpec) field(comment string) artifact.Field {
	typ := s.referent
	if s.storage == artifact.StoragePointer {
		typ = s.pointee()
	}

	return artifact.Field{
		Name:     s.name,
		Storage:  s.storage,
		Type:     typ,
		Strategy: s.strategy,
		Comment:  comment,
	}
}

// load reads the field into a local. Pointer fields are converted to a
// typed pointer to the pointee.
func (s fieldSpec) load(into string, strategy artifact.AccessStrategy) artifact.Load {
	s.check(strategy)

	l := artifact.Load{
		Into:     into,
		Field:    s.name,
		Storage:  s.storage,
		Strategy: strategy,
	}
	if s.storage == artifact.StoragePointer {
		l.Type = s.pointee()
	}

	return l
}

// loadRaw reads a pointer field without converting it.
func (s fieldSpec) loadRaw(into string, strategy artifact.AccessStrategy) artifact.Load {
	s.check(strategy)

	return artifact.Load{
		Into:     into,
		Field:    s.name,
		Storage:  s.storage,
		Strategy: strategy,
	}
}

func (s fieldSpec) store(value string, addrOf bool, strategy artifact.AccessStrategy) artifact.Store {
	s.check(strategy)

	return artifact.Store{
		Field:    s.name,
		Storage:  s.storage,
		Value:    value,
		AddrOf:   addrOf,
		Strategy: strategy,
	}
}

// check rejects ordered access to storage that cannot provide it.
func (s fieldSpec) check(strategy artifact.AccessStrategy) {
	if strategy != artifact.AccessPlain && !s.storage.SupportsOrdering() {
		defect("access", "field %s with %s storage cannot be accessed with %s", s.name, s.storage, strategy)
	}
}

// declare adds the field to the builder.
func declare(b *artifact.Builder, s fieldSpec, comment string) {
	b.AddField(s.field(comment))
}

// registerAtomic adds compare-and-swap support for the field.
func registerAtomic(b *artifact.Builder, s fieldSpec) {
	s.check(artifact.AccessAtomicUpdate)

	af := artifact.AtomicField{Name: s.name, Storage: s.storage, Type: s.referent}
	if s.storage == artifact.StoragePointer {
		af.Type = s.pointee()
	}

	b.RegisterAtomic(af)
}

// newGetter returns "Get<accessor>() referent". A pointer field is
// loaded and dereferenced. Indirect fields need a holder-specific getter
// and are rejected here.
func newGetter(s fieldSpec, strategy artifact.AccessStrategy) artifact.Method {
	if s.indirect() {
		defect("access", "field %s is held through %s and has no generic getter", s.name, s.holder)
	}

	body := []artifact.Step{
		s.load(s.name, strategy),
		artifact.Return{Value: s.name, Deref: s.storage == artifact.StoragePointer},
	}

	return artifact.Method{
		Name:    "Get" + s.accessor,
		Results: []string{s.referent},
		Body:    body,
	}
}

// newSetter returns "Set<accessor>(v referent)". Indirect fields need a
// holder-specific setter and are rejected here.
func newSetter(s fieldSpec, strategy artifact.AccessStrategy) artifact.Method {
	if s.indirect() {
		defect("access", "field %s is held through %s and has no generic setter", s.name, s.holder)
	}

	return artifact.Method{
		Name:   "Set" + s.accessor,
		Params: []artifact.Param{{Name: s.name, Type: s.referent}},
		Body: []artifact.Step{
			s.store(s.name, s.storage == artifact.StoragePointer, strategy),
		},
	}
}

// newGetRef returns "Get<accessor>Reference() unsafe.Pointer", an acquire
// load of the raw field for callers that need ordering guarantees.
func newGetRef(s fieldSpec) artifact.Method {
	if s.storage != artifact.StoragePointer {
		defect("access", "field %s is not a reference", s.name)
	}

	return artifact.Method{
		Name:    "Get" + s.accessor + "Reference",
		Results: []string{"unsafe.Pointer"},
		Body: []artifact.Step{
			s.loadRaw("ref", artifact.AccessAcquireRelease),
			artifact.Return{Value: "ref"},
		},
	}
}
