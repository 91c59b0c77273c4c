package artifact

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrDuplicate is wrapped by every name collision recorded by a Builder.
var ErrDuplicate = errors.New("duplicate member")

// Builder accumulates one node type. It offers additive operations only;
// there is no way to inspect or remove earlier additions.
//
// A Builder is owned by a single generation pass and is not safe for
// concurrent use.
type Builder struct {
	name       string
	doc        []string
	embeds     []string
	fields     []Field
	methods    []Method
	init       []Step
	atomics    []AtomicField
	suppressed map[string]struct{}

	// members is the struct namespace (fields, embeds, methods), funcs the
	// package namespace, atomicNames the registered atomic fields.
	members     map[string]struct{}
	funcs       map[string]struct{}
	atomicNames map[string]struct{}
	conflicts   []string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		suppressed:  make(map[string]struct{}),
		members:     make(map[string]struct{}),
		funcs:       make(map[string]struct{}),
		atomicNames: make(map[string]struct{}),
	}
}

// Declare names the type and sets its doc lines. It may be called once.
func (b *Builder) Declare(name string, doc ...string) *Builder {
	if b.name != "" {
		b.conflict("type %s declared again as %s", b.name, name)
		return b
	}

	b.name = name
	b.doc = slices.Clone(doc)

	return b
}

// Embed adds an embedded type such as "PSA[K, V]".
func (b *Builder) Embed(typ string) *Builder {
	if b.claim(b.members, EmbeddedName(typ), "embedded") {
		b.embeds = append(b.embeds, typ)
	}

	return b
}

// AddField appends a field.
func (b *Builder) AddField(f Field) *Builder {
	if b.claim(b.members, f.Name, "field") {
		b.fields = append(b.fields, f)
	}

	return b
}

// AddMethod appends a method or function.
func (b *Builder) AddMethod(m Method) *Builder {
	ns, kind := b.members, "method"
	if m.Kind == KindFunc {
		ns, kind = b.funcs, "function"
	}

	if b.claim(ns, m.Name, kind) {
		b.methods = append(b.methods, cloneMethod(m))
	}

	return b
}

// AddInit appends initializer steps, executed in order when a node is
// constructed and before it is published.
func (b *Builder) AddInit(steps ...Step) *Builder {
	b.init = append(b.init, steps...)
	return b
}

// RegisterAtomic registers a field for compare-and-swap support.
func (b *Builder) RegisterAtomic(af AtomicField) *Builder {
	if b.claim(b.atomicNames, af.Name, "atomic registration") {
		b.atomics = append(b.atomics, af)
	}

	return b
}

// Suppress adds linter tags to silence on the type declaration.
func (b *Builder) Suppress(tags ...string) *Builder {
	for _, t := range tags {
		b.suppressed[t] = struct{}{}
	}

	return b
}

// Err returns all recorded collisions, or nil.
func (b *Builder) Err() error {
	if len(b.conflicts) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrDuplicate, strings.Join(b.conflicts, "; "))
}

// Build snapshots the accumulated state. The builder stays usable.
func (b *Builder) Build() *Artifact {
	methods := make([]Method, len(b.methods))
	for i, m := range b.methods {
		methods[i] = cloneMethod(m)
	}

	return &Artifact{
		Name:       b.name,
		Doc:        slices.Clone(b.doc),
		Embeds:     slices.Clone(b.embeds),
		Fields:     slices.Clone(b.fields),
		Methods:    methods,
		Init:       slices.Clone(b.init),
		Atomics:    slices.Clone(b.atomics),
		Suppressed: slices.Sorted(maps.Keys(b.suppressed)),
	}
}

func (b *Builder) claim(ns map[string]struct{}, name, kind string) bool {
	if name == "" {
		b.conflict("%s without a name", kind)
		return false
	}

	if _, taken := ns[name]; taken {
		b.conflict("%s %q already defined", kind, name)
		return false
	}

	ns[name] = struct{}{}

	return true
}

func (b *Builder) conflict(format string, args ...any) {
	b.conflicts = append(b.conflicts, fmt.Sprintf(format, args...))
}

func cloneMethod(m Method) Method {
	m.Params = slices.Clone(m.Params)
	m.Results = slices.Clone(m.Results)
	m.Body = slices.Clone(m.Body)

	return m
}

// EmbeddedName returns the implicit field name of an embedded type,
// e.g. "PSA" for "PSA[K, V]" and "NodeDefaults" for "*node.NodeDefaults[K, V]".
func EmbeddedName(typ string) string {
	name := strings.TrimPrefix(typ, "*")
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	return name
}
