package artifact

const (
	// TypeParams is the type parameter list of every generated node.
	TypeParams = "[K comparable, V any]"
	// TypeArgs instantiates a generated node with its own type parameters.
	TypeArgs = "[K, V]"
)

// Field is a struct field of the generated node.
type Field struct {
	// Name is the Go field name.
	Name string
	// Storage is the physical representation of the field.
	Storage Storage
	// Type is the referent type for StoragePointer fields and the declared
	// type for StorageInterface fields. It is informational for scalars.
	Type string
	// Strategy is the strongest ordering the field is accessed with.
	Strategy AccessStrategy
	// Comment is an optional trailing field comment.
	Comment string
}

// GoType returns the declared Go type of the field.
func (f Field) GoType() string {
	return f.Storage.GoType(f.Type)
}

// MethodKind distinguishes methods from package-level functions.
type MethodKind int

const (
	// KindMethod is a method with a pointer receiver on the node.
	KindMethod MethodKind = iota
	// KindFunc is a generic package-level function, e.g. a constructor.
	KindFunc
)

// Param is a named parameter.
type Param struct {
	Name string
	Type string
}

// Method is a method or function emitted alongside the node.
type Method struct {
	Kind    MethodKind
	Name    string
	Params  []Param
	Results []string
	Body    []Step
	// Comment is rendered above the declaration when comments are enabled.
	Comment string
}

// AtomicField registers a field for compare-and-swap support.
type AtomicField struct {
	Name    string
	Storage Storage
	Type    string
}

// Artifact is the finished, read-only description of one node type.
type Artifact struct {
	// Name is the generated type name, e.g. "PSAW".
	Name string
	// Doc lines are rendered as the type comment.
	Doc []string
	// Embeds lists embedded types in declaration order.
	Embeds []string
	// Fields in declaration order.
	Fields []Field
	// Methods and functions in declaration order.
	Methods []Method
	// Init holds the ordered initializer steps.
	Init []Step
	// Atomics holds fields registered for compare-and-swap support.
	Atomics []AtomicField
	// Suppressed holds sorted linter tags to silence on the declaration.
	Suppressed []string
}

// Field returns the field with the given name.
func (a *Artifact) Field(name string) (Field, bool) {
	for _, f := range a.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Method returns the method or function with the given name.
func (a *Artifact) Method(name string) (Method, bool) {
	for _, m := range a.Methods {
		if m.Name == name {
			return m, true
		}
	}

	return Method{}, false
}

// Atomic returns the atomic registration for the given field.
func (a *Artifact) Atomic(name string) (AtomicField, bool) {
	for _, af := range a.Atomics {
		if af.Name == name {
			return af, true
		}
	}

	return AtomicField{}, false
}

// HasMember reports whether a field, embedded type, method or function
// with the given name exists.
func (a *Artifact) HasMember(name string) bool {
	if _, ok := a.Field(name); ok {
		return true
	}

	if _, ok := a.Method(name); ok {
		return true
	}

	for _, e := range a.Embeds {
		if EmbeddedName(e) == name {
			return true
		}
	}

	return false
}

// IsEmpty reports whether nothing was added to the artifact.
func (a *Artifact) IsEmpty() bool {
	return a.Name == "" && len(a.Doc) == 0 && len(a.Embeds) == 0 &&
		len(a.Fields) == 0 && len(a.Methods) == 0 && len(a.Init) == 0 &&
		len(a.Atomics) == 0 && len(a.Suppressed) == 0
}
