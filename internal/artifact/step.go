package artifact

// Step is one statement of a method body.
type Step interface {
	isStep()
}

// Load reads a field into a new local variable.
//
// For StoragePointer the local has type *Type.
type Load struct {
	Into     string
	Field    string
	Storage  Storage
	Type     string
	Strategy AccessStrategy
}

// Store writes a local, parameter or identifier into a field.
// AddrOf stores the address of Value instead of Value itself.
type Store struct {
	Field    string
	Storage  Storage
	Value    string
	AddrOf   bool
	Strategy AccessStrategy
}

// CompareAndSwap atomically replaces Expect with Update and stores the
// outcome in Into.
type CompareAndSwap struct {
	Into    string
	Field   string
	Storage Storage
	Expect  string
	Update  string
}

// Invoke calls Recv.Func(Args...) or, with an empty Recv, the package
// function Func(Args...). Results are bound to Into; "_" discards one.
type Invoke struct {
	Into []string
	Recv string
	Func string
	Args []string
}

// Cast converts the unsafe.Pointer From into a *Type named Into.
type Cast struct {
	Into string
	From string
	Type string
}

// Return ends the body. Deref returns the value Value points to; an empty
// Value is a bare return.
type Return struct {
	Value string
	Deref bool
}

// Raw is a verbatim statement for control flow the other steps cannot
// express.
type Raw struct {
	Code string
}

func (Load) isStep()           {}
func (Store) isStep()          {}
func (CompareAndSwap) isStep() {}
func (Invoke) isStep()         {}
func (Cast) isStep()           {}
func (Return) isStep()         {}
func (Raw) isStep()            {}

// StepStrategy returns the field and ordering strategy of a field-accessing step.
// ok is false for steps that do not touch a field.
func StepStrategy(s Step) (field string, strategy AccessStrategy, ok bool) {
	switch st := s.(type) {
	case Load:
		return st.Field, st.Strategy, true
	case Store:
		return st.Field, st.Strategy, true
	case CompareAndSwap:
		return st.Field, AccessAtomicUpdate, true
	default:
		return "", 0, false
	}
}
