package rule

import (
	"fmt"
	"slices"
	"strings"

	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// Engine runs a fixed, ordered catalogue of rules. It holds no mutable
// state, so one Engine may generate any number of variants concurrently.
type Engine struct {
	rules    []Rule
	observer Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver reports every applied rule to o.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// NewEngine creates an engine over the given catalogue. The catalogue is
// copied; its order is the execution order.
func NewEngine(rules []Rule, opts ...Option) *Engine {
	e := &Engine{rules: slices.Clone(rules)}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// NewDefaultEngine creates an engine over DefaultCatalogue.
func NewDefaultEngine(opts ...Option) *Engine {
	return NewEngine(DefaultCatalogue(), opts...)
}

// Rules returns a copy of the catalogue in execution order.
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// Generate builds the artifact of one variant.
//
// Applicable rules run in catalogue order against a fresh builder. The
// result is then finalized with compare-and-swap methods for registered
// atomic fields and an initNode method for the collected initializer
// steps. Any invariant violation is returned as an error wrapping
// ErrInvariant and no artifact is produced.
func (e *Engine) Generate(cfg variant.Config) (*artifact.Artifact, error) {
	b := artifact.NewBuilder()

	var applied []Rule

	for _, r := range e.rules {
		if !r.Applies(cfg) {
			continue
		}

		if err := execute(r, cfg, b); err != nil {
			return nil, err
		}

		applied = append(applied, r)

		if e.observer != nil {
			e.observer.RuleApplied(cfg.Name(), r.Name())
		}
	}

	if err := finalize(b); err != nil {
		return nil, fmt.Errorf("%w: variant %s: %w", ErrRuleDefect, cfg.Name(), err)
	}

	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("%w: variant %s: %w", ErrDuplicateMember, cfg.Name(), err)
	}

	art := b.Build()

	if err := verifyPromises(cfg, art, applied); err != nil {
		return nil, err
	}

	return art, nil
}

func execute(r Rule, cfg variant.Config, b *artifact.Builder) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: variant %s: rule %s: %v", ErrRuleDefect, cfg.Name(), r.Name(), p)
		}
	}()

	r.Execute(cfg, b)

	return nil
}

// finalize adds the engine-owned members derived from registrations.
func finalize(b *artifact.Builder) error {
	snapshot := b.Build()

	for _, af := range snapshot.Atomics {
		m, err := newCompareAndSwap(af)
		if err != nil {
			return err
		}

		b.AddMethod(m)
	}

	if len(snapshot.Init) > 0 {
		b.AddMethod(artifact.Method{
			Name:   initMethod,
			Params: slices.Clone(initParams),
			Body:   snapshot.Init,
		})
	}

	return nil
}

func newCompareAndSwap(af artifact.AtomicField) (artifact.Method, error) {
	if !af.Storage.SupportsOrdering() {
		return artifact.Method{}, fmt.Errorf("field %s with %s storage registered as atomic", af.Name, af.Storage)
	}

	typ := af.Storage.GoType(af.Type)

	return artifact.Method{
		Name:    "cas" + capitalize(af.Name),
		Params:  []artifact.Param{{Name: "expect", Type: typ}, {Name: "update", Type: typ}},
		Results: []string{"bool"},
		Body: []artifact.Step{
			artifact.CompareAndSwap{
				Into:    "swapped",
				Field:   af.Name,
				Storage: af.Storage,
				Expect:  "expect",
				Update:  "update",
			},
			artifact.Return{Value: "swapped"},
		},
	}, nil
}

func verifyPromises(cfg variant.Config, art *artifact.Artifact, applied []Rule) error {
	var missing []string

	for _, r := range applied {
		p, ok := r.(Provider)
		if !ok {
			continue
		}

		for _, name := range p.Provides(cfg) {
			if !art.HasMember(name) {
				missing = append(missing, r.Name()+"."+name)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: variant %s: %s", ErrBrokenPromise, cfg.Name(), strings.Join(missing, ", "))
	}

	return nil
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
