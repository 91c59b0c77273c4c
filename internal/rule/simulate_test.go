package rule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"node-generator/internal/artifact"
)

// Test doubles for the reference holders. A reclaimed holder reports
// ok == false, like a cleared weak pointer.
type fakeKeyRef struct {
	key     any
	ok      bool
	cleared int
}

type fakeValueRef struct {
	keyRef  any
	value   any
	ok      bool
	cleared int
}

type access struct {
	field    string
	strategy artifact.AccessStrategy
}

// machine interprets method bodies over a map of field values. It records
// every field access with its strategy and every invoked function.
type machine struct {
	t       *testing.T
	fields  map[string]any
	loads   []access
	stores  []access
	invokes []string
}

func newMachine(t *testing.T, fields map[string]any) *machine {
	t.Helper()

	return &machine{t: t, fields: fields}
}

func (m *machine) call(method artifact.Method, args map[string]any) any {
	m.t.Helper()

	env := make(map[string]any, len(args))
	for k, v := range args {
		env[k] = v
	}

	lookup := func(name string) any {
		if v, ok := env[name]; ok {
			return v
		}

		return name
	}

	for _, step := range method.Body {
		switch s := step.(type) {
		case artifact.Load:
			m.loads = append(m.loads, access{s.Field, s.Strategy})
			env[s.Into] = m.fields[s.Field]
		case artifact.Store:
			m.stores = append(m.stores, access{s.Field, s.Strategy})
			m.fields[s.Field] = lookup(s.Value)
		case artifact.CompareAndSwap:
			swapped := m.fields[s.Field] == lookup(s.Expect)
			if swapped {
				m.fields[s.Field] = lookup(s.Update)
			}

			env[s.Into] = swapped
		case artifact.Cast:
			env[s.Into] = env[s.From]
		case artifact.Invoke:
			m.invokes = append(m.invokes, s.Func)

			var results []any
			if s.Recv == "" {
				results = m.construct(s.Func, s.Args, lookup)
			} else {
				results = m.invoke(lookup(s.Recv), s.Func, s.Args, lookup)
			}

			for i, into := range s.Into {
				if into != "_" {
					env[into] = results[i]
				}
			}
		case artifact.Raw:
			if done, v := m.raw(s, env); done {
				return v
			}
		case artifact.Return:
			v := lookup(s.Value)
			if s.Deref {
				p, ok := v.(*string)
				require.True(m.t, ok, "dereferencing %T", v)

				return *p
			}

			return v
		default:
			m.t.Fatalf("step %T is not interpreted", step)
		}
	}

	return nil
}

// raw interprets the lifecycle sentinel checks, the only free-form
// statements that appear in key accessors and transitions.
func (m *machine) raw(s artifact.Raw, env map[string]any) (bool, any) {
	m.t.Helper()

	ref := env["ref"]
	isSentinel := ref == retiredKey || ref == deadKey

	switch {
	case strings.HasPrefix(s.Code, "if ref == retiredKey || ref == deadKey {"):
		return isSentinel, nil
	case strings.HasPrefix(s.Code, "if ref != retiredKey && ref != deadKey {"):
		if !isSentinel {
			m.invokes = append(m.invokes, "Clear")
			m.invoke(ref, "Clear", nil, nil)
		}

		return false, nil
	}

	m.t.Fatalf("raw step is not interpreted: %q", s.Code)

	return false, nil
}

// construct stands in for the holder constructors.
func (m *machine) construct(fn string, args []string, lookup func(string) any) []any {
	m.t.Helper()

	switch fn {
	case "NewWeakKeyReference[K]":
		return []any{&fakeKeyRef{key: lookup(args[0]), ok: true}}
	case "NewWeakValueReference[K, V]", "NewSoftValueReference[K, V]":
		return []any{&fakeValueRef{keyRef: lookup(args[0]), value: lookup(args[1]), ok: true}}
	}

	m.t.Fatalf("unexpected function %s", fn)

	return nil
}

func (m *machine) invoke(recv any, fn string, args []string, lookup func(string) any) []any {
	m.t.Helper()

	switch r := recv.(type) {
	case *fakeKeyRef:
		switch fn {
		case "Get":
			if !r.ok {
				return []any{nil, false}
			}

			return []any{r.key, true}
		case "Clear":
			r.cleared++
			r.ok = false

			return nil
		}
	case *fakeValueRef:
		switch fn {
		case "Get":
			if !r.ok {
				return []any{nil, false}
			}

			return []any{r.value, true}
		case "KeyReference":
			return []any{r.keyRef}
		case "SetKeyReference":
			r.keyRef = lookup(args[0])

			return nil
		case "Clear":
			r.cleared++
			r.ok = false

			return nil
		}
	}

	m.t.Fatalf("unexpected call %s on %T", fn, recv)

	return nil
}
