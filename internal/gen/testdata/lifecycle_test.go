package node

import "testing"

func TestEveryVariantLifecycle(t *testing.T) {
	for _, name := range Variants() {
		factory, ok := Lookup[string, int](name)
		if !ok {
			t.Fatalf("%s: no factory", name)
		}

		n := factory("k", 1, 1, 7)

		if got := n.GetKey(); got != "k" {
			t.Errorf("%s: GetKey() = %q", name, got)
		}

		if !n.IsAlive() {
			t.Errorf("%s: new node is not alive", name)
		}

		n.SetValue(2)

		if got := n.GetValue(); got != 2 {
			t.Errorf("%s: GetValue() = %d", name, got)
		}

		n.Retire()

		if !n.IsRetired() || n.IsAlive() {
			t.Errorf("%s: node is not retired", name)
		}

		if got := n.GetKey(); got != "" {
			t.Errorf("%s: retired GetKey() = %q", name, got)
		}

		n.Die()

		if !n.IsDead() {
			t.Errorf("%s: node is not dead", name)
		}

		if got := n.GetKey(); got != "" {
			t.Errorf("%s: dead GetKey() = %q", name, got)
		}
	}
}
