package gen

import (
	"errors"
	"fmt"
	"strings"

	"node-generator/internal/artifact"
)

// receiver is the receiver name of every generated method.
const receiver = "n"

// ErrUnsupportedAccess reports a step whose strategy cannot be expressed
// for the storage of its field.
var ErrUnsupportedAccess = errors.New("unsupported field access")

// renderStep renders one statement. The result may span several lines.
func renderStep(step artifact.Step) (string, error) {
	switch s := step.(type) {
	case artifact.Load:
		return renderLoad(s)
	case artifact.Store:
		return renderStore(s)
	case artifact.CompareAndSwap:
		return renderCompareAndSwap(s)
	case artifact.Invoke:
		return renderInvoke(s), nil
	case artifact.Cast:
		return fmt.Sprintf("%s := (*%s)(%s)", s.Into, s.Type, s.From), nil
	case artifact.Return:
		return renderReturn(s), nil
	case artifact.Raw:
		return s.Code, nil
	default:
		return "", fmt.Errorf("unknown step %T", step)
	}
}

// renderLoad reads a field plainly or with acquire semantics. Typed
// pointer loads convert the unsafe.Pointer to the pointee type.
func renderLoad(l artifact.Load) (string, error) {
	field := receiver + "." + l.Field

	var expr string

	switch l.Strategy {
	case artifact.AccessPlain:
		expr = field
	case artifact.AccessAcquireRelease:
		fn, err := atomicFunc("Load", l.Storage)
		if err != nil {
			return "", fmt.Errorf("load of %s: %w", l.Field, err)
		}

		expr = fmt.Sprintf("atomic.%s(&%s)", fn, field)
	default:
		return "", fmt.Errorf("load of %s: %w: %s", l.Field, ErrUnsupportedAccess, l.Strategy)
	}

	if l.Storage == artifact.StoragePointer && l.Type != "" {
		expr = fmt.Sprintf("(*%s)(%s)", l.Type, expr)
	}

	return l.Into + " := " + expr, nil
}

// renderStore writes a field plainly or with release semantics.
func renderStore(s artifact.Store) (string, error) {
	field := receiver + "." + s.Field

	value := s.Value
	if s.AddrOf {
		value = "&" + value
	}

	if s.Storage == artifact.StoragePointer {
		value = "unsafe.Pointer(" + value + ")"
	}

	switch s.Strategy {
	case artifact.AccessPlain:
		return field + " = " + value, nil
	case artifact.AccessAcquireRelease:
		fn, err := atomicFunc("Store", s.Storage)
		if err != nil {
			return "", fmt.Errorf("store of %s: %w", s.Field, err)
		}

		return fmt.Sprintf("atomic.%s(&%s, %s)", fn, field, value), nil
	default:
		return "", fmt.Errorf("store of %s: %w: %s", s.Field, ErrUnsupportedAccess, s.Strategy)
	}
}

func renderCompareAndSwap(c artifact.CompareAndSwap) (string, error) {
	fn, err := atomicFunc("CompareAndSwap", c.Storage)
	if err != nil {
		return "", fmt.Errorf("compare-and-swap of %s: %w", c.Field, err)
	}

	return fmt.Sprintf("%s := atomic.%s(&%s.%s, %s, %s)", c.Into, fn, receiver, c.Field, c.Expect, c.Update), nil
}

func renderInvoke(i artifact.Invoke) string {
	call := i.Func + "(" + strings.Join(i.Args, ", ") + ")"
	if i.Recv != "" {
		call = i.Recv + "." + call
	}

	if len(i.Into) == 0 {
		return call
	}

	return strings.Join(i.Into, ", ") + " := " + call
}

func renderReturn(r artifact.Return) string {
	switch {
	case r.Value == "":
		return "return"
	case r.Deref:
		return "return *" + r.Value
	default:
		return "return " + r.Value
	}
}

// atomicFunc names the sync/atomic function for an operation on storage.
func atomicFunc(op string, storage artifact.Storage) (string, error) {
	switch storage {
	case artifact.StoragePointer:
		return op + "Pointer", nil
	case artifact.StorageInt64:
		return op + "Int64", nil
	case artifact.StorageInt32:
		return op + "Int32", nil
	default:
		return "", fmt.Errorf("%w: %s storage", ErrUnsupportedAccess, storage)
	}
}
