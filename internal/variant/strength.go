package variant

import "node-generator/internal/common"

// Strength describes how strongly a key or value is referenced by a node.
type Strength int

const (
	// Strong references keep the referent alive unconditionally.
	Strong Strength = iota
	// Weak references allow the referent to be reclaimed once unreachable.
	Weak
	// Soft references allow reclamation under memory pressure.
	Soft
)

// String returns a lowercase strength name, as used in manifests.
func (s Strength) String() string {
	switch s {
	case Strong:
		return "strong"
	case Weak:
		return "weak"
	case Soft:
		return "soft"
	default:
		return common.UnknownStr
	}
}

// IsValid returns true if the strength is a recognized value.
func (s Strength) IsValid() bool {
	return s == Strong || s == Weak || s == Soft
}

// ParseStrength parses a manifest strength name.
func ParseStrength(s string) (Strength, bool) {
	switch s {
	case "strong":
		return Strong, true
	case "weak":
		return Weak, true
	case "soft":
		return Soft, true
	default:
		return 0, false
	}
}

func keyLetter(s Strength) byte {
	if s == Strong {
		return 'P'
	}

	return 'F'
}

func valueLetter(s Strength) byte {
	switch s {
	case Weak:
		return 'W'
	case Soft:
		return 'D'
	default:
		return 'S'
	}
}
