package rule

import (
	"node-generator/internal/artifact"
	"node-generator/internal/variant"
)

// Rule is a unit of generation logic.
//
// Applies must be a pure predicate. Execute may only add to the builder
// and must not fail for a validated configuration; an unexpected
// combination is a defect and is reported by panicking, which the engine
// converts into ErrRuleDefect.
type Rule interface {
	// Name identifies the rule in diagnostics and metrics.
	Name() string
	// Applies reports whether the rule contributes to the variant.
	Applies(cfg variant.Config) bool
	// Execute adds the rule's members to the builder.
	Execute(cfg variant.Config, b *artifact.Builder)
}

// Provider is implemented by rules that promise specific member names.
// The engine verifies that every promised member exists after execution.
type Provider interface {
	Provides(cfg variant.Config) []string
}

// Observer is notified about engine activity. Implementations must be
// safe for concurrent use.
type Observer interface {
	RuleApplied(variant, rule string)
}
