package rule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is wrapped by every engine invariant violation. Such
	// errors are defects in the rule catalogue and abort the whole run.
	ErrInvariant = errors.New("engine invariant violated")
	// ErrDuplicateMember reports two additions under the same name.
	ErrDuplicateMember = fmt.Errorf("%w: duplicate member", ErrInvariant)
	// ErrBrokenPromise reports a member promised by a Provider but not added.
	ErrBrokenPromise = fmt.Errorf("%w: promised member missing", ErrInvariant)
	// ErrRuleDefect reports a rule that panicked on an unexpected combination.
	ErrRuleDefect = fmt.Errorf("%w: rule defect", ErrInvariant)
)

// defect panics with a rule defect message. It marks combinations that
// configuration validation should have made impossible.
func defect(rule, format string, args ...any) {
	panic(fmt.Sprintf("%s: %s", rule, fmt.Sprintf(format, args...)))
}
