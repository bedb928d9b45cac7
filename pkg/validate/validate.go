// Package validate runs whole-system structural checks before type checking
// and compilation, so a structurally invalid system fails fast without ever
// invoking the type checker.
package validate

import (
	"fmt"

	"github.com/tchecker-go/tchecker/pkg/diag"
	"github.com/tchecker-go/tchecker/pkg/system"
)

// Rule is a pure function of a system: it inspects sys and returns every
// diagnostic it finds, without mutating anything. Rules are composable and
// order-independent.
type Rule func(sys system.Provider) []diag.Diagnostic

// Default is the set of rules applied by Run when the caller does not
// supply its own.
var Default = []Rule{NoGuardOnWeakSync}

// Run applies every rule in rules to sys and concatenates their diagnostics,
// in rule order. An empty result means sys is structurally valid.
func Run(sys system.Provider, rules []Rule) []diag.Diagnostic {
	var out []diag.Diagnostic

	for _, rule := range rules {
		out = append(out, rule(sys)...)
	}

	return out
}

// NoGuardOnWeakSync enforces that an edge whose event participates in a
// weak synchronisation vector carries no guard. The raw expression language
// has no dedicated boolean literal, so "trivially true" is represented the
// only way it can be: the guard is syntactically absent (nil).
func NoGuardOnWeakSync(sys system.Provider) []diag.Diagnostic {
	var out []diag.Diagnostic

	for _, e := range sys.Edges() {
		if e.Guard == nil {
			continue
		} else if !sys.IsWeaklySynchronised(e.EventId) {
			continue
		}

		out = append(out, diag.Diagnostic{
			Context: fmt.Sprintf("edge %d", e.Id),
			Message: fmt.Sprintf("event %d is weakly synchronised and cannot carry a guard", e.EventId),
		})
	}

	return out
}
