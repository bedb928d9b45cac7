// Package diag provides the diagnostic sink consumed by the type checker
// and bytecode compiler. Diagnostics are identified by a caller-supplied
// context string rather than a source span, since the parser producing raw
// AST lives outside this package.
package diag

import "fmt"

// Diagnostic is a single reported error.
type Diagnostic struct {
	// Context identifies where the error occurred, e.g. "Attribute
	// invariant: x<=5". Supplied by the caller of the type checker /
	// compiler, not synthesised here.
	Context string
	// Message describes the specific cause.
	Message string
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Context, d.Message)
}

// Sink is the diagnostic sink interface consumed by the type checker and
// bytecode compiler.  Implementations are assumed single-threaded and must
// not re-enter the compiler.
type Sink interface {
	// Error reports a single diagnostic.
	Error(context, message string)
	// ErrorCount returns the number of diagnostics reported so far.
	ErrorCount() int
}

// Collector is the default Sink: it simply accumulates every diagnostic
// reported to it, in order.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector constructs an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Error reports a single diagnostic.
func (c *Collector) Error(context, message string) {
	c.diagnostics = append(c.diagnostics, Diagnostic{context, message})
}

// ErrorCount returns the number of diagnostics reported so far.
func (c *Collector) ErrorCount() int {
	return len(c.diagnostics)
}

// Diagnostics returns every diagnostic reported so far, in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}
