// Package vars provides the variable catalogs consumed by the type checker
// and bytecode compiler: name-indexed, read-only views over a system's
// integer variables and clocks, built once from a slice of declarations.
package vars

import "fmt"

// IntVarDecl declares a single integer variable, possibly an array.
type IntVarDecl struct {
	Name string
	// Size is the array length; 1 denotes a scalar.
	Size int
	Min  int64
	Max  int64
	Init int64
}

// ClockDecl declares a single clock, possibly an array.
type ClockDecl struct {
	Name string
	// Size is the array length; 1 denotes a scalar.
	Size int
}

// IntVar is a resolved integer variable: its declaration plus its identity
// within the catalog.
type IntVar struct {
	Id     int
	Name   string
	Size   int
	Min    int64
	Max    int64
	Init   int64
	Offset int
}

// Clock is a resolved clock: its declaration plus its identity within the
// catalog.
type Clock struct {
	Id     int
	Name   string
	Size   int
	Offset int
}

// IntVars is a read-only, by-name-indexed view over a system's integer
// variables.  Offsets are flat and contiguous: an array of size n occupies n
// consecutive offsets starting at its own Offset.
type IntVars struct {
	vars  []IntVar
	byName map[string]int
}

// NewIntVars builds a catalog from a system's integer variable declarations,
// assigning dense ids and flat offsets in declaration order.
func NewIntVars(decls []IntVarDecl) *IntVars {
	var (
		vars   = make([]IntVar, len(decls))
		byName = make(map[string]int, len(decls))
		offset = 0
	)
	//
	for i, d := range decls {
		size := max(d.Size, 1)
		vars[i] = IntVar{Id: i, Name: d.Name, Size: size, Min: d.Min, Max: d.Max, Init: d.Init, Offset: offset}
		byName[d.Name] = i
		offset += size
	}
	//
	return &IntVars{vars, byName}
}

// Lookup returns the integer variable named name, or false if none exists.
func (p *IntVars) Lookup(name string) (IntVar, bool) {
	id, ok := p.byName[name]
	if !ok {
		return IntVar{}, false
	}
	//
	return p.vars[id], true
}

// Get returns the integer variable with the given id.  id must be in range.
func (p *IntVars) Get(id int) IntVar {
	return p.vars[id]
}

// Len returns the number of declared integer variables.
func (p *IntVars) Len() int { return len(p.vars) }

// FrameSize returns the total number of flat offsets occupied by integer
// variables, i.e. the size of the runtime integer register file.
func (p *IntVars) FrameSize() int {
	if len(p.vars) == 0 {
		return 0
	}
	//
	last := p.vars[len(p.vars)-1]
	return last.Offset + last.Size
}

// All returns every declared integer variable, in declaration order.
func (p *IntVars) All() []IntVar {
	return p.vars
}

// Clocks is a read-only, by-name-indexed view over a system's clocks.
type Clocks struct {
	clocks []Clock
	byName map[string]int
}

// NewClocks builds a catalog from a system's clock declarations, assigning
// dense ids and flat offsets in declaration order.
func NewClocks(decls []ClockDecl) *Clocks {
	var (
		clocks = make([]Clock, len(decls))
		byName = make(map[string]int, len(decls))
		offset = 0
	)
	//
	for i, d := range decls {
		size := max(d.Size, 1)
		clocks[i] = Clock{Id: i, Name: d.Name, Size: size, Offset: offset}
		byName[d.Name] = i
		offset += size
	}
	//
	return &Clocks{clocks, byName}
}

// Lookup returns the clock named name, or false if none exists.
func (p *Clocks) Lookup(name string) (Clock, bool) {
	id, ok := p.byName[name]
	if !ok {
		return Clock{}, false
	}
	//
	return p.clocks[id], true
}

// Get returns the clock with the given id.  id must be in range.
func (p *Clocks) Get(id int) Clock {
	return p.clocks[id]
}

// Len returns the number of declared clocks.
func (p *Clocks) Len() int { return len(p.clocks) }

// FrameSize returns the total number of flat offsets occupied by clocks.
func (p *Clocks) FrameSize() int {
	if len(p.clocks) == 0 {
		return 0
	}
	//
	last := p.clocks[len(p.clocks)-1]
	return last.Offset + last.Size
}

// All returns every declared clock, in declaration order.
func (p *Clocks) All() []Clock {
	return p.clocks
}

// Catalog bundles the integer-variable and clock views for a single system,
// as consumed by the type checker.
type Catalog struct {
	Ints   *IntVars
	Clocks *Clocks
}

// String renders the catalog for debugging.
func (c *Catalog) String() string {
	return fmt.Sprintf("intvars=%d clocks=%d", c.Ints.Len(), c.Clocks.Len())
}
