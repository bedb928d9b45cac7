// Package system defines the "system provider" interface consumed by the
// compilation core (locations, edges, variable catalogs, weak-synchronisation
// queries), plus a concrete slice-backed implementation, Graph. The core
// never constructs a Graph itself: it is produced by the parser/system-graph
// layer that sits outside this module (here: pkg/loader, for the CLI and
// tests), and consumed only through the Provider interface.
package system

import (
	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/vars"
)

// LocId identifies a location.  Ids are dense, i.e. every value in
// [0, LocationsCount()) identifies exactly one location.
type LocId int

// EdgeId identifies an edge.  Ids are dense, i.e. every value in
// [0, EdgesCount()) identifies exactly one edge.
type EdgeId int

// Location is a single location record.
type Location struct {
	Id LocId
	// Invariant is the raw invariant expression guarding this location, or
	// nil if it has none (equivalent to the literal "true").
	Invariant ast.Expr
}

// Edge is a single directed edge record.
type Edge struct {
	Id      EdgeId
	Source  LocId
	Target  LocId
	EventId int
	// Guard is the raw guard expression, or nil if absent (equivalent to
	// the literal "true").
	Guard ast.Expr
	// Statement is the raw update statement, or nil if absent (equivalent
	// to nop).
	Statement ast.Stmt
}

// Provider is the system provider interface consumed by the compilation
// core.  It is implemented by Graph here, and may be implemented elsewhere
// (e.g. directly atop a parser's in-memory representation) without this
// module ever knowing about it.
type Provider interface {
	// Locations returns every location, ordered by LocId.
	Locations() []Location
	// Edges returns every edge, ordered by EdgeId.
	Edges() []Edge
	// LocationsCount returns the number of locations.
	LocationsCount() int
	// EdgesCount returns the number of edges.
	EdgesCount() int
	// IntVars returns the declarations of every integer variable.
	IntVars() []vars.IntVarDecl
	// Clocks returns the declarations of every clock.
	Clocks() []vars.ClockDecl
	// IsWeaklySynchronised reports whether the given event id participates
	// in at least one weak synchronisation vector.
	IsWeaklySynchronised(eventId int) bool
}

// Graph is a concrete, slice-backed Provider, used by the loader, the CLI
// and tests.  It is not part of the core's public contract.
type Graph struct {
	locations   []Location
	edges       []Edge
	intVars     []vars.IntVarDecl
	clocks      []vars.ClockDecl
	weakSyncEvt map[int]bool
}

// NewGraph constructs an empty system graph.
func NewGraph() *Graph {
	return &Graph{weakSyncEvt: map[int]bool{}}
}

// AddIntVar declares an integer variable.
func (g *Graph) AddIntVar(d vars.IntVarDecl) {
	g.intVars = append(g.intVars, d)
}

// AddClock declares a clock.
func (g *Graph) AddClock(d vars.ClockDecl) {
	g.clocks = append(g.clocks, d)
}

// AddLocation appends a new location with the next dense LocId and returns
// it.
func (g *Graph) AddLocation(invariant ast.Expr) LocId {
	id := LocId(len(g.locations))
	g.locations = append(g.locations, Location{Id: id, Invariant: invariant})
	return id
}

// AddEdge appends a new edge with the next dense EdgeId and returns it.
func (g *Graph) AddEdge(source, target LocId, eventId int, guard ast.Expr, stmt ast.Stmt) EdgeId {
	id := EdgeId(len(g.edges))
	g.edges = append(g.edges, Edge{
		Id: id, Source: source, Target: target, EventId: eventId, Guard: guard, Statement: stmt,
	})
	return id
}

// MarkWeaklySynchronised records that eventId participates in a weak
// synchronisation vector.
func (g *Graph) MarkWeaklySynchronised(eventId int) {
	g.weakSyncEvt[eventId] = true
}

// Locations returns every location, ordered by LocId.
func (g *Graph) Locations() []Location { return g.locations }

// Edges returns every edge, ordered by EdgeId.
func (g *Graph) Edges() []Edge { return g.edges }

// LocationsCount returns the number of locations.
func (g *Graph) LocationsCount() int { return len(g.locations) }

// EdgesCount returns the number of edges.
func (g *Graph) EdgesCount() int { return len(g.edges) }

// IntVars returns the declarations of every integer variable.
func (g *Graph) IntVars() []vars.IntVarDecl { return g.intVars }

// Clocks returns the declarations of every clock.
func (g *Graph) Clocks() []vars.ClockDecl { return g.clocks }

// IsWeaklySynchronised reports whether the given event id participates in at
// least one weak synchronisation vector.
func (g *Graph) IsWeaklySynchronised(eventId int) bool {
	return g.weakSyncEvt[eventId]
}
