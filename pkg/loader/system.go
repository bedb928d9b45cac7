package loader

import (
	"encoding/json"
	"fmt"

	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/system"
	"github.com/tchecker-go/tchecker/pkg/vars"
)

// systemDoc is the on-disk JSON shape of a system description: variable
// declarations, locations (each with an optional textual invariant) and
// edges (each with an optional textual guard and statement), plus the set
// of event ids that participate in a weak synchronisation vector.
type systemDoc struct {
	IntVars []intVarDoc `json:"int_vars"`
	Clocks  []clockDoc  `json:"clocks"`
	Locations []locationDoc `json:"locations"`
	Edges     []edgeDoc     `json:"edges"`
	WeaklySynchronised []int `json:"weakly_synchronised"`
}

type intVarDoc struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Min  int64  `json:"min"`
	Max  int64  `json:"max"`
	Init int64  `json:"init"`
}

type clockDoc struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type locationDoc struct {
	// Invariant is a textual expression in the surface syntax, or the
	// empty string if the location has none.
	Invariant string `json:"invariant"`
}

type edgeDoc struct {
	Source  int    `json:"source"`
	Target  int    `json:"target"`
	EventId int    `json:"event"`
	Guard   string `json:"guard"`
	// Statement is a textual statement in the surface syntax, or the
	// empty string if the edge has none.
	Statement string `json:"statement"`
}

// LoadSystem parses a JSON system description and builds a system.Graph from
// it, parsing each location's invariant and each edge's guard/statement as
// surface-syntax text via ParseExpr/ParseStmt. name identifies the document
// for error messages.
func LoadSystem(name string, data []byte) (*system.Graph, error) {
	var doc systemDoc

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	g := system.NewGraph()

	for _, d := range doc.IntVars {
		g.AddIntVar(vars.IntVarDecl{Name: d.Name, Size: d.Size, Min: d.Min, Max: d.Max, Init: d.Init})
	}

	for _, d := range doc.Clocks {
		g.AddClock(vars.ClockDecl{Name: d.Name, Size: d.Size})
	}

	for i, l := range doc.Locations {
		inv, err := parseOptionalExpr(name, fmt.Sprintf("location %d invariant", i), l.Invariant)
		if err != nil {
			return nil, err
		}

		g.AddLocation(inv)
	}

	for i, e := range doc.Edges {
		guard, err := parseOptionalExpr(name, fmt.Sprintf("edge %d guard", i), e.Guard)
		if err != nil {
			return nil, err
		}

		stmt, err := parseOptionalStmt(name, fmt.Sprintf("edge %d statement", i), e.Statement)
		if err != nil {
			return nil, err
		}

		g.AddEdge(system.LocId(e.Source), system.LocId(e.Target), e.EventId, guard, stmt)
	}

	for _, evt := range doc.WeaklySynchronised {
		g.MarkWeaklySynchronised(evt)
	}

	return g, nil
}

func parseOptionalExpr(doc, context, src string) (ast.Expr, error) {
	if src == "" {
		return nil, nil
	}

	e, err := ParseExpr(fmt.Sprintf("%s:%s", doc, context), src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}

	return e, nil
}

func parseOptionalStmt(doc, context, src string) (ast.Stmt, error) {
	if src == "" {
		return nil, nil
	}

	s, err := ParseStmt(fmt.Sprintf("%s:%s", doc, context), src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}

	return s, nil
}
