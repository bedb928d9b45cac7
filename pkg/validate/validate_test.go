package validate_test

import (
	"testing"

	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/system"
	"github.com/tchecker-go/tchecker/pkg/validate"
)

func TestNoGuardOnWeakSync_AbsentGuardOk(t *testing.T) {
	g := system.NewGraph()
	l0 := g.AddLocation(nil)
	g.AddEdge(l0, l0, 7, nil, nil)
	g.MarkWeaklySynchronised(7)
	//
	if diags := validate.NoGuardOnWeakSync(g); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestNoGuardOnWeakSync_GuardedStrongEventOk(t *testing.T) {
	g := system.NewGraph()
	l0 := g.AddLocation(nil)
	g.AddEdge(l0, l0, 7, &ast.IntLit{Value: 1}, nil)
	//
	if diags := validate.NoGuardOnWeakSync(g); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestNoGuardOnWeakSync_GuardedWeakEventFails(t *testing.T) {
	g := system.NewGraph()
	l0 := g.AddLocation(nil)
	g.AddEdge(l0, l0, 7, &ast.IntLit{Value: 1}, nil)
	g.MarkWeaklySynchronised(7)
	//
	diags := validate.NoGuardOnWeakSync(g)
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", diags)
	}
}

func TestRun_ConcatenatesAcrossRules(t *testing.T) {
	g := system.NewGraph()
	l0 := g.AddLocation(nil)
	g.AddEdge(l0, l0, 1, &ast.IntLit{Value: 1}, nil)
	g.AddEdge(l0, l0, 2, &ast.IntLit{Value: 1}, nil)
	g.MarkWeaklySynchronised(1)
	g.MarkWeaklySynchronised(2)
	//
	diags := validate.Run(g, []validate.Rule{validate.NoGuardOnWeakSync})
	if len(diags) != 2 {
		t.Fatalf("expected two diagnostics, got %v", diags)
	}
}
