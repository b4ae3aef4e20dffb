package go_ballisticsolver_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_ballisticsolver"
)

func TestDragTableLookup(t *testing.T) {
	table, err := go_ballisticsolver.CreateDragTable([]go_ballisticsolver.DragPoint{
		{Mach: 0, Cd: 0.1},
		{Mach: 1, Cd: 0.5},
		{Mach: 2, Cd: 0.3},
	})
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, table.Lookup(-1), 0.1, 1e-15, "below the table")
	assertEqual(t, table.Lookup(3), 0.3, 1e-15, "above the table")
	assertEqual(t, table.Lookup(0.5), 0.3, 1e-12, "between 0 and 1")
	assertEqual(t, table.Lookup(1.25), 0.45, 1e-12, "between 1 and 2")
	if table.Lookup(1) != 0.5 {
		t.Errorf("Lookup(1) = %v, want 0.5", table.Lookup(1))
	}
}

func TestStandardTablesClampAndContinuity(t *testing.T) {
	for _, f := range []go_ballisticsolver.DragFunction{
		go_ballisticsolver.DragFunctionG1,
		go_ballisticsolver.DragFunctionG5,
		go_ballisticsolver.DragFunctionG7,
		go_ballisticsolver.DragFunctionG8,
	} {
		table, err := go_ballisticsolver.StandardDragTable(f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		points := table.Points()
		first, last := points[0], points[len(points)-1]
		for _, m := range []float64{first.Mach - 1, first.Mach - 1e-9, first.Mach} {
			if table.Lookup(m) != first.Cd {
				t.Errorf("%s: Lookup(%v) = %v, want %v", f, m, table.Lookup(m), first.Cd)
			}
		}
		for _, m := range []float64{last.Mach, last.Mach + 1e-9, last.Mach + 100} {
			if table.Lookup(m) != last.Cd {
				t.Errorf("%s: Lookup(%v) = %v, want %v", f, m, table.Lookup(m), last.Cd)
			}
		}
		for i, p := range points {
			if table.Lookup(p.Mach) != p.Cd {
				t.Errorf("%s: point %d Lookup(%v) = %v, want %v", f, i, p.Mach, table.Lookup(p.Mach), p.Cd)
			}
			if i > 0 {
				mid := (p.Mach + points[i-1].Mach) / 2
				cd := table.Lookup(mid)
				if cd < math.Min(p.Cd, points[i-1].Cd) || cd > math.Max(p.Cd, points[i-1].Cd) {
					t.Errorf("%s: Lookup(%v) = %v is outside of the bracket", f, mid, cd)
				}
			}
		}
	}
}

func TestInvalidDragTable(t *testing.T) {
	cases := map[string][]go_ballisticsolver.DragPoint{
		"empty":          nil,
		"single point":   {{Mach: 1, Cd: 0.2}},
		"duplicate key":  {{Mach: 1, Cd: 0.2}, {Mach: 1, Cd: 0.3}},
		"decreasing key": {{Mach: 2, Cd: 0.2}, {Mach: 1, Cd: 0.3}},
		"NaN key":        {{Mach: 0, Cd: 0.2}, {Mach: math.NaN(), Cd: 0.3}},
		"NaN value":      {{Mach: 0, Cd: 0.2}, {Mach: 1, Cd: math.NaN()}},
	}
	for name, points := range cases {
		if _, err := go_ballisticsolver.CreateDragTable(points); !errors.Is(err, go_ballisticsolver.ErrInvalidTable) {
			t.Errorf("%s: expected ErrInvalidTable, got %v", name, err)
		}
	}
}

func TestDragTableCopiesPoints(t *testing.T) {
	points := []go_ballisticsolver.DragPoint{{Mach: 0, Cd: 0.1}, {Mach: 1, Cd: 0.2}}
	table := go_ballisticsolver.MustCreateDragTable(points)
	points[0].Cd = 10
	if table.Lookup(0) != 0.1 {
		t.Errorf("the table was changed through the source slice")
	}
}

func TestDragFunction(t *testing.T) {
	f, err := go_ballisticsolver.ParseDragFunction("G7")
	if err != nil || f != go_ballisticsolver.DragFunctionG7 {
		t.Errorf("ParseDragFunction(G7) = %v, %v", f, err)
	}
	if _, err := go_ballisticsolver.ParseDragFunction("G9"); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := go_ballisticsolver.CreateBallisticCoefficient(0.5, go_ballisticsolver.DragFunction(42)); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := go_ballisticsolver.CreateBallisticCoefficient(0, go_ballisticsolver.DragFunctionG1); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for zero BC, got %v", err)
	}
}
