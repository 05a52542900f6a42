package intersect

import (
	"errors"
	"math"
	"testing"

	"honnef.co/go/solidlight/curves"
)

func line(x0, y0, dx, dy float64) Func {
	return Func{
		F:  func(t float64) float64 { return x0 + dx*t },
		G:  func(t float64) float64 { return y0 + dy*t },
		DF: func(float64) float64 { return dx },
		DG: func(float64) float64 { return dy },
	}
}

func circle(cx, cy, r float64) Func {
	return Func{
		F:  func(t float64) float64 { return cx + r*math.Cos(t) },
		G:  func(t float64) float64 { return cy + r*math.Sin(t) },
		DF: func(t float64) float64 { return -r * math.Sin(t) },
		DG: func(t float64) float64 { return r * math.Cos(t) },
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name       string
		c1, c2     Curve
		t1e, t2e   float64
		want1      float64
		want2      float64
		paramSlack float64
	}{
		{
			name: "ellipse and line",
			c1:   curves.Ellipse{RX: 2, RY: 1},
			c2:   line(2, 0, 1, 1),
			t1e:  0.08, t2e: 0.05,
			want1: 0, want2: 0,
			paramSlack: 1e-2,
		},
		{
			name: "crossed ellipses",
			c1:   curves.Ellipse{RX: 2, RY: 1},
			c2:   curves.Ellipse{RX: 1, RY: 2},
			t1e:  math.Atan(2) + 0.1, t2e: math.Atan(0.5) - 0.1,
			want1: math.Atan(2), want2: math.Atan(0.5),
			paramSlack: 1e-2,
		},
		{
			name: "exact estimate",
			c1:   curves.Ellipse{RX: 2, RY: 1},
			c2:   curves.Ellipse{RX: 1, RY: 2},
			t1e:  math.Atan(2), t2e: math.Atan(0.5),
			want1: math.Atan(2), want2: math.Atan(0.5),
			paramSlack: 1e-9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1, t2, err := Solve(tt.c1, tt.c2, tt.t1e, tt.t2e)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if d := tt.c1.Eval(t1).Distance(tt.c2.Eval(t2)); d >= Tolerance {
				t.Errorf("points are %g apart", d)
			}
			if math.Abs(t1-tt.want1) > tt.paramSlack || math.Abs(t2-tt.want2) > tt.paramSlack {
				t.Errorf("got (%g, %g), want (%g, %g)", t1, t2, tt.want1, tt.want2)
			}
		})
	}
}

func TestSolveNoIntersection(t *testing.T) {
	_, _, err := Solve(circle(0, 0, 1), circle(5, 0, 1), 0.3, 2.5)
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("got %v, want ErrNoConvergence", err)
	}
	var cerr *ConvergenceError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %T, want *ConvergenceError", err)
	}
	if !cerr.Singular && cerr.Iterations != MaxIterations {
		t.Errorf("gave up after %d iterations, want %d", cerr.Iterations, MaxIterations)
	}
}

func TestSolveParallel(t *testing.T) {
	_, _, err := Solve(line(0, 0, 1, 0), line(0, 1, 1, 0), 0, 0)
	var cerr *ConvergenceError
	if !errors.As(err, &cerr) || !cerr.Singular {
		t.Fatalf("got %v, want singular convergence error", err)
	}
	if cerr.Iterations != 0 {
		t.Errorf("got %d iterations, want 0", cerr.Iterations)
	}
}

func TestSolveAtTolerance(t *testing.T) {
	// Parallel lines exactly Tolerance apart have no Jacobian inverse, so
	// only the distance check can accept them.
	t1, t2, err := Solve(line(0, 0, 1, 0), line(0, Tolerance, 1, 0), 0.5, 0.5)
	if err != nil {
		t.Fatalf("points %g apart rejected: %v", Tolerance, err)
	}
	if t1 != 0.5 || t2 != 0.5 {
		t.Errorf("got (%v, %v), want the estimates unchanged", t1, t2)
	}

	_, _, err = Solve(line(0, 0, 1, 0), line(0, 2*Tolerance, 1, 0), 0.5, 0.5)
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got %v, want ErrNoConvergence", err)
	}
}
