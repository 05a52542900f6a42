package tessellate

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/curve"
	"honnef.co/go/solidlight"
	"honnef.co/go/solidlight/curves"
	"honnef.co/go/solidlight/smath"
)

func polylines() []solidlight.Polyline {
	return []solidlight.Polyline{
		solidlight.Line(nil),
		solidlight.Line([]curve.Point{curve.Pt(1, 1)}),
		solidlight.Line([]curve.Point{curve.Pt(0, 0), curve.Pt(1, 0)}),
		solidlight.Line([]curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 1), curve.Pt(3, 2)}),
		solidlight.Line(curves.Ellipse{RX: 2, RY: 1.6}.Sample(-math.Pi/2, 3, 100)),
		// Repeated points.
		solidlight.Line([]curve.Point{curve.Pt(0, 0), curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 0), curve.Pt(2, 1)}),
	}
}

func cross(a, b, c [3]float32) float64 {
	ab := curve.Vec(float64(b[0]-a[0]), float64(b[1]-a[1]))
	ac := curve.Vec(float64(c[0]-a[0]), float64(c[1]-a[1]))
	return ab.Cross(ac)
}

func TestRibbonCounts(t *testing.T) {
	for _, pl := range polylines() {
		m := Ribbon(pl, 0.05)
		n := pl.Len()
		if n < 2 {
			if len(m.Vertices) != 0 || len(m.Indices) != 0 || !m.Empty() {
				t.Errorf("%d points: got non-empty mesh", n)
			}
			continue
		}
		if len(m.Vertices) != 2*n {
			t.Errorf("%d points: got %d vertices, want %d", n, len(m.Vertices), 2*n)
		}
		if len(m.Indices) != 6*(n-1) {
			t.Errorf("%d points: got %d indices, want %d", n, len(m.Indices), 6*(n-1))
		}
		for _, idx := range m.Indices {
			if int(idx) >= len(m.Vertices) {
				t.Fatalf("index %d out of range", idx)
			}
		}
		for _, v := range m.Vertices {
			for _, c := range v.Position {
				if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
					t.Fatalf("%d points: invalid vertex %v", n, v.Position)
				}
			}
		}
	}
}

func TestRibbonStraightLine(t *testing.T) {
	pl := solidlight.Line([]curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(2, 0), curve.Pt(5, 0)})
	m := Ribbon(pl, 0.5)
	for i, v := range m.Vertices {
		want := float32(0.25)
		if i%2 == 0 {
			want = -0.25
		}
		if v.Position[1] != want || v.Position[0] != float32(pl.Points[i/2].X) {
			t.Errorf("vertex %d = %v, want y = %v", i, v.Position, want)
		}
		if v.Color != [4]float32{1, 1, 1, 1} {
			t.Errorf("vertex %d has color %v", i, v.Color)
		}
	}
}

func TestRibbonMiterKeepsWidth(t *testing.T) {
	// Both edges of a right-angle turn stay half the thickness away from
	// the center line.
	pl := solidlight.Line([]curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 1)})
	m := Ribbon(pl, 0.2)
	inner := m.Vertices[3].Position
	outer := m.Vertices[2].Position
	if math.Abs(float64(inner[0])-0.9) > 1e-6 || math.Abs(float64(inner[1])-0.1) > 1e-6 {
		t.Errorf("inner corner at %v, want (0.9, 0.1)", inner)
	}
	if math.Abs(float64(outer[0])-1.1) > 1e-6 || math.Abs(float64(outer[1])+0.1) > 1e-6 {
		t.Errorf("outer corner at %v, want (1.1, -0.1)", outer)
	}
}

func TestRibbonWinding(t *testing.T) {
	for _, pl := range polylines()[2:5] {
		m := Ribbon(pl, 0.01)
		for i := 0; i < len(m.Indices); i += 3 {
			a := m.Vertices[m.Indices[i]].Position
			b := m.Vertices[m.Indices[i+1]].Position
			c := m.Vertices[m.Indices[i+2]].Position
			if cross(a, b, c) >= 0 {
				t.Errorf("triangle %d is not clockwise", i/3)
			}
		}
	}
}

func TestRibbonOpacity(t *testing.T) {
	pl := solidlight.Polyline{Points: []curve.Point{curve.Pt(0, 0), curve.Pt(1, 0)}, Opacity: 0.5}
	m := RibbonColored(pl, 1, nil)
	if got, want := m.Vertices[0].Color, [4]float32{0.5, 0.5, 0.5, 0.5}; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMembraneCounts(t *testing.T) {
	apex := r3.Vec{Z: 10}
	for _, pl := range polylines() {
		for _, double := range []bool{false, true} {
			m := Membrane(pl, apex, MembraneOpts{DoubleSided: double})
			n := pl.Len()
			if n < 2 {
				if !m.Empty() || len(m.Vertices) != 0 {
					t.Errorf("%d points: got non-empty mesh", n)
				}
				continue
			}
			wantIdx, wantVerts := 3*(n-1), 2*n
			if double {
				wantIdx, wantVerts = 6*(n-1), 4*n
			}
			if len(m.Indices) != wantIdx {
				t.Errorf("%d points, double=%t: got %d indices, want %d", n, double, len(m.Indices), wantIdx)
			}
			if len(m.Vertices) != wantVerts {
				t.Errorf("%d points, double=%t: got %d vertices, want %d", n, double, len(m.Vertices), wantVerts)
			}
			for i, v := range m.Vertices {
				nx, ny, nz := float64(v.Normal[0]), float64(v.Normal[1]), float64(v.Normal[2])
				if l := math.Sqrt(nx*nx + ny*ny + nz*nz); math.Abs(l-1) > 1e-4 {
					t.Errorf("%d points, double=%t: vertex %d has normal of length %v", n, double, i, l)
				}
			}
		}
	}
}

func TestMembraneLayout(t *testing.T) {
	pl := solidlight.Line([]curve.Point{curve.Pt(-1, 0), curve.Pt(1, 0), curve.Pt(1, 2)})
	apex := r3.Vec{X: 0, Y: -1, Z: 5}
	m := Membrane(pl, apex, MembraneOpts{})
	for i, v := range m.Vertices {
		var want [3]float32
		if i%2 == 0 {
			p := pl.Points[i/2]
			want = [3]float32{float32(p.X), float32(p.Y), 0}
		} else {
			want = smath.Float32(apex)
		}
		if v.Position != want {
			t.Errorf("vertex %d at %v, want %v", i, v.Position, want)
		}
	}
	wantIdx := []uint16{0, 1, 2, 2, 3, 4}
	for i := range wantIdx {
		if m.Indices[i] != wantIdx[i] {
			t.Fatalf("got indices %v, want %v", m.Indices, wantIdx)
		}
	}
	// The last apex copy belongs to no face and borrows its predecessor's
	// normal.
	if m.Vertices[5].Normal != m.Vertices[3].Normal {
		t.Errorf("got %v, want %v", m.Vertices[5].Normal, m.Vertices[3].Normal)
	}
	if m.Vertices[0].UV != [2]float32{0, 0} || m.Vertices[5].UV != [2]float32{1, 1} {
		t.Errorf("unexpected UVs %v, %v", m.Vertices[0].UV, m.Vertices[5].UV)
	}
}

func TestMembraneDoubleSided(t *testing.T) {
	pl := solidlight.Line(curves.Ellipse{RX: 2, RY: 1}.Sample(0, math.Pi, 16))
	apex := r3.Vec{Z: 8}
	single := Membrane(pl, apex, MembraneOpts{})
	double := Membrane(pl, apex, MembraneOpts{DoubleSided: true})
	nv := len(single.Vertices)
	for i, v := range single.Vertices {
		back := double.Vertices[nv+i]
		if back.Position != v.Position {
			t.Errorf("vertex %d: copy at %v, want %v", i, back.Position, v.Position)
		}
		for k := range 3 {
			if back.Normal[k] != -v.Normal[k] {
				t.Errorf("vertex %d: copy normal %v is not the negation of %v", i, back.Normal, v.Normal)
				break
			}
		}
	}
	ni := len(single.Indices)
	for i := 0; i < ni; i += 3 {
		front := single.Indices[i : i+3]
		back := double.Indices[ni+i : ni+i+3]
		off := uint16(nv)
		if back[0] != front[0]+off || back[1] != front[2]+off || back[2] != front[1]+off {
			t.Errorf("triangle %d: back %v does not mirror front %v", i/3, back, front)
		}
	}
}
