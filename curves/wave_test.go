package curves

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

func TestCircleWaveSample(t *testing.T) {
	cw := CircleWave{A: 0.4, F: 3.5, S: 0.001, SmallF: 0.001, RotationPhase: math.Pi, OscillationPhase: math.Pi}
	for _, tick := range []int{0, 1, 5000} {
		pts := cw.Sample(2, 200, tick)
		if len(pts) != 201 {
			t.Fatalf("got %d points, want 201", len(pts))
		}
		for i, pt := range pts {
			theta := 2 * math.Pi * float64(i) / 200
			r := cw.Radius(2, theta, tick)
			if r < 2-0.4 || r > 2+0.4 {
				t.Errorf("radius %v outside of amplitude band", r)
			}
			want := curve.Pt(1.1*r*math.Cos(theta), r*math.Sin(theta))
			diff(t, want, pt, cmpopts.EquateApprox(0, 1e-12))
		}
	}
}

func TestCircleWaveFlat(t *testing.T) {
	// Without amplitude the wave is a circle stretched by 1.1 in x.
	cw := CircleWave{F: 3.5, S: 0.001, SmallF: 0.001}
	pts := cw.Sample(1, 4, 123)
	want := []curve.Point{
		curve.Pt(1.1, 0),
		curve.Pt(0, 1),
		curve.Pt(-1.1, 0),
		curve.Pt(0, -1),
		curve.Pt(1.1, 0),
	}
	diff(t, want, pts, cmpopts.EquateApprox(0, 1e-12))
}

func TestTravellingWaveHorizontal(t *testing.T) {
	tw := TravellingWave{
		Width:      6,
		Height:     4,
		Phase:      math.Pi / 2,
		Wavelength: 8,
		Frequency:  1,
		Speed:      0.0001,
	}
	pts := tw.Sample(200, 0)
	if len(pts) != 201 {
		t.Fatalf("got %d points, want 201", len(pts))
	}
	diff(t, curve.Pt(-3, 2), pts[0], cmpopts.EquateApprox(0, 1e-12))
	if got := pts[200].X; math.Abs(got-3) > 1e-12 {
		t.Errorf("last x = %v, want 3", got)
	}
	for _, pt := range pts {
		if math.Abs(pt.Y) > 2+1e-12 {
			t.Errorf("%v exceeds amplitude", pt)
		}
	}
}

func TestTravellingWaveVertical(t *testing.T) {
	tw := TravellingWave{
		Center:     curve.Pt(1, 0),
		Width:      6,
		Height:     4,
		Vertical:   true,
		Wavelength: 8,
		Frequency:  1,
		Speed:      0.0001,
	}
	pts := tw.Sample(10, 0)
	if len(pts) != 11 {
		t.Fatalf("got %d points, want 11", len(pts))
	}
	diff(t, curve.Pt(1, -2), pts[0], cmpopts.EquateApprox(0, 1e-12))
	if got := pts[10].Y; math.Abs(got-2) > 1e-12 {
		t.Errorf("last y = %v, want 2", got)
	}
}

func TestTravellingWaveTravels(t *testing.T) {
	tw := TravellingWave{Width: 6, Height: 4, Wavelength: 8, Frequency: 1, Speed: 0.0001}
	// One full period of the wave takes 1/(Frequency*Speed) ticks.
	a := tw.Sample(50, 0)
	b := tw.Sample(50, 10000)
	diff(t, a, b, cmpopts.EquateApprox(0, 1e-9))
	c := tw.Sample(50, 2500)
	if cmp := a[0].Y - c[0].Y; math.Abs(cmp) < 1e-3 {
		t.Errorf("wave did not move after a quarter period")
	}
}
