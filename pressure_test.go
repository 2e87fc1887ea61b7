package talus

import (
	"math"
	"testing"
)

func TestPressureModifiedModeFlatBed(t *testing.T) {
	ny, nx := 4, 4
	h := NewField(ny, nx)
	h.Fill(2)
	uh := NewField(ny, nx)
	vh := NewField(ny, nx)
	wh := NewField(ny, nx)

	hv := h.View(0, 0, ny, nx)
	uhv := uh.View(0, 0, ny, nx)
	vhv := vh.View(0, 0, ny, nx)
	whv := wh.View(0, 0, ny, nx)

	b := NewField(ny, nx)
	geo := newGeometry(b, 1, 1).View(Rect{R0: 0, R1: ny, C0: 0, C1: nx})
	dsdx := newBuffer(ny, nx)
	dsdy := newBuffer(ny, nx)

	params := DefaultParams()
	rect := Rect{R0: 0, R1: ny, C0: 0, C1: nx}
	pres := pressureAndAccelerate(hv, geo, dsdx, dsdy, params, rect, 0.1, uhv, vhv, whv)

	want := params.G.scalar * 2 // cosBeta=1 on flat bed
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			if different(pres.p.at(i, j), want, 1e-9) {
				t.Errorf("p[%d,%d] = %g, want %g", i, j, pres.p.at(i, j), want)
			}
		}
	}
	// Zero surface gradient means no acceleration.
	if uh.Sum() != 0 || vh.Sum() != 0 || wh.Sum() != 0 {
		t.Errorf("zero surface gradient should leave momentum unchanged")
	}
}

func TestPressureOriginalModeFloorsDenominator(t *testing.T) {
	ny, nx := 6, 6
	h := NewField(ny, nx)
	h.Fill(1)
	uh, vh, wh := NewField(ny, nx), NewField(ny, nx), NewField(ny, nx)
	hv := h.View(0, 0, ny, nx)
	uhv := uh.View(0, 0, ny, nx)
	vhv := vh.View(0, 0, ny, nx)
	whv := wh.View(0, 0, ny, nx)

	// A steeply inclined bed (dbdx = -1 at interior cells) combined with a
	// large positive surface gradient drives s· = dsdx·dbdx strongly
	// negative, pushing the denominator 1+s· below d_min; the floor must
	// clamp it rather than let the pressure diverge or go negative.
	const ri, rj = 2, 2
	b := NewField(ny, nx)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			b.Set(i, j, -float64(j))
		}
	}
	geo := newGeometry(b, 1, 1).View(Rect{R0: 0, R1: ny, C0: 0, C1: nx})
	dsdx := newBuffer(ny, nx)
	dsdy := newBuffer(ny, nx)
	dsdx.set(ri, rj, 3)

	params := DefaultParams()
	params.DMin = Scalar(0.1)
	rect := Rect{R0: 0, R1: ny, C0: 0, C1: nx}
	pres := pressureAndAccelerate(hv, geo, dsdx, dsdy, params, rect, 0.1, uhv, vhv, whv)

	if math.IsInf(pres.p.at(ri, rj), 0) || math.IsNaN(pres.p.at(ri, rj)) {
		t.Fatalf("d_min floor should prevent a divergent pressure, got %g", pres.p.at(ri, rj))
	}
	want := params.G.scalar * h.At(ri, rj) / params.DMin.scalar
	if different(pres.p.at(ri, rj), want, 1e-9) {
		t.Errorf("p[%d,%d] = %g, want the d_min-floored value %g", ri, rj, pres.p.at(ri, rj), want)
	}
}
