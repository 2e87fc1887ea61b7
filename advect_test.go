package talus

import "testing"

func TestFaceVelocitiesZeroAtOuterEdges(t *testing.T) {
	h := NewField(4, 4)
	h.Fill(1)
	uh := NewField(4, 4)
	uh.Fill(2)
	vh := NewField(4, 4)
	vh.Fill(3)

	hv := h.View(0, 0, 4, 4)
	uhv := uh.View(0, 0, 4, 4)
	vhv := vh.View(0, 0, 4, 4)

	uFace, vFace := faceVelocities(hv, uhv, vhv)
	for i := 0; i < 4; i++ {
		if uFace.at(i, 3) != 0 {
			t.Errorf("last column of uFace must be zero, got %g", uFace.at(i, 3))
		}
	}
	for j := 0; j < 4; j++ {
		if vFace.at(3, j) != 0 {
			t.Errorf("last row of vFace must be zero, got %g", vFace.at(3, j))
		}
	}
	if uFace.at(0, 0) != 2 || vFace.at(0, 0) != 3 {
		t.Errorf("uniform velocity field should average to itself, got u=%g v=%g", uFace.at(0, 0), vFace.at(0, 0))
	}
}

func TestCFLTimestepDisabled(t *testing.T) {
	uFace := newBuffer(2, 2)
	vFace := newBuffer(2, 2)
	uFace.set(0, 0, 100)
	dt := cflTimestep(uFace, vFace, 1, 1, 0.5, 10, false)
	if dt != 10 {
		t.Errorf("got %g, want dtMax=10 when cflSupplied is false", dt)
	}
}

func TestCFLTimestepCaps(t *testing.T) {
	uFace := newBuffer(2, 2)
	vFace := newBuffer(2, 2)
	uFace.set(0, 0, 10) // |u|/dx = 10
	dt := cflTimestep(uFace, vFace, 1, 1, 0.5, 10, true)
	want := 0.5 / 10
	if different(dt, want, 1e-9) {
		t.Errorf("got %g, want %g", dt, want)
	}
}

func TestCFLTimestepNoMotion(t *testing.T) {
	uFace := newBuffer(2, 2)
	vFace := newBuffer(2, 2)
	dt := cflTimestep(uFace, vFace, 1, 1, 0.5, 10, true)
	if dt != 10 {
		t.Errorf("got %g, want dtMax=10 for a motionless field", dt)
	}
}

func TestAdvectOneConservesInteriorMass(t *testing.T) {
	ny, nx := 8, 8
	h := NewField(ny, nx)
	h.Set(4, 4, 10)
	uh := NewField(ny, nx)
	uh.Set(4, 4, 2)
	vh := NewField(ny, nx)
	vh.Set(4, 4, 1)

	hv := h.View(0, 0, ny, nx)
	uhv := uh.View(0, 0, ny, nx)
	vhv := vh.View(0, 0, ny, nx)

	uFace, vFace := faceVelocities(hv, uhv, vhv)

	hNew := NewField(ny, nx)
	hNewv := hNew.View(0, 0, ny, nx)
	advectOne(hv, hNewv, uFace, vFace, 1, 1, 0.1)

	before := h.Sum()
	after := hNew.Sum()
	if different(before, after, 1e-9) {
		t.Errorf("donor-cell advection of an interior pulse should conserve mass: before=%g after=%g", before, after)
	}
}
