/*
Copyright © 2026 the talus authors.
This file is part of talus.

talus is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

talus is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.
*/

package talus

import (
	"github.com/ctessum/sparse"
)

// Field is a dense two-dimensional array of float64 values over a regular
// grid of ny rows by nx columns, row index first (y), column index second
// (x). It is backed by a sparse.DenseArray, the same dense-array container
// the teacher's own grid state (concentration fields, emissions arrays) is
// built on.
type Field struct {
	arr    *sparse.DenseArray
	ny, nx int
}

// NewField allocates a zeroed Field of the given shape.
func NewField(ny, nx int) *Field {
	return &Field{arr: sparse.ZerosDense(ny, nx), ny: ny, nx: nx}
}

// FieldFrom copies a row-major [ny][nx] slice into a new Field.
func FieldFrom(data [][]float64) *Field {
	ny := len(data)
	nx := 0
	if ny > 0 {
		nx = len(data[0])
	}
	f := NewField(ny, nx)
	for i := 0; i < ny; i++ {
		copy(f.arr.Elements[i*nx:(i+1)*nx], data[i])
	}
	return f
}

// Dims returns the field's shape.
func (f *Field) Dims() (ny, nx int) { return f.ny, f.nx }

// At returns the value at row i, column j.
func (f *Field) At(i, j int) float64 { return f.arr.Elements[i*f.nx+j] }

// Set assigns the value at row i, column j.
func (f *Field) Set(i, j int, v float64) { f.arr.Elements[i*f.nx+j] = v }

// Copy returns an independent deep copy.
func (f *Field) Copy() *Field {
	return &Field{arr: f.arr.Copy(), ny: f.ny, nx: f.nx}
}

// Sum returns the sum of all elements, e.g. for mass-conservation checks.
func (f *Field) Sum() float64 { return f.arr.Sum() }

// Fill sets every element to v.
func (f *Field) Fill(v float64) {
	for i := range f.arr.Elements {
		f.arr.Elements[i] = v
	}
}

// View returns a non-owning strided window onto the sub-rectangle
// [r0, r0+nr) x [c0, c0+nc). The pack's own sparse.DenseArray.Subset slices
// the flat backing array contiguously, which only produces a correct
// sub-array when the selection happens to be a contiguous run of the
// flattened storage; a genuine multi-row, partial-column window of a
// row-major 2-D array is not contiguous, so View is implemented directly
// against the backing slice with an explicit row stride instead.
func (f *Field) View(r0, c0, nr, nc int) View {
	return View{data: f.arr.Elements, stride: f.nx, r0: r0, c0: c0, nr: nr, nc: nc}
}

// View is a non-owning, strided window into a Field's backing storage.
// Reads and writes through a View alias the parent Field directly.
type View struct {
	data           []float64
	stride         int
	r0, c0, nr, nc int
}

// Dims returns the view's shape.
func (v View) Dims() (nr, nc int) { return v.nr, v.nc }

// At returns the value at local row i, column j.
func (v View) At(i, j int) float64 { return v.data[(v.r0+i)*v.stride+v.c0+j] }

// Set assigns the value at local row i, column j.
func (v View) Set(i, j int, x float64) { v.data[(v.r0+i)*v.stride+v.c0+j] = x }

// buffer is a small rectangle-local scratch array used by the numerical
// kernels for temporaries (face velocities, advected state, gradient and
// pressure buffers) that never need to outlive a single Step call.
type buffer struct {
	nr, nc int
	d      []float64
}

func newBuffer(nr, nc int) buffer {
	return buffer{nr: nr, nc: nc, d: make([]float64, nr*nc)}
}

func (b buffer) at(i, j int) float64     { return b.d[i*b.nc+j] }
func (b buffer) set(i, j int, x float64) { b.d[i*b.nc+j] = x }

// asView exposes a buffer's own backing slice as a View with zero origin,
// letting the advection kernel (which writes through a View) target scratch
// storage directly instead of a Field-backed window.
func (b buffer) asView() View {
	return View{data: b.d, stride: b.nc, r0: 0, c0: 0, nr: b.nr, nc: b.nc}
}

// mirror returns the reflected index, without edge repetition, for a
// position i outside [0, n): b[:, -1] mirrors to b[:, 1], b[:, -2] mirrors
// to b[:, 2], and symmetrically at the n-1 edge. Centralizing this avoids
// ad-hoc index arithmetic at each boundary-touching stencil use.
func mirror(i, n int) int {
	if i < 0 {
		return -i
	}
	if i >= n {
		return 2*(n-1) - i
	}
	return i
}
