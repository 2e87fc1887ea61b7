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
	"runtime"
	"sync"
)

// rowFanOut runs work once for each of a set of contiguous row ranges that
// partition [0, nr), fanning the ranges out across runtime.GOMAXPROCS(0)
// goroutines and waiting for all of them to finish before returning. It is
// the same worker-pool idiom inmap.Calculations uses to fan independent
// per-cell operators out across the domain: here the "cells" are rows of an
// active-rectangle View, and the operators are the embarrassingly-parallel
// advection, gradient-reconstruction and friction kernels.
func rowFanOut(nr int, work func(r0, r1 int)) {
	if nr <= 0 {
		return
	}
	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > nr {
		nprocs = nr
	}
	if nprocs <= 1 {
		work(0, nr)
		return
	}
	var wg sync.WaitGroup
	chunk := (nr + nprocs - 1) / nprocs
	for p := 0; p < nprocs; p++ {
		r0 := p * chunk
		if r0 >= nr {
			break
		}
		r1 := r0 + chunk
		if r1 > nr {
			r1 = nr
		}
		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			work(r0, r1)
		}(r0, r1)
	}
	wg.Wait()
}
