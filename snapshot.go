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

// Recorder receives a copy of the thickness field at the end of each
// reported step. Implementations must not retain h beyond the call: Record
// is handed a snapshot copy, but a Recorder that wants to keep history
// across calls is responsible for its own storage, the same contract the
// teacher's webserver update channel places on its subscribers.
type Recorder interface {
	Record(t float64, h *Field)
}

// RecorderFunc adapts a plain function to the Recorder interface.
type RecorderFunc func(t float64, h *Field)

// Record calls f.
func (f RecorderFunc) Record(t float64, h *Field) { f(t, h) }

// MemoryRecorder accumulates every reported snapshot in memory, in time
// order. It is useful for tests and short runs; long runs should supply a
// Recorder that streams to disk instead.
type MemoryRecorder struct {
	Times []float64
	Snaps []*Field
}

// Record appends a copy of h, tagged with time t, to the recorder's history.
func (m *MemoryRecorder) Record(t float64, h *Field) {
	m.Times = append(m.Times, t)
	m.Snaps = append(m.Snaps, h.Copy())
}
