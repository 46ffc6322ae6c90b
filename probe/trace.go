// Package probe captures and renders motion traces: per-frame samples of
// the controller's published render hints, film-strip PNGs plotted from
// them, baseline comparison for visual regressions, and standalone HTML
// reports.
package probe

import (
	"math"
	"strconv"

	"github.com/teranos/dolly/host"
)

// Trace is a recorded run: one row of values per sampled frame, one column
// per hint field. Missing or non-numeric samples are stored as NaN and
// skipped when plotting.
type Trace struct {
	Fields []string
	Frames [][]float64
}

// Len returns the number of sampled frames.
func (t *Trace) Len() int { return len(t.Frames) }

// Series extracts one field's values across all frames. Unknown fields
// return nil.
func (t *Trace) Series(field string) []float64 {
	col := -1
	for i, f := range t.Fields {
		if f == field {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}
	out := make([]float64, len(t.Frames))
	for i, row := range t.Frames {
		out[i] = row[col]
	}
	return out
}

// Recorder samples page-scoped hints off a Sim into a Trace. Call Sample
// once per stepped frame.
type Recorder struct {
	sim   *host.Sim
	trace Trace
}

// NewRecorder creates a recorder for the given hint fields.
func NewRecorder(sim *host.Sim, fields ...string) *Recorder {
	return &Recorder{
		sim:   sim,
		trace: Trace{Fields: fields},
	}
}

// Sample appends one frame of values.
func (r *Recorder) Sample() {
	row := make([]float64, len(r.trace.Fields))
	for i, field := range r.trace.Fields {
		row[i] = math.NaN()
		if raw, ok := r.sim.PageVar(field); ok {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				row[i] = v
			}
		}
	}
	r.trace.Frames = append(r.trace.Frames, row)
}

// Trace returns the recording so far.
func (r *Recorder) Trace() *Trace { return &r.trace }
