package reactor

import (
	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// Trajectory is the ordered sequence of (time, state) samples produced
// by one integration run. Immutable once returned.
type Trajectory struct {
	Times  []float64
	States []solver.State
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// Final returns the last recorded state.
func (tr *Trajectory) Final() solver.State {
	return tr.States[len(tr.States)-1]
}

// FinalTime returns the time of the last sample.
func (tr *Trajectory) FinalTime() float64 {
	return tr.Times[len(tr.Times)-1]
}

// Series extracts the mass-fraction column of one species, for
// plotting and export.
func (tr *Trajectory) Series(i int) []float64 {
	col := make([]float64, len(tr.States))
	for n, x := range tr.States {
		col[n] = x[i]
	}
	return col
}

// PhaseSeries lumps every sample into phase totals.
func (tr *Trajectory) PhaseSeries(net *kinetics.Network) (gas, tar, char, solid []float64) {
	n := len(tr.States)
	gas = make([]float64, n)
	tar = make([]float64, n)
	char = make([]float64, n)
	solid = make([]float64, n)
	for i, x := range tr.States {
		y := net.PhaseYields(x)
		gas[i], tar[i], char[i], solid[i] = y.Gas, y.Tar, y.Char, y.Solid
	}
	return gas, tar, char, solid
}

func (tr *Trajectory) append(t float64, x solver.State) {
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, x.Clone())
}

// Result is the handoff artifact to downstream reporting: the full
// trajectory plus final phase-lumped yields.
type Result struct {
	Trajectory *Trajectory
	Yields     kinetics.Yields
	Steps      int
}

// Status tracks the integrator life cycle.
type Status int

const (
	StatusInitialized Status = iota
	StatusIntegrating
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusIntegrating:
		return "integrating"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Observer receives every accepted sample during a run.
type Observer interface {
	OnSample(t float64, x solver.State)
}
