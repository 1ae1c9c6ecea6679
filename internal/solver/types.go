package solver

import "math"

// State holds per-species mass fractions in network order.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sum returns the total mass fraction, which a conservative network
// keeps at 1 throughout a run.
func (s State) Sum() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is the derivative function both reactor modes integrate.
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Integrator advances a state by one fixed step.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveIntegrator advances by one accepted step under local error
// control. It returns the new state, the step actually taken, and the
// suggested size for the next step. The attempted step is shrunk until
// the error estimate passes or the step falls below minDt, in which
// case ErrStepTooSmall is returned and the inputs are left unused.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, t, dt, tol, minDt float64) (next State, taken, dtNext float64, err error)
}
