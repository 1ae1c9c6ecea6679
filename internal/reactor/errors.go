package reactor

import (
	"fmt"

	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// InstabilityError reports a diverging integration along with the last
// stable time and state so the caller can diagnose or re-run with
// tighter tolerances.
type InstabilityError struct {
	Time   float64
	Steps  int
	State  solver.State
	Reason string
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("integration unstable at t=%.6g s after %d steps: %s", e.Time, e.Steps, e.Reason)
}

func (e *InstabilityError) Unwrap() error { return solver.ErrUnstable }

// MassBalanceError reports a conservation violation at a sample.
type MassBalanceError struct {
	Time  float64
	Sum   float64
	State solver.State
}

func (e *MassBalanceError) Error() string {
	return fmt.Sprintf("mass balance violated at t=%.6g s: species fractions sum to %.8g", e.Time, e.Sum)
}

func (e *MassBalanceError) Unwrap() error { return solver.ErrMassBalance }
