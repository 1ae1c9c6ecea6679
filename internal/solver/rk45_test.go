package solver

import (
	"errors"
	"math"
	"testing"
)

// twoScale mixes a fast and a slow first-order decay, the stiffness
// pattern of devolatilization followed by secondary cracking.
type twoScale struct{ kFast, kSlow float64 }

func (s *twoScale) StateDim() int { return 3 }

func (s *twoScale) Derive(x State, t float64) State {
	rf := s.kFast * x[0]
	rs := s.kSlow * x[1]
	return State{-rf, rf - rs, rs}
}

func TestRK45_ExponentialDecay(t *testing.T) {
	integrator := NewRK45()
	dyn := &decay{k: 10.0}

	x := State{1.0, 0.0}
	tm := 0.0
	dt := 0.01

	for tm < 1.0 {
		if dt > 1.0-tm {
			dt = 1.0 - tm
		}
		var taken float64
		var err error
		x, taken, dt, err = integrator.StepAdaptive(dyn, x, tm, dt, 1e-9, 1e-12)
		if err != nil {
			t.Fatalf("StepAdaptive: %v", err)
		}
		tm += taken
	}

	exact := math.Exp(-10.0)
	if math.Abs(x[0]-exact) > 1e-7 {
		t.Errorf("A = %v, want %v", x[0], exact)
	}
}

func TestRK45_StepRejectionTightensStep(t *testing.T) {
	integrator := NewRK45()
	dyn := &twoScale{kFast: 1e3, kSlow: 1.0}

	x := State{1.0, 0.0, 0.0}
	_, taken, _, err := integrator.StepAdaptive(dyn, x, 0, 0.5, 1e-8, 1e-14)
	if err != nil {
		t.Fatalf("StepAdaptive: %v", err)
	}
	if taken >= 0.5 {
		t.Errorf("stiff transient accepted full step %v", taken)
	}
}

func TestRK45_StepTooSmall(t *testing.T) {
	integrator := NewRK45()
	dyn := &twoScale{kFast: 1e8, kSlow: 1.0}

	x := State{1.0, 0.0, 0.0}
	_, _, _, err := integrator.StepAdaptive(dyn, x, 0, 1.0, 1e-12, 1e-3)
	if !errors.Is(err, ErrStepTooSmall) {
		t.Errorf("err = %v, want ErrStepTooSmall", err)
	}
}

func TestRK45_ConservesTotalMass(t *testing.T) {
	integrator := NewRK45()
	dyn := &twoScale{kFast: 100.0, kSlow: 2.0}

	x := State{1.0, 0.0, 0.0}
	tm := 0.0
	dt := 1e-3

	for tm < 2.0 {
		if dt > 2.0-tm {
			dt = 2.0 - tm
		}
		var taken float64
		var err error
		x, taken, dt, err = integrator.StepAdaptive(dyn, x, tm, dt, 1e-8, 1e-12)
		if err != nil {
			t.Fatalf("StepAdaptive: %v", err)
		}
		tm += taken

		if math.Abs(x.Sum()-1.0) > 1e-10 {
			t.Fatalf("t=%v: sum = %v, want 1", tm, x.Sum())
		}
	}
}

func TestRK45_FixedStepFacade(t *testing.T) {
	integrator := NewRK45()
	dyn := &decay{k: 1.0}

	x := integrator.Step(dyn, State{1.0, 0.0}, 0, 0.1)
	if !x.IsValid() {
		t.Error("Step produced invalid state")
	}
	if math.Abs(x.Sum()-1.0) > 1e-12 {
		t.Errorf("sum = %v, want 1", x.Sum())
	}
}
