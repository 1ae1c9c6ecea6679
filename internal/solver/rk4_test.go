package solver

import (
	"math"
	"testing"
)

// decay models A -> B with rate constant k, the smallest conservative
// network: dA/dt = -kA, dB/dt = kA.
type decay struct{ k float64 }

func (d *decay) StateDim() int { return 2 }

func (d *decay) Derive(x State, t float64) State {
	r := d.k * x[0]
	return State{-r, r}
}

func TestRK4_ExponentialDecay(t *testing.T) {
	integrator := NewRK4()
	dyn := &decay{k: 2.0}

	x := State{1.0, 0.0}
	dt := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integrator.Step(dyn, x, float64(i)*dt, dt)
	}

	exact := math.Exp(-2.0)
	if math.Abs(x[0]-exact) > 1e-9 {
		t.Errorf("A = %v, want %v", x[0], exact)
	}
	if math.Abs(x[1]-(1-exact)) > 1e-9 {
		t.Errorf("B = %v, want %v", x[1], 1-exact)
	}
}

func TestRK4_ConservesTotalMass(t *testing.T) {
	integrator := NewRK4()
	dyn := &decay{k: 10.0}

	x := State{0.7, 0.3}
	dt := 0.01

	for i := 0; i < 500; i++ {
		x = integrator.Step(dyn, x, float64(i)*dt, dt)
		if math.Abs(x.Sum()-1.0) > 1e-12 {
			t.Fatalf("step %d: sum = %v, want 1", i, x.Sum())
		}
	}
}

func TestEuler_MatchesRK4ForSmallSteps(t *testing.T) {
	euler := NewEuler()
	rk4 := NewRK4()
	dyn := &decay{k: 1.0}

	xe := State{1.0, 0.0}
	x4 := State{1.0, 0.0}
	dt := 1e-4

	for i := 0; i < 1000; i++ {
		tm := float64(i) * dt
		xe = euler.Step(dyn, xe, tm, dt)
		x4 = rk4.Step(dyn, x4, tm, dt)
	}

	if math.Abs(xe[0]-x4[0]) > 1e-5 {
		t.Errorf("euler %v vs rk4 %v diverged beyond first-order error", xe[0], x4[0])
	}
}

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{0.5, 0.3, 0.2}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
