package reactor

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// decayNetwork builds A -> B with k(773 K) = 10 1/s.
func decayNetwork(t *testing.T) *kinetics.Network {
	t.Helper()
	ea := kinetics.GasConstant * 773.0 * math.Log(1e13/10.0)
	net, err := kinetics.New(
		[]kinetics.Species{
			{Name: "A", Phase: kinetics.PhaseSolid, Y0: 1.0},
			{Name: "B", Phase: kinetics.PhaseGas},
		},
		[]kinetics.Reaction{
			{Reactant: "A", Products: []kinetics.Product{{Species: "B", Coeff: 1}}, A: 1e13, Ea: ea},
		},
	)
	if err != nil {
		t.Fatalf("network: %v", err)
	}
	return net
}

func TestBatch_FirstOrderDecay(t *testing.T) {
	batch, err := NewBatch(decayNetwork(t), BatchConfig{Temperature: 773.0, Duration: 1.0, Step: 1e-3})
	if err != nil {
		t.Fatalf("NewBatch: %v", err)
	}

	result, err := batch.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	final := result.Trajectory.Final()
	exact := math.Exp(-10.0) // 4.54e-5
	if math.Abs(final[0]-exact) > 1e-7 {
		t.Errorf("A = %v, want %v", final[0], exact)
	}
	if math.Abs(final[1]-(1-exact)) > 1e-7 {
		t.Errorf("B = %v, want %v", final[1], 1-exact)
	}
	if math.Abs(result.Yields.Gas-(1-exact)) > 1e-7 {
		t.Errorf("gas yield = %v, want %v", result.Yields.Gas, 1-exact)
	}
}

func TestBatch_MassConservedEverySample(t *testing.T) {
	net, err := kinetics.ThreeStep()
	if err != nil {
		t.Fatalf("ThreeStep: %v", err)
	}

	batch, err := NewBatch(net, BatchConfig{Temperature: 773.15, Duration: 10.0})
	if err != nil {
		t.Fatalf("NewBatch: %v", err)
	}
	result, err := batch.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i, x := range result.Trajectory.States {
		if math.Abs(x.Sum()-1.0) > 1e-6 {
			t.Fatalf("sample %d: sum = %v", i, x.Sum())
		}
		for j, v := range x {
			if v < 0 {
				t.Fatalf("sample %d species %d negative: %v", i, j, v)
			}
		}
	}
}

func TestBatch_ZeroDuration(t *testing.T) {
	batch, err := NewBatch(decayNetwork(t), BatchConfig{Temperature: 773.0, Duration: 0})
	if err != nil {
		t.Fatalf("NewBatch: %v", err)
	}
	result, err := batch.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Trajectory.Len() != 1 {
		t.Fatalf("trajectory length = %d, want 1", result.Trajectory.Len())
	}
	final := result.Trajectory.Final()
	if final[0] != 1.0 || final[1] != 0.0 {
		t.Errorf("composition changed with zero duration: %v", final)
	}
}

func TestBatch_StatusMachine(t *testing.T) {
	batch, err := NewBatch(decayNetwork(t), BatchConfig{Temperature: 773.0, Duration: 0.1})
	if err != nil {
		t.Fatalf("NewBatch: %v", err)
	}
	if batch.Status() != StatusInitialized {
		t.Errorf("status = %v, want initialized", batch.Status())
	}

	if _, err := batch.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if batch.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", batch.Status())
	}

	// a consumed integrator cannot be re-run
	if _, err := batch.Run(context.Background()); !errors.Is(err, solver.ErrConfiguration) {
		t.Errorf("second Run err = %v, want ErrConfiguration", err)
	}
}

func TestBatch_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  BatchConfig
	}{
		{"zero temperature", BatchConfig{Duration: 1}},
		{"negative temperature", BatchConfig{Temperature: -300, Duration: 1}},
		{"negative duration", BatchConfig{Temperature: 773, Duration: -1}},
		{"negative step", BatchConfig{Temperature: 773, Duration: 1, Step: -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBatch(decayNetwork(t), tt.cfg); !errors.Is(err, solver.ErrConfiguration) {
				t.Errorf("err = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestBatch_Idempotent(t *testing.T) {
	net := decayNetwork(t)

	run := func() *Result {
		batch, err := NewBatch(net, BatchConfig{Temperature: 773.0, Duration: 0.5})
		if err != nil {
			t.Fatalf("NewBatch: %v", err)
		}
		result, err := batch.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return result
	}

	r1 := run()
	r2 := run()

	if r1.Trajectory.Len() != r2.Trajectory.Len() {
		t.Fatalf("lengths differ: %d vs %d", r1.Trajectory.Len(), r2.Trajectory.Len())
	}
	for i := range r1.Trajectory.States {
		for j := range r1.Trajectory.States[i] {
			if r1.Trajectory.States[i][j] != r2.Trajectory.States[i][j] {
				t.Fatalf("sample %d species %d differs between identical runs", i, j)
			}
		}
	}
}
