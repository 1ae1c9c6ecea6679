package reactor

import (
	"context"
	"fmt"
	"math"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/solver"
	"github.com/wigging/ent-flow-reactor/internal/thermal"
)

// BatchConfig holds the operating conditions of an isothermal batch
// run, the mode used to validate kinetics against literature yields.
type BatchConfig struct {
	Temperature   float64 // K
	Duration      float64 // s
	Samples       int     // recorded samples after t=0
	Step          float64 // RK4 step ceiling, s
	MassTolerance float64
}

// DefaultBatchConfig mirrors the original validation runs: 100 samples
// over the run with a 10 ms step ceiling.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Samples:       100,
		Step:          0.01,
		MassTolerance: 1e-6,
	}
}

func (c BatchConfig) withDefaults() BatchConfig {
	d := DefaultBatchConfig()
	if c.Samples == 0 {
		c.Samples = d.Samples
	}
	if c.Step == 0 {
		c.Step = d.Step
	}
	if c.MassTolerance == 0 {
		c.MassTolerance = d.MassTolerance
	}
	return c
}

// Batch integrates the kinetics network at a fixed temperature on a
// fixed RK4 grid. It shares the derivative-function contract and the
// trajectory/yield output with Flow, so downstream reporting is
// mode-agnostic.
type Batch struct {
	sys       *System
	cfg       BatchConfig
	status    Status
	runErr    error
	observers []Observer
}

func NewBatch(net *kinetics.Network, cfg BatchConfig) (*Batch, error) {
	cfg = cfg.withDefaults()
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("%w: negative duration %g s", solver.ErrConfiguration, cfg.Duration)
	}
	if cfg.Samples <= 0 || cfg.Step <= 0 || cfg.MassTolerance <= 0 {
		return nil, fmt.Errorf("%w: samples, step and mass tolerance must be positive", solver.ErrConfiguration)
	}

	profile, err := thermal.NewIsothermal(cfg.Temperature)
	if err != nil {
		return nil, err
	}
	sys, err := NewSystem(net, profile)
	if err != nil {
		return nil, err
	}
	return &Batch{sys: sys, cfg: cfg, status: StatusInitialized}, nil
}

func (b *Batch) Status() Status { return b.status }

func (b *Batch) Err() error { return b.runErr }

func (b *Batch) AddObserver(o Observer) { b.observers = append(b.observers, o) }

// Run integrates from t=0 to the configured duration.
func (b *Batch) Run(ctx context.Context) (*Result, error) {
	if b.status != StatusInitialized {
		return nil, fmt.Errorf("%w: integrator already ran (status %s)", solver.ErrConfiguration, b.status)
	}
	b.status = StatusIntegrating

	result, err := b.integrate(ctx)
	if err != nil {
		b.status = StatusFailed
		b.runErr = err
		return nil, err
	}
	b.status = StatusCompleted
	return result, nil
}

func (b *Batch) integrate(ctx context.Context) (*Result, error) {
	x := b.sys.Network().InitialState()
	traj := &Trajectory{}

	if err := settleMass(x, b.cfg.MassTolerance, 0); err != nil {
		return nil, err
	}
	traj.append(0, x)
	b.notify(0, x)

	if b.cfg.Duration == 0 {
		return &Result{
			Trajectory: traj,
			Yields:     b.sys.Network().PhaseYields(traj.Final()),
		}, nil
	}

	rk4 := solver.NewRK4()
	sampleDt := b.cfg.Duration / float64(b.cfg.Samples)
	substeps := int(math.Ceil(sampleDt / b.cfg.Step))
	dt := sampleDt / float64(substeps)
	steps := 0

	for i := 1; i <= b.cfg.Samples; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("run canceled at t=%.6g s: %w", traj.FinalTime(), ctx.Err())
		default:
		}

		t0 := float64(i-1) * sampleDt
		for s := 0; s < substeps; s++ {
			x = rk4.Step(b.sys, x, t0+float64(s)*dt, dt)
			steps++
		}
		if !x.IsValid() {
			return nil, &InstabilityError{Time: t0, Steps: steps, State: traj.Final().Clone(), Reason: "state contains NaN or Inf; reduce the step size"}
		}

		t := float64(i) * sampleDt
		if err := settleMass(x, b.cfg.MassTolerance, t); err != nil {
			return nil, err
		}
		traj.append(t, x)
		b.notify(t, x)
	}

	return &Result{
		Trajectory: traj,
		Yields:     b.sys.Network().PhaseYields(traj.Final()),
		Steps:      steps,
	}, nil
}

func (b *Batch) notify(t float64, x solver.State) {
	for _, o := range b.observers {
		o.OnSample(t, x)
	}
}
