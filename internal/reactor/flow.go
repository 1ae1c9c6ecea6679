package reactor

import (
	"context"
	"fmt"
	"math"

	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// Config holds the operating conditions of an entrained-flow run.
// Residence time is given directly or derived from reactor length and
// transport velocity.
type Config struct {
	ResidenceTime float64 // s; 0 means derive from Length/Velocity
	Length        float64 // m
	Velocity      float64 // m/s

	Tolerance     float64 // relative step error tolerance
	MassTolerance float64 // mass-balance tolerance per sample
	InitialStep   float64 // s
	MinStep       float64 // s; below this the run fails as unstable
	MaxStep       float64 // s
	MaxSteps      int     // accepted-step budget
}

// DefaultConfig returns the solver policy used when the caller does not
// override tolerances.
func DefaultConfig() Config {
	return Config{
		Tolerance:     1e-6,
		MassTolerance: 1e-6,
		InitialStep:   1e-4,
		MinStep:       1e-10,
		MaxStep:       0.1,
		MaxSteps:      200000,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Tolerance == 0 {
		c.Tolerance = d.Tolerance
	}
	if c.MassTolerance == 0 {
		c.MassTolerance = d.MassTolerance
	}
	if c.InitialStep == 0 {
		c.InitialStep = d.InitialStep
	}
	if c.MinStep == 0 {
		c.MinStep = d.MinStep
	}
	if c.MaxStep == 0 {
		c.MaxStep = d.MaxStep
	}
	if c.MaxSteps == 0 {
		c.MaxSteps = d.MaxSteps
	}
	return c
}

// duration resolves the residence time of the run.
func (c Config) duration() (float64, error) {
	if c.ResidenceTime < 0 {
		return 0, fmt.Errorf("%w: negative residence time %g s", solver.ErrConfiguration, c.ResidenceTime)
	}
	if c.ResidenceTime > 0 {
		return c.ResidenceTime, nil
	}
	if c.Length == 0 && c.Velocity == 0 {
		// explicit zero residence time: degenerate but valid run
		return 0, nil
	}
	if c.Length <= 0 || c.Velocity <= 0 {
		return 0, fmt.Errorf("%w: reactor length %g m and velocity %g m/s must both be positive", solver.ErrConfiguration, c.Length, c.Velocity)
	}
	return c.Length / c.Velocity, nil
}

func (c Config) validate() error {
	if _, err := c.duration(); err != nil {
		return err
	}
	if c.Tolerance <= 0 || c.MassTolerance <= 0 {
		return fmt.Errorf("%w: tolerances must be positive", solver.ErrConfiguration)
	}
	if c.InitialStep <= 0 || c.MinStep <= 0 || c.MaxStep <= 0 {
		return fmt.Errorf("%w: step sizes must be positive", solver.ErrConfiguration)
	}
	if c.MinStep > c.MaxStep {
		return fmt.Errorf("%w: minimum step %g exceeds maximum step %g", solver.ErrConfiguration, c.MinStep, c.MaxStep)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("%w: step budget must be positive", solver.ErrConfiguration)
	}
	return nil
}

// Flow integrates the kinetics system over the entrained-flow residence
// time with adaptive Dormand-Prince stepping.
type Flow struct {
	sys       *System
	cfg       Config
	status    Status
	runErr    error
	observers []Observer
}

func NewFlow(sys *System, cfg Config) (*Flow, error) {
	if sys == nil {
		return nil, fmt.Errorf("%w: nil system", solver.ErrConfiguration)
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Flow{sys: sys, cfg: cfg, status: StatusInitialized}, nil
}

func (f *Flow) Status() Status { return f.status }

// Err returns the terminal error of a failed run.
func (f *Flow) Err() error { return f.runErr }

func (f *Flow) AddObserver(o Observer) { f.observers = append(f.observers, o) }

// Run integrates from t=0 to the residence time. It can be called once;
// a failed integrator stays failed and a new one must be built to
// re-run with adjusted parameters.
func (f *Flow) Run(ctx context.Context) (*Result, error) {
	if f.status != StatusInitialized {
		return nil, fmt.Errorf("%w: integrator already ran (status %s)", solver.ErrConfiguration, f.status)
	}
	f.status = StatusIntegrating

	result, err := f.integrate(ctx)
	if err != nil {
		f.status = StatusFailed
		f.runErr = err
		return nil, err
	}
	f.status = StatusCompleted
	return result, nil
}

func (f *Flow) integrate(ctx context.Context) (*Result, error) {
	duration, err := f.cfg.duration()
	if err != nil {
		return nil, err
	}

	x := f.sys.Network().InitialState()
	traj := &Trajectory{}

	if err := settleMass(x, f.cfg.MassTolerance, 0); err != nil {
		return nil, err
	}
	traj.append(0, x)
	f.notify(0, x)

	rk45 := solver.NewRK45()
	t := 0.0
	dt := math.Min(f.cfg.InitialStep, f.cfg.MaxStep)
	steps := 0

	for t < duration {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("run canceled at t=%.6g s: %w", t, ctx.Err())
		default:
		}

		if steps >= f.cfg.MaxSteps {
			return nil, &InstabilityError{Time: t, Steps: steps, State: x.Clone(), Reason: "step budget exhausted"}
		}

		if dt > duration-t {
			dt = duration - t
		}

		xNew, taken, dtNext, stepErr := rk45.StepAdaptive(f.sys, x, t, dt, f.cfg.Tolerance, f.cfg.MinStep)
		if stepErr != nil {
			return nil, &InstabilityError{Time: t, Steps: steps, State: x.Clone(), Reason: stepErr.Error()}
		}
		if !xNew.IsValid() {
			return nil, &InstabilityError{Time: t, Steps: steps, State: x.Clone(), Reason: "state contains NaN or Inf"}
		}

		t += taken
		steps++
		x = xNew
		dt = math.Min(dtNext, f.cfg.MaxStep)

		if err := settleMass(x, f.cfg.MassTolerance, t); err != nil {
			return nil, err
		}
		traj.append(t, x)
		f.notify(t, x)
	}

	return &Result{
		Trajectory: traj,
		Yields:     f.sys.Network().PhaseYields(traj.Final()),
		Steps:      steps,
	}, nil
}

func (f *Flow) notify(t float64, x solver.State) {
	for _, o := range f.observers {
		o.OnSample(t, x)
	}
}

// settleMass enforces the per-sample invariants: fractions within
// -tol are clamped to zero as integration roundoff, anything worse
// fails the run, and the total must stay at one within tolerance.
func settleMass(x solver.State, tol, t float64) error {
	sum := 0.0
	for i, v := range x {
		if v < 0 {
			if v < -tol {
				return &MassBalanceError{Time: t, Sum: x.Sum(), State: x.Clone()}
			}
			x[i] = 0
			v = 0
		}
		sum += v
	}
	if math.Abs(sum-1) > tol {
		return &MassBalanceError{Time: t, Sum: sum, State: x.Clone()}
	}
	return nil
}
