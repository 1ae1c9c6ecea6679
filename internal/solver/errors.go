package solver

import "errors"

// Domain errors shared by the solver and reactor packages.
var (
	// ErrConfiguration indicates an invalid network or operating-condition
	// value, detected before any integration step runs.
	ErrConfiguration = errors.New("solver: invalid configuration")

	// ErrStepTooSmall indicates the adaptive step control shrank the
	// timestep below its minimum without meeting the error tolerance.
	ErrStepTooSmall = errors.New("solver: adaptive timestep below minimum")

	// ErrUnstable indicates the integration diverged (NaN/Inf state or
	// step budget exhausted).
	ErrUnstable = errors.New("solver: integration unstable")

	// ErrMassBalance indicates the species mass fractions stopped summing
	// to one within tolerance, or went negative beyond tolerance.
	ErrMassBalance = errors.New("solver: mass balance violated")
)
