// Package reactor integrates a kinetics network along the residence
// time of a reactor and reports the trajectory of species mass
// fractions plus lumped phase yields.
//
// Two modes share one derivative function ([System]): [Flow] models the
// entrained-flow reactor with adaptive stiff-capable stepping over the
// residence time derived from reactor geometry, and [Batch] models the
// isothermal batch reactor used for kinetics validation with a fixed
// RK4 grid. Both enforce the same invariants on every recorded sample:
// all mass fractions non-negative and summing to one within tolerance.
//
// An integrator moves Initialized -> Integrating -> Completed or
// Failed. Failed is terminal; the caller adjusts the configuration and
// constructs a new integrator rather than retrying.
package reactor
