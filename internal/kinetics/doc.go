// Package kinetics models multi-step pyrolysis reaction networks.
//
// A [Network] owns an ordered species set and the first-order reactions
// acting on it. Rate constants follow the modified Arrhenius law
// k = A * T^b * exp(-Ea/RT). Reactions convert mass from one reactant
// into one or more products with mass-yield coefficients summing to
// one, so the total mass fraction is conserved exactly by construction.
//
// Two presets are provided:
//
//   - [ThreeStep]: the classic competitive primary scheme
//     (biomass -> gas | tar | char) with secondary tar cracking.
//   - [DebiagiSoftwood]: a condensed form of the Debiagi 2018 softwood
//     scheme over the CELL/GMSW/LIGC/LIGH/LIGO/TANN/TGL components,
//     with products lumped into gas, tar, water and char.
//
// Networks are immutable after construction and safe for concurrent
// read-only use across simulation runs.
package kinetics
