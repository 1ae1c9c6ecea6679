// Package solver provides the numeric core shared by both reactor modes:
// the state vector type, the ODE system contract, and the time steppers.
//
// A [System] exposes the derivative of its state with respect to time:
//
//	dyn := reactor.NewSystem(network, profile)
//	dx := dyn.Derive(x, t)
//
// Steppers implement [Integrator]; the Dormand-Prince [RK45] additionally
// implements [AdaptiveIntegrator] with embedded error control and step
// rejection, which the flow integrator relies on for the stiff
// devolatilization transient.
package solver
