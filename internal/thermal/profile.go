// Package thermal maps residence time to the local temperature that
// drives the Arrhenius rate constants. The batch reactor uses an
// isothermal profile; the entrained-flow reactor may additionally model
// the heating lag of the particle behind the carrier gas.
package thermal

import (
	"fmt"
	"math"

	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// Profile maps residence time in seconds to temperature in kelvin.
type Profile interface {
	TemperatureAt(t float64) float64
}

// Isothermal holds the temperature constant over the whole run.
type Isothermal struct {
	temp float64
}

func NewIsothermal(temp float64) (*Isothermal, error) {
	if temp <= 0 {
		return nil, fmt.Errorf("%w: temperature %g K not above absolute zero", solver.ErrConfiguration, temp)
	}
	return &Isothermal{temp: temp}, nil
}

func (p *Isothermal) TemperatureAt(_ float64) float64 { return p.temp }

// Lumped models first-order particle heating toward the gas
// temperature: T(t) = Tgas - (Tgas - T0) * exp(-t/tau). For a sphere
// under lumped-capacitance assumptions tau = rho*cp*d/(6h).
type Lumped struct {
	gasTemp  float64
	initTemp float64
	tau      float64
}

// NewLumped builds the lag profile from an explicit time constant.
func NewLumped(gasTemp, initTemp, tau float64) (*Lumped, error) {
	if gasTemp <= 0 || initTemp <= 0 {
		return nil, fmt.Errorf("%w: temperatures must be above absolute zero", solver.ErrConfiguration)
	}
	if tau <= 0 {
		return nil, fmt.Errorf("%w: time constant %g s must be positive", solver.ErrConfiguration, tau)
	}
	return &Lumped{gasTemp: gasTemp, initTemp: initTemp, tau: tau}, nil
}

// NewLumpedParticle derives the time constant from particle properties:
// diameter d in m, density rho in kg/m^3, heat capacity cp in J/(kg K)
// and a gas-particle heat-transfer coefficient h in W/(m^2 K).
func NewLumpedParticle(gasTemp, initTemp, d, rho, cp, h float64) (*Lumped, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: particle diameter %g m must be positive", solver.ErrConfiguration, d)
	}
	if rho <= 0 || cp <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: particle density, heat capacity and heat-transfer coefficient must be positive", solver.ErrConfiguration)
	}
	tau := rho * cp * d / (6 * h)
	return NewLumped(gasTemp, initTemp, tau)
}

// TimeConstant reports the heating lag in seconds.
func (p *Lumped) TimeConstant() float64 { return p.tau }

func (p *Lumped) TemperatureAt(t float64) float64 {
	if t <= 0 {
		return p.initTemp
	}
	return p.gasTemp - (p.gasTemp-p.initTemp)*math.Exp(-t/p.tau)
}
