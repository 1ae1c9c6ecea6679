package config

import (
	"fmt"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/solver"
	"github.com/wigging/ent-flow-reactor/internal/thermal"
)

// BuildNetwork constructs the configured kinetics preset seeded with
// the resolved feedstock composition and carrier-gas dilution.
func (c *Config) BuildNetwork() (*kinetics.Network, error) {
	switch c.Network {
	case NetworkThreeStep:
		// single lumped biomass species; composition does not apply
		return kinetics.ThreeStep()
	case NetworkDebiagi, "":
		net, err := kinetics.DebiagiSoftwood()
		if err != nil {
			return nil, err
		}
		comp, err := c.Composition()
		if err != nil {
			return nil, err
		}
		carrier, err := c.CarrierFraction()
		if err != nil {
			return nil, err
		}
		y0, err := comp.InitialFractions(carrier)
		if err != nil {
			return nil, err
		}
		return net.WithInitial(y0)
	}
	return nil, fmt.Errorf("%w: unknown reaction network %q", solver.ErrConfiguration, c.Network)
}

// BuildProfile constructs the thermal profile for flow-mode runs:
// isothermal at the gas temperature, or the lumped particle-heating
// lag when thermal_lag is enabled.
func (c *Config) BuildProfile() (thermal.Profile, error) {
	r := c.Reactor
	if !r.ThermalLag {
		return thermal.NewIsothermal(r.Temperature)
	}
	return thermal.NewLumpedParticle(
		r.Temperature, r.InitialTemperature,
		r.ParticleDiameter, r.ParticleDensity, r.ParticleHeatCap, r.HeatTransferCoeff,
	)
}
