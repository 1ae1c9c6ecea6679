package reactor

import (
	"fmt"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/solver"
	"github.com/wigging/ent-flow-reactor/internal/thermal"
)

// System composes a reaction network with a thermal profile into the
// single derivative function both reactor modes integrate. It holds no
// mutable state and is safe to share across concurrent runs.
type System struct {
	net     *kinetics.Network
	profile thermal.Profile
}

func NewSystem(net *kinetics.Network, profile thermal.Profile) (*System, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil reaction network", solver.ErrConfiguration)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: nil thermal profile", solver.ErrConfiguration)
	}
	return &System{net: net, profile: profile}, nil
}

func (s *System) Derive(x solver.State, t float64) solver.State {
	return s.net.Rates(x, s.profile.TemperatureAt(t))
}

func (s *System) StateDim() int { return s.net.NumSpecies() }

func (s *System) Network() *kinetics.Network { return s.net }

func (s *System) Profile() thermal.Profile { return s.profile }
