package kinetics

import (
	"fmt"
	"math"

	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// GasConstant is the universal gas constant in J/(mol K).
const GasConstant = 8.314462618

// massTol bounds the allowed drift when validating that initial mass
// fractions and product yield coefficients sum to one.
const massTol = 1e-6

// Phase tags a species for yield lumping.
type Phase int

const (
	PhaseSolid Phase = iota
	PhaseGas
	PhaseTar
	PhaseChar
)

func (p Phase) String() string {
	switch p {
	case PhaseSolid:
		return "solid"
	case PhaseGas:
		return "gas"
	case PhaseTar:
		return "tar"
	case PhaseChar:
		return "char"
	}
	return "unknown"
}

// Species is one entry of the network state vector.
type Species struct {
	Name  string
	Phase Phase
	Y0    float64 // initial mass fraction
}

// Product assigns a mass-yield coefficient to a reaction product.
type Product struct {
	Species string
	Coeff   float64
}

// Reaction is a first-order decomposition step with modified Arrhenius
// rate constant k = A * T^B * exp(-Ea/RT).
type Reaction struct {
	Reactant string
	Products []Product
	A        float64 // pre-exponential factor, 1/s (times K^-B)
	B        float64 // temperature exponent, usually 0
	Ea       float64 // activation energy, J/mol
}

// RateConstant evaluates the Arrhenius law at temperature T in kelvin.
func (r Reaction) RateConstant(temp float64) float64 {
	k := r.A * math.Exp(-r.Ea/(GasConstant*temp))
	if r.B != 0 {
		k *= math.Pow(temp, r.B)
	}
	return k
}

// Network is an immutable reaction network over an ordered species set.
type Network struct {
	species   []Species
	index     map[string]int
	reactions []Reaction
}

// New validates and constructs a network. The species set must be
// non-empty with unique names and initial mass fractions summing to
// one; every reaction must reference defined species with positive
// yield coefficients summing to one.
func New(species []Species, reactions []Reaction) (*Network, error) {
	if len(species) == 0 {
		return nil, fmt.Errorf("%w: empty species set", solver.ErrConfiguration)
	}

	index := make(map[string]int, len(species))
	sumY0 := 0.0
	for i, sp := range species {
		if sp.Name == "" {
			return nil, fmt.Errorf("%w: species %d has no name", solver.ErrConfiguration, i)
		}
		if _, ok := index[sp.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate species %q", solver.ErrConfiguration, sp.Name)
		}
		if sp.Y0 < 0 {
			return nil, fmt.Errorf("%w: species %q has negative initial mass fraction %g", solver.ErrConfiguration, sp.Name, sp.Y0)
		}
		index[sp.Name] = i
		sumY0 += sp.Y0
	}
	if math.Abs(sumY0-1) > massTol {
		return nil, fmt.Errorf("%w: initial mass fractions sum to %g, want 1", solver.ErrConfiguration, sumY0)
	}

	for i, rxn := range reactions {
		if _, ok := index[rxn.Reactant]; !ok {
			return nil, fmt.Errorf("%w: reaction %d references undefined reactant %q", solver.ErrConfiguration, i, rxn.Reactant)
		}
		if rxn.A <= 0 {
			return nil, fmt.Errorf("%w: reaction %d has non-positive pre-exponential factor", solver.ErrConfiguration, i)
		}
		if rxn.Ea < 0 {
			return nil, fmt.Errorf("%w: reaction %d has negative activation energy", solver.ErrConfiguration, i)
		}
		if len(rxn.Products) == 0 {
			return nil, fmt.Errorf("%w: reaction %d has no products", solver.ErrConfiguration, i)
		}
		sumCoeff := 0.0
		for _, p := range rxn.Products {
			if _, ok := index[p.Species]; !ok {
				return nil, fmt.Errorf("%w: reaction %d references undefined product %q", solver.ErrConfiguration, i, p.Species)
			}
			if p.Coeff <= 0 {
				return nil, fmt.Errorf("%w: reaction %d has non-positive yield for %q", solver.ErrConfiguration, i, p.Species)
			}
			sumCoeff += p.Coeff
		}
		if math.Abs(sumCoeff-1) > massTol {
			return nil, fmt.Errorf("%w: reaction %d yield coefficients sum to %g, want 1", solver.ErrConfiguration, i, sumCoeff)
		}
	}

	return &Network{
		species:   append([]Species(nil), species...),
		index:     index,
		reactions: append([]Reaction(nil), reactions...),
	}, nil
}

func (n *Network) NumSpecies() int       { return len(n.species) }
func (n *Network) Species() []Species    { return append([]Species(nil), n.species...) }
func (n *Network) Reactions() []Reaction { return append([]Reaction(nil), n.reactions...) }

// SpeciesIndex returns the state-vector position of a species name.
func (n *Network) SpeciesIndex(name string) (int, bool) {
	i, ok := n.index[name]
	return i, ok
}

// InitialState builds the t=0 state vector from the species set.
func (n *Network) InitialState() solver.State {
	x := make(solver.State, len(n.species))
	for i, sp := range n.species {
		x[i] = sp.Y0
	}
	return x
}

// WithInitial returns a copy of the network with the given initial mass
// fractions. Species not named keep a zero initial fraction; the new
// fractions must sum to one.
func (n *Network) WithInitial(y0 map[string]float64) (*Network, error) {
	species := append([]Species(nil), n.species...)
	for i := range species {
		species[i].Y0 = 0
	}
	for name, y := range y0 {
		i, ok := n.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: initial composition references undefined species %q", solver.ErrConfiguration, name)
		}
		species[i].Y0 = y
	}
	return New(species, n.reactions)
}

// Rates computes the net mass-fraction rate of change for every species
// at the given temperature. The per-reaction rate is first order in the
// reactant mass fraction; a reactant driven slightly negative by the
// integrator contributes no further conversion.
func (n *Network) Rates(y solver.State, temp float64) solver.State {
	dydt := make(solver.State, len(n.species))
	for _, rxn := range n.reactions {
		i := n.index[rxn.Reactant]
		yr := y[i]
		if yr <= 0 {
			continue
		}
		rate := rxn.RateConstant(temp) * yr
		dydt[i] -= rate
		for _, p := range rxn.Products {
			dydt[n.index[p.Species]] += p.Coeff * rate
		}
	}
	return dydt
}

// Yields lumps a state vector into phase totals.
type Yields struct {
	Gas   float64
	Tar   float64
	Char  float64
	Solid float64
}

// PhaseYields sums species mass fractions by phase tag.
func (n *Network) PhaseYields(y solver.State) Yields {
	var out Yields
	for i, sp := range n.species {
		switch sp.Phase {
		case PhaseGas:
			out.Gas += y[i]
		case PhaseTar:
			out.Tar += y[i]
		case PhaseChar:
			out.Char += y[i]
		default:
			out.Solid += y[i]
		}
	}
	return out
}
