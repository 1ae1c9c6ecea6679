package kinetics

// calorie per mole to joule per mole, for activation energies quoted
// in cal/mol by the source scheme.
const calPerMol = 4.184

// DebiagiSoftwood builds a condensed form of the Debiagi 2018 softwood
// devolatilization scheme. The seven biomass components and their
// solid intermediates are retained with the published primary rate
// constants; the dozens of individual volatile products are lumped
// into GAS, TAR and H2O so mass-yield coefficients stay exact. A
// single homogeneous tar-cracking step represents the secondary
// gas-phase reactions, and N2 rides along as the inert carrier.
//
// Default initial fractions are the Blend3 case-5 composition on a dry
// ash-free basis; callers replace them via [Network.WithInitial].
func DebiagiSoftwood() (*Network, error) {
	species := []Species{
		// biomass components, daf feed
		{Name: "CELL", Phase: PhaseSolid, Y0: 0.39193},
		{Name: "GMSW", Phase: PhaseSolid, Y0: 0.23264},
		{Name: "LIGC", Phase: PhaseSolid, Y0: 0.0},
		{Name: "LIGH", Phase: PhaseSolid, Y0: 0.14832},
		{Name: "LIGO", Phase: PhaseSolid, Y0: 0.14832},
		{Name: "TANN", Phase: PhaseSolid, Y0: 0.0},
		{Name: "TGL", Phase: PhaseSolid, Y0: 0.07879},
		// solid intermediates
		{Name: "CELLA", Phase: PhaseSolid},
		{Name: "HCE1", Phase: PhaseSolid},
		{Name: "HCE2", Phase: PhaseSolid},
		{Name: "LIGCC", Phase: PhaseSolid},
		{Name: "LIGOH", Phase: PhaseSolid},
		{Name: "LIG", Phase: PhaseSolid},
		{Name: "ITANN", Phase: PhaseSolid},
		// lumped products
		{Name: "GAS", Phase: PhaseGas},
		{Name: "TAR", Phase: PhaseTar},
		{Name: "H2O", Phase: PhaseTar},
		{Name: "CHAR", Phase: PhaseChar},
		// inert carrier
		{Name: "N2", Phase: PhaseGas},
	}

	reactions := []Reaction{
		// cellulose: activation then competitive decomposition
		{Reactant: "CELL", Products: []Product{{"CELLA", 1}},
			A: 1.5e14, Ea: 47000 * calPerMol},
		{Reactant: "CELL", Products: []Product{{"CHAR", 0.61}, {"H2O", 0.39}},
			A: 6.0e7, Ea: 31000 * calPerMol},
		{Reactant: "CELLA", Products: []Product{{"GAS", 0.42}, {"TAR", 0.40}, {"CHAR", 0.10}, {"H2O", 0.08}},
			A: 2.5e6, Ea: 19100 * calPerMol},
		// levoglucosan route, rate linear in T per the source scheme
		{Reactant: "CELLA", Products: []Product{{"TAR", 1}},
			A: 3.3, B: 1, Ea: 10000 * calPerMol},

		// softwood hemicellulose
		{Reactant: "GMSW", Products: []Product{{"HCE1", 0.70}, {"HCE2", 0.30}},
			A: 1.0e10, Ea: 31000 * calPerMol},
		{Reactant: "HCE1", Products: []Product{{"GAS", 0.45}, {"TAR", 0.30}, {"CHAR", 0.15}, {"H2O", 0.10}},
			A: 1.2e9, Ea: 30000 * calPerMol},
		{Reactant: "HCE2", Products: []Product{{"GAS", 0.55}, {"TAR", 0.20}, {"CHAR", 0.15}, {"H2O", 0.10}},
			A: 5.0e9, Ea: 33000 * calPerMol},

		// lignins
		{Reactant: "LIGC", Products: []Product{{"LIGCC", 0.35}, {"GAS", 0.10}, {"TAR", 0.20}, {"CHAR", 0.35}},
			A: 1.33e15, Ea: 48500 * calPerMol},
		{Reactant: "LIGH", Products: []Product{{"LIGOH", 0.60}, {"TAR", 0.25}, {"GAS", 0.15}},
			A: 6.7e12, Ea: 37500 * calPerMol},
		{Reactant: "LIGO", Products: []Product{{"LIGOH", 0.85}, {"GAS", 0.15}},
			A: 3.3e8, Ea: 25500 * calPerMol},
		{Reactant: "LIGCC", Products: []Product{{"TAR", 0.30}, {"GAS", 0.35}, {"CHAR", 0.35}},
			A: 1.6e6, Ea: 31500 * calPerMol},
		{Reactant: "LIGOH", Products: []Product{{"LIG", 0.70}, {"GAS", 0.20}, {"CHAR", 0.10}},
			A: 1.5e8, Ea: 30000 * calPerMol},
		{Reactant: "LIG", Products: []Product{{"TAR", 0.45}, {"GAS", 0.30}, {"CHAR", 0.25}},
			A: 1.2e9, Ea: 38000 * calPerMol},

		// extractives
		{Reactant: "TANN", Products: []Product{{"ITANN", 0.45}, {"TAR", 0.55}},
			A: 2.0e1, Ea: 10000 * calPerMol},
		{Reactant: "ITANN", Products: []Product{{"CHAR", 0.60}, {"GAS", 0.40}},
			A: 1.0e3, Ea: 25000 * calPerMol},
		{Reactant: "TGL", Products: []Product{{"TAR", 0.95}, {"GAS", 0.05}},
			A: 7.0e12, Ea: 45700 * calPerMol},

		// secondary homogeneous tar cracking
		{Reactant: "TAR", Products: []Product{{"GAS", 1}},
			A: 4.28e6, Ea: 107.5e3},
	}

	return New(species, reactions)
}
