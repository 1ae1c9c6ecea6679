package kinetics

// ThreeStep builds the classic competitive primary scheme for biomass
// pyrolysis (Shafizadeh-type): biomass decomposes in parallel to gas,
// tar and char, and tar cracks further in the gas phase. Primary rate
// constants follow Chan 1985, secondary cracking Liden 1988 and
// Di Blasi 1993. Useful for kinetics validation against literature
// yields before running the full multi-component scheme.
func ThreeStep() (*Network, error) {
	species := []Species{
		{Name: "BIOMASS", Phase: PhaseSolid, Y0: 1.0},
		{Name: "GAS", Phase: PhaseGas},
		{Name: "TAR", Phase: PhaseTar},
		{Name: "CHAR", Phase: PhaseChar},
	}

	reactions := []Reaction{
		{Reactant: "BIOMASS", Products: []Product{{"GAS", 1}}, A: 1.3e8, Ea: 140.0e3},
		{Reactant: "BIOMASS", Products: []Product{{"TAR", 1}}, A: 2.0e8, Ea: 133.0e3},
		{Reactant: "BIOMASS", Products: []Product{{"CHAR", 1}}, A: 1.08e7, Ea: 121.0e3},
		{Reactant: "TAR", Products: []Product{{"GAS", 1}}, A: 4.28e6, Ea: 107.5e3},
		{Reactant: "TAR", Products: []Product{{"CHAR", 1}}, A: 1.0e6, Ea: 108.0e3},
	}

	return New(species, reactions)
}
