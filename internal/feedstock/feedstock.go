// Package feedstock converts biomass characterization data into the
// initial species mass fractions consumed by the reactor model.
//
// Three routes mirror the original characterization procedure: direct
// chemical analysis of the feedstock, the Debiagi 2015 method using
// carbon and hydrogen fractions from ultimate analysis, and the same
// method with explicit reference-mixture splitting parameters.
package feedstock

import (
	"fmt"

	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// UltimateAnalysis lists elements as [C, H, O, N, S, ash, moisture]
// in mass percent on an as-received basis.
type UltimateAnalysis [7]float64

// Bases holds the ultimate analysis converted to successively drier
// bases, all in mass percent.
type Bases struct {
	AR     [7]float64 // as received: C H O N S ash moisture
	Dry    [6]float64 // dry: C H O N S ash
	DAF    [5]float64 // dry ash-free: C H O N S
	DAFCHO [3]float64 // dry ash-free C H O only
}

// UltimateBases converts an as-received ultimate analysis to dry,
// dry ash-free, and CHO-only bases.
func UltimateBases(ar UltimateAnalysis) (Bases, error) {
	sumAR := 0.0
	for _, v := range ar {
		if v < 0 {
			return Bases{}, fmt.Errorf("%w: negative ultimate analysis value %g", solver.ErrConfiguration, v)
		}
		sumAR += v
	}
	if sumAR == 0 {
		return Bases{}, fmt.Errorf("%w: empty ultimate analysis", solver.ErrConfiguration)
	}

	var b Bases
	b.AR = ar

	moisture := ar[6]
	for i := 0; i < 6; i++ {
		b.Dry[i] = 100 * ar[i] / (sumAR - moisture)
	}

	sumDry := 0.0
	for _, v := range b.Dry {
		sumDry += v
	}
	ash := b.Dry[5]
	for i := 0; i < 5; i++ {
		b.DAF[i] = 100 * b.Dry[i] / (sumDry - ash)
	}

	sumDAF := 0.0
	for _, v := range b.DAF {
		sumDAF += v
	}
	for i := 0; i < 3; i++ {
		b.DAFCHO[i] = 100 * b.DAF[i] / (sumDAF - b.DAF[3] - b.DAF[4])
	}

	return b, nil
}

// Composition is the biomass split over the seven reference components
// as mass fractions on a dry ash-free basis.
type Composition struct {
	Cellulose     float64
	Hemicellulose float64
	LigninC       float64
	LigninH       float64
	LigninO       float64
	Tannins       float64
	Triglycerides float64
}

func (c Composition) Sum() float64 {
	return c.Cellulose + c.Hemicellulose + c.LigninC + c.LigninH + c.LigninO + c.Tannins + c.Triglycerides
}

// ChemAnalysis holds chemical analysis of the feedstock in mass
// percent on a dry basis, ash included.
type ChemAnalysis struct {
	Cellulose     float64 `yaml:"cellulose"`
	Hemicellulose float64 `yaml:"hemicellulose"`
	LigninC       float64 `yaml:"lignin_c"`
	LigninH       float64 `yaml:"lignin_h"`
	LigninO       float64 `yaml:"lignin_o"`
	Tannins       float64 `yaml:"tannins"`
	Triglycerides float64 `yaml:"triglycerides"`
	Ash           float64 `yaml:"ash"`
}

// FromChemAnalysis renormalizes dry-basis chemical analysis to a dry
// ash-free composition.
func FromChemAnalysis(ca ChemAnalysis) (Composition, error) {
	values := []float64{
		ca.Cellulose, ca.Hemicellulose, ca.LigninC, ca.LigninH,
		ca.LigninO, ca.Tannins, ca.Triglycerides, ca.Ash,
	}
	sum := 0.0
	for _, v := range values {
		if v < 0 {
			return Composition{}, fmt.Errorf("%w: negative chemical analysis value %g", solver.ErrConfiguration, v)
		}
		sum += v
	}
	daf := sum - ca.Ash
	if daf <= 0 {
		return Composition{}, fmt.Errorf("%w: chemical analysis has no ash-free mass", solver.ErrConfiguration)
	}

	return Composition{
		Cellulose:     ca.Cellulose / daf,
		Hemicellulose: ca.Hemicellulose / daf,
		LigninC:       ca.LigninC / daf,
		LigninH:       ca.LigninH / daf,
		LigninO:       ca.LigninO / daf,
		Tannins:       ca.Tannins / daf,
		Triglycerides: ca.Triglycerides / daf,
	}, nil
}

// CarrierFraction computes the nitrogen mass fraction at the reactor
// inlet from the biomass and carrier gas mass flow rates.
func CarrierFraction(mdotBiomass, mdotN2 float64) (float64, error) {
	if mdotBiomass <= 0 {
		return 0, fmt.Errorf("%w: biomass mass flow rate %g must be positive", solver.ErrConfiguration, mdotBiomass)
	}
	if mdotN2 < 0 {
		return 0, fmt.Errorf("%w: carrier mass flow rate %g must not be negative", solver.ErrConfiguration, mdotN2)
	}
	return mdotN2 / (mdotN2 + mdotBiomass), nil
}

// InitialFractions maps the composition onto network species names,
// scaled so biomass plus the inert carrier sums to one.
func (c Composition) InitialFractions(carrier float64) (map[string]float64, error) {
	if carrier < 0 || carrier >= 1 {
		return nil, fmt.Errorf("%w: carrier fraction %g outside [0, 1)", solver.ErrConfiguration, carrier)
	}
	sum := c.Sum()
	if sum <= 0 {
		return nil, fmt.Errorf("%w: composition has no mass", solver.ErrConfiguration)
	}

	scale := (1 - carrier) / sum
	y := map[string]float64{
		"CELL": c.Cellulose * scale,
		"GMSW": c.Hemicellulose * scale,
		"LIGC": c.LigninC * scale,
		"LIGH": c.LigninH * scale,
		"LIGO": c.LigninO * scale,
		"TANN": c.Tannins * scale,
		"TGL":  c.Triglycerides * scale,
	}
	if carrier > 0 {
		y["N2"] = carrier
	}
	// zero entries confuse nothing but clutter the network seed
	for name, v := range y {
		if v == 0 {
			delete(y, name)
		}
	}
	return y, nil
}
