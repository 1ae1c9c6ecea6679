package feedstock

import (
	"fmt"
	"math"

	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// Characterization holds the reference-mixture splitting parameters of
// the Debiagi 2015 biomass characterization method.
type Characterization struct {
	Alpha   float64 `yaml:"alpha"`   // cellulose vs hemicellulose in RM1
	Beta    float64 `yaml:"beta"`    // lignin-o vs lignin-c in RM2
	Gamma   float64 `yaml:"gamma"`   // lignin-h vs lignin-c in RM3
	Delta   float64 `yaml:"delta"`   // lignins vs tannins in RM2
	Epsilon float64 `yaml:"epsilon"` // lignins vs triglycerides in RM3
}

// DefaultCharacterization carries the splitting parameters suggested
// by the source method for woody biomass without extractives.
func DefaultCharacterization() Characterization {
	return Characterization{Alpha: 0.6, Beta: 0.8, Gamma: 0.8, Delta: 1.0, Epsilon: 1.0}
}

// atomic masses, g/mol
const (
	massC = 12.011
	massH = 1.008
	massO = 15.999
)

// elemental carbon/hydrogen mass fractions of one reference component
type elemFrac struct{ c, h float64 }

func fractions(nC, nH, nO int) elemFrac {
	mw := float64(nC)*massC + float64(nH)*massH + float64(nO)*massO
	return elemFrac{c: float64(nC) * massC / mw, h: float64(nH) * massH / mw}
}

// reference component formulas per Debiagi 2015
var (
	efCell = fractions(6, 10, 5)   // cellulose C6H10O5
	efHce  = fractions(5, 8, 4)    // hemicellulose C5H8O4
	efLigC = fractions(15, 14, 4)  // carbon-rich lignin C15H14O4
	efLigH = fractions(22, 28, 9)  // hydrogen-rich lignin C22H28O9
	efLigO = fractions(20, 22, 10) // oxygen-rich lignin C20H22O10
	efTann = fractions(15, 12, 7)  // tannins C15H12O7
	efTgl  = fractions(57, 100, 7) // triglycerides C57H100O7
)

// Biocomp estimates the biomass composition from the daf carbon and
// hydrogen mass fractions using three reference mixtures: RM1 blends
// cellulose with hemicellulose, RM2 lignin-o/lignin-c with tannins,
// and RM3 lignin-h/lignin-c with triglycerides. The mixture split is
// the solution of the 3x3 elemental balance, then each mixture is
// divided among its components by the characterization parameters.
func Biocomp(yc, yh float64, p Characterization) (Composition, error) {
	if yc <= 0 || yc >= 1 || yh <= 0 || yh >= 1 || yc+yh >= 1 {
		return Composition{}, fmt.Errorf("%w: carbon fraction %g and hydrogen fraction %g must be in (0, 1) with yc+yh < 1", solver.ErrConfiguration, yc, yh)
	}
	for _, v := range []float64{p.Alpha, p.Beta, p.Gamma, p.Delta, p.Epsilon} {
		if v < 0 || v > 1 {
			return Composition{}, fmt.Errorf("%w: characterization parameters must be in [0, 1]", solver.ErrConfiguration)
		}
	}

	rm1 := elemFrac{
		c: p.Alpha*efCell.c + (1-p.Alpha)*efHce.c,
		h: p.Alpha*efCell.h + (1-p.Alpha)*efHce.h,
	}
	rm2 := elemFrac{
		c: p.Delta*(p.Beta*efLigO.c+(1-p.Beta)*efLigC.c) + (1-p.Delta)*efTann.c,
		h: p.Delta*(p.Beta*efLigO.h+(1-p.Beta)*efLigC.h) + (1-p.Delta)*efTann.h,
	}
	rm3 := elemFrac{
		c: p.Epsilon*(p.Gamma*efLigH.c+(1-p.Gamma)*efLigC.c) + (1-p.Epsilon)*efTgl.c,
		h: p.Epsilon*(p.Gamma*efLigH.h+(1-p.Gamma)*efLigC.h) + (1-p.Epsilon)*efTgl.h,
	}

	// elemental balance: s1*rm1 + s2*rm2 + s3*rm3 = (yc, yh), s1+s2+s3 = 1
	s1, s2, s3, err := solve3(
		[3][3]float64{
			{rm1.c, rm2.c, rm3.c},
			{rm1.h, rm2.h, rm3.h},
			{1, 1, 1},
		},
		[3]float64{yc, yh, 1},
	)
	if err != nil {
		return Composition{}, err
	}

	comp := Composition{
		Cellulose:     s1 * p.Alpha,
		Hemicellulose: s1 * (1 - p.Alpha),
		LigninO:       s2 * p.Delta * p.Beta,
		LigninC:       s2*p.Delta*(1-p.Beta) + s3*p.Epsilon*(1-p.Gamma),
		LigninH:       s3 * p.Epsilon * p.Gamma,
		Tannins:       s2 * (1 - p.Delta),
		Triglycerides: s3 * (1 - p.Epsilon),
	}

	for _, v := range []float64{
		comp.Cellulose, comp.Hemicellulose, comp.LigninC, comp.LigninH,
		comp.LigninO, comp.Tannins, comp.Triglycerides,
	} {
		if v < -1e-8 {
			return Composition{}, fmt.Errorf("%w: (yc=%g, yh=%g) falls outside the characterization triangle", solver.ErrConfiguration, yc, yh)
		}
	}
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	comp.Cellulose = clamp(comp.Cellulose)
	comp.Hemicellulose = clamp(comp.Hemicellulose)
	comp.LigninC = clamp(comp.LigninC)
	comp.LigninH = clamp(comp.LigninH)
	comp.LigninO = clamp(comp.LigninO)
	comp.Tannins = clamp(comp.Tannins)
	comp.Triglycerides = clamp(comp.Triglycerides)

	return comp, nil
}

// solve3 solves a 3x3 linear system by Cramer's rule.
func solve3(a [3][3]float64, b [3]float64) (float64, float64, float64, error) {
	det := det3(a)
	if math.Abs(det) < 1e-14 {
		return 0, 0, 0, fmt.Errorf("%w: degenerate reference mixtures", solver.ErrConfiguration)
	}

	col := func(i int) [3][3]float64 {
		m := a
		for r := 0; r < 3; r++ {
			m[r][i] = b[r]
		}
		return m
	}

	return det3(col(0)) / det, det3(col(1)) / det, det3(col(2)) / det, nil
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
