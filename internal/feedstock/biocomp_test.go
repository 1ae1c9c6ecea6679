package feedstock

import (
	"errors"
	"math"
	"testing"

	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// carbonOf recomputes the daf carbon fraction implied by a composition
// from the reference component formulas.
func carbonOf(c Composition) float64 {
	return c.Cellulose*efCell.c + c.Hemicellulose*efHce.c +
		c.LigninC*efLigC.c + c.LigninH*efLigH.c + c.LigninO*efLigO.c +
		c.Tannins*efTann.c + c.Triglycerides*efTgl.c
}

func TestBiocomp_Defaults(t *testing.T) {
	comp, err := Biocomp(0.51, 0.06, DefaultCharacterization())
	if err != nil {
		t.Fatalf("Biocomp: %v", err)
	}

	if math.Abs(comp.Sum()-1.0) > 1e-9 {
		t.Errorf("composition sums to %v, want 1", comp.Sum())
	}
	if comp.Cellulose <= comp.Hemicellulose {
		t.Errorf("woody biomass should be cellulose-rich: %+v", comp)
	}
	// delta = epsilon = 1 excludes extractives entirely
	if comp.Tannins != 0 || comp.Triglycerides != 0 {
		t.Errorf("extractives should be zero with default splits: %+v", comp)
	}

	// the elemental balance is exact
	if got := carbonOf(comp); math.Abs(got-0.51) > 1e-9 {
		t.Errorf("implied carbon fraction = %v, want 0.51", got)
	}
}

func TestBiocomp_Blend3Parameters(t *testing.T) {
	p := Characterization{Alpha: 0.56, Beta: 0.6, Gamma: 0.6, Delta: 0.78, Epsilon: 0.88}
	comp, err := Biocomp(0.51, 0.06, p)
	if err != nil {
		t.Fatalf("Biocomp: %v", err)
	}

	if math.Abs(comp.Sum()-1.0) > 1e-9 {
		t.Errorf("composition sums to %v, want 1", comp.Sum())
	}
	for name, v := range map[string]float64{
		"cellulose":     comp.Cellulose,
		"hemicellulose": comp.Hemicellulose,
		"lignin-c":      comp.LigninC,
		"lignin-h":      comp.LigninH,
		"lignin-o":      comp.LigninO,
		"tannins":       comp.Tannins,
		"triglycerides": comp.Triglycerides,
	} {
		if v <= 0 {
			t.Errorf("%s = %v, want positive with extractive splits", name, v)
		}
	}
	if got := carbonOf(comp); math.Abs(got-0.51) > 1e-9 {
		t.Errorf("implied carbon fraction = %v, want 0.51", got)
	}
}

func TestBiocomp_Invalid(t *testing.T) {
	p := DefaultCharacterization()

	tests := []struct {
		name   string
		yc, yh float64
		params Characterization
	}{
		{"carbon out of range", 1.2, 0.06, p},
		{"hydrogen out of range", 0.5, 0, p},
		{"fractions exceed one", 0.7, 0.4, p},
		{"alpha out of range", 0.51, 0.06, Characterization{Alpha: 1.5, Beta: 0.8, Gamma: 0.8, Delta: 1, Epsilon: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Biocomp(tt.yc, tt.yh, tt.params); !errors.Is(err, solver.ErrConfiguration) {
				t.Errorf("err = %v, want ErrConfiguration", err)
			}
		})
	}
}
