package feedstock

import (
	"errors"
	"math"
	"testing"

	"github.com/wigging/ent-flow-reactor/internal/solver"
)

// Blend3 feedstock values from the reactor characterization report.
var blend3Ultimate = UltimateAnalysis{49.52, 5.28, 38.35, 0.15, 0.02, 0.64, 6.04}

var blend3Chem = ChemAnalysis{
	Cellulose:     38.95,
	Hemicellulose: 23.12,
	LigninH:       14.74,
	LigninO:       14.74,
	Triglycerides: 7.83,
	Ash:           0.63,
}

func TestUltimateBases(t *testing.T) {
	b, err := UltimateBases(blend3Ultimate)
	if err != nil {
		t.Fatalf("UltimateBases: %v", err)
	}

	sumDry := 0.0
	for _, v := range b.Dry {
		sumDry += v
	}
	if math.Abs(sumDry-100) > 1e-9 {
		t.Errorf("dry basis sums to %v, want 100", sumDry)
	}

	sumDAF := 0.0
	for _, v := range b.DAF {
		sumDAF += v
	}
	if math.Abs(sumDAF-100) > 1e-9 {
		t.Errorf("daf basis sums to %v, want 100", sumDAF)
	}

	sumCHO := b.DAFCHO[0] + b.DAFCHO[1] + b.DAFCHO[2]
	if math.Abs(sumCHO-100) > 1e-9 {
		t.Errorf("daf CHO basis sums to %v, want 100", sumCHO)
	}

	// each drier basis concentrates carbon
	if !(b.DAFCHO[0] > b.DAF[0] && b.DAF[0] > b.Dry[0] && b.Dry[0] > b.AR[0]) {
		t.Errorf("carbon should increase across bases: %v %v %v %v", b.AR[0], b.Dry[0], b.DAF[0], b.DAFCHO[0])
	}
}

func TestUltimateBases_Invalid(t *testing.T) {
	bad := blend3Ultimate
	bad[2] = -1
	if _, err := UltimateBases(bad); !errors.Is(err, solver.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
	if _, err := UltimateBases(UltimateAnalysis{}); !errors.Is(err, solver.ErrConfiguration) {
		t.Errorf("zero analysis err = %v, want ErrConfiguration", err)
	}
}

func TestFromChemAnalysis(t *testing.T) {
	comp, err := FromChemAnalysis(blend3Chem)
	if err != nil {
		t.Fatalf("FromChemAnalysis: %v", err)
	}

	if math.Abs(comp.Sum()-1.0) > 1e-12 {
		t.Errorf("composition sums to %v, want 1", comp.Sum())
	}
	// 38.95 of 99.38 ash-free percent
	if math.Abs(comp.Cellulose-38.95/99.38) > 1e-12 {
		t.Errorf("cellulose = %v", comp.Cellulose)
	}
	if comp.Tannins != 0 || comp.LigninC != 0 {
		t.Errorf("absent components should stay zero: %+v", comp)
	}
}

func TestFromChemAnalysis_Invalid(t *testing.T) {
	if _, err := FromChemAnalysis(ChemAnalysis{Ash: 1.0}); !errors.Is(err, solver.ErrConfiguration) {
		t.Errorf("ash-only err = %v, want ErrConfiguration", err)
	}
	if _, err := FromChemAnalysis(ChemAnalysis{Cellulose: -5}); !errors.Is(err, solver.ErrConfiguration) {
		t.Errorf("negative value err = %v, want ErrConfiguration", err)
	}
}

func TestCarrierFraction(t *testing.T) {
	// equal mass flows split the inlet evenly
	y, err := CarrierFraction(15.0, 15.0)
	if err != nil {
		t.Fatalf("CarrierFraction: %v", err)
	}
	if y != 0.5 {
		t.Errorf("carrier fraction = %v, want 0.5", y)
	}

	if _, err := CarrierFraction(0, 15.0); !errors.Is(err, solver.ErrConfiguration) {
		t.Errorf("zero biomass err = %v, want ErrConfiguration", err)
	}
}

func TestInitialFractions(t *testing.T) {
	comp, err := FromChemAnalysis(blend3Chem)
	if err != nil {
		t.Fatalf("FromChemAnalysis: %v", err)
	}

	y, err := comp.InitialFractions(0.5)
	if err != nil {
		t.Fatalf("InitialFractions: %v", err)
	}

	sum := 0.0
	for _, v := range y {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("fractions sum to %v, want 1", sum)
	}
	if y["N2"] != 0.5 {
		t.Errorf("N2 = %v, want 0.5", y["N2"])
	}
	if _, ok := y["TANN"]; ok {
		t.Error("zero components should not be seeded")
	}
}
