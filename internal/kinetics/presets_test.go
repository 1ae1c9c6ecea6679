package kinetics

import (
	"math"
	"testing"
)

func TestThreeStep(t *testing.T) {
	net, err := ThreeStep()
	if err != nil {
		t.Fatalf("ThreeStep: %v", err)
	}

	x := net.InitialState()
	if math.Abs(x.Sum()-1.0) > 1e-12 {
		t.Errorf("initial sum = %v, want 1", x.Sum())
	}

	y := net.PhaseYields(x)
	if y.Solid != 1.0 {
		t.Errorf("feed should start fully solid, got %+v", y)
	}

	// at fast-pyrolysis temperatures devolatilization outruns
	// secondary cracking; the higher activation energy wins out
	rxns := net.Reactions()
	kTar := rxns[1].RateConstant(873.15)
	kCrack := rxns[3].RateConstant(873.15)
	if kTar <= kCrack {
		t.Errorf("primary tar formation k=%v should exceed cracking k=%v", kTar, kCrack)
	}
}

func TestDebiagiSoftwood(t *testing.T) {
	net, err := DebiagiSoftwood()
	if err != nil {
		t.Fatalf("DebiagiSoftwood: %v", err)
	}

	x := net.InitialState()
	if math.Abs(x.Sum()-1.0) > 1e-6 {
		t.Errorf("initial sum = %v, want 1", x.Sum())
	}

	dydt := net.Rates(x, 773.15)
	sum := 0.0
	for _, v := range dydt {
		sum += v
	}
	if math.Abs(sum) > 1e-12 {
		t.Errorf("derivative sum = %v, want 0", sum)
	}

	// N2 is inert
	i, ok := net.SpeciesIndex("N2")
	if !ok {
		t.Fatal("missing N2")
	}
	if dydt[i] != 0 {
		t.Errorf("N2 rate = %v, want 0", dydt[i])
	}
}
