package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Feedstock.Name != "Blend3" {
		t.Errorf("feedstock = %s, want Blend3", cfg.Feedstock.Name)
	}
	if cfg.Reactor.Temperature <= 0 {
		t.Error("reactor temperature should be positive")
	}
	if cfg.Batch.TimeDuration <= 0 {
		t.Error("batch duration should be positive")
	}
	if cfg.Network != NetworkDebiagi {
		t.Errorf("network = %s, want %s", cfg.Network, NetworkDebiagi)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "efr.yaml")

	cfg := DefaultConfig()
	cfg.Batch.Temperature = 823.15
	cfg.Biocomp = BiocompModified

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Batch.Temperature != 823.15 {
		t.Errorf("temperature = %v, want 823.15", loaded.Batch.Temperature)
	}
	if loaded.Biocomp != BiocompModified {
		t.Errorf("biocomp = %s, want %s", loaded.Biocomp, BiocompModified)
	}
	if loaded.Feedstock.Characterization.Alpha != 0.56 {
		t.Errorf("alpha = %v, want 0.56", loaded.Feedstock.Characterization.Alpha)
	}
}

func TestLoad_PartialOverridesKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "efr.yaml")
	partial := "batch:\n  temperature: 873.15\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Batch.Temperature != 873.15 {
		t.Errorf("temperature = %v, want 873.15", cfg.Batch.Temperature)
	}
	if cfg.Reactor.PipeLength != 28.7 {
		t.Errorf("pipe length lost its default: %v", cfg.Reactor.PipeLength)
	}
}

func TestComposition_Methods(t *testing.T) {
	cfg := DefaultConfig()

	for _, method := range []string{BiocompChem, BiocompUltimate, BiocompModified} {
		cfg.Biocomp = method
		comp, err := cfg.Composition()
		if err != nil {
			t.Fatalf("Composition(%s): %v", method, err)
		}
		if math.Abs(comp.Sum()-1.0) > 1e-9 {
			t.Errorf("%s: composition sums to %v, want 1", method, comp.Sum())
		}
	}

	cfg.Biocomp = "bogus"
	if _, err := cfg.Composition(); err == nil {
		t.Error("unknown method should fail")
	}
}

func TestBuildNetwork(t *testing.T) {
	cfg := DefaultConfig()

	net, err := cfg.BuildNetwork()
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}

	x := net.InitialState()
	if math.Abs(x.Sum()-1.0) > 1e-9 {
		t.Errorf("initial state sums to %v, want 1", x.Sum())
	}

	// equal mass flows put half the inlet mass in nitrogen
	i, ok := net.SpeciesIndex("N2")
	if !ok {
		t.Fatal("missing N2")
	}
	if math.Abs(x[i]-0.5) > 1e-9 {
		t.Errorf("N2 = %v, want 0.5", x[i])
	}

	cfg.Network = NetworkThreeStep
	if _, err := cfg.BuildNetwork(); err != nil {
		t.Fatalf("BuildNetwork(three-step): %v", err)
	}

	cfg.Network = "bogus"
	if _, err := cfg.BuildNetwork(); err == nil {
		t.Error("unknown network should fail")
	}
}

func TestBuildProfile(t *testing.T) {
	cfg := DefaultConfig()

	p, err := cfg.BuildProfile()
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	if got := p.TemperatureAt(100); got != cfg.Reactor.Temperature {
		t.Errorf("isothermal T = %v, want %v", got, cfg.Reactor.Temperature)
	}

	cfg.Reactor.ThermalLag = true
	p, err = cfg.BuildProfile()
	if err != nil {
		t.Fatalf("BuildProfile(lag): %v", err)
	}
	if got := p.TemperatureAt(0); got != cfg.Reactor.InitialTemperature {
		t.Errorf("lag profile T(0) = %v, want %v", got, cfg.Reactor.InitialTemperature)
	}
}
