// Package config loads and saves YAML run configuration for the EFR
// program: feedstock characterization, reactor operating conditions,
// batch validation runs, and solver tolerances.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wigging/ent-flow-reactor/internal/feedstock"
	"github.com/wigging/ent-flow-reactor/internal/reactor"
	"github.com/wigging/ent-flow-reactor/internal/solver"
)

const (
	DefaultTemperature = 773.15   // K
	DefaultPressure    = 101325.0 // Pa
	DefaultDuration    = 10.0     // s

	NetworkDebiagi   = "debiagi-sw"
	NetworkThreeStep = "three-step"

	BiocompChem     = "chem"
	BiocompUltimate = "ult"
	BiocompModified = "ultmod"
)

type Config struct {
	Feedstock FeedstockConfig `yaml:"feedstock"`
	Reactor   ReactorConfig   `yaml:"reactor"`
	Batch     BatchConfig     `yaml:"batch"`
	Solver    SolverConfig    `yaml:"solver"`
	Network   string          `yaml:"network"`
	Biocomp   string          `yaml:"biocomp"`
}

type FeedstockConfig struct {
	Name string `yaml:"name"`
	// elements as [C, H, O, N, S, ash, moisture], mass % as received
	UltimateAnalysis []float64              `yaml:"ultimate_analysis"`
	ChemicalAnalysis feedstock.ChemAnalysis `yaml:"chemical_analysis"`
	Characterization CharacterizationConfig `yaml:"characterization"`
}

type CharacterizationConfig struct {
	YC                         float64 `yaml:"yc"`
	YH                         float64 `yaml:"yh"`
	feedstock.Characterization `yaml:",inline"`
}

type ReactorConfig struct {
	Temperature        float64 `yaml:"temperature"`           // K
	Pressure           float64 `yaml:"pressure"`              // Pa
	PipeInnerDiameter  float64 `yaml:"pipe_inner_diameter"`   // m
	PipeLength         float64 `yaml:"pipe_length"`           // m
	MassFlowBiomass    float64 `yaml:"mass_flowrate_biomass"` // kg/hr
	MassFlowN2         float64 `yaml:"mass_flowrate_n2"`      // kg/hr
	Velocity           float64 `yaml:"velocity"`              // m/s
	ResidenceTime      float64 `yaml:"residence_time"`        // s, overrides length/velocity
	ThermalLag         bool    `yaml:"thermal_lag"`
	InitialTemperature float64 `yaml:"initial_temperature"`    // K, particle inlet
	ParticleDiameter   float64 `yaml:"particle_diameter"`      // m
	ParticleDensity    float64 `yaml:"particle_density"`       // kg/m^3
	ParticleHeatCap    float64 `yaml:"particle_heat_capacity"` // J/(kg K)
	HeatTransferCoeff  float64 `yaml:"heat_transfer_coeff"`    // W/(m^2 K)
}

type BatchConfig struct {
	Temperature  float64 `yaml:"temperature"`   // K
	Pressure     float64 `yaml:"pressure"`      // Pa
	TimeDuration float64 `yaml:"time_duration"` // s
	Samples      int     `yaml:"samples"`
}

type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MassTolerance float64 `yaml:"mass_tolerance"`
	InitialStep   float64 `yaml:"initial_step"`
	MinStep       float64 `yaml:"min_step"`
	MaxStep       float64 `yaml:"max_step"`
	MaxSteps      int     `yaml:"max_steps"`
	BatchStep     float64 `yaml:"batch_step"`
}

// DefaultConfig is the Blend3 feedstock in the entrained-flow reactor,
// using the characterization report's case-5 composition.
func DefaultConfig() *Config {
	return &Config{
		Feedstock: FeedstockConfig{
			Name:             "Blend3",
			UltimateAnalysis: []float64{49.52, 5.28, 38.35, 0.15, 0.02, 0.64, 6.04},
			ChemicalAnalysis: feedstock.ChemAnalysis{
				Cellulose:     38.95,
				Hemicellulose: 23.12,
				LigninH:       14.74,
				LigninO:       14.74,
				Triglycerides: 7.83,
				Ash:           0.63,
			},
			Characterization: CharacterizationConfig{
				YC: 0.51,
				YH: 0.06,
				Characterization: feedstock.Characterization{
					Alpha: 0.56, Beta: 0.6, Gamma: 0.6, Delta: 0.78, Epsilon: 0.88,
				},
			},
		},
		Reactor: ReactorConfig{
			Temperature:        DefaultTemperature,
			Pressure:           141000.0, // gauge + atmospheric at the site
			PipeInnerDiameter:  0.041,
			PipeLength:         28.7,
			MassFlowBiomass:    15.0,
			MassFlowN2:         15.0,
			Velocity:           5.74,
			InitialTemperature: 300.0,
			ParticleDiameter:   0.0004,
			ParticleDensity:    540.0,
			ParticleHeatCap:    1500.0,
			HeatTransferCoeff:  500.0,
		},
		Batch: BatchConfig{
			Temperature:  DefaultTemperature,
			Pressure:     DefaultPressure,
			TimeDuration: DefaultDuration,
			Samples:      100,
		},
		Solver: SolverConfig{
			Tolerance:     1e-6,
			MassTolerance: 1e-6,
			InitialStep:   1e-4,
			MinStep:       1e-10,
			MaxStep:       0.1,
			MaxSteps:      200000,
			BatchStep:     0.01,
		},
		Network: NetworkDebiagi,
		Biocomp: BiocompChem,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Composition resolves the biomass composition with the configured
// characterization method.
func (c *Config) Composition() (feedstock.Composition, error) {
	switch c.Biocomp {
	case BiocompChem, "":
		return feedstock.FromChemAnalysis(c.Feedstock.ChemicalAnalysis)
	case BiocompUltimate:
		if len(c.Feedstock.UltimateAnalysis) != 7 {
			return feedstock.Composition{}, fmt.Errorf("%w: ultimate analysis needs 7 entries, got %d", solver.ErrConfiguration, len(c.Feedstock.UltimateAnalysis))
		}
		var ult feedstock.UltimateAnalysis
		copy(ult[:], c.Feedstock.UltimateAnalysis)
		bases, err := feedstock.UltimateBases(ult)
		if err != nil {
			return feedstock.Composition{}, err
		}
		return feedstock.Biocomp(bases.DAFCHO[0]/100, bases.DAFCHO[1]/100, feedstock.DefaultCharacterization())
	case BiocompModified:
		ch := c.Feedstock.Characterization
		return feedstock.Biocomp(ch.YC, ch.YH, ch.Characterization)
	}
	return feedstock.Composition{}, fmt.Errorf("%w: unknown biomass composition method %q", solver.ErrConfiguration, c.Biocomp)
}

// CarrierFraction derives the inlet nitrogen dilution from the mass
// flow rates; zero when no carrier flow is configured.
func (c *Config) CarrierFraction() (float64, error) {
	if c.Reactor.MassFlowN2 == 0 {
		return 0, nil
	}
	return feedstock.CarrierFraction(c.Reactor.MassFlowBiomass, c.Reactor.MassFlowN2)
}

// FlowConfig assembles the entrained-flow integrator configuration.
func (c *Config) FlowConfig() reactor.Config {
	flow := reactor.DefaultConfig()
	flow.ResidenceTime = c.Reactor.ResidenceTime
	flow.Length = c.Reactor.PipeLength
	flow.Velocity = c.Reactor.Velocity
	s := c.Solver
	if s.Tolerance > 0 {
		flow.Tolerance = s.Tolerance
	}
	if s.MassTolerance > 0 {
		flow.MassTolerance = s.MassTolerance
	}
	if s.InitialStep > 0 {
		flow.InitialStep = s.InitialStep
	}
	if s.MinStep > 0 {
		flow.MinStep = s.MinStep
	}
	if s.MaxStep > 0 {
		flow.MaxStep = s.MaxStep
	}
	if s.MaxSteps > 0 {
		flow.MaxSteps = s.MaxSteps
	}
	return flow
}

// BatchRunConfig assembles the batch integrator configuration.
func (c *Config) BatchRunConfig() reactor.BatchConfig {
	batch := reactor.DefaultBatchConfig()
	batch.Temperature = c.Batch.Temperature
	batch.Duration = c.Batch.TimeDuration
	if c.Batch.Samples > 0 {
		batch.Samples = c.Batch.Samples
	}
	if c.Solver.BatchStep > 0 {
		batch.Step = c.Solver.BatchStep
	}
	if c.Solver.MassTolerance > 0 {
		batch.MassTolerance = c.Solver.MassTolerance
	}
	return batch
}
