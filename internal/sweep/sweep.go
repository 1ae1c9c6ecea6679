// Package sweep runs batches of simulations over operating conditions.
// Networks are read-only, so each condition runs on its own goroutine
// with no locking; every run owns its state and trajectory.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/reactor"
)

// Point is the outcome of one condition in a temperature sweep.
type Point struct {
	Temperature float64
	Yields      kinetics.Yields
	Err         error
}

// Temperatures runs an isothermal batch simulation at every listed
// temperature and collects final phase yields in input order.
func Temperatures(ctx context.Context, net *kinetics.Network, temps []float64, cfg reactor.BatchConfig) []Point {
	points := make([]Point, len(temps))

	var wg sync.WaitGroup
	for i, temp := range temps {
		wg.Add(1)
		go func(idx int, t float64) {
			defer wg.Done()

			runCfg := cfg
			runCfg.Temperature = t

			points[idx] = Point{Temperature: t}
			batch, err := reactor.NewBatch(net, runCfg)
			if err != nil {
				points[idx].Err = err
				return
			}
			result, err := batch.Run(ctx)
			if err != nil {
				points[idx].Err = err
				return
			}
			points[idx].Yields = result.Yields
		}(i, temp)
	}
	wg.Wait()

	return points
}

// Effect reports how bumping one feed component shifts final yields
// relative to the unperturbed run.
type Effect struct {
	Component string
	Gas       float64
	Tar       float64
	Char      float64
	Solid     float64
}

// CompositionEffects perturbs each feed component one at a time by
// delta (renormalizing the composition) and reports the resulting
// yield shifts. The base composition is taken from the network's
// initial state.
func CompositionEffects(ctx context.Context, net *kinetics.Network, components []string, delta float64, cfg reactor.BatchConfig) ([]Effect, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("perturbation delta must be positive, got %g", delta)
	}

	base, err := runYields(ctx, net, cfg)
	if err != nil {
		return nil, fmt.Errorf("base run: %w", err)
	}

	effects := make([]Effect, len(components))
	errs := make([]error, len(components))

	var wg sync.WaitGroup
	for i, name := range components {
		wg.Add(1)
		go func(idx int, component string) {
			defer wg.Done()

			perturbed, err := perturb(net, component, delta)
			if err != nil {
				errs[idx] = err
				return
			}
			yields, err := runYields(ctx, perturbed, cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			effects[idx] = Effect{
				Component: component,
				Gas:       yields.Gas - base.Gas,
				Tar:       yields.Tar - base.Tar,
				Char:      yields.Char - base.Char,
				Solid:     yields.Solid - base.Solid,
			}
		}(i, name)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", components[i], err)
		}
	}
	return effects, nil
}

func runYields(ctx context.Context, net *kinetics.Network, cfg reactor.BatchConfig) (kinetics.Yields, error) {
	batch, err := reactor.NewBatch(net, cfg)
	if err != nil {
		return kinetics.Yields{}, err
	}
	result, err := batch.Run(ctx)
	if err != nil {
		return kinetics.Yields{}, err
	}
	return result.Yields, nil
}

// perturb bumps one species' initial fraction by delta and rescales
// the whole composition back to unit mass.
func perturb(net *kinetics.Network, component string, delta float64) (*kinetics.Network, error) {
	if _, ok := net.SpeciesIndex(component); !ok {
		return nil, fmt.Errorf("unknown feed component %q", component)
	}

	y0 := make(map[string]float64)
	sum := 0.0
	for _, sp := range net.Species() {
		y := sp.Y0
		if sp.Name == component {
			y += delta
		}
		if y > 0 {
			y0[sp.Name] = y
			sum += y
		}
	}
	for name := range y0 {
		y0[name] /= sum
	}
	return net.WithInitial(y0)
}
