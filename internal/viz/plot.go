// Package viz renders simulation results in the terminal: yield
// charts, styled summary panels, and a live run view.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/reactor"
	"github.com/wigging/ent-flow-reactor/internal/sweep"
)

// YieldChart plots the four phase curves of a trajectory over time.
func YieldChart(net *kinetics.Network, tr *reactor.Trajectory, width, height int) string {
	gas, tar, char, solid := tr.PhaseSeries(net)
	return asciigraph.PlotMany(
		[][]float64{gas, tar, char, solid},
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("phase mass fractions over %.2f s", tr.FinalTime())),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Orange, asciigraph.Gray, asciigraph.Green),
		asciigraph.SeriesLegends("gas", "tar", "char", "solid"),
	)
}

// SpeciesChart plots selected species columns of a trajectory.
func SpeciesChart(net *kinetics.Network, tr *reactor.Trajectory, names []string, width, height int) (string, error) {
	series := make([][]float64, 0, len(names))
	legends := make([]string, 0, len(names))
	for _, name := range names {
		i, ok := net.SpeciesIndex(name)
		if !ok {
			return "", fmt.Errorf("unknown species %q", name)
		}
		series = append(series, tr.Series(i))
		legends = append(legends, name)
	}
	return asciigraph.PlotMany(
		series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.SeriesLegends(legends...),
	), nil
}

// SweepChart plots final yields against sweep temperature. Failed
// points are skipped.
func SweepChart(points []sweep.Point, width, height int) string {
	gas := make([]float64, 0, len(points))
	tar := make([]float64, 0, len(points))
	solid := make([]float64, 0, len(points))
	var lo, hi float64
	for _, p := range points {
		if p.Err != nil {
			continue
		}
		if len(gas) == 0 {
			lo = p.Temperature
		}
		hi = p.Temperature
		gas = append(gas, p.Yields.Gas)
		tar = append(tar, p.Yields.Tar)
		solid = append(solid, p.Yields.Solid)
	}
	if len(gas) < 2 {
		return "not enough successful runs to plot"
	}
	return asciigraph.PlotMany(
		[][]float64{gas, tar, solid},
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("yields from %.0f K to %.0f K", lo, hi)),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Orange, asciigraph.Green),
		asciigraph.SeriesLegends("gas", "tar", "solid"),
	)
}
