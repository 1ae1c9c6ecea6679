package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/reactor"
)

// Series is one labeled curve for the SVG plot.
type Series struct {
	Label  string
	Values []float64
	Color  string
}

var phaseColors = map[string]string{
	"gas":   "#4fc3f7",
	"tar":   "#ffb74d",
	"char":  "#9e9e9e",
	"solid": "#81c784",
}

// YieldSeries builds the four phase curves from a trajectory.
func YieldSeries(net *kinetics.Network, tr *reactor.Trajectory) []Series {
	gas, tar, char, solid := tr.PhaseSeries(net)
	return []Series{
		{Label: "gas", Values: gas, Color: phaseColors["gas"]},
		{Label: "tar", Values: tar, Color: phaseColors["tar"]},
		{Label: "char", Values: char, Color: phaseColors["char"]},
		{Label: "solid", Values: solid, Color: phaseColors["solid"]},
	}
}

// CurvesToSVG renders labeled curves over a shared time axis. Mass
// fractions live in [0, 1], so the vertical axis is fixed rather than
// fitted per series.
func CurvesToSVG(times []float64, series []Series, width, height int) string {
	if len(times) < 2 || len(series) == 0 {
		return ""
	}

	minT, maxT := times[0], times[len(times)-1]
	rangeT := maxT - minT
	if rangeT == 0 {
		rangeT = 1
	}

	pad := 0.05
	plotW := float64(width) * (1 - 2*pad)
	plotH := float64(height) * (1 - 2*pad)
	offX := float64(width) * pad
	offY := float64(height) * pad

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	for _, s := range series {
		if len(s.Values) != len(times) {
			continue
		}
		color := s.Color
		if color == "" {
			color = "#000000"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, v := range s.Values {
			x := offX + (times[i]-minT)/rangeT*plotW
			y := offY + (1-v)*plotH
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for i, s := range series {
		color := s.Color
		if color == "" {
			color = "#000000"
		}
		y := offY + float64(i)*14 + 10
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="11" fill="%s">%s</text>
`, offX+plotW-60, y, color, s.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteYieldSVG renders the phase yield curves of a run to path.
func WriteYieldSVG(path string, net *kinetics.Network, tr *reactor.Trajectory, width, height int) error {
	svg := CurvesToSVG(tr.Times, YieldSeries(net, tr), width, height)
	if svg == "" {
		return fmt.Errorf("trajectory too short to plot (%d samples)", tr.Len())
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
