// Package export writes simulation results to disk: JSON run records,
// CSV species tables, and SVG yield curves.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/reactor"
)

// RunRecord is the JSON export schema for one integration run.
type RunRecord struct {
	Network     string             `json:"network"`
	Mode        string             `json:"mode"`
	Temperature float64            `json:"temperature"`
	Duration    float64            `json:"duration"`
	Steps       int                `json:"steps"`
	Species     []string           `json:"species"`
	Times       []float64          `json:"times"`
	States      [][]float64        `json:"states"`
	Yields      map[string]float64 `json:"yields"`
}

// NewRunRecord assembles the export schema from a finished run.
func NewRunRecord(network, mode string, temperature float64, net *kinetics.Network, result *reactor.Result) RunRecord {
	tr := result.Trajectory
	species := make([]string, 0, net.NumSpecies())
	for _, sp := range net.Species() {
		species = append(species, sp.Name)
	}

	states := make([][]float64, len(tr.States))
	for i, x := range tr.States {
		states[i] = x
	}

	return RunRecord{
		Network:     network,
		Mode:        mode,
		Temperature: temperature,
		Duration:    tr.FinalTime(),
		Steps:       result.Steps,
		Species:     species,
		Times:       tr.Times,
		States:      states,
		Yields: map[string]float64{
			"gas":   result.Yields.Gas,
			"tar":   result.Yields.Tar,
			"char":  result.Yields.Char,
			"solid": result.Yields.Solid,
		},
	}
}

// WriteJSON writes the record to path, indented.
func WriteJSON(path string, rec RunRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rec)
}

// WriteCSV writes the trajectory as a species table, one row per
// sample with a leading time column.
func WriteCSV(w io.Writer, net *kinetics.Network, tr *reactor.Trajectory) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, net.NumSpecies()+1)
	header = append(header, "time")
	for _, sp := range net.Species() {
		header = append(header, sp.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, t := range tr.Times {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, y := range tr.States[i] {
			row[j+1] = strconv.FormatFloat(y, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the species table to path.
func WriteCSVFile(path string, net *kinetics.Network, tr *reactor.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, net, tr)
}
