package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
	"github.com/wigging/ent-flow-reactor/internal/reactor"
)

const (
	chartWidth  = 70
	chartHeight = 12
	framesPerS  = 30
)

type TickMsg time.Time

// Model replays a finished run sample by sample in the terminal.
type Model struct {
	title    string
	net      *kinetics.Network
	tr       *reactor.Trajectory
	gas      []float64
	tar      []float64
	char     []float64
	solid    []float64
	playHead int
	running  bool
}

// NewModel prepares the playback view for a completed trajectory.
func NewModel(title string, net *kinetics.Network, result *reactor.Result) Model {
	gas, tar, char, solid := result.Trajectory.PhaseSeries(net)
	return Model{
		title:   title,
		net:     net,
		tr:      result.Trajectory,
		gas:     gas,
		tar:     tar,
		char:    char,
		solid:   solid,
		running: true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/framesPerS, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.playHead = 0
			m.running = true
		case "left", "h":
			m.running = false
			if m.playHead > 0 {
				m.playHead--
			}
		case "right", "l":
			m.running = false
			if m.playHead < m.tr.Len()-1 {
				m.playHead++
			}
		}
	case TickMsg:
		if m.running && m.playHead < m.tr.Len()-1 {
			m.playHead++
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	n := m.playHead + 1

	status := statusRunning.Render("PLAYING")
	if m.playHead == m.tr.Len()-1 {
		status = statusDone.Render("DONE")
	} else if !m.running {
		status = statusPaused.Render("PAUSED")
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "  " + status + "\n")

	if n > 1 {
		chart := asciigraph.PlotMany(
			[][]float64{m.gas[:n], m.tar[:n], m.char[:n], m.solid[:n]},
			asciigraph.Width(chartWidth),
			asciigraph.Height(chartHeight),
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Orange, asciigraph.Gray, asciigraph.Green),
			asciigraph.SeriesLegends("gas", "tar", "char", "solid"),
		)
		sb.WriteString(graphStyle.Render(chart) + "\n")
	}

	t := m.tr.Times[m.playHead]
	final := m.tr.FinalTime()
	frac := 1.0
	if final > 0 {
		frac = t / final
	}
	sb.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3f s  %s", t, ProgressBar(frac, 24))) + "\n")
	sb.WriteString(labelStyle.Render("Gas") + valueStyle.Render(fmt.Sprintf("%.4f", m.gas[m.playHead])) + "\n")
	sb.WriteString(labelStyle.Render("Tar") + valueStyle.Render(fmt.Sprintf("%.4f", m.tar[m.playHead])) + "\n")
	sb.WriteString(labelStyle.Render("Char") + valueStyle.Render(fmt.Sprintf("%.4f", m.char[m.playHead])) + "\n")
	sb.WriteString(labelStyle.Render("Solid") + valueStyle.Render(fmt.Sprintf("%.4f", m.solid[m.playHead])) + "\n")
	sb.WriteString(helpStyle.Render("SP:Pause R:Restart ←→:Scrub Q:Quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

// Run starts the playback program and blocks until it exits.
func Run(title string, net *kinetics.Network, result *reactor.Result) error {
	_, err := tea.NewProgram(NewModel(title, net, result)).Run()
	return err
}
