package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/trace"
)

// backMsg asks an embedding browser to return to its menu.
type backMsg struct{}

// Playback is the interactive stepper over one run. It owns a player and
// nothing else; every frame it shows comes straight from the recorded
// sequence.
type Playback struct {
	algorithm string
	contract  trace.Contract
	p         *player.Player
	embedded  bool
	showChart bool
	showHelp  bool
}

// NewPlayback builds the stepper for one simulated run.
func NewPlayback(algorithm string, contract trace.Contract, p *player.Player) Playback {
	return Playback{algorithm: algorithm, contract: contract, p: p}
}

func (m Playback) Init() tea.Cmd { return nil }

func (m Playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.embedded {
			return m, func() tea.Msg { return backMsg{} }
		}
		return m, tea.Quit
	case "right", "l", " ", "]":
		m.p.Advance()
	case "left", "h", "[":
		m.p.Retreat()
	case "r":
		m.p.Reset()
	case "g":
		m.p.Seek(m.p.Len() - 1)
	case "0", "home":
		m.p.Seek(0)
	case "c":
		m.showChart = !m.showChart
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Playback) View() string {
	s := m.p.Current()

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(m.algorithm)) + "\n")
	b.WriteString(menuSubtleStyle.Render(m.contract.Description) + "\n\n")

	status := statusStyle.Render(fmt.Sprintf("step %d/%d", s.Step+1, m.p.Len()))
	if s.Terminal {
		status += "  " + terminalStyle.Render("DONE")
	}
	b.WriteString(status + "  " + progressBar(s.Step, m.p.Len(), 30) + "\n\n")

	b.WriteString(labelStyle.Render("action") + valueStyle.Render(string(s.Kind)) + "\n")
	b.WriteString(messageStyle.Render(s.Message) + "\n\n")
	b.WriteString(RenderSnapshot(s))

	if m.showChart && len(s.Primary) > 1 {
		data := make([]float64, len(s.Primary))
		for i, v := range s.Primary {
			data[i] = float64(v)
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(6),
			asciigraph.Width(4*len(data)),
			asciigraph.Caption("primary by index"),
		)
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.showHelp {
		b.WriteString(helpStyle.Render("→/l/space step  ←/h back  r reset  g end  0 start\nc chart  ? help  esc back  q quit"))
	} else {
		b.WriteString(helpStyle.Render("→ step  ← back  r reset  ? help  q quit"))
	}
	return b.String()
}

func progressBar(step, total, width int) string {
	if total <= 1 {
		return ""
	}
	filled := step * width / (total - 1)
	return menuDimStyle.Render("[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]")
}

// RunPlayback steps one run in its own terminal program.
func RunPlayback(algorithm string, contract trace.Contract, p *player.Player) error {
	_, err := tea.NewProgram(NewPlayback(algorithm, contract, p)).Run()
	return err
}
