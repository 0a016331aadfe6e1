package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/sim"
)

const (
	stateAlgorithms = iota
	statePresets
	statePlaying
)

// Browser is the menu-driven front end: pick an algorithm, pick a preset,
// step through the run, come back.
type Browser struct {
	reg      *sim.Registry
	state    int
	cursor   int
	ids      []string
	selected string
	presets  []string
	playback Playback
	err      error
}

func NewBrowser(reg *sim.Registry) Browser {
	return Browser{reg: reg, ids: reg.List()}
}

func (m Browser) Init() tea.Cmd { return nil }

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(backMsg); ok {
		m.state, m.cursor, m.err = statePresets, 0, nil
		return m, nil
	}

	if m.state == statePlaying {
		next, cmd := m.playback.Update(msg)
		m.playback = next.(Playback)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
	case "esc":
		if m.state == statePresets {
			m.state, m.cursor, m.err = stateAlgorithms, 0, nil
		}
	case "enter", " ":
		return m.choose()
	}
	return m, nil
}

func (m Browser) listLen() int {
	if m.state == stateAlgorithms {
		return len(m.ids)
	}
	return len(m.presets)
}

func (m Browser) choose() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateAlgorithms:
		m.selected = m.ids[m.cursor]
		m.presets = config.ListPresets(m.selected)
		m.state, m.cursor, m.err = statePresets, 0, nil
	case statePresets:
		if len(m.presets) == 0 {
			return m, nil
		}
		name := m.presets[m.cursor]
		in := config.GetPreset(m.selected, name)
		p, err := m.reg.CreatePlayback(m.selected, *in)
		if err != nil {
			m.err = err
			return m, nil
		}
		contract, _ := m.reg.Contract(m.selected)
		m.playback = NewPlayback(m.selected, contract, p)
		m.playback.embedded = true
		m.state = statePlaying
	}
	return m, nil
}

func (m Browser) View() string {
	if m.state == statePlaying {
		return m.playback.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + menuTitleStyle.Render("ALGOVIZ") + "\n")
	b.WriteString("    " + menuSubtleStyle.Render("algorithm playback engine") + "\n")
	b.WriteString("    " + menuSubtleStyle.Render("─────────────────────────") + "\n\n")

	switch m.state {
	case stateAlgorithms:
		for i, id := range m.ids {
			desc := ""
			if c, err := m.reg.Contract(id); err == nil {
				desc = c.Description
			}
			if len(desc) > 44 {
				desc = desc[:41] + "..."
			}
			if i == m.cursor {
				b.WriteString(fmt.Sprintf("    %s %s  %s\n",
					menuCursorStyle.Render("▸"),
					menuSelectedStyle.Render(fmt.Sprintf("%-16s", id)),
					menuDescStyle.Render(desc)))
			} else {
				b.WriteString(fmt.Sprintf("    %s  %s\n",
					menuDimStyle.Render(fmt.Sprintf("  %-16s", id)),
					menuDimStyle.Render(desc)))
			}
		}
	case statePresets:
		b.WriteString("    " + menuSelectedStyle.Render(m.selected) + "\n\n")
		if len(m.presets) == 0 {
			b.WriteString("    " + menuDimStyle.Render("(no presets)") + "\n")
		}
		for i, name := range m.presets {
			if i == m.cursor {
				b.WriteString("    " + menuCursorStyle.Render("▸") + " " + menuSelectedStyle.Render(name) + "\n")
			} else {
				b.WriteString("      " + menuDimStyle.Render(name) + "\n")
			}
		}
		if m.err != nil {
			b.WriteString("\n    " + messageStyle.Render(m.err.Error()) + "\n")
		}
	}

	b.WriteString("\n    " + menuKeyStyle.Render("j/k") + menuDimStyle.Render(" navigate  ") +
		menuKeyStyle.Render("enter") + menuDimStyle.Render(" select  ") +
		menuKeyStyle.Render("esc") + menuDimStyle.Render(" back  ") +
		menuKeyStyle.Render("q") + menuDimStyle.Render(" quit") + "\n")
	return b.String()
}

// RunBrowser starts the full-screen menu front end.
func RunBrowser(reg *sim.Registry) error {
	_, err := tea.NewProgram(NewBrowser(reg), tea.WithAltScreen()).Run()
	return err
}
