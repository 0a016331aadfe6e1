package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	terminalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)

	cellStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	cursorCellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("86")).Bold(true).Padding(0, 1)
	settledCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("82")).Padding(0, 1)
	markerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	menuTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSubtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKeyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)
