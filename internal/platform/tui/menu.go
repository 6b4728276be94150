package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// MenuItem is one selectable variant.
type MenuItem struct {
	GameID  string
	Title   string
	Variant config.Variant
	Config  config.PlatformerConfig
}

// VariantGameIDs maps each variant to the registry ID that plays it.
var VariantGameIDs = map[config.Variant]string{
	config.VariantClassic: "penguin",
	config.VariantDouble:  "penguin_double",
}

// MenuModel is the Bubble Tea model for the variant picker.
// The table shows the tunables that set the variants apart.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem // Set when user selects a variant
}

// NewMenuModel creates a menu over the given items.
func NewMenuModel(items []MenuItem, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.ShowAll = false

	m := MenuModel{
		items:  items,
		help:   h,
		keys:   DefaultMenuKeyMap(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a table sized to the terminal.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 26},
		{Title: "Jumps", Width: 6},
		{Title: "Gravity", Width: 8},
		{Title: "Jump", Width: 6},
		{Title: "Prompt", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(len(m.items)+1, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the items.
func (m *MenuModel) updateTableRows() {
	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		prompt := "no"
		if it.Config.Gameplay.Menu {
			prompt = "yes"
		}
		rows[i] = table.Row{
			it.Title,
			fmt.Sprintf("%d", it.Config.Physics.MaxJumps),
			fmt.Sprintf("%.0f", it.Config.Physics.Gravity),
			fmt.Sprintf("%.0f", it.Config.Physics.JumpVelocity),
			prompt,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.items) {
				selected := m.items[c]
				m.selected = &selected
				return m, tea.Quit // Exit menu to start game
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P E N G U I N   R U N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a variant", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// RunMenu shows the picker and returns the chosen item, or nil if the user quit.
func RunMenu(items []MenuItem, cfg core.RuntimeConfig) (*MenuItem, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewMenuModel(items, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, cfg, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok || m.IsQuitting() {
		return nil, cfg, nil
	}
	return m.Selected(), m.Config(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
