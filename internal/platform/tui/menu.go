package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyflyer/internal/core"
)

// Hero banner text
const (
	HeroTitle   = "Flappy Quest: Sky Worlds"
	HeroTagline = "A friendly Flappy adventure with power-ups, mini-bosses, and 10 levels to victory."
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceHowTo
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one selectable entry of the title menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

// DefaultMenuItems returns the title menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Start Playing", Choice: ChoicePlay},
		{Label: "How to Play", Choice: ChoiceHowTo},
		{Label: "High Scores", Choice: ChoiceScores},
		{Label: "Quit", Choice: ChoiceQuit},
	}
}

// HowToPlay lists the controls shown on the How to Play panel.
var HowToPlay = []string{
	"Space / W / Up  Flap",
	"Click / Tap     Flap",
	"P               Pause / Resume",
	"R               Restart",
	"Esc / B         Back to menu (paused or finished)",
	"",
	"Collect stars to auto-fire at bosses.",
	"Rings give a shield that blocks one hit.",
}

var (
	heroTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0ea5e9"))

	heroTaglineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	menuItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color("#10b981")).
				Padding(0, 2)

	howToStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	showHowTo bool
	chosen    MenuChoice
}

// NewMenuModel creates a new title menu.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     DefaultMenuItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	// Any select or back closes the How to Play panel
	if m.showHowTo {
		switch action {
		case MenuActionSelect, MenuActionBack:
			m.showHowTo = false
		case MenuActionQuit:
			m.chosen = ChoiceQuit
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.chosen = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := m.items[m.cursor].Choice
		if choice == ChoiceHowTo {
			m.showHowTo = true
			return m, nil
		}
		m.chosen = choice

	case MenuActionScoreboard:
		m.chosen = ChoiceScores
	}

	return m, nil
}

// View renders the title screen.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(heroTitleStyle.Render(HeroTitle))
	b.WriteString("\n")
	b.WriteString(heroTaglineStyle.Render(HeroTagline))
	b.WriteString("\n\n")

	if m.showHowTo {
		b.WriteString(howToStyle.Render(strings.Join(HowToPlay, "\n")))
		b.WriteString("\n\n")
		b.WriteString(footerStyle.Render("Enter/Esc: Back"))
		return m.center(b.String())
	}

	for i, item := range m.items {
		style := menuItemStyle
		if i == m.cursor {
			style = menuSelectedStyle
		}
		b.WriteString(style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"))

	return m.center(b.String())
}

func (m MenuModel) center(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Split(s, "\n")...))
}

// Chosen returns the last choice, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// ShowingHowTo reports whether the How to Play panel is open.
func (m MenuModel) ShowingHowTo() bool {
	return m.showHowTo
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
