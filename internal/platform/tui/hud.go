package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyflyer/internal/core"
)

// HUD layout constants
const (
	hudWidth   = 26 // side panel including border
	helpHeight = 1  // help line under the playfield
)

// Status badge text
const (
	StatusRunning  = "Running"
	StatusPaused   = "Paused"
	StatusGameOver = "Game Over"
	StatusVictory  = "Victory"
)

// Notices shown in the HUD for terminal states.
const (
	NoticeGameOver = "Game Over - Press R to try again"
	NoticeVictory  = "You beat all %d levels! Press R to replay"
)

var (
	hudStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(hudWidth - 2)

	hudTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0ea5e9"))

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	hudLivesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444"))

	hudNoticeStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("229"))

	badgeStyles = map[string]lipgloss.Style{
		StatusRunning:  badge("#10b981"),
		StatusPaused:   badge("#f59e0b"),
		StatusGameOver: badge("#ef4444"),
		StatusVictory:  badge("#0ea5e9"),
	}
)

func badge(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)
}

// HUDInfo is everything the side panel shows.
type HUDInfo struct {
	State      core.GameState
	FinalLevel int
	MaxLives   int
	BossLevel  bool
	HighScore  int
	Notice     string // transient message, e.g. config reloaded
}

// Status returns the badge text for a state. Terminal states outrank pause.
func Status(s core.GameState) string {
	switch {
	case s.Victory:
		return StatusVictory
	case s.GameOver:
		return StatusGameOver
	case s.Paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// Hearts renders remaining lives as filled and empty hearts.
func Hearts(lives, maxLives int) string {
	lives = core.Clamp(lives, 0, max(maxLives, lives))
	return strings.Repeat("♥", lives) + strings.Repeat("♡", max(maxLives-lives, 0))
}

// RenderHUD draws the side panel.
func RenderHUD(info HUDInfo, height int) string {
	var b strings.Builder

	b.WriteString(hudTitleStyle.Render("Sky Worlds"))
	b.WriteString("\n\n")

	level := fmt.Sprintf("%d / %d", info.State.Level, info.FinalLevel)
	if info.BossLevel {
		level += " Boss"
	}
	writeRow(&b, "Level", level)
	writeRow(&b, "Score", fmt.Sprintf("%d", info.State.Score))
	writeRow(&b, "Lives", hudLivesStyle.Render(Hearts(info.State.Lives, info.MaxLives)))
	if info.HighScore > 0 {
		writeRow(&b, "Best", fmt.Sprintf("%d", info.HighScore))
	}
	b.WriteString("\n")

	status := Status(info.State)
	b.WriteString(badgeStyles[status].Render(status))
	b.WriteString("\n")

	if notice := terminalNotice(info); notice != "" {
		b.WriteString("\n")
		b.WriteString(hudNoticeStyle.Render(notice))
		b.WriteString("\n")
	}
	if info.Notice != "" {
		b.WriteString("\n")
		b.WriteString(hudLabelStyle.Render(info.Notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hudLabelStyle.Render("Collect stars to auto-fire at bosses. Rings give a shield that blocks one hit."))

	style := hudStyle
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(b.String())
}

func terminalNotice(info HUDInfo) string {
	switch {
	case info.State.Victory:
		return fmt.Sprintf(NoticeVictory, info.FinalLevel)
	case info.State.GameOver:
		return NoticeGameOver
	}
	return ""
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(hudLabelStyle.Render(fmt.Sprintf("%-6s", label)))
	b.WriteString(value)
	b.WriteString("\n")
}
