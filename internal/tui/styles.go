package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorCyan  = lipgloss.Color("#22D3EE")
	ColorRed   = lipgloss.Color("#EF4444")
	ColorGray  = lipgloss.Color("#9CA3AF")
	ColorDim   = lipgloss.Color("#6B7280")
	ColorCard  = lipgloss.Color("#1F2937")
	ColorMedia = lipgloss.Color("#374151")
	ColorWhite = lipgloss.Color("#FFFFFF")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite)
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	taglineStyle = lipgloss.NewStyle().Foreground(ColorGray)
	linkStyle    = lipgloss.NewStyle().Foreground(ColorCyan).Border(lipgloss.RoundedBorder()).BorderForeground(ColorCyan).Padding(0, 1)
	dangerStyle  = linkStyle.Foreground(ColorRed).BorderForeground(ColorRed)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite).MarginTop(1)
	footerStyle  = lipgloss.NewStyle().Foreground(ColorDim)
	pausedStyle  = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMedia).
		Padding(0, 1)
	cardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite)
	cardTextStyle    = lipgloss.NewStyle().Foreground(ColorGray)
	cardToggleStyle  = lipgloss.NewStyle().Foreground(ColorCyan)
	mediaStyle       = lipgloss.NewStyle().Background(ColorMedia).Foreground(ColorGray).Align(lipgloss.Center, lipgloss.Center)
	placeholderStyle = mediaStyle.Italic(true)
)
