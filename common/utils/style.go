package utils

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

var (
	RedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cc0000"))
	YellowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cc9500"))
	GreenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06cc00"))
	LightBlueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3cc5ff"))
	LightPurpleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d864ff"))
	GrayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#adadad"))

	// Bucket listings.
	BucketIndexStyle     = LightBlueStyle.Bold(true)
	BucketStyle          = GreenStyle
	CollisionBucketStyle = YellowStyle
	EmptyBucketStyle     = GrayStyle

	// Word-count results.
	RankStyle  = GrayStyle.Width(5).Align(lipgloss.Right)
	WordStyle  = LightPurpleStyle.Bold(true)
	CountStyle = GreenStyle
	ErrorStyle = RedStyle.Bold(true)
)
