package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	Primary = lipgloss.Color("#0EA5E9")
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#F59E0B")
	Danger  = lipgloss.Color("#EF4444")
	Muted   = lipgloss.Color("#6B7280")
	Text    = lipgloss.Color("#E5E7EB")
	TextDim = lipgloss.Color("#9CA3AF")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginBottom(1)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	CheckedStyle = lipgloss.NewStyle().
			Foreground(Success)

	UncheckedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SizeStyle = lipgloss.NewStyle().
			Foreground(Warning)

	LocationStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)
)

// CheckedBox returns a rendered checked checkbox.
func CheckedBox() string {
	return CheckedStyle.Render("[x]")
}

// UncheckedBox returns a rendered unchecked checkbox.
func UncheckedBox() string {
	return UncheckedStyle.Render("[ ]")
}
