package main

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorTextMuted = lipgloss.Color("#9CA3AF")

	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NameStyle = lipgloss.NewStyle().
			Bold(true).
			Width(18)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
