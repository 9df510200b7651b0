package ui

import "github.com/charmbracelet/lipgloss"

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
)

var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	styleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	styleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	styleError   = lipgloss.NewStyle().Foreground(ColorError)
	styleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
)
