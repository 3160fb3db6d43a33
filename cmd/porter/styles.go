// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Palette shared by all CLI output. lipgloss drops the colors when the
// output is not a terminal.
const (
	colorAccent  = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorOK      = lipgloss.Color("#10B981")
	colorFailure = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorName    = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle renders the program name in help output.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	// SubtitleStyle renders secondary text: origins, sources, hints.
	SubtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	// NameStyle renders module names.
	NameStyle = lipgloss.NewStyle().Foreground(colorName)
	// VirtualStyle renders virtual namespaces, which have no directory.
	VirtualStyle = lipgloss.NewStyle().Italic(true).Foreground(colorAccent)

	successIcon = lipgloss.NewStyle().Foreground(colorOK).Render("✓")
	errorIcon   = lipgloss.NewStyle().Bold(true).Foreground(colorFailure).Render("✗")
	warningIcon = lipgloss.NewStyle().Foreground(colorWarning).Render("!")
	infoIcon    = SubtitleStyle.Render("•")
)
