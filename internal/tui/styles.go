package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	accent, border, text, dim, label lipgloss.Color
	panelBg, whiteKey, blackKey       lipgloss.Color
	whiteText, blackText, errText     lipgloss.Color
}

var (
	darkPalette = palette{
		accent:    "#00E6C3",
		border:    "#444444",
		text:      "#FFFFFF",
		dim:       "#666666",
		label:     "#6272A4",
		panelBg:   "#111111",
		whiteKey:  "#EEEEEE",
		blackKey:  "#1A1A1A",
		whiteText: "#000000",
		blackText: "#FFFFFF",
		errText:   "#FF5F5F",
	}
	lightPalette = palette{
		accent:    "#0077CC",
		border:    "#BBBBBB",
		text:      "#111111",
		dim:       "#888888",
		label:     "#44475A",
		panelBg:   "#F2F2F2",
		whiteKey:  "#FFFFFF",
		blackKey:  "#222222",
		whiteText: "#000000",
		blackText: "#FFFFFF",
		errText:   "#CC0000",
	}
)

type styles struct {
	panel, title, inst, vis, wave       lipgloss.Style
	whiteKey, blackKey, activeKey       lipgloss.Style
	activeBlackKey                      lipgloss.Style
	sideTitle, side, history, help, err lipgloss.Style
	bar, barEmpty                       lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	whiteKey := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Background(p.whiteKey).
		Foreground(p.whiteText).
		Width(7).
		Height(4).
		Align(lipgloss.Center, lipgloss.Bottom)

	blackKey := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Background(p.blackKey).
		Foreground(p.blackText).
		Width(5).
		Height(2).
		Align(lipgloss.Center)

	return styles{
		panel: lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.border),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text).
			MarginBottom(1).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent),
		inst: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.panelBg).
			Padding(0, 1).
			MarginBottom(1),
		vis:      lipgloss.NewStyle().MarginBottom(1),
		wave:     lipgloss.NewStyle().Foreground(p.accent),
		whiteKey: whiteKey,
		blackKey: blackKey,
		activeKey: whiteKey.
			BorderForeground(p.accent).
			Background(p.accent).
			Bold(true),
		activeBlackKey: blackKey.
			BorderForeground(p.accent).
			Background(p.accent).
			Foreground(p.whiteText).
			Bold(true),
		sideTitle: lipgloss.NewStyle().Bold(true).Foreground(p.text).MarginBottom(1),
		side: lipgloss.NewStyle().
			Padding(0, 2).
			MarginLeft(2).
			Width(26).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),
		history:  lipgloss.NewStyle().Foreground(p.label),
		help:     lipgloss.NewStyle().Foreground(p.dim).MarginTop(1),
		err:      lipgloss.NewStyle().Foreground(p.errText),
		bar:      lipgloss.NewStyle().Foreground(p.accent),
		barEmpty: lipgloss.NewStyle().Foreground(p.dim),
	}
}
