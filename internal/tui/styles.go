package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Pastel palette on a dark background.
const (
	hexPurplePrimary = "#C8A0FF"
	hexPurpleLight   = "#DCBEFF"
	hexPurpleAccent  = "#B482FF"
	hexShortcut      = "#FF78C8"
	hexGreen         = "#96E696"
	hexYellow        = "#FFE696"
	hexTextPrimary   = "#FFFFFF"
	hexTextSecondary = "#B4B4B4"
	hexTextDimmed    = "#5A5A5A"
	hexBgHighlight   = "#3C2D5A"
	hexError         = "#FF7878"
)

var (
	colorPurplePrimary = lipgloss.Color(hexPurplePrimary)
	colorPurpleLight   = lipgloss.Color(hexPurpleLight)
	colorPurpleAccent  = lipgloss.Color(hexPurpleAccent)
	colorShortcut      = lipgloss.Color(hexShortcut)
	colorGreen         = lipgloss.Color(hexGreen)
	colorYellow        = lipgloss.Color(hexYellow)
	colorTextPrimary   = lipgloss.Color(hexTextPrimary)
	colorTextSecondary = lipgloss.Color(hexTextSecondary)
	colorTextDimmed    = lipgloss.Color(hexTextDimmed)
	colorError         = lipgloss.Color(hexError)
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurpleAccent).
			Padding(0, 1)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurplePrimary).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurplePrimary).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(hexBgHighlight)).
				Foreground(colorPurpleLight).
				Bold(true)

	spinnerStyle  = lipgloss.NewStyle().Foreground(colorPurplePrimary)
	shortcutStyle = lipgloss.NewStyle().Foreground(colorShortcut)
	textStyle     = lipgloss.NewStyle().Foreground(colorTextSecondary)
	valueStyle    = lipgloss.NewStyle().Foreground(colorTextPrimary)
	dimStyle      = lipgloss.NewStyle().Foreground(colorTextDimmed)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	atlStyle      = lipgloss.NewStyle().Foreground(colorPurpleAccent).Bold(true)
	greenStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	yellowStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// discountStyle picks the style tier for a discount percentage: deep cuts
// green, mid cuts gold, everything else muted.
func discountStyle(cut int) lipgloss.Style {
	switch {
	case cut >= 75:
		return greenStyle
	case cut >= 50:
		return yellowStyle
	default:
		return textStyle
	}
}

// blendHex interpolates between two palette colors in Luv space, which keeps
// perceived brightness even across the ramp.
func blendHex(from, to string, t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return lipgloss.Color(from)
	}
	return lipgloss.Color(a.BlendLuv(b, t).Clamped().Hex())
}

// revealStyle fades a row in from dimmed to full brightness as the list
// reveal animation passes over it.
func revealStyle(progress float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(blendHex(hexTextDimmed, hexTextSecondary, progress))
}
