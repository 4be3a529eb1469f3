package ui

import "github.com/charmbracelet/lipgloss"

// Palette is the lipgloss color set used for boxed output such as the
// verdict banner.
type Palette struct {
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkPalette pairs with DarkTheme.
	DarkPalette = Palette{
		Border:  lipgloss.Color("#4488FF"),
		Accent:  lipgloss.Color("#00AFFF"),
		Success: lipgloss.Color("#9ECE6A"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#8A8A8A"),
	}

	// NoColorPalette renders with the terminal's default colors.
	NoColorPalette = Palette{
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// CurrentPalette returns the palette matching the active theme.
func CurrentPalette() Palette {
	if !ColorsEnabled() {
		return NoColorPalette
	}
	return DarkPalette
}

// VerdictStyles holds the styles of the verdict banner.
type VerdictStyles struct {
	Box         lipgloss.Style
	Title       lipgloss.Style
	Label       lipgloss.Style
	Trustworthy lipgloss.Style
	Untrusted   lipgloss.Style
}

// NewVerdictStyles builds the banner styles for the active theme.
func NewVerdictStyles() VerdictStyles {
	p := CurrentPalette()
	return VerdictStyles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Label:       lipgloss.NewStyle().Foreground(p.Dim).Width(16),
		Trustworthy: lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		Untrusted:   lipgloss.NewStyle().Bold(true).Foreground(p.Error),
	}
}
