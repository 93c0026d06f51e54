package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kiosk/internal/ui/component"
)

var (
	urlBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	indicatorStyles = map[component.GrantIndicatorState]lipgloss.Style{
		component.GrantIndicatorIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		component.GrantIndicatorGranted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		component.GrantIndicatorDenied:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		component.GrantIndicatorBlocked: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}

	indicatorGlyphs = map[component.GrantIndicatorState]string{
		component.GrantIndicatorIdle:    "○",
		component.GrantIndicatorGranted: "●",
		component.GrantIndicatorDenied:  "◐",
		component.GrantIndicatorBlocked: "⊘",
	}
)

func renderIndicator(state component.GrantIndicatorState) string {
	style, ok := indicatorStyles[state]
	if !ok {
		style = indicatorStyles[component.GrantIndicatorIdle]
	}
	glyph, ok := indicatorGlyphs[state]
	if !ok {
		glyph = "○"
	}
	return style.Render(glyph + " " + string(state))
}
