package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/viiv-themes/viiv/internal/palette"
	"github.com/viiv-themes/viiv/internal/preview"
)

func (m Model) viewDetail() string {
	var b strings.Builder

	item, ok := m.Selected()
	if !ok {
		return m.viewBrowse()
	}

	b.WriteString(m.styles.Title.Render(item.Name))
	b.WriteString("\n\n")
	b.WriteString(preview.Swatch(item.Value, item.Value, m.swatchWidth*3))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", m.styles.Subtle.Render("value:   "), item.Value)
	if item.Source != "" {
		fmt.Fprintf(&b, "%s %s\n", m.styles.Subtle.Render("template:"), item.Source)
	}
	if hex := item.Value; len(hex) >= 7 && palette.IsHex(hex[:7]) {
		fmt.Fprintf(&b, "%s %.3f\n", m.styles.Subtle.Render("luminance:"), palette.Luminance(hex[:7]))
		if bg := m.background; len(bg) >= 7 && palette.IsHex(bg[:7]) && item.Name != "editor.background" {
			ratio := palette.ContrastRatio(hex[:7], bg[:7])
			style := m.styles.Success
			if ratio < 4.5 {
				style = m.styles.Error
			}
			fmt.Fprintf(&b, "%s %s\n", m.styles.Subtle.Render("contrast on editor.background:"), style.Render(fmt.Sprintf("%.2f", ratio)))
		}
	}

	b.WriteString("\n")
	help := m.styles.Subtle.Render("Press Esc to go back")
	b.WriteString(help)

	return b.String()
}

func (m Model) updateDetailState(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter", "backspace":
			m.state = StateBrowse
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}
