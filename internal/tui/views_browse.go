package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/viiv-themes/viiv/internal/preview"
)

func (m Model) viewBrowse() string {
	var b strings.Builder

	title := m.styles.Title.Render(m.title)
	b.WriteString(title)
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  %d/%d", len(m.filtered), len(m.items))))
	b.WriteString("\n")

	if m.state == StateFilter || m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
	}
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(m.styles.Error.Render("No colors match the filter"))
		b.WriteString("\n")
	}

	end := min(m.offset+m.listRows(), len(m.filtered))
	for i := m.offset; i < end; i++ {
		item := m.items[m.filtered[i]]
		name := item.Name
		if item.Token {
			name = "token: " + name
		}
		line := fmt.Sprintf("%s %s", preview.Swatch(item.Value, item.Value, m.swatchWidth), name)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := m.styles.Subtle.Render("↑/↓ move, / filter, Enter details, q quit")
	b.WriteString(help)

	return b.String()
}

func (m Model) updateBrowseState(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.applyFilter()
			return m, nil
		}
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-m.listRows())
	case "pgdown":
		m.moveCursor(m.listRows())
	case "home", "g":
		m.moveCursor(-len(m.filtered))
	case "end", "G":
		m.moveCursor(len(m.filtered))
	case "/":
		m.state = StateFilter
		return m, m.filterInput.Focus()
	case "enter":
		if _, ok := m.Selected(); ok {
			m.state = StateDetail
		}
	}
	return m, nil
}

func (m Model) updateFilterState(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "up", "down":
			m.state = StateBrowse
			m.filterInput.Blur()
			if keyMsg.String() != "enter" {
				return m.updateBrowseState(msg)
			}
			return m, nil
		case "esc":
			m.state = StateBrowse
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.applyFilter()
			return m, nil
		}
	}

	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}
