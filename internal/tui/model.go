// Package tui is the interactive color browser behind `viiv browse`.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/viiv-themes/viiv/internal/preview"
	"github.com/viiv-themes/viiv/internal/theme"
)

// Item is one browsable color: a workbench property or a token scope.
type Item struct {
	Name   string
	Value  string
	Source string
	Token  bool
}

type Model struct {
	state  ApplicationState
	styles Styles

	title      string
	items      []Item
	filtered   []int
	cursor     int
	offset     int
	background string

	filterInput textinput.Model
	swatchWidth int

	width, height int
}

// Items lists the colors of a rendered theme; template supplies the source
// values and may be nil.
func Items(rendered, template *theme.Document) []Item {
	items := make([]Item, 0, rendered.Colors.Len()+len(rendered.TokenColors))
	for pair := rendered.Colors.Oldest(); pair != nil; pair = pair.Next() {
		item := Item{Name: pair.Key, Value: pair.Value}
		if template != nil {
			item.Source, _ = template.Colors.Get(pair.Key)
		}
		items = append(items, item)
	}
	sources := tokenSources(template)
	for _, tc := range rendered.TokenColors {
		if tc.Settings.Foreground == "" {
			continue
		}
		items = append(items, Item{
			Name:   tc.Scope.First(),
			Value:  tc.Settings.Foreground,
			Source: sources[tc.Scope.First()],
			Token:  true,
		})
	}
	return items
}

// tokenSources maps the first scope of each template token to its foreground.
// The first token with a scope wins.
func tokenSources(template *theme.Document) map[string]string {
	sources := make(map[string]string)
	if template == nil {
		return sources
	}
	for _, tc := range template.TokenColors {
		if _, ok := sources[tc.Scope.First()]; !ok && tc.Settings.Foreground != "" {
			sources[tc.Scope.First()] = tc.Settings.Foreground
		}
	}
	return sources
}

func NewModel(rendered, template *theme.Document, swatchWidth int) Model {
	input := textinput.New()
	input.Placeholder = "fuzzy filter"
	input.Prompt = "/ "
	input.CharLimit = 64

	if swatchWidth <= 0 {
		swatchWidth = preview.DefaultSwatchWidth
	}

	m := Model{
		state:       StateBrowse,
		styles:      NewStyles(),
		title:       rendered.Name(),
		items:       Items(rendered, template),
		filterInput: input,
		swatchWidth: swatchWidth,
		height:      24,
	}
	m.background, _ = rendered.Colors.Get("editor.background")
	m.applyFilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateFilter:
		return m.updateFilterState(msg)
	case StateDetail:
		return m.updateDetailState(msg)
	default:
		return m.updateBrowseState(msg)
	}
}

func (m Model) View() string {
	switch m.state {
	case StateDetail:
		return m.viewDetail()
	default:
		return m.viewBrowse()
	}
}

// Selected is the item under the cursor.
func (m Model) Selected() (Item, bool) {
	if len(m.filtered) == 0 {
		return Item{}, false
	}
	return m.items[m.filtered[m.cursor]], true
}

func (m Model) State() ApplicationState { return m.state }

// Visible lists the items passing the current filter.
func (m Model) Visible() []Item {
	out := make([]Item, len(m.filtered))
	for i, idx := range m.filtered {
		out[i] = m.items[idx]
	}
	return out
}

func (m *Model) applyFilter() {
	query := m.filterInput.Value()
	filtered := make([]int, 0, len(m.items))
	for i, item := range m.items {
		if query == "" || fuzzy.MatchFold(query, item.Name) {
			filtered = append(filtered, i)
		}
	}
	m.filtered = filtered
	m.cursor = 0
	m.offset = 0
}

func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// listRows is the number of list lines left after header and help.
func (m Model) listRows() int {
	return max(m.height-5, 1)
}

func Run(rendered, template *theme.Document, swatchWidth int) error {
	p := tea.NewProgram(NewModel(rendered, template, swatchWidth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
