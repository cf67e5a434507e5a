package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viiv-themes/viiv/internal/palette"
	"github.com/viiv-themes/viiv/internal/theme"
)

const templateJSON = `{
    "name": "viiv-test",
    "colors": {
        "editor.background": "C_01_00",
        "editor.foreground": "C_02_01",
        "statusBar.background": "C_01_0080",
        "widget.shadow": "#00000040"
    },
    "tokenColors": [
        {"scope": "comment", "settings": {"foreground": "C_02_00"}},
        {"scope": "markup.bold", "settings": {"fontStyle": "bold"}}
    ]
}`

func newModel(t *testing.T) Model {
	t.Helper()
	tmpl, err := theme.Parse([]byte(templateJSON))
	require.NoError(t, err)

	p := palette.New()
	p.Set("C_01_00", "#101010")
	p.Set("C_02_00", "#e0e0e0")
	p.Set("C_02_01", "#f0f0f0")
	out, _, err := theme.Render(tmpl, p)
	require.NoError(t, err)
	return NewModel(out, tmpl, 0)
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestItems(t *testing.T) {
	m := newModel(t)
	items := m.Visible()
	require.Len(t, items, 5)
	assert.Equal(t, []string{"editor.background", "editor.foreground", "statusBar.background", "widget.shadow", "comment"}, names(items))
	assert.Equal(t, "C_01_00", items[0].Source)
	assert.Equal(t, "#101010", items[0].Value)
	assert.True(t, items[4].Token)
	assert.Equal(t, "C_02_00", items[4].Source)
}

func TestItemsTokenSourceByScope(t *testing.T) {
	rendered, err := theme.Parse([]byte(`{
        "colors": {"editor.background": "#101010"},
        "tokenColors": [
            {"scope": "comment", "settings": {"foreground": "#e0e0e0"}},
            {"scope": ["string", "string.quoted"], "settings": {"foreground": "#d0d0d0"}},
            {"scope": "keyword", "settings": {"foreground": "#c0c0c0"}}
        ]
    }`))
	require.NoError(t, err)

	reassigned, err := theme.Parse([]byte(`{
        "colors": {"editor.background": "C_01_00"},
        "tokenColors": [
            {"scope": "markup.bold", "settings": {"fontStyle": "bold"}},
            {"scope": "string", "settings": {"foreground": "C_03_01"}},
            {"scope": "comment", "settings": {"foreground": "C_02_00"}},
            {"scope": "comment", "settings": {"foreground": "C_09_09"}}
        ]
    }`))
	require.NoError(t, err)

	tests := []struct {
		name     string
		template *theme.Document
		sources  map[string]string
	}{
		{"reordered template", reassigned, map[string]string{"comment": "C_02_00", "string": "C_03_01", "keyword": ""}},
		{"no template", nil, map[string]string{"comment": "", "string": "", "keyword": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources := make(map[string]string)
			for _, item := range Items(rendered, tt.template) {
				if item.Token {
					sources[item.Name] = item.Source
				}
			}
			assert.Equal(t, tt.sources, sources)
		})
	}
}

func TestCursorNavigation(t *testing.T) {
	m := newModel(t)

	m, _ = send(m, key(tea.KeyDown), runes("j"))
	item, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "statusBar.background", item.Name)

	m, _ = send(m, key(tea.KeyUp))
	item, _ = m.Selected()
	assert.Equal(t, "editor.foreground", item.Name)

	m, _ = send(m, key(tea.KeyUp), key(tea.KeyUp), key(tea.KeyUp))
	item, _ = m.Selected()
	assert.Equal(t, "editor.background", item.Name)

	m, _ = send(m, runes("G"))
	item, _ = m.Selected()
	assert.Equal(t, "comment", item.Name)

	m, _ = send(m, runes("j"))
	item, _ = m.Selected()
	assert.Equal(t, "comment", item.Name)
}

func TestFuzzyFilter(t *testing.T) {
	m := newModel(t)

	m, _ = send(m, runes("/"))
	assert.Equal(t, StateFilter, m.State())

	m, _ = send(m, runes("e"), runes("b"), runes("g"))
	assert.Equal(t, []string{"editor.background"}, names(m.Visible()))

	m, _ = send(m, key(tea.KeyEnter))
	assert.Equal(t, StateBrowse, m.State())
	assert.Len(t, m.Visible(), 1)

	m, _ = send(m, key(tea.KeyEsc))
	assert.Len(t, m.Visible(), 5)
	assert.Equal(t, StateBrowse, m.State())
}

func TestFilterNoMatch(t *testing.T) {
	m := newModel(t)
	m, _ = send(m, runes("/"), runes("zzz"))
	assert.Empty(t, m.Visible())
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No colors match")

	m, _ = send(m, key(tea.KeyEsc))
	assert.Len(t, m.Visible(), 5)
}

func TestDetail(t *testing.T) {
	m := newModel(t)
	m, _ = send(m, key(tea.KeyDown), key(tea.KeyEnter))
	assert.Equal(t, StateDetail, m.State())

	view := m.View()
	assert.Contains(t, view, "editor.foreground")
	assert.Contains(t, view, "#f0f0f0")
	assert.Contains(t, view, "C_02_01")
	assert.Contains(t, view, "contrast")

	m, _ = send(m, key(tea.KeyEsc))
	assert.Equal(t, StateBrowse, m.State())
}

func TestQuit(t *testing.T) {
	m := newModel(t)

	_, cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = send(m, key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestScrolling(t *testing.T) {
	m := newModel(t)
	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 7})
	assert.Equal(t, 2, m.listRows())

	m, _ = send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 3, m.cursor)
	assert.Equal(t, 2, m.offset)
	assert.NotContains(t, m.View(), "editor.background")
}
