package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modcn/modcn/internal/draft"
	"github.com/modcn/modcn/internal/kv"
	"github.com/modcn/modcn/internal/models"
	"github.com/modcn/modcn/internal/store"
)

func newTestModel(t *testing.T) (model, *draft.Engine) {
	t.Helper()
	adapter := store.New(kv.NewMemory(), zerolog.Nop())
	engine := draft.New(adapter, draft.Options{
		PersistWindow: 20 * time.Millisecond,
		Logger:        zerolog.Nop(),
	})
	t.Cleanup(engine.Close)
	return initialModel(Config{Engine: engine}), engine
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestInitialModelShowsSortedRoles(t *testing.T) {
	m, _ := newTestModel(t)

	require.NotEmpty(t, m.roles)
	assert.Equal(t, models.PreviewModeLight, m.mode)
	for i := 1; i < len(m.roles); i++ {
		assert.Less(t, m.roles[i-1], m.roles[i])
	}
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(keyMsg("j"))
	assert.Equal(t, 1, next.(model).cursor)

	next, _ = next.Update(keyMsg("k"))
	assert.Equal(t, 0, next.(model).cursor)

	// Never moves above the first row.
	next, _ = next.Update(keyMsg("k"))
	assert.Equal(t, 0, next.(model).cursor)
}

func TestModeToggleSwitchesValues(t *testing.T) {
	m, engine := newTestModel(t)

	next, _ := m.Update(keyMsg("m"))
	got := next.(model)
	assert.Equal(t, models.PreviewModeDark, got.mode)
	assert.Equal(t, models.PreviewModeDark, engine.Draft().UI.PreviewMode)
	assert.Equal(t, engine.Draft().Tokens.Modes.Dark[got.roles[0]], got.values[got.roles[0]])
}

func TestEditCommitValidHex(t *testing.T) {
	m, engine := newTestModel(t)
	role := m.roles[0]

	var next tea.Model
	next, _ = m.Update(keyMsg("enter"))
	require.Equal(t, editValue, next.(model).editing)

	// Replace the prefilled value entirely.
	for range next.(model).input {
		next, _ = next.Update(keyMsg("backspace"))
	}
	next = typeString(next, "ff0000")
	next, _ = next.Update(keyMsg("enter"))

	got := next.(model)
	assert.Equal(t, editNone, got.editing)
	assert.Equal(t, "#ff0000", engine.Draft().Tokens.Modes.Light[role])
	assert.True(t, got.dirty)
}

func TestEditRejectInvalidHexKeepsPrior(t *testing.T) {
	m, engine := newTestModel(t)
	role := m.roles[0]
	prior := engine.Draft().Tokens.Modes.Light[role]

	var next tea.Model
	next, _ = m.Update(keyMsg("enter"))
	for range next.(model).input {
		next, _ = next.Update(keyMsg("backspace"))
	}
	next = typeString(next, "not-a-color")
	next, _ = next.Update(keyMsg("enter"))

	got := next.(model)
	assert.Equal(t, editNone, got.editing)
	assert.True(t, got.isError)
	assert.Equal(t, prior, engine.Draft().Tokens.Modes.Light[role])
	assert.False(t, got.dirty)
}

func TestEditEscCancels(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(keyMsg("enter"))
	next, _ = next.Update(keyMsg("esc"))
	assert.Equal(t, editNone, next.(model).editing)
}

func TestSaveAsCreatesPreset(t *testing.T) {
	m, engine := newTestModel(t)

	var next tea.Model
	next, _ = m.Update(keyMsg("S"))
	require.Equal(t, editName, next.(model).editing)
	next = typeString(next, "Midnight")
	next, _ = next.Update(keyMsg("enter"))

	got := next.(model)
	assert.False(t, got.dirty)
	assert.NotEmpty(t, got.sourceID)
	assert.Equal(t, engine.Draft().SourcePresetID, got.sourceID)
	assert.Contains(t, got.status, "Midnight")
}

func TestSaveWithoutSourceReportsHint(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(keyMsg("s"))
	got := next.(model)
	assert.True(t, got.isError)
	assert.Contains(t, got.status, "No saved preset")
}

func TestViewShowsDirtyBadge(t *testing.T) {
	m, engine := newTestModel(t)

	tokens := engine.Draft().Tokens
	tokens.Modes.Light["primary"] = "#ff0000"
	engine.UpdateTokens(tokens)
	m.refresh()

	view := m.View()
	assert.Contains(t, view, "unsaved")
	assert.Contains(t, view, "modcn")
}

func TestViewSmallTerminal(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	view := next.(model).View()
	assert.True(t, strings.Contains(view, "Terminal too small"))
}
