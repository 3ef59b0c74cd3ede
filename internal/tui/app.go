// Package tui implements the modcn terminal token editor.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modcn/modcn/internal/draft"
	"github.com/modcn/modcn/internal/models"
	"github.com/modcn/modcn/internal/tui/styles"
)

// Config wires the TUI to its runtime.
type Config struct {
	Engine *draft.Engine
	Theme  string
}

// Run launches the editor program.
func Run(cfg Config) error {
	program := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type editState int

const (
	editNone editState = iota
	editValue
	editName
)

const (
	minWidth  = 50
	minHeight = 12
)

type model struct {
	engine *draft.Engine
	styles styles.Styles

	width  int
	height int

	mode     models.PreviewMode
	roles    []string
	values   models.ColorMap
	dirty    bool
	sourceID string

	cursor  int
	editing editState
	input   string
	status  string
	isError bool
}

func initialModel(cfg Config) model {
	theme, ok := styles.Themes[cfg.Theme]
	if !ok {
		theme = styles.DefaultTheme
	}
	m := model{
		engine: cfg.Engine,
		styles: styles.BuildStyles(theme),
	}
	m.refresh()
	return m
}

// refresh pulls the engine's current state into the view model.
func (m *model) refresh() {
	current := m.engine.Draft()
	m.mode = current.UI.PreviewMode
	m.dirty = current.Dirty
	m.sourceID = current.SourcePresetID

	colors := current.Tokens.Modes.Light
	if m.mode == models.PreviewModeDark {
		colors = current.Tokens.Modes.Dark
	}
	m.values = colors
	m.roles = colors.SortedRoles()
	if m.cursor >= len(m.roles) {
		m.cursor = len(m.roles) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.roles)-1 {
			m.cursor++
		}
	case "m", "tab":
		next := models.PreviewModeDark
		if m.mode == models.PreviewModeDark {
			next = models.PreviewModeLight
		}
		m.engine.SetPreviewMode(next)
		m.refresh()
		m.setStatus(fmt.Sprintf("Preview mode: %s", next), false)
	case "enter", "e":
		if len(m.roles) > 0 {
			m.editing = editValue
			m.input = m.values[m.roles[m.cursor]]
			m.status = ""
		}
	case "s":
		preset, err := m.engine.SaveToCurrentPreset(context.Background())
		switch {
		case err != nil:
			m.setStatus(err.Error(), true)
		case preset == nil:
			m.setStatus("No saved preset; press S to save as new.", true)
		default:
			m.refresh()
			m.setStatus(fmt.Sprintf("Saved %s to %s.", preset.Versions[len(preset.Versions)-1].ID, preset.Name), false)
		}
	case "S":
		m.editing = editName
		m.input = ""
		m.status = ""
	case "r":
		m.engine.ResetWorkingDraft()
		m.refresh()
		m.setStatus("Draft reset.", false)
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = editNone
		m.input = ""
	case "enter":
		return m.commitEdit()
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.input += " "
		}
	}
	return m, nil
}

// commitEdit applies the pending input. A rejected value keeps the prior
// token untouched and reports why.
func (m model) commitEdit() (tea.Model, tea.Cmd) {
	switch m.editing {
	case editValue:
		hex, ok := models.NormalizeHex(m.input)
		if !ok {
			m.setStatus(fmt.Sprintf("Invalid color %q; kept %s.", m.input, m.values[m.roles[m.cursor]]), true)
			m.editing = editNone
			m.input = ""
			return m, nil
		}
		tokens := m.engine.Draft().Tokens
		role := m.roles[m.cursor]
		if m.mode == models.PreviewModeDark {
			tokens.Modes.Dark[role] = hex
		} else {
			tokens.Modes.Light[role] = hex
		}
		m.engine.UpdateTokens(tokens)
		m.refresh()
		m.setStatus(fmt.Sprintf("%s = %s", role, hex), false)
	case editName:
		preset, err := m.engine.SaveAsNewPreset(context.Background(), m.input)
		if err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.refresh()
			m.setStatus(fmt.Sprintf("Created preset %s.", preset.Name), false)
		}
	}
	m.editing = editNone
	m.input = ""
	return m, nil
}

func (m *model) setStatus(text string, isError bool) {
	m.status = text
	m.isError = isError
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return fmt.Sprintf("%s\n%s\n",
			m.styles.Error.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
			m.styles.Muted.Render(fmt.Sprintf("Resize to at least %dx%d, or press q.", minWidth, minHeight)))
	}

	lines := []string{m.titleLine(), ""}
	lines = append(lines, m.roleLines()...)
	lines = append(lines, "", m.inputLine())
	if m.status != "" {
		style := m.styles.Success
		if m.isError {
			style = m.styles.Error
		}
		lines = append(lines, style.Render(m.status))
	}
	lines = append(lines, "", m.styles.Muted.Render(
		"j/k move | enter edit | m mode | s save | S save as | r reset | q quit"))
	return strings.Join(lines, "\n") + "\n"
}

func (m model) titleLine() string {
	badge := m.styles.Clean.Render("saved")
	if m.dirty {
		badge = m.styles.Dirty.Render("unsaved")
	}
	source := "no preset"
	if m.sourceID != "" {
		source = m.sourceID
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		m.styles.Title.Render("modcn"),
		m.styles.Accent.Render(string(m.mode)),
		m.styles.Muted.Render(source),
		badge)
}

func (m model) roleLines() []string {
	visible := len(m.roles)
	maxRows := m.height - 8
	if maxRows > 0 && visible > maxRows {
		visible = maxRows
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	lines := make([]string, 0, visible)
	for i := start; i < start+visible && i < len(m.roles); i++ {
		role := m.roles[i]
		marker := "  "
		style := m.styles.Text
		if i == m.cursor {
			marker = "> "
			style = m.styles.Selected
		}
		lines = append(lines, fmt.Sprintf("%s%s %s  %s",
			marker, styles.Swatch(m.values[role]), style.Render(fmt.Sprintf("%-24s", role)), m.styles.Muted.Render(m.values[role])))
	}
	return lines
}

func (m model) inputLine() string {
	switch m.editing {
	case editValue:
		return m.styles.Accent.Render(fmt.Sprintf("New value for %s: ", m.roles[m.cursor])) + m.styles.Input.Render(m.input+"▌")
	case editName:
		return m.styles.Accent.Render("Preset name: ") + m.styles.Input.Render(m.input+"▌")
	default:
		return ""
	}
}
