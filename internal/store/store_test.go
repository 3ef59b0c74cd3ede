package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modcn/modcn/internal/kv"
	"github.com/modcn/modcn/internal/models"
)

func newAdapter(t *testing.T) (*Adapter, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	return New(mem, zerolog.Nop()), mem
}

func TestLoadWorkingDraftMissing(t *testing.T) {
	adapter, _ := newAdapter(t)
	assert.Nil(t, adapter.LoadWorkingDraft(context.Background()))
}

func TestLoadWorkingDraftMalformed(t *testing.T) {
	adapter, mem := newAdapter(t)
	require.NoError(t, mem.Set(context.Background(), DraftKey, "{not json"))
	assert.Nil(t, adapter.LoadWorkingDraft(context.Background()))
}

func TestLoadWorkingDraftShapeCheck(t *testing.T) {
	adapter, mem := newAdapter(t)

	// tokens present but ui and dirty missing: reject, use defaults.
	require.NoError(t, mem.Set(context.Background(), DraftKey, `{"tokens":{"modes":{"light":{},"dark":{}},"shared":{}}}`))
	assert.Nil(t, adapter.LoadWorkingDraft(context.Background()))
}

func TestLoadWorkingDraftRejectsPartialTokens(t *testing.T) {
	adapter, mem := newAdapter(t)
	ctx := context.Background()

	// Shape-complete records whose token maps are null would hand every
	// edit path a nil map to write into.
	records := map[string]string{
		"null color modes": `{"tokens":{"modes":{"light":null,"dark":null},"shared":{"typography":{}}},"ui":{"preview_mode":"light"},"dirty":false}`,
		"missing dark":     `{"tokens":{"modes":{"light":{"primary":"#112233"}},"shared":{"typography":{}}},"ui":{"preview_mode":"light"},"dirty":false}`,
		"null typography":  `{"tokens":{"modes":{"light":{},"dark":{}},"shared":{"typography":null}},"ui":{"preview_mode":"light"},"dirty":false}`,
	}
	for name, record := range records {
		require.NoError(t, mem.Set(ctx, DraftKey, record))
		assert.Nil(t, adapter.LoadWorkingDraft(ctx), name)
	}

	// The fallback draft stays editable.
	draft := models.NewWorkingDraft()
	draft.Tokens.Modes.Light["primary"] = "#445566"
	draft.Tokens.Shared.Typography["font-sans"] = "Inter, system-ui, sans-serif"
	assert.Equal(t, "#445566", draft.Tokens.Modes.Light["primary"])
}

func TestWorkingDraftRoundTrip(t *testing.T) {
	adapter, _ := newAdapter(t)
	ctx := context.Background()

	draft := models.NewWorkingDraft()
	draft.SourcePresetID = "preset-x"
	draft.Dirty = true
	draft.UI.PreviewMode = models.PreviewModeDark

	require.NoError(t, adapter.SaveWorkingDraft(ctx, draft))

	loaded := adapter.LoadWorkingDraft(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, "preset-x", loaded.SourcePresetID)
	assert.True(t, loaded.Dirty)
	assert.Equal(t, models.PreviewModeDark, loaded.UI.PreviewMode)
	assert.True(t, draft.Tokens.Equal(loaded.Tokens))
}

func TestLoadWorkingDraftBackfillsUIFields(t *testing.T) {
	adapter, mem := newAdapter(t)
	ctx := context.Background()

	// Older record: ui present but only preview_mode set.
	record := `{
		"tokens": {"modes":{"light":{},"dark":{}},"shared":{"typography":{}}},
		"ui": {"preview_mode":"dark"},
		"dirty": false
	}`
	require.NoError(t, mem.Set(ctx, DraftKey, record))

	loaded := adapter.LoadWorkingDraft(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, models.PreviewModeDark, loaded.UI.PreviewMode)
	assert.Equal(t, models.SidebarTabColors, loaded.UI.SidebarTab)
	assert.Equal(t, models.PreviewTabComponents, loaded.UI.PreviewTab)
	assert.NotNil(t, loaded.UI.ExpandedGroups)
}

func TestPresetRoundTrip(t *testing.T) {
	adapter, _ := newAdapter(t)
	ctx := context.Background()

	preset := models.NewPreset("Demo", models.DefaultTokens(), time.Now())
	require.NoError(t, adapter.SavePreset(ctx, preset))

	loaded, err := adapter.LoadPreset(ctx, preset.ID)
	require.NoError(t, err)
	assert.Equal(t, preset.ID, loaded.ID)
	assert.Equal(t, "Demo", loaded.Name)
	require.Len(t, loaded.Versions, 1)
	assert.True(t, preset.Tokens.Equal(loaded.Tokens))
}

func TestLoadPresetNotFound(t *testing.T) {
	adapter, _ := newAdapter(t)
	_, err := adapter.LoadPreset(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrPresetNotFound))
}

func TestDeletePreset(t *testing.T) {
	adapter, _ := newAdapter(t)
	ctx := context.Background()

	preset := models.NewPreset("Demo", models.DefaultTokens(), time.Now())
	require.NoError(t, adapter.SavePreset(ctx, preset))
	require.NoError(t, adapter.DeletePreset(ctx, preset.ID))

	_, err := adapter.LoadPreset(ctx, preset.ID)
	assert.True(t, errors.Is(err, ErrPresetNotFound))
}

func TestListPresetsOrderAndSkipsMalformed(t *testing.T) {
	adapter, mem := newAdapter(t)
	ctx := context.Background()

	older := models.NewPreset("Older", models.DefaultTokens(), time.Now().Add(-time.Hour))
	newer := models.NewPreset("Newer", models.DefaultTokens(), time.Now())
	require.NoError(t, adapter.SavePreset(ctx, older))
	require.NoError(t, adapter.SavePreset(ctx, newer))
	require.NoError(t, mem.Set(ctx, PresetKey("broken"), "{not json"))

	presets, err := adapter.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "Newer", presets[0].Name)
	assert.Equal(t, "Older", presets[1].Name)
}
