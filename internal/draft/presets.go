package draft

import (
	"context"
	"errors"
	"strings"

	"github.com/modcn/modcn/internal/models"
	"github.com/modcn/modcn/internal/store"
)

// ApplyPreset loads a preset's current tokens into the working draft,
// links the draft to it and clears dirty. A missing id is a silent
// no-op so a dangling reference never clobbers live edits.
func (e *Engine) ApplyPreset(ctx context.Context, id string) {
	preset, err := e.adapter.LoadPreset(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPresetNotFound) {
			e.logger.Debug().Str("preset_id", id).Msg("apply skipped, preset not found")
		} else {
			e.logger.Error().Err(err).Str("preset_id", id).Msg("apply skipped, preset unreadable")
		}
		return
	}

	e.mu.Lock()
	prevTypography := e.draft.Tokens.Shared.Typography
	e.draft.Tokens = preset.Tokens.Clone()
	e.draft.SourcePresetID = preset.ID
	e.draft.Dirty = false
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.requestFonts(prevTypography, preset.Tokens.Shared.Typography)
	e.schedulePersist()
	e.notify(snapshot)
}

// SaveAsNewPreset captures the draft's current tokens as a brand-new
// preset with a single version, links the draft to it and clears
// dirty. The name is trimmed and must be non-empty.
func (e *Engine) SaveAsNewPreset(ctx context.Context, name string) (*models.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidPresetName
	}

	e.mu.Lock()
	tokens := e.draft.Tokens.Clone()
	e.mu.Unlock()

	preset := models.NewPreset(name, tokens, e.clock())
	if err := e.adapter.SavePreset(ctx, preset); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.draft.SourcePresetID = preset.ID
	e.draft.Dirty = false
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.schedulePersist()
	e.notify(snapshot)
	e.logger.Info().Str("preset_id", preset.ID).Str("name", name).Msg("preset created")
	return preset, nil
}

// SaveToCurrentPreset appends the draft's tokens as a new version of
// the draft's source preset and clears dirty. When the draft has no
// source, or the source no longer exists, it is a no-op returning nil.
func (e *Engine) SaveToCurrentPreset(ctx context.Context) (*models.Preset, error) {
	e.mu.Lock()
	sourceID := e.draft.SourcePresetID
	tokens := e.draft.Tokens.Clone()
	e.mu.Unlock()

	if sourceID == "" {
		return nil, nil
	}
	preset, err := e.adapter.LoadPreset(ctx, sourceID)
	if err != nil {
		if errors.Is(err, store.ErrPresetNotFound) {
			e.logger.Debug().Str("preset_id", sourceID).Msg("save skipped, source preset not found")
			return nil, nil
		}
		return nil, err
	}

	preset.AppendVersion(tokens, e.clock())
	if err := e.adapter.SavePreset(ctx, preset); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.draft.Dirty = false
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.schedulePersist()
	e.notify(snapshot)
	e.logger.Info().
		Str("preset_id", preset.ID).
		Str("version", preset.Versions[len(preset.Versions)-1].ID).
		Msg("preset version appended")
	return preset, nil
}

// RenamePreset updates a stored preset's display name. The working
// draft is untouched; only name and updatedAt change.
func (e *Engine) RenamePreset(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidPresetName
	}
	preset, err := e.adapter.LoadPreset(ctx, id)
	if err != nil {
		return err
	}
	preset.Name = name
	preset.UpdatedAt = e.clock()
	return e.adapter.SavePreset(ctx, preset)
}

// DeletePreset removes a stored preset. A draft linked to the deleted
// preset keeps its tokens and its now-dangling source id; subsequent
// source-dependent operations degrade to their no-source behavior.
func (e *Engine) DeletePreset(ctx context.Context, id string) error {
	return e.adapter.DeletePreset(ctx, id)
}

// ListPresets returns the stored presets, newest first.
func (e *Engine) ListPresets(ctx context.Context) ([]*models.Preset, error) {
	return e.adapter.ListPresets(ctx)
}
