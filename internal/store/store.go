// Package store persists the working draft and presets as JSON records
// in a key-value store. Every failure here is non-fatal: a failed read
// means "use defaults", a failed write means "in-memory state is
// unsynced but usable".
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/modcn/modcn/internal/kv"
	"github.com/modcn/modcn/internal/models"
)

// Persistence keys. One fixed key holds the working draft; presets live
// under the prefix plus their id. No other key shapes exist.
const (
	DraftKey     = "modcn-draft"
	PresetPrefix = "modcn-preset:"
)

// Store errors.
var (
	ErrPresetNotFound = errors.New("preset not found")
)

// Adapter reads and writes draft and preset records.
type Adapter struct {
	store  kv.Store
	logger zerolog.Logger
}

// New creates an Adapter over the given key-value store.
func New(store kv.Store, logger zerolog.Logger) *Adapter {
	return &Adapter{store: store, logger: logger}
}

// PresetKey returns the storage key for a preset id.
func PresetKey(id string) string {
	return PresetPrefix + id
}

// draftRecord mirrors the persisted draft shape with pointer fields so
// presence of the required parts is checkable before acceptance.
type draftRecord struct {
	SourcePresetID string         `json:"source_preset_id"`
	Tokens         *models.Tokens `json:"tokens"`
	UI             *draftUIRecord `json:"ui"`
	Dirty          *bool          `json:"dirty"`
}

type draftUIRecord struct {
	PreviewMode    *models.PreviewMode `json:"preview_mode"`
	SidebarTab     *models.SidebarTab  `json:"sidebar_tab"`
	PreviewTab     *models.PreviewTab  `json:"preview_tab"`
	ExpandedGroups map[string]bool     `json:"expanded_groups"`
}

// LoadWorkingDraft returns the persisted draft, or nil when the record
// is missing, unparsable or fails the shape check (tokens, ui and dirty
// must all be present). Missing ui sub-fields are back-filled with
// defaults so older records keep loading.
func (a *Adapter) LoadWorkingDraft(ctx context.Context) *models.WorkingDraft {
	raw, ok, err := a.store.Get(ctx, DraftKey)
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to read working draft, using defaults")
		return nil
	}
	if !ok {
		return nil
	}

	var record draftRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		a.logger.Warn().Err(err).Msg("working draft record is malformed, using defaults")
		return nil
	}
	if record.Tokens == nil || record.UI == nil || record.Dirty == nil {
		a.logger.Warn().Msg("working draft record failed shape check, using defaults")
		return nil
	}
	// Loaded tokens must be fully populated. A record with missing
	// color-mode or typography maps would hand out nil maps that every
	// edit path writes into.
	if record.Tokens.Modes.Light == nil || record.Tokens.Modes.Dark == nil || record.Tokens.Shared.Typography == nil {
		a.logger.Warn().Msg("working draft tokens are partial, using defaults")
		return nil
	}

	ui := models.DefaultDraftUI()
	if record.UI.PreviewMode != nil && models.ParsePreviewMode(string(*record.UI.PreviewMode)) != "" {
		ui.PreviewMode = *record.UI.PreviewMode
	}
	if record.UI.SidebarTab != nil {
		ui.SidebarTab = *record.UI.SidebarTab
	}
	if record.UI.PreviewTab != nil {
		ui.PreviewTab = *record.UI.PreviewTab
	}
	if record.UI.ExpandedGroups != nil {
		ui.ExpandedGroups = record.UI.ExpandedGroups
	}

	return &models.WorkingDraft{
		SourcePresetID: record.SourcePresetID,
		Tokens:         *record.Tokens,
		UI:             ui,
		Dirty:          *record.Dirty,
	}
}

// SaveWorkingDraft serializes and overwrites the single draft record.
// Failure is logged, never propagated as a control-flow signal: the
// in-memory draft stays authoritative. The error is returned only so
// callers can count or surface it.
func (a *Adapter) SaveWorkingDraft(ctx context.Context, draft *models.WorkingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to serialize working draft")
		return err
	}
	if err := a.store.Set(ctx, DraftKey, string(data)); err != nil {
		a.logger.Error().Err(err).Msg("failed to save working draft")
		return err
	}
	a.logger.Debug().Bool("dirty", draft.Dirty).Msg("working draft saved")
	return nil
}

// SavePreset writes the preset record under its keyed slot.
func (a *Adapter) SavePreset(ctx context.Context, preset *models.Preset) error {
	if preset == nil || strings.TrimSpace(preset.ID) == "" {
		return fmt.Errorf("preset id is required")
	}
	data, err := json.Marshal(preset)
	if err != nil {
		return fmt.Errorf("serialize preset %s: %w", preset.ID, err)
	}
	if err := a.store.Set(ctx, PresetKey(preset.ID), string(data)); err != nil {
		a.logger.Error().Err(err).Str("preset_id", preset.ID).Msg("failed to save preset")
		return err
	}
	a.logger.Debug().Str("preset_id", preset.ID).Str("name", preset.Name).Msg("preset saved")
	return nil
}

// LoadPreset returns the preset by id, or ErrPresetNotFound when the key
// is absent or its record cannot be parsed.
func (a *Adapter) LoadPreset(ctx context.Context, id string) (*models.Preset, error) {
	raw, ok, err := a.store.Get(ctx, PresetKey(id))
	if err != nil {
		a.logger.Warn().Err(err).Str("preset_id", id).Msg("failed to read preset")
		return nil, ErrPresetNotFound
	}
	if !ok {
		return nil, ErrPresetNotFound
	}

	var preset models.Preset
	if err := json.Unmarshal([]byte(raw), &preset); err != nil {
		a.logger.Warn().Err(err).Str("preset_id", id).Msg("preset record is malformed")
		return nil, ErrPresetNotFound
	}
	return &preset, nil
}

// DeletePreset removes the preset key outright. All of its versions go
// with it.
func (a *Adapter) DeletePreset(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, PresetKey(id)); err != nil {
		a.logger.Error().Err(err).Str("preset_id", id).Msg("failed to delete preset")
		return err
	}
	a.logger.Debug().Str("preset_id", id).Msg("preset deleted")
	return nil
}

// ListPresets enumerates all preset records, skipping and logging
// individually malformed entries, and returns them sorted by CreatedAt
// descending (newest first). Consumers rely on this ordering.
func (a *Adapter) ListPresets(ctx context.Context) ([]*models.Preset, error) {
	keys, err := a.store.Keys(ctx, PresetPrefix)
	if err != nil {
		return nil, fmt.Errorf("enumerate presets: %w", err)
	}

	presets := make([]*models.Preset, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := a.store.Get(ctx, key)
		if err != nil || !ok {
			a.logger.Warn().Err(err).Str("key", key).Msg("skipping unreadable preset record")
			continue
		}
		var preset models.Preset
		if err := json.Unmarshal([]byte(raw), &preset); err != nil {
			a.logger.Warn().Err(err).Str("key", key).Msg("skipping malformed preset record")
			continue
		}
		presets = append(presets, &preset)
	}

	sort.SliceStable(presets, func(i, j int) bool {
		return presets[i].CreatedAt.After(presets[j].CreatedAt)
	})
	return presets, nil
}
