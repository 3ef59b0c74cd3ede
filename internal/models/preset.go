package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PresetSchemaVersion tags persisted presets for forward migration.
const PresetSchemaVersion = 1

// VersionSnapshot is an immutable point-in-time copy of a preset's
// tokens. IDs are dense and strictly increasing within a preset
// ("v001", "v002", ...), derived from the 1-based list position.
type VersionSnapshot struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	Tokens    Tokens    `json:"tokens"`
}

// VersionID formats the snapshot id for a 1-based position.
func VersionID(position int) string {
	return fmt.Sprintf("v%03d", position)
}

// Preset is a named, durable token configuration with an append-only
// version history (insertion order = chronological, oldest first).
type Preset struct {
	SchemaVersion int               `json:"schema_version"`
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Tokens        Tokens            `json:"tokens"`
	Versions      []VersionSnapshot `json:"versions"`
}

// NewPresetID generates a time-derived, collision-resistant preset id.
func NewPresetID(now time.Time) string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("preset-%s-%s", now.UTC().Format("20060102T150405"), suffix)
}

// NewPreset builds a preset with exactly one version holding a deep copy
// of the given tokens.
func NewPreset(name string, tokens Tokens, now time.Time) *Preset {
	now = now.UTC()
	snapshot := VersionSnapshot{
		ID:        VersionID(1),
		Label:     VersionID(1),
		CreatedAt: now,
		Tokens:    tokens.Clone(),
	}
	return &Preset{
		SchemaVersion: PresetSchemaVersion,
		ID:            NewPresetID(now),
		Name:          name,
		CreatedAt:     now,
		UpdatedAt:     now,
		Tokens:        snapshot.Tokens.Clone(),
		Versions:      []VersionSnapshot{snapshot},
	}
}

// AppendVersion adds a snapshot of the given tokens as the next version
// and advances the preset's latest tokens. The snapshot id is sequential
// relative to the current version count.
func (p *Preset) AppendVersion(tokens Tokens, now time.Time) VersionSnapshot {
	now = now.UTC()
	id := VersionID(len(p.Versions) + 1)
	snapshot := VersionSnapshot{
		ID:        id,
		Label:     id,
		CreatedAt: now,
		Tokens:    tokens.Clone(),
	}
	p.Versions = append(p.Versions, snapshot)
	p.Tokens = snapshot.Tokens.Clone()
	p.UpdatedAt = now
	return snapshot
}

// LatestVersion returns the newest snapshot, or nil for an (invalid)
// versionless preset.
func (p *Preset) LatestVersion() *VersionSnapshot {
	if len(p.Versions) == 0 {
		return nil
	}
	return &p.Versions[len(p.Versions)-1]
}

// Validate checks the preset invariants: non-empty name and version
// list, dense sequential version ids, and latest tokens matching the
// last snapshot.
func (p *Preset) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(p.ID) == "" {
		validation.AddMessage("id", "id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		validation.AddMessage("name", "name is required")
	}
	if len(p.Versions) == 0 {
		validation.AddMessage("versions", "at least one version is required")
		return validation.Err()
	}
	for i, v := range p.Versions {
		if v.ID != VersionID(i+1) {
			validation.AddMessage("versions", fmt.Sprintf("version %d has id %q, want %q", i, v.ID, VersionID(i+1)))
		}
	}
	if !p.Tokens.Equal(p.Versions[len(p.Versions)-1].Tokens) {
		validation.AddMessage("tokens", "tokens do not match the latest version")
	}
	return validation.Err()
}
