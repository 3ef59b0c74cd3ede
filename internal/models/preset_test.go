package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreset(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	preset := NewPreset("Demo", DefaultTokens(), now)

	require.NoError(t, preset.Validate())
	assert.Equal(t, PresetSchemaVersion, preset.SchemaVersion)
	assert.Equal(t, "Demo", preset.Name)
	assert.True(t, strings.HasPrefix(preset.ID, "preset-20260314T092653-"))
	require.Len(t, preset.Versions, 1)
	assert.Equal(t, "v001", preset.Versions[0].ID)
	assert.Equal(t, "v001", preset.Versions[0].Label)
	assert.True(t, preset.Tokens.Equal(preset.Versions[0].Tokens))
}

func TestNewPresetIDUniqueWithinSession(t *testing.T) {
	now := time.Now()
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		id := NewPresetID(now)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate preset id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestAppendVersionSequence(t *testing.T) {
	now := time.Now().UTC()
	preset := NewPreset("Demo", DefaultTokens(), now)

	next := DefaultTokens()
	next.Shared.Radius = "1rem"
	preset.AppendVersion(next, now.Add(time.Minute))

	third := DefaultTokens()
	third.Shared.Radius = "2rem"
	preset.AppendVersion(third, now.Add(2*time.Minute))

	require.NoError(t, preset.Validate())
	require.Len(t, preset.Versions, 3)
	assert.Equal(t, []string{"v001", "v002", "v003"},
		[]string{preset.Versions[0].ID, preset.Versions[1].ID, preset.Versions[2].ID})
	assert.Equal(t, "2rem", preset.Tokens.Shared.Radius)
	assert.Equal(t, "1rem", preset.Versions[1].Tokens.Shared.Radius)
}

func TestAppendVersionSnapshotsAreIndependent(t *testing.T) {
	now := time.Now().UTC()
	preset := NewPreset("Demo", DefaultTokens(), now)

	edited := DefaultTokens()
	edited.Modes.Light["primary"] = "#112233"
	preset.AppendVersion(edited, now)

	// Later edits to the source map must not reach the stored snapshot.
	edited.Modes.Light["primary"] = "#445566"
	assert.Equal(t, "#112233", preset.Versions[1].Tokens.Modes.Light["primary"])
}

func TestPresetValidateDetectsGaps(t *testing.T) {
	now := time.Now().UTC()
	preset := NewPreset("Demo", DefaultTokens(), now)
	preset.AppendVersion(DefaultTokens(), now)
	preset.Versions[1].ID = "v005"

	require.Error(t, preset.Validate())
}
