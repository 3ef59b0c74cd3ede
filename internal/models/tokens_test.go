package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTokensValidate(t *testing.T) {
	tokens := DefaultTokens()
	require.NoError(t, tokens.Validate())
}

func TestTokensValidateAsymmetricRoles(t *testing.T) {
	tokens := DefaultTokens()
	delete(tokens.Modes.Dark, "primary")

	err := tokens.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modes.dark.primary")
}

func TestTokensValidateRejectsShortHex(t *testing.T) {
	tokens := DefaultTokens()
	tokens.Modes.Light["primary"] = "#fff"

	require.Error(t, tokens.Validate())
}

func TestTokensCloneIsIndependent(t *testing.T) {
	original := DefaultTokens()
	clone := original.Clone()

	clone.Modes.Light["primary"] = "#000000"
	clone.Shared.Typography["font-sans"] = "Inter, sans-serif"
	clone.Shared.Shadow.Opacity = 0.9

	assert.Equal(t, "#6366f1", original.Modes.Light["primary"])
	assert.Equal(t, "'Noto Sans KR', system-ui, sans-serif", original.Shared.Typography["font-sans"])
	assert.Equal(t, 0.2, original.Shared.Shadow.Opacity)
}

func TestTokensEqual(t *testing.T) {
	a := DefaultTokens()
	b := DefaultTokens()
	require.True(t, a.Equal(b))

	b.Modes.Dark["primary"] = "#000000"
	assert.False(t, a.Equal(b))

	b = DefaultTokens()
	b.Shared.Radius = "1rem"
	assert.False(t, a.Equal(b))

	b = DefaultTokens()
	b.Shared.Shadow = nil
	assert.False(t, a.Equal(b))
}

func TestWorkingDraftClone(t *testing.T) {
	draft := NewWorkingDraft()
	draft.SourcePresetID = "preset-x"
	draft.UI.ExpandedGroups["colors"] = true

	clone := draft.Clone()
	clone.Tokens.Modes.Light["primary"] = "#000000"
	clone.UI.ExpandedGroups["colors"] = false

	assert.Equal(t, "#6366f1", draft.Tokens.Modes.Light["primary"])
	assert.True(t, draft.UI.ExpandedGroups["colors"])
	assert.Equal(t, "preset-x", clone.SourcePresetID)
}
