package models

// PreviewMode selects which color-mode map drives the live preview.
type PreviewMode string

const (
	PreviewModeLight PreviewMode = "light"
	PreviewModeDark  PreviewMode = "dark"
)

// ParsePreviewMode converts a string to a PreviewMode, returning empty
// string if invalid.
func ParsePreviewMode(s string) PreviewMode {
	switch s {
	case "light":
		return PreviewModeLight
	case "dark":
		return PreviewModeDark
	default:
		return ""
	}
}

// SidebarTab identifies the active editing tab.
type SidebarTab string

const (
	SidebarTabColors     SidebarTab = "Colors"
	SidebarTabTypography SidebarTab = "Typography"
	SidebarTabOthers     SidebarTab = "Others"
)

// PreviewTab identifies the active preview surface.
type PreviewTab string

const (
	PreviewTabComponents PreviewTab = "Components"
	PreviewTabLayouts    PreviewTab = "Layouts"
)

// LayoutStyle selects one of the canned preview layouts. It is transient
// UI state and never persisted with the draft.
type LayoutStyle string

const (
	LayoutStyleBrand     LayoutStyle = "Brand"
	LayoutStyleCommerce  LayoutStyle = "Commerce"
	LayoutStyleBlog      LayoutStyle = "Blog"
	LayoutStyleDashboard LayoutStyle = "Dashboard"
)

// DraftUI is the persisted slice of editor UI state. Layout preference
// survives reload but never marks draft content as unsaved.
type DraftUI struct {
	PreviewMode    PreviewMode     `json:"preview_mode"`
	SidebarTab     SidebarTab      `json:"sidebar_tab"`
	PreviewTab     PreviewTab      `json:"preview_tab"`
	ExpandedGroups map[string]bool `json:"expanded_groups"`
}

// DefaultDraftUI returns the UI state used for a fresh draft and for
// back-filling fields missing from older persisted records.
func DefaultDraftUI() DraftUI {
	return DraftUI{
		PreviewMode:    PreviewModeLight,
		SidebarTab:     SidebarTabColors,
		PreviewTab:     PreviewTabComponents,
		ExpandedGroups: map[string]bool{},
	}
}

// Clone returns a deep copy of the UI state.
func (u DraftUI) Clone() DraftUI {
	out := u
	if u.ExpandedGroups != nil {
		out.ExpandedGroups = make(map[string]bool, len(u.ExpandedGroups))
		for k, v := range u.ExpandedGroups {
			out.ExpandedGroups[k] = v
		}
	}
	return out
}

// WorkingDraft is the single live editing session: the full token set,
// the persisted UI state, the preset it was derived from (empty when
// never saved) and the unsaved indicator.
type WorkingDraft struct {
	SourcePresetID string  `json:"source_preset_id"`
	Tokens         Tokens  `json:"tokens"`
	UI             DraftUI `json:"ui"`
	Dirty          bool    `json:"dirty"`
}

// Clone returns a deep copy of the draft.
func (d *WorkingDraft) Clone() *WorkingDraft {
	if d == nil {
		return nil
	}
	return &WorkingDraft{
		SourcePresetID: d.SourcePresetID,
		Tokens:         d.Tokens.Clone(),
		UI:             d.UI.Clone(),
		Dirty:          d.Dirty,
	}
}

// NewWorkingDraft returns a fresh draft over the system default tokens.
func NewWorkingDraft() *WorkingDraft {
	return &WorkingDraft{
		Tokens: DefaultTokens(),
		UI:     DefaultDraftUI(),
	}
}
