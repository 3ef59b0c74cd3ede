// Package models defines the core data types for the modcn token editor.
package models

import (
	"regexp"
	"sort"
)

// HexColorPattern is the only color syntax accepted once a value is committed.
var HexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorMap maps a semantic color role (e.g. "primary",
// "sidebar-accent-foreground") to a 6-digit hex string.
type ColorMap map[string]string

// Clone returns a deep copy of the map.
func (m ColorMap) Clone() ColorMap {
	if m == nil {
		return nil
	}
	out := make(ColorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Equal reports whether both maps carry the same roles and values.
func (m ColorMap) Equal(other ColorMap) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// SortedRoles returns the role names in lexical order.
func (m ColorMap) SortedRoles() []string {
	roles := make([]string, 0, len(m))
	for k := range m {
		roles = append(roles, k)
	}
	sort.Strings(roles)
	return roles
}

// Modes holds the two color-mode maps.
type Modes struct {
	Light ColorMap `json:"light"`
	Dark  ColorMap `json:"dark"`
}

// ShadowSpec is the structured shadow record shared across modes.
type ShadowSpec struct {
	Color   string  `json:"shadow-color"`
	Opacity float64 `json:"shadow-opacity"`
	Blur    string  `json:"shadow-blur"`
	Spread  string  `json:"shadow-spread"`
	X       string  `json:"shadow-x"`
	Y       string  `json:"shadow-y"`
}

// Shared holds the mode-independent token values. Typography is an open
// map (font stacks, tracking); radius, spacing and shadow are fixed,
// typed fields so shape errors surface at compile time.
type Shared struct {
	Typography map[string]string `json:"typography"`
	Radius     string            `json:"radius"`
	Spacing    string            `json:"spacing"`
	Shadow     *ShadowSpec       `json:"shadow,omitempty"`
}

// Tokens is a complete, editable token configuration.
type Tokens struct {
	Modes  Modes  `json:"modes"`
	Shared Shared `json:"shared"`
}

// Clone returns a deep, independent copy. Stored snapshots rely on this:
// later draft edits must never retroactively alter them.
func (t Tokens) Clone() Tokens {
	out := Tokens{
		Modes: Modes{
			Light: t.Modes.Light.Clone(),
			Dark:  t.Modes.Dark.Clone(),
		},
		Shared: Shared{
			Radius:  t.Shared.Radius,
			Spacing: t.Shared.Spacing,
		},
	}
	if t.Shared.Typography != nil {
		out.Shared.Typography = make(map[string]string, len(t.Shared.Typography))
		for k, v := range t.Shared.Typography {
			out.Shared.Typography[k] = v
		}
	}
	if t.Shared.Shadow != nil {
		shadow := *t.Shared.Shadow
		out.Shared.Shadow = &shadow
	}
	return out
}

// Equal reports deep equality of two token sets.
func (t Tokens) Equal(other Tokens) bool {
	if !t.Modes.Light.Equal(other.Modes.Light) || !t.Modes.Dark.Equal(other.Modes.Dark) {
		return false
	}
	if t.Shared.Radius != other.Shared.Radius || t.Shared.Spacing != other.Shared.Spacing {
		return false
	}
	if len(t.Shared.Typography) != len(other.Shared.Typography) {
		return false
	}
	for k, v := range t.Shared.Typography {
		if ov, ok := other.Shared.Typography[k]; !ok || ov != v {
			return false
		}
	}
	a, b := t.Shared.Shadow, other.Shared.Shadow
	if (a == nil) != (b == nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// Validate checks the token invariants: every light role is present in
// dark (symmetric role set) and all committed colors are 6-digit hex.
func (t *Tokens) Validate() error {
	validation := &ValidationErrors{}
	for role := range t.Modes.Light {
		if _, ok := t.Modes.Dark[role]; !ok {
			validation.AddMessage("modes.dark."+role, "role missing in dark mode")
		}
	}
	for role := range t.Modes.Dark {
		if _, ok := t.Modes.Light[role]; !ok {
			validation.AddMessage("modes.light."+role, "role missing in light mode")
		}
	}
	for role, value := range t.Modes.Light {
		if !HexColorPattern.MatchString(value) {
			validation.AddMessage("modes.light."+role, "color must be a 6-digit hex value")
		}
	}
	for role, value := range t.Modes.Dark {
		if !HexColorPattern.MatchString(value) {
			validation.AddMessage("modes.dark."+role, "color must be a 6-digit hex value")
		}
	}
	return validation.Err()
}
