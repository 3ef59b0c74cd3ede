// Package fonts provides the font catalog and the fire-and-forget
// loader the draft engine notifies when a typography token changes.
package fonts

import "strings"

// Option describes a selectable font: display name, the CSS stack value
// stored in the typography tokens, and the weights to fetch.
type Option struct {
	Name     string
	Value    string
	Category string
	Weights  []int
}

// Catalog lists the fonts offered by the editor.
var Catalog = []Option{
	{Name: "Inter", Value: "Inter, system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 500, 600, 700}},
	{Name: "Roboto", Value: "Roboto, system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 500, 700}},
	{Name: "Open Sans", Value: "'Open Sans', system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 600, 700}},
	{Name: "Poppins", Value: "Poppins, system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 500, 600, 700}},
	{Name: "Lato", Value: "Lato, system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 700}},
	{Name: "Montserrat", Value: "Montserrat, system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 500, 600, 700}},
	{Name: "Nunito", Value: "Nunito, system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 600, 700}},
	{Name: "Raleway", Value: "Raleway, system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 600, 700}},
	{Name: "Work Sans", Value: "'Work Sans', system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 500, 600}},
	{Name: "DM Sans", Value: "'DM Sans', system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 500, 700}},
	{Name: "Pretendard", Value: "Pretendard, system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 500, 600, 700}},
	{Name: "Noto Sans KR", Value: "'Noto Sans KR', system-ui, sans-serif", Category: "sans-serif", Weights: []int{400, 500, 700}},
	{Name: "Noto Serif KR", Value: "'Noto Serif KR', Georgia, serif", Category: "serif", Weights: []int{400, 600, 700}},
	{Name: "Playfair Display", Value: "'Playfair Display', Georgia, serif", Category: "serif", Weights: []int{400, 600, 700}},
	{Name: "Merriweather", Value: "Merriweather, Georgia, serif", Category: "serif", Weights: []int{400, 700}},
	{Name: "Lora", Value: "Lora, Georgia, serif", Category: "serif", Weights: []int{400, 500, 600}},
	{Name: "JetBrains Mono", Value: "'JetBrains Mono', monospace", Category: "monospace", Weights: []int{400, 500, 700}},
	{Name: "Fira Code", Value: "'Fira Code', monospace", Category: "monospace", Weights: []int{400, 500, 700}},
	{Name: "IBM Plex Mono", Value: "'IBM Plex Mono', monospace", Category: "monospace", Weights: []int{400, 500, 600}},
	{Name: "Source Code Pro", Value: "'Source Code Pro', monospace", Category: "monospace", Weights: []int{400, 500, 700}},
}

// Lookup resolves a stored font stack value back to its catalog entry.
// Values outside the catalog (system stacks, hand-edited entries) return
// false: there is nothing to load for them.
func Lookup(stack string) (Option, bool) {
	stack = strings.TrimSpace(stack)
	for _, option := range Catalog {
		if option.Value == stack {
			return option, true
		}
	}
	return Option{}, false
}

// PrimaryName extracts the first family from a font stack, with quotes
// stripped: "'Noto Sans KR', system-ui" yields "Noto Sans KR".
func PrimaryName(stack string) string {
	first := stack
	if i := strings.IndexByte(stack, ','); i >= 0 {
		first = stack[:i]
	}
	return strings.Trim(strings.TrimSpace(first), `'"`)
}
