// Package css synthesizes CSS text from token values. Both entry points
// are pure functions: identical input yields byte-identical output, and
// absent fields degrade to empty declarations instead of failing.
package css

import (
	"fmt"
	"math"
	"strconv"
)

// PreviewSelector scopes the live preview sheet so the editor shell is
// never restyled by the tokens under edit.
const PreviewSelector = ".preview-canvas"

// AlphaHex converts a 0-1 opacity into a 2-digit hex alpha suffix,
// rounding to the nearest of 255 steps. Out-of-range input is clamped.
func AlphaHex(opacity float64) string {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return fmt.Sprintf("%02x", int(math.Round(opacity*255)))
}

// formatOpacity renders an opacity the way it was authored: "0.2", not
// "0.200000".
func formatOpacity(opacity float64) string {
	return strconv.FormatFloat(opacity, 'g', -1, 64)
}

// VarName builds a custom-property name from a category and key, e.g.
// ("color", "primary") -> "--color-primary".
func VarName(category, key string) string {
	return "--" + category + "-" + key
}
