package models

import (
	"regexp"
	"strconv"
	"strings"
)

var numericPrefixPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// ParseValueWithUnit splits a CSS-style dimension into its numeric value
// and unit suffix: "0.5rem" yields (0.5, "rem"), "-2px" yields (-2, "px").
// Malformed input yields (0, "").
func ParseValueWithUnit(s string) (float64, string) {
	s = strings.TrimSpace(s)
	match := numericPrefixPattern.FindString(s)
	if match == "" {
		return 0, ""
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, ""
	}
	return value, s[len(match):]
}

// NormalizeHex prepends "#" when missing and accepts only 6-digit hex
// values, case preserved. The second return is false for anything else;
// callers keep the prior value on rejection.
func NormalizeHex(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if !HexColorPattern.MatchString(s) {
		return "", false
	}
	return s, true
}
