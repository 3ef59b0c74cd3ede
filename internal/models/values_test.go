package models

import "testing"

func TestParseValueWithUnit(t *testing.T) {
	tests := []struct {
		input string
		value float64
		unit  string
	}{
		{"0.5rem", 0.5, "rem"},
		{"16px", 16, "px"},
		{"-2px", -2, "px"},
		{"+0.025em", 0.025, "em"},
		{".5rem", 0.5, "rem"},
		{"12", 12, ""},
		{"9999px", 9999, "px"},
		{"rem", 0, ""},
		{"", 0, ""},
		{"px16", 0, ""},
	}

	for _, tt := range tests {
		value, unit := ParseValueWithUnit(tt.input)
		if value != tt.value || unit != tt.unit {
			t.Errorf("ParseValueWithUnit(%q) = (%v, %q), want (%v, %q)",
				tt.input, value, unit, tt.value, tt.unit)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"#112233", "#112233", true},
		{"112233", "#112233", true},
		{"#AaBbCc", "#AaBbCc", true},
		{"fff", "", false},
		{"#fff", "", false},
		{"#11223", "", false},
		{"#1122334", "", false},
		{"#gggggg", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeHex(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeHex(%q) = (%q, %v), want (%q, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
