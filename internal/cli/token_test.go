package cli

import "testing"

func TestValidDimension(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0.5rem", true},
		{"1rem", true},
		{"-2px", true},
		{"24px", true},
		{"0px", true},
		{".25em", true},
		{"  4px  ", true},
		{"12", true},
		{"abc", false},
		{"rem", false},
		{"px4", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := validDimension(tt.input); got != tt.want {
			t.Errorf("validDimension(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
