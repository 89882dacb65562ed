package observer

import "testing"

func TestIsPattern(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"counter", false},
		{"a_long_name", false},
		{"file_*", true},
		{"file_?", true},
		{"file_[ab]", true},
		{"bang!", true},
	}
	for _, tt := range tests {
		if got := IsPattern(tt.name); got != tt.want {
			t.Errorf("IsPattern(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"file_*", "file_name", true},
		{"file_*", "file_", true},
		{"file_*", "dir_name", false},
		{"file_?", "file_a", true},
		{"file_?", "file_ab", false},
		{"prop[12]", "prop1", true},
		{"prop[12]", "prop3", false},
		{"prop[^12]", "prop3", true},
		{"*", "anything", true},
	}
	for _, tt := range tests {
		if got := Match(tt.pattern, tt.name); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}

func TestValidatePattern(t *testing.T) {
	valid := []string{"file_*", "file_?", "prop[12]", "prop[^ab]", `esc\*`, `cls[\]]`}
	for _, p := range valid {
		if err := validatePattern(p); err != nil {
			t.Errorf("validatePattern(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"file_[", "prop[^", `trailing\`}
	for _, p := range invalid {
		if err := validatePattern(p); err == nil {
			t.Errorf("validatePattern(%q) = nil, want error", p)
		}
	}
}
