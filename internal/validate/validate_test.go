package validate

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"", false},
		{"no-at-sign", false},
		{"user@nodot", false},
		{"spaces in@example.com", false},
	}
	for _, tt := range tests {
		msg := Email(tt.input)
		if tt.ok && msg != "" {
			t.Errorf("Email(%q) = %q, want valid", tt.input, msg)
		}
		if !tt.ok && msg == "" {
			t.Errorf("Email(%q) accepted, want message", tt.input)
		}
	}
}

func TestPassword(t *testing.T) {
	if msg := Password(""); msg != "Please fill in this field." {
		t.Errorf("empty password message = %q", msg)
	}
	if msg := Password("1234"); msg == "" {
		t.Error("4-character password accepted")
	}
	if msg := Password("12345"); msg != "" {
		t.Errorf("5-character password rejected: %q", msg)
	}
}

func TestName(t *testing.T) {
	if msg := Name(""); msg == "" {
		t.Error("empty name accepted")
	}
	if msg := Name("Aina"); msg != "" {
		t.Errorf("Name rejected: %q", msg)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"0123456789", true},       // 10 digits
		{"012345678901234", true},  // 15 digits
		{"012345678", false},       // 9 digits
		{"0123456789012345", false}, // 16 digits
		{"01234abc89", false},
		{"+60123456789", false}, // digits only, no plus
		{"", false},
	}
	for _, tt := range tests {
		msg := Phone(tt.input)
		if tt.ok && msg != "" {
			t.Errorf("Phone(%q) = %q, want valid", tt.input, msg)
		}
		if !tt.ok && msg == "" {
			t.Errorf("Phone(%q) accepted, want message", tt.input)
		}
	}
}
