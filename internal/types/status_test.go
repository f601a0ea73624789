package types

import "testing"

func TestParseStatusIsTotal(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"pending", StatusPending},
		{"Pending", StatusPending},
		{"PENDING", StatusPending},
		{"  approved ", StatusApproved},
		{"rejected", StatusRejected},
		{"", StatusUnknown},
		{"garbage", StatusUnknown},
		{"approve", StatusUnknown},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.input); got != tt.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStatusStringAndWire(t *testing.T) {
	for _, s := range []Status{StatusUnknown, StatusPending, StatusApproved, StatusRejected} {
		if s.String() == "" {
			t.Errorf("Status(%d).String() is empty", s)
		}
	}
	if got := StatusApproved.Wire(); got != "approved" {
		t.Errorf("Wire() = %q, want %q", got, "approved")
	}
	if got := Status(99).String(); got != "Unknown" {
		t.Errorf("out-of-range status String() = %q, want Unknown", got)
	}
}
