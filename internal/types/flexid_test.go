package types

import (
	"encoding/json"
	"testing"
)

func TestFlexIDUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FlexID
	}{
		{name: "number", input: `42`, want: "42"},
		{name: "string", input: `"42"`, want: "42"},
		{name: "large number", input: `9007199254740993`, want: "9007199254740993"},
		{name: "null", input: `null`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexID
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if f != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, f, tt.want)
			}
		})
	}
}

func TestFlexIDMarshalAlwaysString(t *testing.T) {
	data, err := json.Marshal(FlexID("7"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"7"` {
		t.Errorf("Marshal = %s, want \"7\"", data)
	}
}

func TestFlexIDInt(t *testing.T) {
	if got := FlexID("42").Int(); got != 42 {
		t.Errorf("Int() = %d, want 42", got)
	}
	if got := FlexID("abc").Int(); got != 0 {
		t.Errorf("Int() on non-numeric = %d, want 0", got)
	}
}
