package store

import (
	"encoding/json"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Status
	}{
		{"plain todo", "todo", StatusTodo},
		{"uppercase todo", "TODO", StatusTodo},
		{"padded todo", "TODO ", StatusTodo},
		{"plain complete", "complete", StatusComplete},
		{"mixed case complete", "Complete", StatusComplete},
		{"free text", "waiting", OtherStatus("waiting")},
		{"free text normalized", "  In Review ", OtherStatus("in review")},
		{"empty string", "", OtherStatus("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStatus(tt.input); got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "Todo"},
		{StatusComplete, "Complete"},
		{OtherStatus("waiting"), "waiting"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStatusJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		wire   string
	}{
		{"todo", StatusTodo, `"Todo"`},
		{"complete", StatusComplete, `"Complete"`},
		{"other", OtherStatus("waiting"), `{"Other":"waiting"}`},
		{"other empty label", OtherStatus(""), `{"Other":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.status)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.wire {
				t.Errorf("Marshal = %s, want %s", data, tt.wire)
			}

			var decoded Status
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if decoded != tt.status {
				t.Errorf("round trip = %v, want %v", decoded, tt.status)
			}
		})
	}
}

func TestStatusUnmarshalRejectsUnknownShapes(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{"unknown tag", `"Done"`},
		{"wrong object key", `{"Custom":"x"}`},
		{"extra keys", `{"Other":"x","More":"y"}`},
		{"number", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Status
			if err := json.Unmarshal([]byte(tt.wire), &s); err == nil {
				t.Errorf("Unmarshal(%s) succeeded, want error", tt.wire)
			}
		})
	}
}

func TestStatusEquality(t *testing.T) {
	if OtherStatus("a") == OtherStatus("b") {
		t.Error("distinct labels compare equal")
	}
	if OtherStatus("a") != OtherStatus("a") {
		t.Error("identical labels compare unequal")
	}
	if StatusTodo == StatusComplete {
		t.Error("Todo equals Complete")
	}
	// Labels are case-sensitive once parsed.
	if OtherStatus("Waiting") == OtherStatus("waiting") {
		t.Error("label comparison ignored case")
	}
}
