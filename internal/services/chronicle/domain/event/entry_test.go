package event

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"short", "Found the Phial of Galadriel", "Found the Phial of Galadriel"},
		{"exact", strings.Repeat("x", MaxTextBytes), strings.Repeat("x", MaxTextBytes)},
		{"long", strings.Repeat("x", MaxTextBytes+20), strings.Repeat("x", MaxTextBytes)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(tt.text); got != tt.want {
				t.Fatalf("TruncateText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateTextKeepsRunesIntact(t *testing.T) {
	// 79 ASCII bytes followed by a 3-byte rune straddling the bound.
	text := strings.Repeat("x", MaxTextBytes-1) + "世界"

	got := TruncateText(text)
	if len(got) > MaxTextBytes {
		t.Fatalf("truncated length = %d, want <= %d", len(got), MaxTextBytes)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncated text is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("x", MaxTextBytes-1) {
		t.Fatalf("truncated text = %q, want bare ASCII prefix", got)
	}
}
