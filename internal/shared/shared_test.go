package shared

import (
	"bytes"
	"strings"
	"testing"
)

func TestNormalizeTrackKey(t *testing.T) {
	tc := []struct {
		name   string
		title  string
		artist string
		want   string
	}{
		{
			name:   "basic normalization",
			title:  "Flowers",
			artist: "Miley Cyrus",
			want:   "flowers|miley cyrus",
		},
		{
			name:   "extra whitespace",
			title:  "  flowers ",
			artist: " Miley   Cyrus ",
			want:   "flowers|miley cyrus",
		},
		{
			name:   "mixed case",
			title:  "FLOWERS",
			artist: "miley cyrus",
			want:   "flowers|miley cyrus",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTrackKey(tt.title, tt.artist)
			if got != tt.want {
				t.Errorf("NormalizeTrackKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == b {
		t.Errorf("expected unique IDs, got %v twice", a)
	}
	if len(a) != 36 {
		t.Errorf("expected UUID string, got %v", a)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log output to contain message, got %q", buf.String())
	}
}
