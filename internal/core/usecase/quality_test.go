package usecase

import (
	"strings"
	"testing"
)

func TestQualityScoreLengthBands(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		fromPDF bool
		want    int
	}{
		{"short pdf", strings.Repeat("a", 100), true, 50},
		{"medium pdf", strings.Repeat("a", 500), true, 80},
		{"long pdf", strings.Repeat("a", 3000), true, 90},
		{"boundary 300 is medium", strings.Repeat("a", 300), true, 80},
		{"boundary 2000 is long", strings.Repeat("a", 2000), true, 90},
	}
	for _, tc := range cases {
		if got := qualityScore(tc.text, tc.fromPDF); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestQualityScorePenalties(t *testing.T) {
	long := strings.Repeat("a", 3000)
	if got := qualityScore(long, false); got != 85 {
		t.Fatalf("expected non-PDF penalty to yield 85, got %d", got)
	}
	if got := qualityScore(long+"é", true); got != 80 {
		t.Fatalf("expected non-ASCII penalty to yield 80, got %d", got)
	}
	if got := qualityScore(long+"é", false); got != 75 {
		t.Fatalf("expected both penalties to yield 75, got %d", got)
	}
}

func TestQualityScoreBandsCountCharactersNotBytes(t *testing.T) {
	// 200 characters but 600 bytes: still the short band.
	short := strings.Repeat("文", 200)
	if got := qualityScore(short, true); got != 40 {
		t.Fatalf("expected short band with noise penalty 40, got %d", got)
	}

	long := strings.Repeat("文", 2500)
	if got := qualityScore(long, true); got != 80 {
		t.Fatalf("expected long band with noise penalty 80, got %d", got)
	}
}

func TestQualityScoreNewlinesAndTabsAreNotNoise(t *testing.T) {
	text := strings.Repeat("a\n\tb", 1000)
	if got := qualityScore(text, true); got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
}
