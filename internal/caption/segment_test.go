package caption

import (
	"reflect"
	"strings"
	"testing"
)

func TestSegmentSplitsOnSentenceBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two sentences",
			text: "Hello there. General Kenobi!",
			want: []string{"Hello there.", "General Kenobi!"},
		},
		{
			name: "no terminal punctuation",
			text: "an unfinished thought",
			want: []string{"an unfinished thought"},
		},
		{
			name: "repeated terminators stay together",
			text: "Really?! Yes... Of course.",
			want: []string{"Really?!", "Yes...", "Of course."},
		},
		{
			name: "question and exclamation",
			text: "What now? Run! Then hide.",
			want: []string{"What now?", "Run!", "Then hide."},
		},
		{
			name: "korean narration",
			text: "안녕하세요. 반갑습니다.",
			want: []string{"안녕하세요.", "반갑습니다."},
		},
		{
			name: "surrounding whitespace trimmed",
			text: "  First.   Second.  ",
			want: []string{"First.", "Second."},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text, 100)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSegmentSplitsOverlongFragmentsOnCommas(t *testing.T) {
	first := strings.Repeat("a", 60)
	second := strings.Repeat("b", 60)
	text := first + ", " + second

	got := Segment(text, 100)
	want := []string{first + ",", second}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %#v, want %#v", got, want)
	}
}

func TestSegmentCommaRetainedOnAllButLast(t *testing.T) {
	parts := []string{
		strings.Repeat("a", 40),
		strings.Repeat("b", 40),
		strings.Repeat("c", 40),
	}
	text := strings.Join(parts, ", ")

	got := Segment(text, 100)
	want := []string{parts[0] + ",", parts[1] + ",", parts[2]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %#v, want %#v", got, want)
	}
}

func TestSegmentOverlongFragmentWithoutCommasKeptWhole(t *testing.T) {
	text := strings.Repeat("x", 150)

	got := Segment(text, 100)
	if len(got) != 1 || got[0] != text {
		t.Errorf("expected single unchanged fragment, got %#v", got)
	}
}

func TestSegmentFragmentAtThresholdNotSplit(t *testing.T) {
	text := strings.Repeat("a", 50) + ", " + strings.Repeat("b", 48)
	if len(text) != 100 {
		t.Fatalf("fixture length = %d, want 100", len(text))
	}

	got := Segment(text, 100)
	if len(got) != 1 || got[0] != text {
		t.Errorf("fragment of exactly threshold length should not split, got %#v", got)
	}
}

func TestSegmentThresholdCountsRunes(t *testing.T) {
	// 101 Hangul runes, well over 100 bytes but only just over the rune
	// threshold; must still be treated as overlong
	text := strings.Repeat("가", 50) + ", " + strings.Repeat("나", 49)

	got := Segment(text, 100)
	want := []string{strings.Repeat("가", 50) + ",", strings.Repeat("나", 49)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %#v, want %#v", got, want)
	}
}

func TestSegmentPreservesOrder(t *testing.T) {
	text := "One. Two. Three. Four."

	got := Segment(text, 100)
	want := []string{"One.", "Two.", "Three.", "Four."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %#v, want %#v", got, want)
	}
}
