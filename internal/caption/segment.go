package caption

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	sentenceEnd = regexp.MustCompile(`[.!?]+\s+`)
	commaBreak  = regexp.MustCompile(`,\s+`)
)

// Segment splits narration text into caption-sized fragments.
//
// Text is split after runs of sentence-terminal punctuation followed by
// whitespace; the punctuation stays with the preceding fragment. Fragments
// longer than maxFragmentLen runes are re-split on comma boundaries, keeping
// the comma on every sub-fragment except the last to preserve mid-sentence
// cadence. Empty fragments are dropped and relative order is preserved.
func Segment(text string, maxFragmentLen int) []string {
	var fragments []string

	last := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		fragments = append(fragments, text[last:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		fragments = append(fragments, text[last:])
	}

	var out []string
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if utf8.RuneCountInString(frag) > maxFragmentLen {
			out = append(out, splitLongFragment(frag)...)
		} else {
			out = append(out, frag)
		}
	}
	return out
}

// splits an overlong fragment on comma boundaries
func splitLongFragment(fragment string) []string {
	var parts []string
	for _, part := range commaBreak.Split(fragment, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}

	for i := 0; i < len(parts)-1; i++ {
		parts[i] += ","
	}
	return parts
}
