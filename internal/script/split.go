// Package script splits a narration script into the units the pipeline
// narrates and renders: sentences (one segment each) and slide groups
// (the legacy slide-oriented mode).
package script

import (
	"math"
	"strings"
)

const (
	// DefaultMaxCharsPerSlide bounds a single slide group's text length.
	DefaultMaxCharsPerSlide = 700
	// maxSlideGroups caps how many groups a script may produce before
	// contiguous groups are merged to bound rendering and synthesis cost.
	maxSlideGroups = 40
)

// SplitToSentences splits text on terminal punctuation. `!` and `?` are
// normalized to `.` first, empty fragments are dropped, and every surviving
// sentence gets its trailing period back. Order follows the input. Text
// without terminal punctuation yields exactly one sentence; empty or
// whitespace-only text yields none.
func SplitToSentences(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	normalized := strings.NewReplacer("?", ".", "!", ".").Replace(text)
	parts := strings.Split(normalized, ".")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sentences = append(sentences, p+".")
	}
	return sentences
}

// SplitToSlideGroups packs the script into slide-sized text groups.
// Paragraphs (blank-line delimited) under maxChars pass through whole;
// oversized paragraphs are repacked greedily by sentence. When the result
// exceeds the group cap, contiguous groups are merged in fixed-size batches,
// trading slide granularity for a bounded pipeline cost.
func SplitToSlideGroups(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxCharsPerSlide
	}
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	var groups []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(p) <= maxChars {
			groups = append(groups, p)
			continue
		}
		groups = append(groups, packParagraph(p, maxChars)...)
	}

	if len(groups) > maxSlideGroups {
		groups = mergeGroups(groups, int(math.Ceil(float64(len(groups))/float64(maxSlideGroups))))
	}
	return groups
}

func packParagraph(p string, maxChars int) []string {
	var out []string
	cur := ""
	for _, s := range SplitToSentences(p) {
		// +1 accounts for the joining space.
		if len(cur)+len(s)+1 <= maxChars {
			cur += " " + s
			continue
		}
		if trimmed := strings.TrimSpace(cur); trimmed != "" {
			out = append(out, trimmed)
		}
		cur = s
	}
	if trimmed := strings.TrimSpace(cur); trimmed != "" {
		out = append(out, trimmed)
	}
	return out
}

func mergeGroups(groups []string, batch int) []string {
	if batch < 2 {
		return groups
	}
	merged := make([]string, 0, maxSlideGroups)
	for i := 0; i < len(groups); i += batch {
		end := i + batch
		if end > len(groups) {
			end = len(groups)
		}
		merged = append(merged, strings.Join(groups[i:end], " "))
	}
	return merged
}
