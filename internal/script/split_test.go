package script

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitToSentencesBasic(t *testing.T) {
	got := SplitToSentences("Hello world. This is a test.")
	want := []string{"Hello world.", "This is a test."}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitToSentencesNormalizesPunctuation(t *testing.T) {
	got := SplitToSentences("Really?! Yes! Maybe.")
	want := []string{"Really.", "Yes.", "Maybe."}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitToSentencesNoTerminalPunctuation(t *testing.T) {
	got := SplitToSentences("  just one fragment ")
	if len(got) != 1 || got[0] != "just one fragment." {
		t.Fatalf("expected single terminated sentence, got %v", got)
	}
}

func TestSplitToSentencesEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\r\n\r\n", "..."} {
		if got := SplitToSentences(in); len(got) != 0 {
			t.Fatalf("input %q: expected no sentences, got %v", in, got)
		}
	}
}

func TestSplitToSentencesPreservesWordOrder(t *testing.T) {
	in := "The quick brown fox! Jumps over the lazy dog? End"
	got := SplitToSentences(in)
	rejoined := strings.Join(got, " ")
	normalize := func(s string) string {
		s = strings.NewReplacer("?", "", "!", "", ".", "").Replace(s)
		return strings.Join(strings.Fields(s), " ")
	}
	if normalize(rejoined) != normalize(in) {
		t.Fatalf("word order changed: %q vs %q", normalize(rejoined), normalize(in))
	}
}

func TestSplitToSentencesAllTerminated(t *testing.T) {
	got := SplitToSentences("a. b? c! d")
	for _, s := range got {
		if !strings.HasSuffix(s, ".") {
			t.Fatalf("sentence %q does not end with a period", s)
		}
		if strings.TrimSpace(strings.TrimSuffix(s, ".")) == "" {
			t.Fatalf("sentence %q is empty after trimming", s)
		}
	}
}

func TestSplitToSlideGroupsShortParagraphsPassWhole(t *testing.T) {
	got := SplitToSlideGroups("first paragraph.\n\nsecond paragraph.", 700)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %v", got)
	}
	if got[0] != "first paragraph." || got[1] != "second paragraph." {
		t.Fatalf("unexpected groups: %v", got)
	}
}

func TestSplitToSlideGroupsRepacksOversizedParagraph(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("This sentence pads the paragraph well past the cap. ", 10))
	got := SplitToSlideGroups(long, 120)
	if len(got) < 2 {
		t.Fatalf("expected oversized paragraph to split, got %d group(s)", len(got))
	}
	for _, g := range got {
		if len(g) > 120 {
			t.Fatalf("group exceeds cap (%d chars): %q", len(g), g)
		}
	}
}

func TestSplitToSlideGroupsMergesAboveCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&sb, "paragraph number %d.\n\n", i)
	}
	got := SplitToSlideGroups(sb.String(), 700)
	if len(got) > 40 {
		t.Fatalf("expected at most 40 groups, got %d", len(got))
	}
	// No text may be lost in the merge.
	joined := strings.Join(got, " ")
	for i := 0; i < 100; i++ {
		if !strings.Contains(joined, fmt.Sprintf("paragraph number %d.", i)) {
			t.Fatalf("merged output lost paragraph %d", i)
		}
	}
}

func TestSplitToSlideGroupsEmpty(t *testing.T) {
	if got := SplitToSlideGroups("  \r\n ", 700); len(got) != 0 {
		t.Fatalf("expected no groups, got %v", got)
	}
}
