package text

import (
	"strings"
	"testing"
)

func TestMergeHyphenation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple split", "exam-\nple", "example"},
		{"digits", "1-\n2", "12"},
		{"chained splits", "a-\nb-\nc", "abc"},
		{"hyphen before space survives", "well- \nknown", "well- \nknown"},
		{"standalone hyphen line survives", "text\n-\nmore", "text\n-\nmore"},
		{"no hyphen", "plain\ntext", "plain\ntext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeHyphenation(tt.in); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMergeHyphenation_Idempotent(t *testing.T) {
	in := "a long exam-\nple with hy-\nphens everywhere"
	once := MergeHyphenation(in)
	twice := MergeHyphenation(once)

	if once != twice {
		t.Errorf("Expected idempotence: %q vs %q", once, twice)
	}
}

func TestNormalizer_HardWrapJoins(t *testing.T) {
	n := NewNormalizer()

	got := n.mergeHardWraps("This sentence was wrapped\nacross two lines.")
	want := "This sentence was wrapped across two lines."

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizer_HardWrapBoundaries(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		in   string
	}{
		{"blank line", "first paragraph\n\nsecond paragraph"},
		{"heading below", "some text\n# Heading"},
		{"heading above", "# Heading\nsome text follows here"},
		{"incoming list item", "introduction text\n- item"},
		{"rule line", "---\nbody text"},
		{"sentence end", "A full sentence.\nAnother sentence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.mergeHardWraps(tt.in); got != tt.in {
				t.Errorf("Expected no merge, got %q", got)
			}
		})
	}
}

func TestNormalizer_ListContinuationJoins(t *testing.T) {
	n := NewNormalizer()

	got := n.mergeHardWraps("- a list item that wraps\n  onto the next line")
	want := "- a list item that wraps onto the next line"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizer_DashWrapJoins(t *testing.T) {
	// A trailing dash signals a deliberate wrap, not a sentence end.
	n := NewNormalizer()

	got := n.mergeHardWraps("the committee decided —\nagainst all advice")
	want := "the committee decided — against all advice"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizer_CJKJoinWithoutSpace(t *testing.T) {
	n := NewNormalizer()

	got := n.mergeHardWraps("東京都内の\n主要な駅")
	want := "東京都内の主要な駅"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizer_CJKSentenceEndBreaks(t *testing.T) {
	n := NewNormalizer()

	in := "文が終わった。\n次の文"
	if got := n.mergeHardWraps(in); got != in {
		t.Errorf("Expected full-width sentence end to break, got %q", got)
	}
}

func TestNormalizer_CollapseBlankLines(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"three blanks collapse", "a\n\n\n\nb", "a\n\nb"},
		{"five blanks collapse", "a\n\n\n\n\n\nb", "a\n\nb"},
		{"two blanks kept", "a\n\n\nb", "a\n\n\nb"},
		{"one blank kept", "a\n\nb", "a\n\nb"},
		{"no blanks", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.CollapseBlankLines(tt.in); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizer_CollapseRoundTrip(t *testing.T) {
	// Feeding normalized output back through the collapse pass is a
	// no-op.
	n := NewNormalizer()

	out := n.Normalize("# Title\n\n\n\n\nbody text here.\n\n\n\nmore text.")
	if again := n.CollapseBlankLines(out); again != out {
		t.Errorf("Collapse not idempotent: %q vs %q", out, again)
	}
}

func TestNormalizer_FullPass(t *testing.T) {
	n := NewNormalizer()

	in := "## Heading\n\nThis para-\ngraph was hyphen-\nated and wrapped\nacross lines.\n\n\n\n- item one\n- item two"
	got := n.Normalize(in)
	want := "## Heading\n\nThis paragraph was hyphenated and wrapped across lines.\n\n- item one\n- item two"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLineClassifiers(t *testing.T) {
	if !IsHeadingLine("  ## Heading") || IsHeadingLine("plain") {
		t.Error("IsHeadingLine misclassified")
	}
	if !IsListLine("- item") || !IsListLine("3. item") || IsListLine("plain") {
		t.Error("IsListLine misclassified")
	}
	if !IsRuleLine(" --- ") || IsRuleLine("----") {
		t.Error("IsRuleLine misclassified")
	}
}

func TestNormalizer_NFCOutput(t *testing.T) {
	// Decomposed e + combining acute must come out precomposed.
	n := NewNormalizer()

	got := n.Normalize("cafe\u0301")
	if !strings.Contains(got, "caf\u00e9") {
		t.Errorf("Expected NFC-normalized output, got %q", got)
	}
}
