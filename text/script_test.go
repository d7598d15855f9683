package text

import "testing"

func TestIsCJK(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'東', true},  // CJK unified ideograph
		{'あ', true},  // Hiragana
		{'カ', true},  // Katakana
		{'한', true},  // Hangul syllable
		{'豈', true},  // CJK compatibility ideograph
		{'A', false},
		{'я', false},
		{'1', false},
		{' ', false},
		{'。', false}, // CJK punctuation is not ideographic
	}

	for _, tt := range tests {
		if got := IsCJK(tt.r); got != tt.want {
			t.Errorf("IsCJK(%q): expected %v, got %v", tt.r, tt.want, got)
		}
	}
}

func TestNoSpaceBetween(t *testing.T) {
	if !NoSpaceBetween('东', '京') {
		t.Error("Expected no space between adjacent ideographs")
	}
	if NoSpaceBetween('w', '京') {
		t.Error("Latin/CJK boundary should keep the space")
	}
	if NoSpaceBetween('东', 'k') {
		t.Error("CJK/Latin boundary should keep the space")
	}
}

func TestFirstLastRune(t *testing.T) {
	if FirstRune("東京") != '東' || LastRune("東京") != '京' {
		t.Error("Rune accessors mishandled multibyte text")
	}
	if FirstRune("") != 0 || LastRune("") != 0 {
		t.Error("Expected zero rune for empty string")
	}
}
