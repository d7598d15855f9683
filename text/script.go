package text

import "unicode"

// cjkRanges covers the ideographic and syllabic scripts that do not use
// inter-word spaces: Hiragana, Katakana (including phonetic extensions),
// CJK Unified Ideographs with extensions A-E, CJK Compatibility
// Ideographs, and Hangul Syllables.
var cjkRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309F, Stride: 1}, // Hiragana
		{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}, // Katakana
		{Lo: 0x31F0, Hi: 0x31FF, Stride: 1}, // Katakana phonetic extensions
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}, // CJK extension A
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK unified ideographs
		{Lo: 0xAC00, Hi: 0xD7AF, Stride: 1}, // Hangul syllables
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}, // CJK compatibility ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}, // CJK extension B
		{Lo: 0x2A700, Hi: 0x2B73F, Stride: 1}, // CJK extension C
		{Lo: 0x2B740, Hi: 0x2B81F, Stride: 1}, // CJK extension D
		{Lo: 0x2B820, Hi: 0x2CEAF, Stride: 1}, // CJK extension E
	},
}

// IsCJK reports whether r belongs to a script written without inter-word
// spaces.
func IsCJK(r rune) bool {
	return unicode.Is(cjkRanges, r)
}

// NoSpaceBetween reports whether a space between prev and next should be
// suppressed because both sides are CJK characters.
func NoSpaceBetween(prev, next rune) bool {
	return IsCJK(prev) && IsCJK(next)
}

// LastRune returns the final rune of s, or 0 for an empty string.
func LastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// FirstRune returns the first rune of s, or 0 for an empty string.
func FirstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
