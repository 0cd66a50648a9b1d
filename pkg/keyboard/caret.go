package keyboard

import "unicode"

// CaretSkip moves a collapsed caret across separators. When ArrowLeft or
// ArrowRight would cross a separator run the caret lands one position past
// the run, so a single "/" costs one keypress instead of two. ok is false
// when the key is not a plain horizontal arrow or no separator is crossed;
// the host then lets the default action happen.
func CaretSkip(value string, pos int, k Key) (next int, ok bool) {
	if k.Modified() || k.Shift {
		return pos, false
	}
	runes := []rune(value)
	if pos < 0 || pos > len(runes) {
		return pos, false
	}

	switch k.Name {
	case ArrowRight:
		if pos >= len(runes) || !isSeparator(runes[pos]) {
			return pos, false
		}
		end := pos
		for end < len(runes) && isSeparator(runes[end]) {
			end++
		}
		return min(end+1, len(runes)), true
	case ArrowLeft:
		if pos == 0 || !isSeparator(runes[pos-1]) {
			return pos, false
		}
		start := pos - 1
		for start > 0 && isSeparator(runes[start-1]) {
			start--
		}
		return max(start-1, 0), true
	default:
		return pos, false
	}
}

// isSeparator treats anything that is not a digit or a placeholder slot as
// part of a separator, which covers the range separator " - " as a run.
func isSeparator(r rune) bool {
	return !unicode.IsDigit(r) && r != '_'
}
