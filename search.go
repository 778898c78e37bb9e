package main

import (
	"strings"
	"unicode"

	"github.com/sajari/fuzzy"
)

// Find scans rows fromRow through the end of the buffer for the first line
// containing term as a substring. There is no wraparound: a match behind
// the starting row is never reported. Returns the row and the rune offset
// of the term's first character.
func Find(buf *Buffer, term string, fromRow int) (row, col int, found bool) {
	if term == "" {
		return 0, 0, false
	}
	if fromRow < 0 {
		fromRow = 0
	}
	for idx := fromRow; idx < buf.LineCount(); idx++ {
		if byteIdx := strings.Index(buf.Lines[idx], term); byteIdx >= 0 {
			// Convert the byte index to a rune offset.
			return idx, len([]rune(buf.Lines[idx][:byteIdx])), true
		}
	}
	return 0, 0, false
}

// Suggest proposes a near miss for a search term that was not found, using
// a fuzzy model trained on the buffer's own words. Returns "" when there
// is nothing useful to suggest.
func Suggest(buf *Buffer, term string) string {
	term = strings.ToLower(term)
	if term == "" {
		return ""
	}

	model := fuzzy.NewModel()
	model.SetDepth(2)
	seen := make(map[string]bool)
	for _, line := range buf.Lines {
		for _, word := range splitWords(line) {
			word = strings.ToLower(word)
			if !seen[word] {
				seen[word] = true
				model.TrainWord(word)
			}
		}
	}
	if len(seen) == 0 {
		return ""
	}

	suggestion := model.SpellCheck(term)
	if suggestion == "" || suggestion == term {
		return ""
	}
	return suggestion
}

// splitWords tokenizes a line into words: runs of letters and digits.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
