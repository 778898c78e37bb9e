package main

import (
	"path/filepath"
	"strings"
)

// Highlighter applies syntax highlighting to a single display line.
type Highlighter interface {
	Highlight(line string) string
}

// PlainHighlighter returns text unchanged.
type PlainHighlighter struct{}

func (PlainHighlighter) Highlight(line string) string { return line }

// pythonKeywords are the words emphasised in .py files. A static lookup
// table, not a parser.
var pythonKeywords = map[string]bool{
	"def":    true,
	"class":  true,
	"import": true,
	"from":   true,
	"return": true,
}

// KeywordHighlighter bolds space-delimited words found in its table.
type KeywordHighlighter struct {
	Keywords map[string]bool
}

func (h KeywordHighlighter) Highlight(line string) string {
	words := strings.Split(line, " ")
	changed := false
	for i, word := range words {
		if h.Keywords[word] {
			words[i] = "\x1b[1m" + word + "\x1b[22m"
			changed = true
		}
	}
	if !changed {
		return line
	}
	return strings.Join(words, " ")
}

// DetectHighlighter returns the appropriate highlighter for the given filename.
func DetectHighlighter(filename string) Highlighter {
	if strings.ToLower(filepath.Ext(filename)) == ".py" {
		return KeywordHighlighter{Keywords: pythonKeywords}
	}
	return PlainHighlighter{}
}
