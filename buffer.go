package main

import (
	"os"
	"strings"
)

// Buffer holds the text content as a slice of lines (hard lines, split on \n).
// The slice is never empty: an empty document is one zero-length line.
type Buffer struct {
	Lines    []string
	Dirty    bool
	Filename string
}

func NewBuffer(filename string) *Buffer {
	return &Buffer{
		Lines:    []string{""},
		Filename: filename,
	}
}

// Load reads the buffer's file. A missing file is not an error: the buffer
// starts as a single empty line and isNew reports the condition so the
// caller can show a "new file" status.
func (b *Buffer) Load() (isNew bool, err error) {
	if b.Filename == "" {
		return false, nil
	}
	data, err := os.ReadFile(b.Filename)
	if err != nil {
		if os.IsNotExist(err) {
			b.Lines = []string{""}
			return true, nil
		}
		return false, err
	}
	text := string(data)
	// Strip one trailing newline to avoid a phantom empty line. A file that
	// ends in \n therefore round-trips without it; Save never appends one.
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		b.Lines = []string{""}
	} else {
		b.Lines = strings.Split(text, "\n")
	}
	b.Dirty = false
	return false, nil
}

// Serialize joins the lines with \n. No trailing newline is appended.
func (b *Buffer) Serialize() string {
	return strings.Join(b.Lines, "\n")
}

// Save writes the buffer to its file, renaming any existing file at that
// path to path+backupSuffix first. On failure the Dirty flag is untouched.
// Returns whether a backup was made.
func (b *Buffer) Save(backupSuffix string) (backedUp bool, err error) {
	if b.Filename == "" {
		return false, nil // Caller prompts for a name first.
	}
	if _, statErr := os.Stat(b.Filename); statErr == nil {
		if err := os.Rename(b.Filename, b.Filename+backupSuffix); err != nil {
			return false, err
		}
		backedUp = true
	}
	if err := os.WriteFile(b.Filename, []byte(b.Serialize()), 0644); err != nil {
		return backedUp, err
	}
	b.Dirty = false
	return backedUp, nil
}

// InsertChar inserts a character at the given line and column position.
func (b *Buffer) InsertChar(line, col int, ch rune) {
	b.InsertText(line, col, string(ch))
}

// InsertText inserts a string (no newlines) at the given position.
func (b *Buffer) InsertText(line, col int, text string) {
	if line < 0 || line >= len(b.Lines) {
		return
	}
	runes := []rune(b.Lines[line])
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	ins := []rune(text)
	newRunes := make([]rune, 0, len(runes)+len(ins))
	newRunes = append(newRunes, runes[:col]...)
	newRunes = append(newRunes, ins...)
	newRunes = append(newRunes, runes[col:]...)
	b.Lines[line] = string(newRunes)
	b.Dirty = true
}

// DeleteChar deletes the character before the given position (backspace).
// At column 0 it joins the line with the previous one instead.
// Returns whether a line join occurred.
func (b *Buffer) DeleteChar(line, col int) bool {
	if line < 0 || line >= len(b.Lines) {
		return false
	}
	if col > 0 {
		runes := []rune(b.Lines[line])
		if col > len(runes) {
			col = len(runes)
		}
		newRunes := make([]rune, 0, len(runes)-1)
		newRunes = append(newRunes, runes[:col-1]...)
		newRunes = append(newRunes, runes[col:]...)
		b.Lines[line] = string(newRunes)
		b.Dirty = true
		return false
	}
	if line == 0 {
		return false
	}
	b.JoinLines(line - 1)
	return true
}

// InsertNewline splits the line at the given position.
func (b *Buffer) InsertNewline(line, col int) {
	if line < 0 || line >= len(b.Lines) {
		return
	}
	runes := []rune(b.Lines[line])
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	before := string(runes[:col])
	after := string(runes[col:])
	b.Lines[line] = before
	newLines := make([]string, 0, len(b.Lines)+1)
	newLines = append(newLines, b.Lines[:line+1]...)
	newLines = append(newLines, after)
	newLines = append(newLines, b.Lines[line+1:]...)
	b.Lines = newLines
	b.Dirty = true
}

// JoinLines joins line[idx] with line[idx+1].
func (b *Buffer) JoinLines(idx int) {
	if idx < 0 || idx+1 >= len(b.Lines) {
		return
	}
	b.Lines[idx] += b.Lines[idx+1]
	b.Lines = append(b.Lines[:idx+1], b.Lines[idx+2:]...)
	b.Dirty = true
}

// CutLine removes the line at idx and returns its text. If that would
// empty the buffer, a single empty line is substituted.
func (b *Buffer) CutLine(idx int) string {
	if idx < 0 || idx >= len(b.Lines) {
		return ""
	}
	text := b.Lines[idx]
	b.Lines = append(b.Lines[:idx], b.Lines[idx+1:]...)
	if len(b.Lines) == 0 {
		b.Lines = []string{""}
	}
	b.Dirty = true
	return text
}

// InsertLine inserts text as a new line before index idx.
func (b *Buffer) InsertLine(idx int, text string) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(b.Lines) {
		idx = len(b.Lines)
	}
	newLines := make([]string, 0, len(b.Lines)+1)
	newLines = append(newLines, b.Lines[:idx]...)
	newLines = append(newLines, text)
	newLines = append(newLines, b.Lines[idx:]...)
	b.Lines = newLines
	b.Dirty = true
}

// ReplaceAll replaces every occurrence of find in every line that contains
// it. Returns the number of lines changed, not the number of occurrences.
func (b *Buffer) ReplaceAll(find, replace string) int {
	if find == "" {
		return 0
	}
	count := 0
	for i, line := range b.Lines {
		if strings.Contains(line, find) {
			b.Lines[i] = strings.ReplaceAll(line, find, replace)
			count++
		}
	}
	if count > 0 {
		b.Dirty = true
	}
	return count
}

// Snapshot returns a deep copy of the line slice for the undo history.
func (b *Buffer) Snapshot() []string {
	lines := make([]string, len(b.Lines))
	copy(lines, b.Lines)
	return lines
}

// Restore replaces the buffer content with a history snapshot.
func (b *Buffer) Restore(lines []string) {
	b.Lines = lines
	b.Dirty = true
}

// LineLen returns the rune-length of a given line.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.Lines) {
		return 0
	}
	return len([]rune(b.Lines[line]))
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}
