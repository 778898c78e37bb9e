package main

// DisplayLine represents one visual line on screen, mapped back to its source.
type DisplayLine struct {
	BufferLine int    // Index into Buffer.Lines
	Offset     int    // Rune offset within the buffer line where this chunk starts
	Text       string // The display text for this line
}

// WrapLine soft-wraps a single hard line into display lines. Lines longer
// than width break into consecutive fixed-size chunks of at most width
// runes; there is no word-boundary adjustment. A line of length L yields
// ceil(L/width) chunks, minimum one.
func WrapLine(line string, width, bufferLine int) []DisplayLine {
	runes := []rune(line)
	if width <= 0 || len(runes) <= width {
		return []DisplayLine{{BufferLine: bufferLine, Offset: 0, Text: line}}
	}

	result := make([]DisplayLine, 0, (len(runes)+width-1)/width)
	for offset := 0; offset < len(runes); offset += width {
		end := offset + width
		if end > len(runes) {
			end = len(runes)
		}
		result = append(result, DisplayLine{
			BufferLine: bufferLine,
			Offset:     offset,
			Text:       string(runes[offset:end]),
		})
	}
	return result
}

// WrapBuffer wraps all lines in the buffer into display lines.
func WrapBuffer(buf *Buffer, width int) []DisplayLine {
	var all []DisplayLine
	for i, line := range buf.Lines {
		all = append(all, WrapLine(line, width, i)...)
	}
	return all
}

// CursorToDisplayLine converts a buffer (line, col) position to a display
// line index and a column within that display line. The lookup is in two
// phases: find the segment whose offset range contains the column, then
// subtract the segment's offset. A column exactly on a chunk boundary
// belongs to the following segment unless this is the line's last segment.
func CursorToDisplayLine(displayLines []DisplayLine, bufLine, bufCol int) (displayIdx, displayCol int) {
	for i, dl := range displayLines {
		if dl.BufferLine != bufLine {
			continue
		}
		relCol := bufCol - dl.Offset
		segLen := len([]rune(dl.Text))
		if relCol < 0 || relCol > segLen {
			continue
		}
		isLastSegment := i+1 >= len(displayLines) || displayLines[i+1].BufferLine != bufLine
		if relCol < segLen || isLastSegment {
			return i, relCol
		}
	}
	// Fallback: start of the first display line for this buffer line.
	for i, dl := range displayLines {
		if dl.BufferLine == bufLine {
			return i, 0
		}
	}
	return 0, 0
}
