package main

import (
	"fmt"
	"strings"
)

// Frame carries everything one render needs besides the wrapped text.
// A frame is a pure function of this state; the renderer keeps nothing
// between calls except its reusable builder.
type Frame struct {
	DisplayLines []DisplayLine
	ScrollOffset int
	CursorLine   int // Display line index of the cursor
	CursorCol    int // Column within that display line
	Filename     string
	Status       string
	PromptLine   string // "" when no prompt is active
	Highlighter  Highlighter
}

// Renderer builds a frame buffer and writes it to the terminal in one go.
type Renderer struct {
	buf strings.Builder
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen: title bar, gutter and text area,
// prompt row, status row, divider, key-help menu, and cursor placement.
func (r *Renderer) RenderFrame(f Frame, vp *Viewport) string {
	r.buf.Reset()

	// Hide cursor during drawing.
	r.buf.WriteString("\x1b[?25l")

	// Clear screen and move to top-left.
	r.buf.WriteString("\x1b[2J\x1b[H")

	r.renderTitle(f.Filename, vp)
	r.renderText(f, vp)

	if f.PromptLine != "" {
		r.moveTo(vp.PromptRow(), 1)
		r.buf.WriteString(f.PromptLine)
	}

	r.moveTo(vp.StatusRow(), 1)
	r.buf.WriteString(padRight(f.Status, vp.Width-1))

	r.moveTo(vp.DividerRow(), 1)
	r.buf.WriteString(strings.Repeat("-", max(vp.Width-1, 1)))

	for i, chunk := range vp.MenuChunks() {
		r.moveTo(vp.DividerRow()+1+i, 1)
		r.buf.WriteString(chunk)
	}

	// Position the cursor: on the prompt row while a prompt is active,
	// otherwise at its place in the text area.
	if f.PromptLine != "" {
		r.moveTo(vp.PromptRow(), len([]rune(f.PromptLine))+1)
	} else {
		screenRow := vp.TextTop() + f.CursorLine - f.ScrollOffset
		screenCol := GutterWidth + f.CursorCol + 1
		r.moveTo(screenRow, screenCol)
	}

	// Show cursor.
	r.buf.WriteString("\x1b[?25h")

	return r.buf.String()
}

func (r *Renderer) renderTitle(filename string, vp *Viewport) {
	name := filename
	if name == "" {
		name = "New Buffer"
	}
	title := fmt.Sprintf("[ Editing: %s ] - stet", name)
	r.moveTo(1, 1)
	// Reverse video, centred across the full width.
	r.buf.WriteString("\x1b[7m")
	r.buf.WriteString(center(title, vp.Width-1))
	r.buf.WriteString("\x1b[0m")
}

func (r *Renderer) renderText(f Frame, vp *Viewport) {
	for i := 0; i < vp.TextHeight(); i++ {
		idx := f.ScrollOffset + i
		if idx >= len(f.DisplayLines) {
			break
		}
		dl := f.DisplayLines[idx]
		r.moveTo(vp.TextTop()+i, 1)
		// Every wrapped segment shows its logical line number.
		r.buf.WriteString(fmt.Sprintf("%*d ", GutterWidth-1, dl.BufferLine+1))
		r.buf.WriteString(f.Highlighter.Highlight(dl.Text))
	}
}

func (r *Renderer) moveTo(row, col int) {
	fmt.Fprintf(&r.buf, "\x1b[%d;%dH", row, col)
}

// center pads text on both sides to the given width, truncating if needed.
func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		if width < 0 {
			width = 0
		}
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// padRight pads or truncates s to exactly width runes.
func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		if width < 0 {
			width = 0
		}
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
