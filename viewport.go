package main

// GutterWidth is the width of the line-number gutter: a right-justified
// number in four cells plus one space.
const GutterWidth = 5

// menuText is the key-help line drawn at the bottom of the screen.
const menuText = "^G Help  ^O Write Out  ^W Where Is  ^\\ Replace  ^_ GoTo  ^K Cut  ^U Paste  ^Z Undo  ^Y Redo  ^X Exit"

// Viewport manages screen geometry: how the terminal height splits into
// title, text area, prompt, status, divider, and menu rows, and how the
// scroll offset tracks the cursor. Everything is recomputed per frame from
// the current dimensions, so a resize needs no extra bookkeeping.
type Viewport struct {
	Width  int // Terminal width
	Height int // Terminal height
}

func NewViewport(termWidth, termHeight int) *Viewport {
	return &Viewport{Width: termWidth, Height: termHeight}
}

// Resize updates the viewport for new terminal dimensions.
func (v *Viewport) Resize(termWidth, termHeight int) {
	v.Width = termWidth
	v.Height = termHeight
}

// MenuChunks splits the key-help menu into rows that fit the width.
func (v *Viewport) MenuChunks() []string {
	w := v.Width - 1
	if w < 1 {
		w = 1
	}
	var chunks []string
	for i := 0; i < len(menuText); i += w {
		end := i + w
		if end > len(menuText) {
			end = len(menuText)
		}
		chunks = append(chunks, menuText[i:end])
	}
	return chunks
}

// MenuRows returns how many rows the key-help menu needs at this width.
func (v *Viewport) MenuRows() int {
	return len(v.MenuChunks())
}

// TextWidth returns the width available to text after the gutter.
func (v *Viewport) TextWidth() int {
	w := v.Width - GutterWidth
	if w < 1 {
		w = 1
	}
	return w
}

// TextHeight returns the number of text rows between the title and the
// prompt/status/divider/menu block.
func (v *Viewport) TextHeight() int {
	h := v.Height - 4 - v.MenuRows()
	if h < 1 {
		h = 1
	}
	return h
}

// Screen rows, 1-based, for the renderer. The text area occupies rows
// TextTop() through TextTop()+TextHeight()-1.
func (v *Viewport) TextTop() int    { return 2 }
func (v *Viewport) PromptRow() int  { return v.Height - v.MenuRows() - 2 }
func (v *Viewport) StatusRow() int  { return v.Height - v.MenuRows() - 1 }
func (v *Viewport) DividerRow() int { return v.Height - v.MenuRows() }

// EnsureVisible returns a scroll offset adjusted so the given display line
// falls inside the text area.
func (v *Viewport) EnsureVisible(displayLine, scrollOffset int) int {
	h := v.TextHeight()
	if displayLine < scrollOffset {
		return displayLine
	}
	if displayLine >= scrollOffset+h {
		return displayLine - h + 1
	}
	return scrollOffset
}
