package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// App is the top-level editor state: one buffer, its history and clipboard,
// and the screen plumbing around them.
type App struct {
	buf         *Buffer
	history     *History
	clipboard   *Clipboard
	statusBar   *StatusBar
	renderer    *Renderer
	terminal    *Terminal
	viewport    *Viewport
	recent      *RecentFiles
	config      Config
	highlighter Highlighter

	cursorLine   int
	cursorCol    int
	scrollOffset int

	pendingFind string // Find term held between the two replace prompts.
	exitPending bool   // Ctrl-X pressed on a dirty buffer, awaiting confirm.
	quit        bool
}

func NewApp(filename string, cfg Config) *App {
	return &App{
		buf:         NewBuffer(filename),
		history:     NewHistory(),
		clipboard:   &Clipboard{},
		statusBar:   NewStatusBar(),
		renderer:    NewRenderer(),
		recent:      &RecentFiles{Path: cfg.RecentFiles},
		config:      cfg,
		highlighter: DetectHighlighter(filename),
	}
}

func (a *App) Run() error {
	isNew, err := a.buf.Load()
	if err != nil {
		return err
	}
	if isNew {
		a.statusBar.SetMessage(fmt.Sprintf("New file: %s", a.buf.Filename))
	} else {
		a.statusBar.SetMessage("Welcome to stet! Ctrl-G for help.")
		if a.buf.Filename != "" {
			a.recent.Append(a.buf.Filename)
		}
	}

	t, err := NewTerminal()
	if err != nil {
		return err
	}
	a.terminal = t
	defer t.Restore()

	a.viewport = NewViewport(t.Width(), t.Height())

	a.render()

	for !a.quit {
		// Check for resize signal (non-blocking).
		select {
		case <-t.SigwinchChan():
			t.Resize()
			a.viewport.Resize(t.Width(), t.Height())
			a.render()
			continue
		default:
		}

		event, err := t.ReadInput()
		if err != nil {
			return err
		}

		a.handleInput(event)
		if !a.quit {
			a.render()
		}
	}

	return nil
}

func (a *App) handleInput(event InputEvent) {
	// Clear any transient status message; the handler below may set a new one.
	a.statusBar.ClearMessage()

	if event.Type == EventMouse {
		a.handleMouse(event.Mouse)
		return
	}

	key := event.Key

	// A pending exit confirmation consumes the next key.
	if a.exitPending {
		a.exitPending = false
		if key.Type == KeyCtrlX {
			a.quit = true
		}
		return
	}

	// An active prompt consumes all keys.
	if a.statusBar.Prompt != PromptNone {
		a.handlePromptKey(key)
		return
	}

	a.handleKey(key)
}

func (a *App) handleMouse(mouse MouseEvent) {
	if a.statusBar.Prompt != PromptNone {
		return
	}
	if mouse.Button != MouseLeft || !mouse.Press {
		return
	}
	line, col := a.mouseToBufferPos(mouse.Row, mouse.Col)
	if line >= 0 && col >= 0 {
		a.cursorLine = line
		a.cursorCol = col
	}
}

func (a *App) handleKey(key Key) {
	switch key.Type {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		a.moveCursor(key.Type)
	case KeyRune:
		a.insertText(string(key.Rune))
	case KeyTab:
		a.insertText(strings.Repeat(" ", a.config.TabWidth))
	case KeyEnter:
		a.insertNewline()
	case KeyBackspace:
		a.deleteChar()
	case KeyCtrlG:
		a.statusBar.SetMessage("Help: ^O Save | ^X Exit | ^W Search | ^\\ Replace | ^_ GoTo | ^K Cut | ^U Paste | ^Z Undo | ^Y Redo")
	case KeyCtrlO:
		a.saveAction()
	case KeyCtrlW:
		a.statusBar.StartPrompt(PromptSearch)
	case KeyCtrlBackslash:
		a.statusBar.StartPrompt(PromptReplaceFind)
	case KeyCtrlUnderscore:
		a.statusBar.StartPrompt(PromptGoto)
	case KeyCtrlK:
		a.cutLine()
	case KeyCtrlU:
		a.pasteLine()
	case KeyCtrlZ:
		a.undoAction()
	case KeyCtrlY:
		a.redoAction()
	case KeyCtrlX:
		a.exitAction()
	}
}

func (a *App) handlePromptKey(key Key) {
	prompt := a.statusBar.Prompt
	text, done, cancelled := a.statusBar.HandlePromptKey(key)
	if cancelled {
		if prompt == PromptSaveAs {
			a.statusBar.SetMessage("Save cancelled.")
		}
		return
	}
	if !done {
		return
	}

	switch prompt {
	case PromptSearch:
		a.searchFor(text)
	case PromptReplaceFind:
		a.pendingFind = text
		a.statusBar.StartPrompt(PromptReplaceWith)
	case PromptReplaceWith:
		a.replaceAll(a.pendingFind, text)
		a.pendingFind = ""
	case PromptGoto:
		a.gotoLine(text)
	case PromptSaveAs:
		if text == "" {
			a.statusBar.SetMessage("Save cancelled.")
			return
		}
		a.buf.Filename = text
		a.highlighter = DetectHighlighter(text)
		a.doSave()
	}
}

// snapshot records the pre-mutation buffer state. Call before every
// mutating command, never on undo/redo.
func (a *App) snapshot() {
	a.history.Push(a.buf.Snapshot())
}

func (a *App) insertText(text string) {
	a.snapshot()
	a.buf.InsertText(a.cursorLine, a.cursorCol, text)
	a.cursorCol += len([]rune(text))
}

func (a *App) insertNewline() {
	a.snapshot()
	a.buf.InsertNewline(a.cursorLine, a.cursorCol)
	a.cursorLine++
	a.cursorCol = 0
}

func (a *App) deleteChar() {
	if a.cursorCol == 0 && a.cursorLine == 0 {
		return
	}
	a.snapshot()
	if a.cursorCol > 0 {
		a.buf.DeleteChar(a.cursorLine, a.cursorCol)
		a.cursorCol--
	} else {
		// At column 0: join with the previous line.
		prevLen := a.buf.LineLen(a.cursorLine - 1)
		a.buf.JoinLines(a.cursorLine - 1)
		a.cursorLine--
		a.cursorCol = prevLen
	}
}

func (a *App) cutLine() {
	a.snapshot()
	a.clipboard.Set(a.buf.CutLine(a.cursorLine))
	if a.cursorLine >= a.buf.LineCount() {
		a.cursorLine = a.buf.LineCount() - 1
	}
	a.cursorCol = 0
	a.statusBar.SetMessage("Line cut.")
}

func (a *App) pasteLine() {
	a.snapshot()
	a.buf.InsertLine(a.cursorLine, a.clipboard.Text())
	a.statusBar.SetMessage("Line pasted.")
}

func (a *App) undoAction() {
	lines, ok := a.history.Undo(a.buf.Snapshot())
	if !ok {
		return
	}
	a.buf.Restore(lines)
	a.clampCursor()
	a.statusBar.SetMessage("Undo!")
}

func (a *App) redoAction() {
	lines, ok := a.history.Redo(a.buf.Snapshot())
	if !ok {
		return
	}
	a.buf.Restore(lines)
	a.clampCursor()
	a.statusBar.SetMessage("Redo!")
}

func (a *App) searchFor(term string) {
	row, col, found := Find(a.buf, term, a.cursorLine)
	if found {
		a.cursorLine = row
		a.cursorCol = col
		a.statusBar.SetMessage(fmt.Sprintf("Found '%s'", term))
		return
	}
	// Cursor stays put on a miss.
	msg := fmt.Sprintf("'%s' not found!", term)
	if suggestion := Suggest(a.buf, term); suggestion != "" {
		msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
	}
	a.statusBar.SetMessage(msg)
}

func (a *App) replaceAll(find, replace string) {
	snap := a.buf.Snapshot()
	count := a.buf.ReplaceAll(find, replace)
	if count > 0 {
		a.history.Push(snap)
		a.clampCursor()
	}
	a.statusBar.SetMessage(fmt.Sprintf("Replaced matches on %d line(s)", count))
}

func (a *App) gotoLine(input string) {
	n, err := strconv.Atoi(input)
	if err != nil {
		a.statusBar.SetMessage("Invalid input.")
		return
	}
	line := n - 1
	if line < 0 || line >= a.buf.LineCount() {
		a.statusBar.SetMessage("Invalid line number.")
		return
	}
	a.cursorLine = line
	if a.cursorCol > a.buf.LineLen(line) {
		a.cursorCol = a.buf.LineLen(line)
	}
	a.statusBar.SetMessage(fmt.Sprintf("Jumped to line %d", n))
}

func (a *App) saveAction() {
	if a.buf.Filename == "" {
		a.statusBar.StartPrompt(PromptSaveAs)
		return
	}
	a.doSave()
}

func (a *App) doSave() {
	backedUp, err := a.buf.Save(a.config.BackupSuffix)
	if err != nil {
		// Dirty stays set; the user can retry.
		a.statusBar.SetMessage(fmt.Sprintf("Error saving: %v", err))
		return
	}
	a.recent.Append(a.buf.Filename)
	if backedUp {
		a.statusBar.SetMessage(fmt.Sprintf("Wrote %s (backup created)", a.buf.Filename))
	} else {
		a.statusBar.SetMessage(fmt.Sprintf("Wrote %s", a.buf.Filename))
	}
}

func (a *App) exitAction() {
	if a.buf.Dirty {
		a.exitPending = true
		a.statusBar.SetMessage("Unsaved changes! Ctrl-O to save, Ctrl-X again to force exit.")
		return
	}
	a.quit = true
}

// moveCursor moves the cursor in the given direction, clamping to valid
// positions. Left at column 0 wraps to the end of the previous line; Right
// at end-of-line wraps to the start of the next.
func (a *App) moveCursor(dir int) {
	switch dir {
	case KeyLeft:
		if a.cursorCol > 0 {
			a.cursorCol--
		} else if a.cursorLine > 0 {
			a.cursorLine--
			a.cursorCol = a.buf.LineLen(a.cursorLine)
		}
	case KeyRight:
		if a.cursorCol < a.buf.LineLen(a.cursorLine) {
			a.cursorCol++
		} else if a.cursorLine < a.buf.LineCount()-1 {
			a.cursorLine++
			a.cursorCol = 0
		}
	case KeyUp:
		if a.cursorLine > 0 {
			a.cursorLine--
			if a.cursorCol > a.buf.LineLen(a.cursorLine) {
				a.cursorCol = a.buf.LineLen(a.cursorLine)
			}
		}
	case KeyDown:
		if a.cursorLine < a.buf.LineCount()-1 {
			a.cursorLine++
			if a.cursorCol > a.buf.LineLen(a.cursorLine) {
				a.cursorCol = a.buf.LineLen(a.cursorLine)
			}
		}
	}
}

// clampCursor pulls the cursor back inside the buffer after the content
// changed underneath it (undo, redo, replace).
func (a *App) clampCursor() {
	if a.cursorLine >= a.buf.LineCount() {
		a.cursorLine = a.buf.LineCount() - 1
	}
	if a.cursorLine < 0 {
		a.cursorLine = 0
	}
	if a.cursorCol > a.buf.LineLen(a.cursorLine) {
		a.cursorCol = a.buf.LineLen(a.cursorLine)
	}
}

// mouseToBufferPos converts terminal mouse coordinates to a buffer
// position. Returns (-1, -1) if the click is outside the text area. The
// lookup never mutates cursor or scroll state.
func (a *App) mouseToBufferPos(termRow, termCol int) (int, int) {
	vp := a.viewport
	if termRow < vp.TextTop() || termRow >= vp.TextTop()+vp.TextHeight() {
		return -1, -1
	}

	displayLines := WrapBuffer(a.buf, vp.TextWidth())
	displayIdx := a.scrollOffset + (termRow - vp.TextTop())
	if displayIdx >= len(displayLines) {
		// Click below the text: end of the last line.
		last := displayLines[len(displayLines)-1]
		return last.BufferLine, a.buf.LineLen(last.BufferLine)
	}

	dl := displayLines[displayIdx]
	clickCol := termCol - 1 - GutterWidth
	if clickCol < 0 {
		clickCol = 0
	}
	if segLen := len([]rune(dl.Text)); clickCol > segLen {
		clickCol = segLen
	}
	// Column offsets accumulate across wrapped segments of one logical line.
	return dl.BufferLine, dl.Offset + clickCol
}

func (a *App) render() {
	displayLines := WrapBuffer(a.buf, a.viewport.TextWidth())
	cursorDL, cursorDC := CursorToDisplayLine(displayLines, a.cursorLine, a.cursorCol)
	a.scrollOffset = a.viewport.EnsureVisible(cursorDL, a.scrollOffset)

	frame := a.renderer.RenderFrame(Frame{
		DisplayLines: displayLines,
		ScrollOffset: a.scrollOffset,
		CursorLine:   cursorDL,
		CursorCol:    cursorDC,
		Filename:     a.buf.Filename,
		Status:       a.statusBar.StatusMessage,
		PromptLine:   a.statusBar.PromptLine(),
		Highlighter:  a.highlighter,
	}, a.viewport)

	os.Stdout.WriteString(frame)
}
