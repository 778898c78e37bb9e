package main

// PromptType indicates what kind of prompt is active.
type PromptType int

const (
	PromptNone        PromptType = iota
	PromptSearch                 // "Search: " for Ctrl-W
	PromptReplaceFind            // "Replace - Find: " first stage of Ctrl-\
	PromptReplaceWith            // "Replace - With: " second stage of Ctrl-\
	PromptGoto                   // "Goto Line: " for Ctrl-_
	PromptSaveAs                 // "Save as: " for Ctrl-O on an unnamed buffer
)

// promptLabels maps each prompt to the text shown on the prompt row.
var promptLabels = map[PromptType]string{
	PromptSearch:      "Search: ",
	PromptReplaceFind: "Replace - Find: ",
	PromptReplaceWith: "Replace - With: ",
	PromptGoto:        "Goto Line: ",
	PromptSaveAs:      "Save as: ",
}

// StatusBar holds the transient status message and the inline prompt state.
// Prompts are typed on the prompt row of the screen rather than in a modal
// dialog; Escape cancels, Enter submits.
type StatusBar struct {
	Prompt        PromptType
	PromptText    string // User input typed so far.
	StatusMessage string // Transient message (errors, confirmations).
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// StartPrompt begins a prompt of the given type.
func (s *StatusBar) StartPrompt(pt PromptType) {
	s.Prompt = pt
	s.PromptText = ""
}

// ClearPrompt resets the prompt state.
func (s *StatusBar) ClearPrompt() {
	s.Prompt = PromptNone
	s.PromptText = ""
}

// PromptLine returns the text to draw on the prompt row, or "" when no
// prompt is active.
func (s *StatusBar) PromptLine() string {
	if s.Prompt == PromptNone {
		return ""
	}
	return promptLabels[s.Prompt] + s.PromptText
}

// SetMessage sets a transient status message.
func (s *StatusBar) SetMessage(msg string) {
	s.StatusMessage = msg
}

// ClearMessage clears the transient status message.
func (s *StatusBar) ClearMessage() {
	s.StatusMessage = ""
}

// HandlePromptKey processes a keypress during an active prompt.
// Returns (input string, done bool, cancelled bool).
func (s *StatusBar) HandlePromptKey(key Key) (string, bool, bool) {
	switch key.Type {
	case KeyEscape:
		s.ClearPrompt()
		return "", false, true
	case KeyEnter:
		text := s.PromptText
		s.ClearPrompt()
		return text, true, false
	case KeyBackspace:
		if len(s.PromptText) > 0 {
			runes := []rune(s.PromptText)
			s.PromptText = string(runes[:len(runes)-1])
		}
		return "", false, false
	case KeyRune:
		s.PromptText += string(key.Rune)
		return "", false, false
	}
	return "", false, false
}
