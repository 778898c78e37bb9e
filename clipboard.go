package main

// Clipboard is the single-slot cut/paste store. Cut overwrites the slot;
// paste reads it without clearing, so repeated pastes repeat the same
// line. Pasting a slot that was never filled inserts an empty line.
type Clipboard struct {
	text string
}

// Set stores a cut line, replacing any previous content.
func (c *Clipboard) Set(text string) {
	c.text = text
}

// Text returns the slot's content.
func (c *Clipboard) Text() string {
	return c.text
}
