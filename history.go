package main

// maxSnapshots caps the undo history; the oldest snapshot is evicted when
// a new one would exceed it.
const maxSnapshots = 100

// History manages snapshot-based undo/redo: every mutating command stores a
// full copy of the buffer's lines before it runs. Undo and redo exchange
// whole snapshots rather than replaying individual operations.
type History struct {
	undo [][]string
	redo [][]string
}

func NewHistory() *History {
	return &History{}
}

// Push records a pre-mutation snapshot and clears the redo stack. Call it
// before every mutating command, never on undo/redo themselves.
func (h *History) Push(snapshot []string) {
	h.undo = append(h.undo, snapshot)
	if len(h.undo) > maxSnapshots {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// Undo exchanges the current buffer state for the most recent snapshot.
// Returns the restored lines and false if there is nothing to undo.
func (h *History) Undo(current []string) ([]string, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	h.redo = append(h.redo, current)
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return top, true
}

// Redo is the symmetric inverse of Undo.
func (h *History) Redo(current []string) ([]string, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	h.undo = append(h.undo, current)
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return top, true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
