package main

// History is an undo/redo zipper over committed positions. The present
// snapshot is always valid; undo and redo at the ends are no-ops.
type History struct {
	past    []Position
	present Position
	future  []Position
}

func NewHistory(initial Position) *History {
	return &History{present: initial}
}

func (h *History) Current() Position { return h.present }

// Commit records a new present and discards the redo branch. Committing a
// position equal to the present is a no-op, so gestures that change nothing
// do not pollute the history.
func (h *History) Commit(p Position) {
	if p.Equal(h.present) {
		return
	}
	h.past = append(h.past, h.present)
	h.present = p
	h.future = h.future[:0]
}

func (h *History) Undo() {
	if len(h.past) == 0 {
		return
	}
	h.future = append(h.future, h.present)
	h.present = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
}

func (h *History) Redo() {
	if len(h.future) == 0 {
		return
	}
	h.past = append(h.past, h.present)
	h.present = h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }
