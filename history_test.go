package main

import "testing"

func posWithPawn(t Tile) Position {
	return NewPosition().WithPieceAdded(Piece{Kind: Pawn, Side: White, At: t})
}

func TestHistoryCommitAndUndo(t *testing.T) {
	first := posWithPawn(Tile{0, 0})
	second := posWithPawn(Tile{0, 1})

	h := NewHistory(first)
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("fresh history should have nothing to undo or redo")
	}

	h.Commit(second)
	if !h.Current().Equal(second) {
		t.Fatal("commit did not update the present")
	}
	if !h.CanUndo() {
		t.Fatal("commit should make undo available")
	}

	h.Undo()
	if !h.Current().Equal(first) {
		t.Error("undo did not restore the previous position")
	}
	if !h.CanRedo() {
		t.Error("undo should make redo available")
	}

	h.Redo()
	if !h.Current().Equal(second) {
		t.Error("redo did not restore the undone position")
	}
}

func TestHistoryCommitEqualIsNoOp(t *testing.T) {
	pos := posWithPawn(Tile{3, 3})
	h := NewHistory(pos)
	h.Commit(posWithPawn(Tile{3, 3}))
	if h.CanUndo() {
		t.Error("committing an equal position should not grow the past")
	}
}

func TestHistoryUndoAtStartIsNoOp(t *testing.T) {
	pos := posWithPawn(Tile{1, 1})
	h := NewHistory(pos)
	h.Undo()
	if !h.Current().Equal(pos) {
		t.Error("undo on a fresh history changed the present")
	}
	h.Redo()
	if !h.Current().Equal(pos) {
		t.Error("redo with no future changed the present")
	}
}

func TestHistoryCommitClearsFuture(t *testing.T) {
	h := NewHistory(posWithPawn(Tile{0, 0}))
	h.Commit(posWithPawn(Tile{0, 1}))
	h.Commit(posWithPawn(Tile{0, 2}))
	h.Undo()
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("expected a redo branch after two undos")
	}
	h.Commit(posWithPawn(Tile{5, 5}))
	if h.CanRedo() {
		t.Error("commit should discard the redo branch")
	}
}
