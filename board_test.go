package main

import "testing"

func TestStartingPosition(t *testing.T) {
	pos := StartingPosition()
	if len(pos.Pieces) != 32 {
		t.Fatalf("starting position has %d pieces, want 32", len(pos.Pieces))
	}
	king, ok := pos.PieceAt(Tile{4, 0}, White)
	if !ok || king.Kind != King {
		t.Errorf("expected white king on e1, got %v, %v", king, ok)
	}
	pawns := pos.PiecesAt(Tile{3, 6})
	if len(pawns) != 1 || pawns[0].Side != Black || pawns[0].Kind != Pawn {
		t.Errorf("expected a lone black pawn on d7, got %v", pawns)
	}
}

func TestWithPieceAddedDoesNotMutate(t *testing.T) {
	pos := NewPosition()
	next := pos.WithPieceAdded(Piece{Kind: Rook, Side: White, At: Tile{0, 0}})
	if len(pos.Pieces) != 0 {
		t.Errorf("original position grew to %d pieces", len(pos.Pieces))
	}
	if len(next.Pieces) != 1 {
		t.Errorf("new position has %d pieces, want 1", len(next.Pieces))
	}
}

func TestWithPieceRemovedBySide(t *testing.T) {
	pos := NewPosition().
		WithPieceAdded(Piece{Kind: Pawn, Side: White, At: Tile{2, 2}}).
		WithPieceAdded(Piece{Kind: Knight, Side: Black, At: Tile{2, 2}})

	next := pos.WithPieceRemoved(Tile{2, 2}, White)
	left := next.PiecesAt(Tile{2, 2})
	if len(left) != 1 || left[0].Side != Black {
		t.Errorf("after removing white, tile holds %v", left)
	}
	if len(pos.PiecesAt(Tile{2, 2})) != 2 {
		t.Error("removal mutated the original position")
	}
}

func TestWithPieceMovedKeepsSlot(t *testing.T) {
	pos := StartingPosition()
	there := pos.WithPieceMoved(Tile{4, 1}, White, Tile{4, 3})
	back := there.WithPieceMoved(Tile{4, 3}, White, Tile{4, 1})
	if !back.Equal(pos) {
		t.Error("moving a piece out and back changed the position")
	}
}

func TestPositionEqual(t *testing.T) {
	a := NewPosition().
		WithPieceAdded(Piece{Kind: Pawn, Side: White, At: Tile{0, 0}}).
		WithPieceAdded(Piece{Kind: Pawn, Side: Black, At: Tile{1, 1}})
	b := NewPosition().
		WithPieceAdded(Piece{Kind: Pawn, Side: Black, At: Tile{1, 1}}).
		WithPieceAdded(Piece{Kind: Pawn, Side: White, At: Tile{0, 0}})

	if !a.Equal(a) {
		t.Error("position not equal to itself")
	}
	if a.Equal(b) {
		t.Error("equality should be order-sensitive")
	}

	c := a
	c.MoveNumber = 3
	if a.Equal(c) {
		t.Error("equality should include the move number")
	}
}

func TestTileString(t *testing.T) {
	if got := (Tile{0, 0}).String(); got != "a1" {
		t.Errorf("got %q, want a1", got)
	}
	if got := (Tile{7, 7}).String(); got != "h8" {
		t.Errorf("got %q, want h8", got)
	}
}
