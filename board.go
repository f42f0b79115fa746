package main

import "fmt"

type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

type PieceKind uint8

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Rook:
		return 'R'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return fmt.Sprintf("piece(%d)", uint8(k))
}

func kindFromLetter(b byte) (PieceKind, bool) {
	switch b {
	case 'P', 'p':
		return Pawn, true
	case 'R', 'r':
		return Rook, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Tile is a board square. X is the file (0 = a), Y the rank (0 = 1).
type Tile struct {
	X, Y int
}

func (t Tile) OnBoard() bool {
	return t.X >= 0 && t.X < 8 && t.Y >= 0 && t.Y < 8
}

func (t Tile) String() string {
	if !t.OnBoard() {
		return fmt.Sprintf("(%d,%d)", t.X, t.Y)
	}
	return string([]byte{byte('a' + t.X), byte('1' + t.Y)})
}

type Piece struct {
	Kind PieceKind
	Side Side
	At   Tile
}

// Position is an immutable snapshot of the board. A tile may hold at most
// one piece per side; two pieces of opposite sides on the same tile form a
// union. That rule is enforced by the gesture layer, not here.
type Position struct {
	MoveNumber int
	Pieces     []Piece
}

// PiecesAt returns the pieces on a tile, at most two in any position that
// went through the gesture layer.
func (p Position) PiecesAt(t Tile) []Piece {
	var out []Piece
	for _, pc := range p.Pieces {
		if pc.At == t {
			out = append(out, pc)
		}
	}
	return out
}

func (p Position) PieceAt(t Tile, s Side) (Piece, bool) {
	for _, pc := range p.Pieces {
		if pc.At == t && pc.Side == s {
			return pc, true
		}
	}
	return Piece{}, false
}

// Equal is structural: move number and the pieces in insertion order.
func (p Position) Equal(q Position) bool {
	if p.MoveNumber != q.MoveNumber || len(p.Pieces) != len(q.Pieces) {
		return false
	}
	for i := range p.Pieces {
		if p.Pieces[i] != q.Pieces[i] {
			return false
		}
	}
	return true
}

func (p Position) clonePieces() []Piece {
	return append([]Piece(nil), p.Pieces...)
}

func (p Position) WithPieceAdded(pc Piece) Position {
	return Position{MoveNumber: p.MoveNumber, Pieces: append(p.clonePieces(), pc)}
}

// WithPieceRemoved drops the piece of the given side on the tile, if any.
func (p Position) WithPieceRemoved(t Tile, s Side) Position {
	pieces := make([]Piece, 0, len(p.Pieces))
	for _, pc := range p.Pieces {
		if pc.At == t && pc.Side == s {
			continue
		}
		pieces = append(pieces, pc)
	}
	return Position{MoveNumber: p.MoveNumber, Pieces: pieces}
}

// WithPieceMoved relocates the piece of the given side on the tile. Pieces
// keep their slot in the sequence so equality stays stable across moves
// back and forth.
func (p Position) WithPieceMoved(t Tile, s Side, to Tile) Position {
	pieces := p.clonePieces()
	for i, pc := range pieces {
		if pc.At == t && pc.Side == s {
			pieces[i].At = to
			break
		}
	}
	return Position{MoveNumber: p.MoveNumber, Pieces: pieces}
}

// NewPosition is an empty board.
func NewPosition() Position {
	return Position{}
}

// StartingPosition is the standard chess setup.
func StartingPosition() Position {
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	pos := Position{Pieces: make([]Piece, 0, 32)}
	for x, kind := range backRank {
		pos.Pieces = append(pos.Pieces, Piece{Kind: kind, Side: White, At: Tile{X: x, Y: 0}})
	}
	for x := 0; x < 8; x++ {
		pos.Pieces = append(pos.Pieces, Piece{Kind: Pawn, Side: White, At: Tile{X: x, Y: 1}})
	}
	for x := 0; x < 8; x++ {
		pos.Pieces = append(pos.Pieces, Piece{Kind: Pawn, Side: Black, At: Tile{X: x, Y: 6}})
	}
	for x, kind := range backRank {
		pos.Pieces = append(pos.Pieces, Piece{Kind: kind, Side: Black, At: Tile{X: x, Y: 7}})
	}
	return pos
}
