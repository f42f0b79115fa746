package main

import "math"

// Rect is the on-screen rectangle the board occupies, in whatever units the
// host measures pointer positions in (terminal cells here).
type Rect struct {
	X, Y, W, H float64
}

// ScreenCoord is a raw pointer position.
type ScreenCoord struct {
	X, Y float64
}

// BoardCoord is a point in the fixed 800x800 board-pixel space. Tile (x,y)
// occupies pixels [100x,100x+100) x [700-100y,800-100y): pixel y grows
// downward while ranks grow upward.
type BoardCoord struct {
	X, Y int
}

// ToBoardCoord maps a pointer position into board-pixel space. It is total:
// points outside the rect map to coordinates outside [0,800).
func ToBoardCoord(r Rect, s ScreenCoord) BoardCoord {
	w, h := r.W, r.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	bx := math.Floor((s.X - r.X) / w * boardPixels)
	by := math.Floor((s.Y - r.Y) / h * boardPixels)
	return BoardCoord{X: int(bx), Y: int(by)}
}

// ToTile returns the tile containing a board-pixel point, or false when the
// point lies off the board. Off-board is a normal outcome, not an error.
func ToTile(b BoardCoord) (Tile, bool) {
	if b.X < 0 || b.X >= boardPixels || b.Y < 0 || b.Y >= boardPixels {
		return Tile{}, false
	}
	return Tile{X: b.X / tilePixels, Y: 7 - b.Y/tilePixels}, true
}

// tileCenter is the board-pixel midpoint of a tile, used when a keyboard
// action stands in for a pointer click.
func tileCenter(t Tile) BoardCoord {
	return BoardCoord{
		X: t.X*tilePixels + tilePixels/2,
		Y: (7-t.Y)*tilePixels + tilePixels/2,
	}
}
