package main

// Highlight is the scope of the active selection on a tile: both pieces of
// a union, one side of it, or the lingering display state left behind after
// a piece was placed.
type Highlight uint8

const (
	HighlightBoth Highlight = iota
	HighlightWhite
	HighlightBlack
	HighlightLingering
)

func (h Highlight) String() string {
	switch h {
	case HighlightBoth:
		return "both"
	case HighlightWhite:
		return "white"
	case HighlightBlack:
		return "black"
	case HighlightLingering:
		return "lingering"
	}
	return "?"
}

// Selection pairs a tile with the highlight scope on it.
type Selection struct {
	Tile      Tile
	Highlight Highlight
}

// CycleHighlight advances the selection for a click on a union tile:
// both -> white -> black -> none, restarting at both whenever a different
// tile is clicked or the current state is lingering.
func CycleHighlight(clicked Tile, current *Selection) *Selection {
	if current == nil || current.Tile != clicked {
		return &Selection{Tile: clicked, Highlight: HighlightBoth}
	}
	switch current.Highlight {
	case HighlightBoth:
		return &Selection{Tile: clicked, Highlight: HighlightWhite}
	case HighlightWhite:
		return &Selection{Tile: clicked, Highlight: HighlightBlack}
	case HighlightBlack:
		return nil
	case HighlightLingering:
		return &Selection{Tile: clicked, Highlight: HighlightBoth}
	}
	return nil
}

// PieceMatchesSelection reports whether the selection grabs the piece.
// Lingering grabs nothing; it is display-only.
func PieceMatchesSelection(sel Selection, pc Piece) bool {
	if pc.At != sel.Tile {
		return false
	}
	switch sel.Highlight {
	case HighlightBoth:
		return true
	case HighlightWhite:
		return pc.Side == White
	case HighlightBlack:
		return pc.Side == Black
	}
	return false
}
