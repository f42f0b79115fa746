package main

import "testing"

func TestCycleHighlight(t *testing.T) {
	c3 := Tile{2, 2}
	e5 := Tile{4, 4}

	tests := []struct {
		name    string
		clicked Tile
		current *Selection
		want    *Selection
	}{
		{"no selection", c3, nil, &Selection{c3, HighlightBoth}},
		{"both to white", c3, &Selection{c3, HighlightBoth}, &Selection{c3, HighlightWhite}},
		{"white to black", c3, &Selection{c3, HighlightWhite}, &Selection{c3, HighlightBlack}},
		{"black to none", c3, &Selection{c3, HighlightBlack}, nil},
		{"lingering restarts", c3, &Selection{c3, HighlightLingering}, &Selection{c3, HighlightBoth}},
		{"other tile restarts", e5, &Selection{c3, HighlightBlack}, &Selection{e5, HighlightBoth}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CycleHighlight(tc.clicked, tc.current)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("got %v, want %v", *got, *tc.want)
			}
		})
	}
}

func TestCycleHighlightClosure(t *testing.T) {
	c3 := Tile{2, 2}
	var sel *Selection
	for i := 0; i < 4; i++ {
		sel = CycleHighlight(c3, sel)
	}
	if sel != nil {
		t.Errorf("four clicks should return to no selection, got %v", *sel)
	}
}

func TestPieceMatchesSelection(t *testing.T) {
	c3 := Tile{2, 2}
	whitePawn := Piece{Kind: Pawn, Side: White, At: c3}
	blackKnight := Piece{Kind: Knight, Side: Black, At: c3}
	elsewhere := Piece{Kind: Pawn, Side: White, At: Tile{4, 4}}

	tests := []struct {
		name string
		sel  Selection
		pc   Piece
		want bool
	}{
		{"both matches white", Selection{c3, HighlightBoth}, whitePawn, true},
		{"both matches black", Selection{c3, HighlightBoth}, blackKnight, true},
		{"white matches white", Selection{c3, HighlightWhite}, whitePawn, true},
		{"white rejects black", Selection{c3, HighlightWhite}, blackKnight, false},
		{"black matches black", Selection{c3, HighlightBlack}, blackKnight, true},
		{"lingering matches nothing", Selection{c3, HighlightLingering}, whitePawn, false},
		{"other tile never matches", Selection{c3, HighlightBoth}, elsewhere, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PieceMatchesSelection(tc.sel, tc.pc); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
