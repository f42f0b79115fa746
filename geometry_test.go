package main

import "testing"

func TestToBoardCoord(t *testing.T) {
	identity := Rect{X: 0, Y: 0, W: 800, H: 800}
	terminal := Rect{X: 3, Y: 1, W: 40, H: 16}

	tests := []struct {
		name string
		rect Rect
		s    ScreenCoord
		want BoardCoord
	}{
		{"identity origin", identity, ScreenCoord{0, 0}, BoardCoord{0, 0}},
		{"identity interior", identity, ScreenCoord{350, 120}, BoardCoord{350, 120}},
		{"terminal origin", terminal, ScreenCoord{3, 1}, BoardCoord{0, 0}},
		{"terminal far corner", terminal, ScreenCoord{42, 16}, BoardCoord{780, 750}},
		{"left of rect floors negative", terminal, ScreenCoord{2, 1}, BoardCoord{-20, 0}},
		{"above rect floors negative", terminal, ScreenCoord{3, 0}, BoardCoord{0, -50}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToBoardCoord(tc.rect, tc.s)
			if got != tc.want {
				t.Errorf("ToBoardCoord(%v, %v) = %v, want %v", tc.rect, tc.s, got, tc.want)
			}
		})
	}
}

func TestToBoardCoordDegenerateRect(t *testing.T) {
	// A zero-size rect must not divide by zero.
	got := ToBoardCoord(Rect{X: 0, Y: 0, W: 0, H: 0}, ScreenCoord{1, 1})
	if got != (BoardCoord{800, 800}) {
		t.Errorf("got %v, want {800 800}", got)
	}
}

func TestToTile(t *testing.T) {
	tests := []struct {
		name   string
		b      BoardCoord
		want   Tile
		wantOK bool
	}{
		{"top left pixel is a8", BoardCoord{0, 0}, Tile{0, 7}, true},
		{"bottom right pixel is h1", BoardCoord{799, 799}, Tile{7, 0}, true},
		{"interior", BoardCoord{350, 120}, Tile{3, 6}, true},
		{"negative x", BoardCoord{-1, 5}, Tile{}, false},
		{"x at edge", BoardCoord{800, 0}, Tile{}, false},
		{"y at edge", BoardCoord{0, 800}, Tile{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToTile(tc.b)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("ToTile(%v) = %v, %v; want %v, %v", tc.b, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestTileCenterRoundTrip(t *testing.T) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := Tile{X: x, Y: y}
			got, ok := ToTile(tileCenter(want))
			if !ok || got != want {
				t.Fatalf("ToTile(tileCenter(%v)) = %v, %v", want, got, ok)
			}
		}
	}
}
