package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func sortedPieces(pos Position) []Piece {
	out := append([]Piece(nil), pos.Pieces...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.At.Y != b.At.Y {
			return a.At.Y < b.At.Y
		}
		if a.At.X != b.At.X {
			return a.At.X < b.At.X
		}
		return a.Side < b.Side
	})
	return out
}

func TestPrintStartingPosition(t *testing.T) {
	lines := strings.Split(PrintPosition(StartingPosition()), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	want := []string{
		".R .N .B .Q .K .B .N .R",
		".P .P .P .P .P .P .P .P",
		".. .. .. .. .. .. .. ..",
		".. .. .. .. .. .. .. ..",
		".. .. .. .. .. .. .. ..",
		".. .. .. .. .. .. .. ..",
		"P. P. P. P. P. P. P. P.",
		"R. N. B. Q. K. B. N. R.",
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d: %q, want %q", i+1, line, want[i])
		}
	}
}

func TestPrintUnion(t *testing.T) {
	pos := unionAt(Tile{2, 2})
	lines := strings.Split(PrintPosition(pos), "\n")
	// Rank 3 is the sixth printed row; its c-file cell holds the union.
	if got := lines[5]; got != ".. .. PN .. .. .. .. .." {
		t.Errorf("rank 3 row: %q", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	positions := []Position{
		NewPosition(),
		StartingPosition(),
		unionAt(Tile{3, 3}).WithPieceAdded(Piece{Kind: Queen, Side: Black, At: Tile{0, 7}}),
	}
	for _, pos := range positions {
		parsed, err := ParsePosition(PrintPosition(pos))
		if err != nil {
			t.Fatalf("round trip failed: %v", err)
		}
		got, want := sortedPieces(parsed), sortedPieces(pos)
		if len(got) != len(want) {
			t.Fatalf("round trip: %d pieces, want %d", len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("piece %d: %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	emptyRow := ".. .. .. .. .. .. .. .."
	eightRows := func(rowIdx int, replacement string) string {
		rows := make([]string, 8)
		for i := range rows {
			rows[i] = emptyRow
		}
		rows[rowIdx] = replacement
		return strings.Join(rows, "\n")
	}

	tests := []struct {
		name string
		text string
	}{
		{"too few rows", strings.Repeat(emptyRow+"\n", 7)},
		{"too few cells", eightRows(3, ".. .. .. ..")},
		{"cell too long", eightRows(0, "PNQ .. .. .. .. .. .. ..")},
		{"unknown letter", eightRows(0, "X. .. .. .. .. .. .. ..")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePosition(tc.text); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseAcceptsCRLF(t *testing.T) {
	text := strings.ReplaceAll(PrintPosition(StartingPosition()), "\n", "\r\n")
	if _, err := ParsePosition(text); err != nil {
		t.Errorf("CRLF input rejected: %v", err)
	}
}

func TestSaveAndLoadPositionFile(t *testing.T) {
	pos := unionAt(Tile{4, 4})
	pos.MoveNumber = 12

	path := filepath.Join(t.TempDir(), "test"+positionFileExt)
	if err := SavePositionFile(path, pos); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadPositionFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.MoveNumber != 12 {
		t.Errorf("move number %d, want 12", loaded.MoveNumber)
	}
	if len(loaded.PiecesAt(Tile{4, 4})) != 2 {
		t.Error("union did not survive the file round trip")
	}
}

func TestLoadPositionFileWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare"+positionFileExt)
	if err := os.WriteFile(path, []byte(PrintPosition(StartingPosition())+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadPositionFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.MoveNumber != 0 {
		t.Errorf("move number %d, want 0", loaded.MoveNumber)
	}
	if len(loaded.Pieces) != 32 {
		t.Errorf("loaded %d pieces, want 32", len(loaded.Pieces))
	}
}
