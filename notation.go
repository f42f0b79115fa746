package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Exchange notation: eight rows from rank 8 down to rank 1, cells separated
// by single spaces. Each cell is two characters, the white slot then the
// black slot, '.' for an empty slot. Example cell "PN": a white pawn and a
// black knight in union.

// PrintPosition renders a position as exchange notation. Piece insertion
// order is not encoded and does not survive a round trip.
func PrintPosition(pos Position) string {
	var white, black [64]byte
	for i := range white {
		white[i] = '.'
		black[i] = '.'
	}
	for _, pc := range pos.Pieces {
		if !pc.At.OnBoard() {
			continue
		}
		idx := pc.At.X + 8*pc.At.Y
		if pc.Side == White {
			white[idx] = pc.Kind.Letter()
		} else {
			black[idx] = pc.Kind.Letter()
		}
	}
	var b strings.Builder
	for y := 7; y >= 0; y-- {
		if y < 7 {
			b.WriteByte('\n')
		}
		for x := 0; x < 8; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			idx := x + 8*y
			b.WriteByte(white[idx])
			b.WriteByte(black[idx])
		}
	}
	return b.String()
}

// ParsePosition reads exchange notation back into a position. Failures are
// recoverable errors; the caller keeps its input and decides what to do.
func ParsePosition(text string) (Position, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rows := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(rows) != 8 {
		return Position{}, fmt.Errorf("expected 8 rows, got %d", len(rows))
	}
	var pos Position
	for i, row := range rows {
		y := 7 - i
		cells := strings.Fields(row)
		if len(cells) != 8 {
			return Position{}, fmt.Errorf("row %d: expected 8 cells, got %d", i+1, len(cells))
		}
		for x, cell := range cells {
			if len(cell) != 2 {
				return Position{}, fmt.Errorf("row %d cell %d: want two characters, got %q", i+1, x+1, cell)
			}
			for slot, side := range []Side{White, Black} {
				c := cell[slot]
				if c == '.' {
					continue
				}
				kind, ok := kindFromLetter(c)
				if !ok {
					return Position{}, fmt.Errorf("row %d cell %d: unknown piece letter %q", i+1, x+1, string(c))
				}
				pos.Pieces = append(pos.Pieces, Piece{Kind: kind, Side: side, At: Tile{X: x, Y: y}})
			}
		}
	}
	return pos, nil
}

// SavePositionFile writes a .psn file: an advisory move-number header
// followed by the exchange notation.
func SavePositionFile(filename string, pos Position) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "moveNumber: %d\n", pos.MoveNumber)
	fmt.Fprintln(file, PrintPosition(pos))
	return nil
}

// LoadPositionFile reads a .psn file. A missing header defaults the move
// number to zero; only the board grid itself can fail the parse.
func LoadPositionFile(filename string) (Position, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Position{}, err
	}
	defer file.Close()

	moveNumber := 0
	var rows []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "moveNumber:") {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "moveNumber:")))
			if err != nil {
				return Position{}, fmt.Errorf("invalid move number: %v", err)
			}
			moveNumber = n
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return Position{}, err
	}

	pos, err := ParsePosition(strings.Join(rows, "\n"))
	if err != nil {
		return Position{}, err
	}
	pos.MoveNumber = moveNumber
	return pos, nil
}
