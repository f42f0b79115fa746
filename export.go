package main

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gomono"
)

// ExportToPNG renders the position as an 800x800 image. Each tile shows the
// white piece letter in its upper half and the black piece letter in its
// lower half, matching the terminal layout.
func ExportToPNG(filename string, pos Position) error {
	dc := gg.NewContext(boardPixels, boardPixels)

	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %v", err)
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 44}))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				dc.SetRGB(0.55, 0.40, 0.22)
			} else {
				dc.SetRGB(0.85, 0.75, 0.58)
			}
			dc.DrawRectangle(float64(x*tilePixels), float64((7-y)*tilePixels), tilePixels, tilePixels)
			dc.Fill()
		}
	}

	for _, pc := range pos.Pieces {
		cx := float64(pc.At.X*tilePixels) + tilePixels/2
		top := float64((7 - pc.At.Y) * tilePixels)
		letter := string(pc.Kind.Letter())

		var cy float64
		if pc.Side == White {
			cy = top + 30
		} else {
			cy = top + 70
		}

		// A one-pixel dark halo keeps white letters readable on light
		// squares.
		dc.SetRGB(0.1, 0.1, 0.1)
		for _, d := range []struct{ dx, dy float64 }{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			dc.DrawStringAnchored(letter, cx+d.dx, cy+d.dy, 0.5, 0.5)
		}
		if pc.Side == White {
			dc.SetRGB(0.98, 0.98, 0.96)
		} else {
			dc.SetRGB(0.05, 0.05, 0.05)
		}
		dc.DrawStringAnchored(letter, cx, cy, 0.5, 0.5)
	}

	return dc.SavePNG(filename)
}

// ExportToPDF writes the position onto a single A4 page: a 20mm grid with
// the same two-slot tile layout as the PNG export.
func ExportToPDF(filename string, pos Position) error {
	const (
		cellSize = 20.0
		left     = 25.0
		top      = 40.0
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Courier", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(left, top-10, fmt.Sprintf("PacoSako position, move %d", pos.MoveNumber))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px := left + float64(x)*cellSize
			py := top + float64(7-y)*cellSize
			if (x+y)%2 == 0 {
				pdf.SetFillColor(150, 108, 60)
			} else {
				pdf.SetFillColor(222, 196, 152)
			}
			pdf.Rect(px, py, cellSize, cellSize, "F")
		}
	}

	pdf.SetDrawColor(60, 60, 60)
	for i := 0; i <= 8; i++ {
		offset := float64(i) * cellSize
		pdf.Line(left, top+offset, left+8*cellSize, top+offset)
		pdf.Line(left+offset, top, left+offset, top+8*cellSize)
	}

	pdf.SetFont("Courier", "B", 18)
	for _, pc := range pos.Pieces {
		px := left + float64(pc.At.X)*cellSize + cellSize/2 - 2
		py := top + float64(7-pc.At.Y)*cellSize
		if pc.Side == White {
			pdf.SetTextColor(255, 255, 255)
			py += 8
		} else {
			pdf.SetTextColor(20, 20, 20)
			py += 17
		}
		pdf.Text(px, py, string(pc.Kind.Letter()))
	}

	pdf.SetFont("Courier", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for x := 0; x < 8; x++ {
		pdf.Text(left+float64(x)*cellSize+cellSize/2-1, top+8*cellSize+6, string(rune('a'+x)))
	}
	for y := 0; y < 8; y++ {
		pdf.Text(left-5, top+float64(7-y)*cellSize+cellSize/2+1, fmt.Sprintf("%d", y+1))
	}

	return pdf.OutputFileAndClose(filename)
}
