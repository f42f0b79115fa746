package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorLightTile  = lipgloss.Color("180")
	colorDarkTile   = lipgloss.Color("94")
	colorBoth       = lipgloss.Color("220")
	colorWhiteOnly  = lipgloss.Color("114")
	colorBlackOnly  = lipgloss.Color("175")
	colorLingering  = lipgloss.Color("75")
	colorHover      = lipgloss.Color("116")
	colorCursor     = lipgloss.Color("60")
	colorWhitePiece = lipgloss.Color("231")
	colorBlackPiece = lipgloss.Color("16")

	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// tileBackground picks the tile color. Selection wins over hover, hover
// over the keyboard cursor, the cursor over the checkerboard.
func tileBackground(t Tile, tool ToolState, cursor Tile) lipgloss.Color {
	if sel := tool.Selection; sel != nil && sel.Tile == t {
		switch sel.Highlight {
		case HighlightWhite:
			return colorWhiteOnly
		case HighlightBlack:
			return colorBlackOnly
		case HighlightLingering:
			return colorLingering
		default:
			return colorBoth
		}
	}
	if tool.HoverTile != nil && *tool.HoverTile == t {
		return colorHover
	}
	if cursor == t {
		return colorCursor
	}
	if (t.X+t.Y)%2 == 0 {
		return colorDarkTile
	}
	return colorLightTile
}

// tileLine renders one half of a tile: the white slot on the top line, the
// black slot on the bottom line.
func tileLine(pos Position, tool ToolState, t Tile, side Side, cursor Tile) string {
	letter := byte(' ')
	fg := colorWhitePiece
	if side == Black {
		fg = colorBlackPiece
	}
	if pc, ok := pos.PieceAt(t, side); ok {
		letter = pc.Kind.Letter()
	}

	// Pieces lifted by an in-flight drag are drawn on the tile under the
	// pointer instead of their source tile.
	if tool.dragging() {
		if under, ok := ToTile(tool.dragPoint()); ok && under == t {
			for _, pc := range tool.DraggingPieces {
				if pc.Side == side {
					letter = pc.Kind.Letter()
				}
			}
		}
	}

	content := fmt.Sprintf("  %c  ", letter)
	style := lipgloss.NewStyle().
		Background(tileBackground(t, tool, cursor)).
		Foreground(fg)
	return style.Render(content)
}

func (m *model) renderBoard() string {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return ""
	}
	pos := m.displayPosition()
	tool := buf.tool

	var b strings.Builder
	for y := 7; y >= 0; y-- {
		for sub := 0; sub < tileCellHeight; sub++ {
			if sub == 0 {
				b.WriteString(fmt.Sprintf(" %d ", y+1))
			} else {
				b.WriteString("   ")
			}
			side := White
			if sub == 1 {
				side = Black
			}
			for x := 0; x < 8; x++ {
				b.WriteString(tileLine(pos, tool, Tile{X: x, Y: y}, side, m.cursorTile))
			}
			b.WriteByte('\n')
		}
	}
	b.WriteString("   ")
	for x := 0; x < 8; x++ {
		b.WriteString(fmt.Sprintf("  %c  ", 'a'+x))
	}
	return b.String()
}

func (m *model) renderTitleBar() string {
	buf := m.getCurrentBuffer()
	name := "untitled"
	if buf != nil && buf.filename != "" {
		name = strings.TrimSuffix(buf.filename, positionFileExt)
	}
	title := fmt.Sprintf(" PacoSako editor | %s", name)
	if buf != nil {
		title += fmt.Sprintf(" | move %d", buf.history.Current().MoveNumber)
	}
	if len(m.buffers) > 1 {
		var parts []string
		for i, bb := range m.buffers {
			bufName := fmt.Sprintf("%d", i+1)
			if bb.filename != "" {
				bufName = strings.TrimSuffix(bb.filename, positionFileExt)
			}
			if i == m.currentBufferIndex {
				bufName = "[" + bufName + "]"
			}
			parts = append(parts, bufName)
		}
		title += " | boards: " + strings.Join(parts, " ")
	}
	return titleStyle.Render(title)
}

func (m *model) renderStatusLine() string {
	buf := m.getCurrentBuffer()

	var status string
	switch m.mode {
	case ModeStartup:
		status = "Press 'n' for a new board, 'e' for an empty board, 'o' to open a file, or 'q' to quit"
	case ModeAddWhite:
		status = "Add WHITE piece: p/r/n/b/q/k, Esc=cancel"
	case ModeAddBlack:
		status = "Add BLACK piece: p/r/n/b/q/k, Esc=cancel"
	case ModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpSave:
			opStr = "Save"
		case FileOpSavePNG:
			opStr = "Export PNG"
		case FileOpSavePDF:
			opStr = "Export PDF"
		case FileOpOpen:
			opStr = "Open"
		}
		if m.fileOp == FileOpOpen {
			status = fmt.Sprintf("Mode: FILE | %s filename: %s | up/down=navigate list, Enter=confirm, Esc=cancel", opStr, m.filename)
		} else {
			status = fmt.Sprintf("Mode: FILE | %s filename: %s | Enter=confirm, Esc=cancel", opStr, m.filename)
		}
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit? (y/n)"
		case ConfirmNewBoard:
			message = "Replace this board? Unsaved changes will be lost. (y/n)"
		case ConfirmCloseBuffer:
			message = "Close this board? Unsaved changes will be lost. (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		status = "Mode: CONFIRM | " + message
	default:
		status = fmt.Sprintf("Cursor: %s", m.cursorTile)
		if buf != nil {
			if sel := buf.tool.Selection; sel != nil {
				status += fmt.Sprintf(" | Selected: %s (%s)", sel.Tile, sel.Highlight)
			}
			if buf.tool.dragging() {
				status += fmt.Sprintf(" | Dragging %d piece(s) from %s", len(buf.tool.DraggingPieces), *buf.tool.DragOrigin)
			}
		}
		status += " | ? for help | q to quit"
	}

	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	return status
}

var helpLines = []string{
	"PacoSako Position Editor Help",
	"=============================",
	"",
	"Mouse:",
	"------",
	"  Click a union tile      Cycle the selection: both -> white -> black -> off",
	"  Click a selected tile   Deselect (single-piece tiles always deselect)",
	"  Click another tile      Move the selected piece(s) there if legal",
	"  Drag a piece            Move it; drop off-board or on an illegal tile to cancel",
	"",
	"Keyboard:",
	"---------",
	"  h/j/k/l, arrows   Move the tile cursor (Shift = 2 tiles)",
	"  Enter/Space       Click the cursor tile",
	"  w then p/r/n/b/q/k  Add a white piece on the selected tile",
	"  b then p/r/n/b/q/k  Add a black piece on the selected tile",
	"  d/Delete/Backspace  Remove the selected piece(s)",
	"  u / U             Undo / redo",
	"  + / -             Adjust the move number",
	"  Esc               Clear the selection",
	"",
	"Boards:",
	"-------",
	"  n                 New board with the starting setup",
	"  N                 New board in a fresh buffer",
	"  i                 Empty board",
	"  { / }             Previous / next buffer",
	"  x                 Close the current buffer",
	"",
	"Files and export:",
	"-----------------",
	"  s                 Save as .psn (exchange notation)",
	"  o                 Open a .psn file",
	"  S                 Export the board as PNG",
	"  D                 Export the board as PDF",
	"  c                 Copy the exchange notation to the clipboard",
	"  v                 Paste a position from the clipboard",
	"",
	"General:",
	"  ?                 Toggle this help screen",
	"  q/Ctrl+C          Quit",
}

func (m model) helpView() string {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	startLine := m.helpScroll
	if startLine >= len(helpLines) {
		startLine = len(helpLines) - visibleHeight
		if startLine < 0 {
			startLine = 0
		}
	}
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusLine
}
