package main

// Keyboard navigation moves a tile cursor; enter/space act as a click on
// it, so the whole editor is usable without a mouse.

func (m *model) handleNavigation(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorTile.X -= speed
	case "l", "right", "L", "shift+right":
		m.cursorTile.X += speed
	case "k", "up", "K", "shift+up":
		m.cursorTile.Y += speed
	case "j", "down", "J", "shift+down":
		m.cursorTile.Y -= speed
	}
	m.clampCursorTile()
}

func (m *model) clampCursorTile() {
	if m.cursorTile.X < 0 {
		m.cursorTile.X = 0
	}
	if m.cursorTile.X > 7 {
		m.cursorTile.X = 7
	}
	if m.cursorTile.Y < 0 {
		m.cursorTile.Y = 0
	}
	if m.cursorTile.Y > 7 {
		m.cursorTile.Y = 7
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// clickTile synthesizes a press/release pair at the center of a tile.
func (m *model) clickTile(t Tile) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	at := tileCenter(t)
	st, out := startDrag(buf.history.Current(), buf.tool, at)
	buf.tool = st
	m.applyOutcome(out)
	st, out = stopOrClick(buf.history.Current(), buf.tool, at)
	buf.tool = st
	m.applyOutcome(out)
}
