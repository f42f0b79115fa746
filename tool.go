package main

// OutcomeKind classifies what a gesture did to the position.
type OutcomeKind int

const (
	OutcomeNoOp OutcomeKind = iota
	// OutcomeCommit carries a new position for the history.
	OutcomeCommit
	// OutcomePreview carries a transient position shown while a drag is in
	// flight; it is never recorded.
	OutcomePreview
	// OutcomeRollback discards any preview and restores the last committed
	// position.
	OutcomeRollback
)

// Outcome is the only channel through which a gesture affects the position.
type Outcome struct {
	Kind     OutcomeKind
	Position Position // set for Commit and Preview
}

func noOp() Outcome               { return Outcome{Kind: OutcomeNoOp} }
func rollback() Outcome           { return Outcome{Kind: OutcomeRollback} }
func commitTo(p Position) Outcome { return Outcome{Kind: OutcomeCommit, Position: p} }
func previewOf(p Position) Outcome {
	return Outcome{Kind: OutcomePreview, Position: p}
}

// Vector is an offset in board pixels.
type Vector struct {
	X, Y int
}

// ToolState is the in-flight gesture data. Only the transition functions in
// this file produce new values; nothing else writes to it.
type ToolState struct {
	Selection      *Selection
	DragOrigin     *Tile
	DragStart      BoardCoord // press point; DragOffset is measured from it
	DragOffset     Vector
	DraggingPieces []Piece
	HoverTile      *Tile
}

func (st ToolState) dragging() bool { return st.DragOrigin != nil }

// dragPoint is the pointer position of an in-flight drag in board pixels.
func (st ToolState) dragPoint() BoardCoord {
	return BoardCoord{X: st.DragStart.X + st.DragOffset.X, Y: st.DragStart.Y + st.DragOffset.Y}
}

// matchingPieces lists the pieces the selection grabs for moving or
// deleting. Lingering widens to both, unlike the display predicate.
func matchingPieces(pos Position, sel Selection) []Piece {
	scope := sel
	if scope.Highlight == HighlightLingering {
		scope.Highlight = HighlightBoth
	}
	var out []Piece
	for _, pc := range pos.PiecesAt(sel.Tile) {
		if PieceMatchesSelection(scope, pc) {
			out = append(out, pc)
		}
	}
	return out
}

// startDrag handles a pointer press. Pieces on the pressed tile that match
// the current selection are lifted out of the position; the preview lets
// the presentation layer draw them at the drag offset instead.
func startDrag(pos Position, st ToolState, at BoardCoord) (ToolState, Outcome) {
	t, ok := ToTile(at)
	if !ok {
		return st, noOp()
	}
	scope := Selection{Tile: t, Highlight: HighlightBoth}
	if st.Selection != nil && st.Selection.Tile == t && st.Selection.Highlight != HighlightLingering {
		scope = *st.Selection
	}
	var lifted []Piece
	next := pos
	for _, pc := range pos.PiecesAt(t) {
		if PieceMatchesSelection(scope, pc) {
			lifted = append(lifted, pc)
			next = next.WithPieceRemoved(pc.At, pc.Side)
		}
	}
	st.DragOrigin = &t
	st.DragStart = at
	st.DragOffset = Vector{}
	st.DraggingPieces = lifted
	st.HoverTile = nil
	return st, previewOf(next)
}

// continueDrag updates the drag offset. Visual only.
func continueDrag(st ToolState, at BoardCoord) (ToolState, Outcome) {
	if !st.dragging() {
		return st, noOp()
	}
	st.DragOffset = Vector{X: at.X - st.DragStart.X, Y: at.Y - st.DragStart.Y}
	return st, noOp()
}

// stopOrClick handles a pointer release. Releasing on the press tile is a
// click; anywhere else on the board is a drop.
func stopOrClick(pos Position, st ToolState, at BoardCoord) (ToolState, Outcome) {
	if !st.dragging() {
		return st, noOp()
	}
	origin := *st.DragOrigin
	u, ok := ToTile(at)
	if !ok {
		return ToolState{}, rollback()
	}
	if u != origin {
		return dropPieces(pos, st.DraggingPieces, u)
	}
	// Released where we pressed. With a selection sitting on another tile
	// this click names a move target; otherwise it adjusts the selection on
	// the clicked tile itself.
	if sel := st.Selection; sel != nil && sel.Tile != u {
		return dropPieces(pos, matchingPieces(pos, *sel), u)
	}
	if len(pos.PiecesAt(u)) == 2 {
		next := st
		next.Selection = CycleHighlight(u, st.Selection)
		next.DragOrigin = nil
		next.DragOffset = Vector{}
		next.DraggingPieces = nil
		return next, rollback()
	}
	// A single piece (or an empty tile) always deselects on click.
	return ToolState{}, rollback()
}

// dropPieces finishes a move gesture: commit when the relocation is legal,
// roll back otherwise. Either way the gesture is over.
func dropPieces(pos Position, moving []Piece, target Tile) (ToolState, Outcome) {
	next, ok := movePiecesIfPermitted(pos, moving, target)
	if !ok {
		return ToolState{}, rollback()
	}
	return ToolState{}, commitTo(next)
}

// movePiecesIfPermitted relocates the moving pieces onto target. It refuses
// any placement that would put two pieces of one side on the same tile.
func movePiecesIfPermitted(pos Position, moving []Piece, target Tile) (Position, bool) {
	if len(moving) == 0 {
		return Position{}, false
	}
	var perSide [2]int
	for _, pc := range moving {
		perSide[pc.Side]++
	}
	for _, pc := range pos.PiecesAt(target) {
		if !containsPiece(moving, pc) {
			perSide[pc.Side]++
		}
	}
	if perSide[White] > 1 || perSide[Black] > 1 {
		return Position{}, false
	}
	next := pos
	for _, pc := range moving {
		next = next.WithPieceMoved(pc.At, pc.Side, target)
	}
	return next, true
}

func containsPiece(pieces []Piece, pc Piece) bool {
	for _, p := range pieces {
		if p == pc {
			return true
		}
	}
	return false
}

// deleteSelected removes every piece the highlight grabs. If pieces of the
// other side remain on the tile the highlight stays there, widened to both;
// otherwise it clears.
func deleteSelected(pos Position, st ToolState) (ToolState, Outcome) {
	if st.Selection == nil {
		return st, noOp()
	}
	sel := *st.Selection
	next := pos
	for _, pc := range matchingPieces(pos, sel) {
		next = next.WithPieceRemoved(pc.At, pc.Side)
	}
	out := ToolState{}
	if len(next.PiecesAt(sel.Tile)) > 0 {
		out.Selection = &Selection{Tile: sel.Tile, Highlight: HighlightBoth}
	}
	return out, commitTo(next)
}

// addPiece places a piece on the highlighted tile, replacing any same-side
// piece already there, and leaves the highlight lingering.
func addPiece(pos Position, st ToolState, side Side, kind PieceKind) (ToolState, Outcome) {
	if st.Selection == nil {
		return st, noOp()
	}
	t := st.Selection.Tile
	next := pos.WithPieceRemoved(t, side).WithPieceAdded(Piece{Kind: kind, Side: side, At: t})
	st.Selection = &Selection{Tile: t, Highlight: HighlightLingering}
	st.DragOrigin = nil
	st.DragOffset = Vector{}
	st.DraggingPieces = nil
	st.HoverTile = nil
	return st, commitTo(next)
}

// hover tracks the drop-target marker while no button is held: shown only
// when a selection exists, the pointer is over a different tile, and the
// selected tile actually has something to move.
func hover(pos Position, st ToolState, at BoardCoord) (ToolState, Outcome) {
	st.HoverTile = nil
	t, ok := ToTile(at)
	if ok && st.Selection != nil && st.Selection.Tile != t && len(pos.PiecesAt(st.Selection.Tile)) > 0 {
		st.HoverTile = &t
	}
	return st, noOp()
}
