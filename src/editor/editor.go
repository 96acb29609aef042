// Package editor ties the selection tool, the edit ledger and the
// transform engine into one editing session over a live board.
package editor

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/editor/edits"
	"evilboard/src/editor/stransform"
	"evilboard/src/logx"
)

// Session is one board-editor sitting: it owns the selection corners, the
// clipboard, the rotation parity flag and the undo history. All board
// mutation is delegated to the transform engine so that every gesture is
// one undoable edit.
type Session struct {
	board     *board.Board
	led       *edits.Ledger
	log       logx.Logger
	sel       *base.BBox
	clip      *stransform.Clipboard
	rotParity bool
}

func NewSession(b *board.Board, mesh edits.Mesh, log logx.Logger) *Session {
	if log == nil {
		log = logx.NewNop()
	}
	return &Session{
		board: b,
		led:   edits.NewLedger(b, mesh, log),
		log:   log,
	}
}

func (s *Session) Board() *board.Board { return s.board }

// Close ends the session; the history is discarded and further edits are
// a programmer error.
func (s *Session) Close() {
	s.led.Close()
	s.clip = nil
	s.sel = nil
}

// ---- selection box ----

// SetSelection accepts the two corners in any order.
func (s *Session) SetSelection(c1, c2 base.Coord) {
	box := base.NewBBox(c1, c2)
	s.sel = &box
}

func (s *Session) ClearSelection() { s.sel = nil }

func (s *Session) Selection() (base.BBox, bool) {
	if s.sel == nil {
		return base.BBox{}, false
	}
	return s.sel.Clone(), true
}

// SelectionCorners returns the bottom-left and top-right corners.
func (s *Session) SelectionCorners() (base.Coord, base.Coord, bool) {
	if s.sel == nil {
		return base.Coord{}, base.Coord{}, false
	}
	bl, tr := s.sel.Corners()
	return bl, tr, true
}

func (s *Session) HasClipboard() bool { return s.clip != nil }

// ---- transforms over the current selection ----

func (s *Session) Translate(vec base.Coord) {
	if s.sel == nil {
		return
	}
	s.log.Debugf("translate %s by %s", s.sel, vec)
	box := stransform.Translate(s.led, *s.sel, vec)
	s.sel = &box
}

func (s *Session) Rotate(clockwise bool) {
	if s.sel == nil {
		return
	}
	s.log.Debugf("rotate %s clockwise=%v", s.sel, clockwise)
	box := stransform.Rotate(s.led, *s.sel, clockwise, &s.rotParity)
	s.sel = &box
}

func (s *Session) FlipHorizontal() {
	if s.sel == nil {
		return
	}
	s.log.Debugf("flip horizontal %s", s.sel)
	stransform.FlipHorizontal(s.led, *s.sel)
}

func (s *Session) FlipVertical() {
	if s.sel == nil {
		return
	}
	s.log.Debugf("flip vertical %s", s.sel)
	stransform.FlipVertical(s.led, *s.sel)
}

func (s *Session) InvertColor() {
	if s.sel == nil {
		return
	}
	s.log.Debugf("invert color %s", s.sel)
	stransform.InvertColor(s.led, *s.sel)
}

func (s *Session) Delete() {
	if s.sel == nil {
		return
	}
	s.log.Debugf("delete %s", s.sel)
	stransform.Delete(s.led, *s.sel)
}

func (s *Session) Copy() {
	if s.sel == nil {
		return
	}
	s.clip = stransform.Copy(s.board, *s.sel)
	s.log.Debugf("copied %d pieces from %s", len(s.clip.Pieces), s.sel)
}

// Paste tiles the clipboard into the target box; the selection becomes
// the actually pasted region.
func (s *Session) Paste(target base.BBox) {
	if s.clip == nil {
		return
	}
	s.log.Debugf("paste into %s", target)
	box := stransform.Paste(s.led, s.clip, target)
	s.sel = &box
}

// Fill tiles the selection into the fill box and grows the selection to
// cover both.
func (s *Session) Fill(fill base.BBox) {
	if s.sel == nil {
		return
	}
	s.log.Debugf("fill %s into %s", s.sel, fill)
	box := stransform.Fill(s.led, *s.sel, fill)
	s.sel = &box
}

// ---- single-square edits ----

// PlacePiece puts a piece on a square, replacing whatever is there, as
// one undoable edit.
func (s *Session) PlacePiece(c base.Coord, t base.Piece, rights bool) {
	edit := edits.NewEdit()
	if old, ok := s.board.PieceAt(c); ok {
		if old.Type == t && s.board.HasRights(c) == rights {
			return
		}
		edit.QueueRemove(s.board, old)
	}
	edit.QueueAdd(c, t, rights)
	s.led.Commit(edit)
}

// DeletePiece clears a single square.
func (s *Session) DeletePiece(c base.Coord) {
	p, ok := s.board.PieceAt(c)
	if !ok {
		return
	}
	edit := edits.NewEdit()
	edit.QueueRemove(s.board, p)
	s.led.Commit(edit)
}

// ---- history ----

func (s *Session) Undo() bool    { return s.led.Undo() }
func (s *Session) Redo() bool    { return s.led.Redo() }
func (s *Session) CanUndo() bool { return s.led.CanUndo() }
func (s *Session) CanRedo() bool { return s.led.CanRedo() }
