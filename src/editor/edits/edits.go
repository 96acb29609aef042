// Package edits is the editor's transactional mutation layer. Every board
// change goes through an Edit: an ordered batch of piece additions and
// removals, plus the square-rights and en-passant transitions they imply.
// Edits apply and revert as a unit, which makes undo/redo exact.
package edits

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/logx"
)

type ChangeKind uint8

const (
	AddPiece ChangeKind = iota
	RemovePiece
)

type Change struct {
	Kind   ChangeKind
	Coords base.Coord
	Type   base.Piece
	// Rights records whether the square carries special move rights:
	// for adds, the flag to grant; for removals, the flag that was there.
	Rights bool
}

type Edit struct {
	Changes []Change
	// ClearedPassant remembers the en-passant square this edit wiped,
	// so reverting can restore it.
	ClearedPassant *base.Coord
}

func NewEdit() *Edit {
	return &Edit{}
}

// QueueAdd records a piece addition. The live board is not touched.
func (e *Edit) QueueAdd(c base.Coord, t base.Piece, rights bool) {
	e.Changes = append(e.Changes, Change{Kind: AddPiece, Coords: c.Clone(), Type: t, Rights: rights})
}

// QueueRemove records the removal of a placed piece, capturing the
// square's rights flag and any en-passant eligibility so the change
// reverts exactly.
func (e *Edit) QueueRemove(b *board.Board, p board.Piece) {
	e.Changes = append(e.Changes, Change{
		Kind:   RemovePiece,
		Coords: p.Coords.Clone(),
		Type:   p.Type,
		Rights: b.HasRights(p.Coords),
	})
	if ep, ok := b.Passant(); ok && ep.Equal(p.Coords) && e.ClearedPassant == nil {
		e.ClearedPassant = &ep
	}
}

// Empty reports whether running the edit would change nothing.
func (e *Edit) Empty() bool {
	return len(e.Changes) == 0 && e.ClearedPassant == nil
}

// Mesh is the rendering-side companion of a board. The ledger only calls
// through it, never looks inside.
type Mesh interface {
	PieceAdded(p board.Piece)
	PieceRemoved(p board.Piece)
	Refresh()
}

// NopMesh satisfies Mesh for headless use and tests.
type NopMesh struct{}

func (NopMesh) PieceAdded(board.Piece)   {}
func (NopMesh) PieceRemoved(board.Piece) {}
func (NopMesh) Refresh()                 {}

// Ledger is the linear undo history of one editing session. Committing
// after an undo discards the redo tail; there is no branching.
type Ledger struct {
	board  *board.Board
	mesh   Mesh
	log    logx.Logger
	edits  []*Edit
	cursor int
	closed bool
}

func NewLedger(b *board.Board, mesh Mesh, log logx.Logger) *Ledger {
	if mesh == nil {
		mesh = NopMesh{}
	}
	return &Ledger{board: b, mesh: mesh, log: log}
}

func (l *Ledger) Board() *board.Board { return l.board }

// Close ends the session. Any ledger use afterwards is a programmer error.
func (l *Ledger) Close() { l.closed = true }

func (l *Ledger) ensureOpen() {
	if l.closed {
		l.log.Panicf("edit ledger used after session close")
	}
}

// Run applies the edit to the live board and mesh: changes in order when
// forward, inverted and in reverse order when not.
func (l *Ledger) Run(e *Edit, forward bool) {
	l.ensureOpen()
	if forward {
		for i := range e.Changes {
			l.apply(e.Changes[i], true)
		}
		if e.ClearedPassant != nil {
			l.board.ClearPassant()
		}
	} else {
		for i := len(e.Changes) - 1; i >= 0; i-- {
			l.apply(e.Changes[i], false)
		}
		if e.ClearedPassant != nil {
			l.board.SetPassant(*e.ClearedPassant)
		}
	}
	l.mesh.Refresh()
}

func (l *Ledger) apply(ch Change, forward bool) {
	add := ch.Kind == AddPiece
	if !forward {
		add = !add
	}
	if add {
		p, err := l.board.Place(ch.Coords, ch.Type)
		if err != nil {
			l.log.Panicf("edit add at %s: %v", ch.Coords, err)
		}
		if ch.Rights {
			l.board.GrantRights(ch.Coords)
		}
		l.mesh.PieceAdded(p)
	} else {
		p, ok := l.board.PieceAt(ch.Coords)
		if !ok {
			l.log.Panicf("edit remove at empty square %s", ch.Coords)
		}
		if ch.Rights {
			l.board.RevokeRights(ch.Coords)
		}
		l.board.Remove(p)
		l.mesh.PieceRemoved(p)
	}
}

// Record pushes an already-run edit, truncating any redo tail first.
func (l *Ledger) Record(e *Edit) {
	l.ensureOpen()
	l.edits = append(l.edits[:l.cursor], e)
	l.cursor++
}

// Commit runs the edit forward and records it. Empty edits are dropped so
// a no-op never becomes an undoable step.
func (l *Ledger) Commit(e *Edit) {
	if e.Empty() {
		return
	}
	l.Run(e, true)
	l.Record(e)
}

func (l *Ledger) CanUndo() bool { return l.cursor > 0 }
func (l *Ledger) CanRedo() bool { return l.cursor < len(l.edits) }
func (l *Ledger) Len() int      { return len(l.edits) }

// Undo reverts the edit before the cursor. At the start of history it is
// a silent no-op.
func (l *Ledger) Undo() bool {
	l.ensureOpen()
	if !l.CanUndo() {
		return false
	}
	l.cursor--
	l.Run(l.edits[l.cursor], false)
	return true
}

// Redo re-applies the edit at the cursor, if any.
func (l *Ledger) Redo() bool {
	l.ensureOpen()
	if !l.CanRedo() {
		return false
	}
	l.Run(l.edits[l.cursor], true)
	l.cursor++
	return true
}
