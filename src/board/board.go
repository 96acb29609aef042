// Package board holds the live editable position: a sparse piece store
// indexed by column and row lines so region lookups touch only the lines
// a box actually crosses.
package board

import (
	"evilboard/src/base"
	"fmt"
	"math/big"
)

// Piece is a placed piece. Slot is its handle in the store and stays
// valid until the piece is removed.
type Piece struct {
	Type   base.Piece
	Coords base.Coord
	Slot   int
}

type Board struct {
	slots   []Piece
	free    []int
	byCoord map[string]int

	// line index: slot lists keyed by the decimal column/row value
	cols map[string][]int
	rows map[string][]int

	rights  map[string]struct{}
	passant *base.Coord
}

func New() *Board {
	return &Board{
		byCoord: make(map[string]int),
		cols:    make(map[string][]int),
		rows:    make(map[string][]int),
		rights:  make(map[string]struct{}),
	}
}

// Place puts a piece on an empty square and returns its handle.
func (b *Board) Place(c base.Coord, t base.Piece) (Piece, error) {
	key := c.Key()
	if _, ok := b.byCoord[key]; ok {
		return Piece{}, fmt.Errorf("square %s is occupied", key)
	}

	var slot int
	if n := len(b.free); n > 0 {
		slot = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		slot = len(b.slots)
		b.slots = append(b.slots, Piece{})
	}

	p := Piece{Type: t, Coords: c.Clone(), Slot: slot}
	b.slots[slot] = p
	b.byCoord[key] = slot
	ck, rk := c.X.String(), c.Y.String()
	b.cols[ck] = append(b.cols[ck], slot)
	b.rows[rk] = append(b.rows[rk], slot)
	return p, nil
}

// Remove deletes the piece in the given slot. Special rights on the square
// are left alone; the edit layer decides what happens to them.
func (b *Board) Remove(p Piece) {
	key := p.Coords.Key()
	slot, ok := b.byCoord[key]
	if !ok || slot != p.Slot {
		return
	}
	delete(b.byCoord, key)
	b.dropFromLine(b.cols, p.Coords.X.String(), slot)
	b.dropFromLine(b.rows, p.Coords.Y.String(), slot)
	b.slots[slot] = Piece{}
	b.free = append(b.free, slot)
}

// swap-remove; line order is not meaningful
func (b *Board) dropFromLine(lines map[string][]int, key string, slot int) {
	line := lines[key]
	for i, s := range line {
		if s == slot {
			line[i] = line[len(line)-1]
			line = line[:len(line)-1]
			break
		}
	}
	if len(line) == 0 {
		delete(lines, key)
	} else {
		lines[key] = line
	}
}

func (b *Board) PieceAt(c base.Coord) (Piece, bool) {
	slot, ok := b.byCoord[c.Key()]
	if !ok {
		return Piece{}, false
	}
	return b.slots[slot], true
}

// Slot resolves a handle taken from a line list.
func (b *Board) Slot(i int) Piece {
	return b.slots[i]
}

// ColumnLine returns the slots of every piece with the given x. The slice
// is shared with the store; callers must not keep or mutate it.
func (b *Board) ColumnLine(x *big.Int) []int {
	return b.cols[x.String()]
}

// RowLine returns the slots of every piece with the given y.
func (b *Board) RowLine(y *big.Int) []int {
	return b.rows[y.String()]
}

func (b *Board) Count() int {
	return len(b.byCoord)
}

// All returns every placed piece in no particular order.
func (b *Board) All() []Piece {
	out := make([]Piece, 0, len(b.byCoord))
	for _, slot := range b.byCoord {
		out = append(out, b.slots[slot])
	}
	return out
}

// ---- special move rights ----

func (b *Board) HasRights(c base.Coord) bool {
	_, ok := b.rights[c.Key()]
	return ok
}

func (b *Board) GrantRights(c base.Coord) {
	b.rights[c.Key()] = struct{}{}
}

func (b *Board) RevokeRights(c base.Coord) {
	delete(b.rights, c.Key())
}

// ---- en passant ----

func (b *Board) Passant() (base.Coord, bool) {
	if b.passant == nil {
		return base.Coord{}, false
	}
	return b.passant.Clone(), true
}

func (b *Board) SetPassant(c base.Coord) {
	cc := c.Clone()
	b.passant = &cc
}

func (b *Board) ClearPassant() {
	b.passant = nil
}
