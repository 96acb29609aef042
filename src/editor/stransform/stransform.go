// Package stransform implements the spatial operations of the board
// editor's selection tool: translate, rotate, flip, invert-color, delete,
// copy, paste and fill. Every operation reads its source region, batches
// the resulting additions and removals into a single edit and commits it,
// so each gesture is exactly one undo step.
//
// All coordinate math is exact. Pivot and mirror lines may land on
// half-integers, so those are computed with big.Rat and only converted
// back once the result is provably integral.
package stransform

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/editor/edits"
	"fmt"
	"math/big"
)

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	ratHalf = big.NewRat(1, 2)
)

// PiecesInBox returns every piece inside the box, borders included.
// The store keeps per-column and per-row slot lines; scanning across the
// shorter side of the box touches the fewest lines, so a long thin
// selection costs its thin dimension, not the board population.
func PiecesInBox(b *board.Board, box base.BBox) []board.Piece {
	var out []board.Piece
	if box.Width().Cmp(box.Height()) <= 0 {
		for x := new(big.Int).Set(box.Left); x.Cmp(box.Right) <= 0; x.Add(x, bigOne) {
			for _, slot := range b.ColumnLine(x) {
				p := b.Slot(slot)
				if p.Coords.Y.Cmp(box.Bottom) >= 0 && p.Coords.Y.Cmp(box.Top) <= 0 {
					out = append(out, p)
				}
			}
		}
		return out
	}
	for y := new(big.Int).Set(box.Bottom); y.Cmp(box.Top) <= 0; y.Add(y, bigOne) {
		for _, slot := range b.RowLine(y) {
			p := b.Slot(slot)
			if p.Coords.X.Cmp(box.Left) >= 0 && p.Coords.X.Cmp(box.Right) <= 0 {
				out = append(out, p)
			}
		}
	}
	return out
}

// StatePiece is a clipboard entry: a piece plus the special-rights flag
// its square carried at copy time.
type StatePiece struct {
	Type   base.Piece
	Coords base.Coord
	Rights bool
}

// Clipboard holds the last copied region. Paste consumes it without
// clearing, so repeated pastes reuse the same content.
type Clipboard struct {
	Pieces []StatePiece
	Origin base.BBox
}

// displace moves the pieces of srcBox into destBox through mapCoord.
// Destination squares outside the source are cleared first; squares in
// the overlap belong to the source and are cleared with it, which keeps
// overlapping moves from double-deleting.
func displace(led *edits.Ledger, srcBox, destBox base.BBox, mapCoord func(base.Coord) base.Coord) {
	b := led.Board()
	src := PiecesInBox(b, srcBox)
	dest := PiecesInBox(b, destBox)

	edit := edits.NewEdit()
	for _, p := range dest {
		if !srcBox.Contains(p.Coords) {
			edit.QueueRemove(b, p)
		}
	}
	for _, p := range src {
		edit.QueueRemove(b, p)
	}
	for _, p := range src {
		edit.QueueAdd(mapCoord(p.Coords), p.Type, b.HasRights(p.Coords))
	}
	led.Commit(edit)
}

// Translate shifts the selection by vec and returns the new selection box.
func Translate(led *edits.Ledger, box base.BBox, vec base.Coord) base.BBox {
	dest := box.Translate(vec)
	displace(led, box, dest, func(c base.Coord) base.Coord {
		return c.Add(vec)
	})
	return dest
}

// Rotate turns the selection a quarter around the box center and returns
// the rotated box. When one side length is even and the other odd the
// literal center sits on a square edge; the pivot is then nudged half a
// square, the axis following the direction and the sign following the
// alternating parity flag. A right rotation followed by a left one then
// reuses the same pivot, landing every piece back on its exact starting
// square, and long same-direction runs do not creep toward one corner.
func Rotate(led *edits.Ledger, box base.BBox, clockwise bool, parity *bool) base.BBox {
	px := ratMid(box.Left, box.Right)
	py := ratMid(box.Bottom, box.Top)

	wEven := isEven(box.Width())
	hEven := isEven(box.Height())
	if wEven != hEven {
		// The nudge axis follows the direction, its sign the flag, so a
		// right/left pair reuses the same pivot and cancels exactly.
		nudge := new(big.Rat).Set(ratHalf)
		if *parity == clockwise {
			nudge.Neg(nudge)
		}
		if clockwise {
			py.Add(py, nudge)
		} else {
			px.Add(px, nudge)
		}
		*parity = !*parity
	}

	mapCoord := func(c base.Coord) base.Coord {
		rx := new(big.Rat).Sub(new(big.Rat).SetInt(c.X), px)
		ry := new(big.Rat).Sub(new(big.Rat).SetInt(c.Y), py)
		var nx, ny *big.Rat
		if clockwise {
			nx = new(big.Rat).Add(px, ry)
			ny = new(big.Rat).Sub(py, rx)
		} else {
			nx = new(big.Rat).Sub(px, ry)
			ny = new(big.Rat).Add(py, rx)
		}
		return base.Coord{X: intFromRat(nx), Y: intFromRat(ny)}
	}

	bl, tr := box.Corners()
	dest := base.NewBBox(mapCoord(bl), mapCoord(tr))
	displace(led, box, dest, mapCoord)
	return dest
}

// inPlace rewrites every piece of the box through transform without
// moving the box. Pieces mapped to themselves are left untouched.
func inPlace(led *edits.Ledger, box base.BBox, transform func(board.Piece) (base.Coord, base.Piece)) {
	b := led.Board()
	src := PiecesInBox(b, box)

	edit := edits.NewEdit()
	kept := make([]board.Piece, 0, len(src))
	for _, p := range src {
		c, t := transform(p)
		if t == p.Type && c.Equal(p.Coords) {
			continue
		}
		edit.QueueRemove(b, p)
		kept = append(kept, p)
	}
	for _, p := range kept {
		c, t := transform(p)
		edit.QueueAdd(c, t, b.HasRights(p.Coords))
	}
	led.Commit(edit)
}

// FlipHorizontal mirrors the selection across its vertical midline.
// The mirror image of x is Left+Right-x, which is 2*line-x with the line
// at the half-integer midpoint, kept in integers.
func FlipHorizontal(led *edits.Ledger, box base.BBox) base.BBox {
	sum := new(big.Int).Add(box.Left, box.Right)
	inPlace(led, box, func(p board.Piece) (base.Coord, base.Piece) {
		return base.Coord{X: new(big.Int).Sub(sum, p.Coords.X), Y: new(big.Int).Set(p.Coords.Y)}, p.Type
	})
	return box
}

// FlipVertical mirrors the selection across its horizontal midline.
func FlipVertical(led *edits.Ledger, box base.BBox) base.BBox {
	sum := new(big.Int).Add(box.Bottom, box.Top)
	inPlace(led, box, func(p board.Piece) (base.Coord, base.Piece) {
		return base.Coord{X: new(big.Int).Set(p.Coords.X), Y: new(big.Int).Sub(sum, p.Coords.Y)}, p.Type
	})
	return box
}

// InvertColor swaps the color of every piece in the selection. Neutral
// pieces map to themselves and are skipped.
func InvertColor(led *edits.Ledger, box base.BBox) base.BBox {
	inPlace(led, box, func(p board.Piece) (base.Coord, base.Piece) {
		return p.Coords, base.SwapColorPiece(p.Type)
	})
	return box
}

// Delete clears every piece in the selection.
func Delete(led *edits.Ledger, box base.BBox) base.BBox {
	b := led.Board()
	edit := edits.NewEdit()
	for _, p := range PiecesInBox(b, box) {
		edit.QueueRemove(b, p)
	}
	led.Commit(edit)
	return box
}

// Copy snapshots the selection with per-square rights flags. The board is
// not touched and no history entry is produced.
func Copy(b *board.Board, box base.BBox) *Clipboard {
	src := PiecesInBox(b, box)
	clip := &Clipboard{Origin: box.Clone(), Pieces: make([]StatePiece, 0, len(src))}
	for _, p := range src {
		clip.Pieces = append(clip.Pieces, StatePiece{
			Type:   p.Type,
			Coords: p.Coords.Clone(),
			Rights: b.HasRights(p.Coords),
		})
	}
	return clip
}

// Paste tiles whole copies of the clipboard into the target, anchored at
// the target's top-left corner. At least one copy is always placed, even
// if it overflows a smaller target; a copy is never cut. The full tiled
// region is cleared before writing and becomes the returned selection.
func Paste(led *edits.Ledger, clip *Clipboard, target base.BBox) base.BBox {
	if clip == nil || len(clip.Pieces) == 0 {
		return target
	}
	b := led.Board()
	cw, ch := clip.Origin.Width(), clip.Origin.Height()
	copiesX := wholeCopies(target.Width(), cw)
	copiesY := wholeCopies(target.Height(), ch)

	region := base.BBox{
		Left:   new(big.Int).Set(target.Left),
		Top:    new(big.Int).Set(target.Top),
		Right:  new(big.Int).Sub(addMul(target.Left, copiesX, cw), bigOne),
		Bottom: new(big.Int).Add(subMul(target.Top, copiesY, ch), bigOne),
	}

	edit := edits.NewEdit()
	for _, p := range PiecesInBox(b, region) {
		edit.QueueRemove(b, p)
	}

	anchor := base.Coord{
		X: new(big.Int).Sub(target.Left, clip.Origin.Left),
		Y: new(big.Int).Sub(target.Top, clip.Origin.Top),
	}
	for iy := new(big.Int); iy.Cmp(copiesY) < 0; iy.Add(iy, bigOne) {
		dy := new(big.Int).Mul(iy, ch)
		for ix := new(big.Int); ix.Cmp(copiesX) < 0; ix.Add(ix, bigOne) {
			dx := new(big.Int).Mul(ix, cw)
			off := base.Coord{
				X: new(big.Int).Add(anchor.X, dx),
				Y: new(big.Int).Sub(anchor.Y, dy),
			}
			for _, sp := range clip.Pieces {
				edit.QueueAdd(sp.Coords.Add(off), sp.Type, sp.Rights)
			}
		}
	}
	led.Commit(edit)
	return region
}

// Fill extends the selection into the fill box by tiling copies along one
// axis. Unlike Paste it allows a trailing partial copy, clipped to the
// fill box. The fill box must sit flush against one side of the selection
// and span the same range on the other axis; any other box is a no-op, so
// copies can never land outside the cleared fill region. Returns the union
// of selection and fill box, or the selection unchanged when rejected.
func Fill(led *edits.Ledger, sel, fill base.BBox) base.BBox {
	horizontal := fill.Left.Cmp(sel.Left) != 0

	var dim *big.Int
	var positive bool
	if horizontal {
		if fill.Bottom.Cmp(sel.Bottom) != 0 || fill.Top.Cmp(sel.Top) != 0 {
			return sel
		}
		switch {
		case new(big.Int).Add(sel.Right, bigOne).Cmp(fill.Left) == 0:
			positive = true
		case new(big.Int).Sub(sel.Left, bigOne).Cmp(fill.Right) == 0:
			positive = false
		default:
			return sel
		}
		dim = sel.Width()
	} else {
		if fill.Right.Cmp(sel.Right) != 0 {
			return sel
		}
		switch {
		case new(big.Int).Add(sel.Top, bigOne).Cmp(fill.Bottom) == 0:
			positive = true
		case new(big.Int).Sub(sel.Bottom, bigOne).Cmp(fill.Top) == 0:
			positive = false
		default:
			return sel
		}
		dim = sel.Height()
	}

	b := led.Board()
	edit := edits.NewEdit()
	for _, p := range PiecesInBox(b, fill) {
		edit.QueueRemove(b, p)
	}

	src := PiecesInBox(b, sel)
	var whole *big.Int
	if horizontal {
		whole = new(big.Int).Div(fill.Width(), dim)
	} else {
		whole = new(big.Int).Div(fill.Height(), dim)
	}

	last := new(big.Int).Add(whole, bigOne)
	for k := new(big.Int).Set(bigOne); k.Cmp(last) <= 0; k.Add(k, bigOne) {
		shift := new(big.Int).Mul(k, dim)
		if !positive {
			shift.Neg(shift)
		}
		vec := base.Coord{X: new(big.Int), Y: new(big.Int)}
		if horizontal {
			vec.X = shift
		} else {
			vec.Y = shift
		}
		partial := k.Cmp(last) == 0
		for _, p := range src {
			c := p.Coords.Add(vec)
			if partial && !fill.Contains(c) {
				continue
			}
			edit.QueueAdd(c, p.Type, b.HasRights(p.Coords))
		}
	}
	led.Commit(edit)
	return sel.Union(fill)
}

// ---- exact arithmetic helpers ----

func ratMid(a, b *big.Int) *big.Rat {
	sum := new(big.Int).Add(a, b)
	return new(big.Rat).SetFrac(sum, bigTwo)
}

func isEven(n *big.Int) bool {
	return n.Bit(0) == 0
}

func intFromRat(r *big.Rat) *big.Int {
	if !r.IsInt() {
		panic(fmt.Sprintf("non-integral coordinate %s", r))
	}
	return new(big.Int).Set(r.Num())
}

// wholeCopies is floor(target/unit) clamped to at least one.
func wholeCopies(target, unit *big.Int) *big.Int {
	n := new(big.Int).Div(target, unit)
	if n.Sign() <= 0 {
		n.Set(bigOne)
	}
	return n
}

func addMul(a, n, m *big.Int) *big.Int {
	return new(big.Int).Add(a, new(big.Int).Mul(n, m))
}

func subMul(a, n, m *big.Int) *big.Int {
	return new(big.Int).Sub(a, new(big.Int).Mul(n, m))
}
