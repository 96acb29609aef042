package cli

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"fmt"
	"io"
	"math/big"
)

// Viewport is the visible window onto the unbounded board: a center
// square plus a width and height in squares.
type Viewport struct {
	Center base.Coord
	W, H   int
}

func NewViewport(center base.Coord, w, h int) Viewport {
	return Viewport{Center: center.Clone(), W: w, H: h}
}

// Follow shifts the viewport the minimum amount needed to keep c visible,
// with a one-square margin.
func (v *Viewport) Follow(c base.Coord) {
	half := func(n int) int64 { return int64(n / 2) }
	left := new(big.Int).Sub(v.Center.X, big.NewInt(half(v.W)-1))
	right := new(big.Int).Add(v.Center.X, big.NewInt(half(v.W)-1))
	bottom := new(big.Int).Sub(v.Center.Y, big.NewInt(half(v.H)-1))
	top := new(big.Int).Add(v.Center.Y, big.NewInt(half(v.H)-1))

	if c.X.Cmp(left) < 0 {
		v.Center.X.Sub(v.Center.X, new(big.Int).Sub(left, c.X))
	} else if c.X.Cmp(right) > 0 {
		v.Center.X.Add(v.Center.X, new(big.Int).Sub(c.X, right))
	}
	if c.Y.Cmp(bottom) < 0 {
		v.Center.Y.Sub(v.Center.Y, new(big.Int).Sub(bottom, c.Y))
	} else if c.Y.Cmp(top) > 0 {
		v.Center.Y.Add(v.Center.Y, new(big.Int).Sub(c.Y, top))
	}
}

// Box is the board region the viewport currently shows.
func (v Viewport) Box() base.BBox {
	left := new(big.Int).Sub(v.Center.X, big.NewInt(int64(v.W/2)))
	bottom := new(big.Int).Sub(v.Center.Y, big.NewInt(int64(v.H/2)))
	right := new(big.Int).Add(left, big.NewInt(int64(v.W-1)))
	top := new(big.Int).Add(bottom, big.NewInt(int64(v.H-1)))
	return base.BBox{Left: left, Right: right, Bottom: bottom, Top: top}
}

// PrintViewport draws the visible window with ANSI colors: checkered
// squares, the selection tinted, the cursor highlighted, a '+' in squares
// that keep their special move rights.
func PrintViewport(out io.Writer, b *board.Board, v Viewport, sel *base.BBox, cursor *base.Coord) {
	printBox(out, b, v.Box(), sel, cursor)
}

// PrintRegion draws an exact board region without cursor or selection.
func PrintRegion(out io.Writer, b *board.Board, box base.BBox) {
	printBox(out, b, box, nil, nil)
}

func printBox(out io.Writer, b *board.Board, box base.BBox, sel *base.BBox, cursor *base.Coord) {
	const (
		reset    = "\033[0m"
		lightBg  = "\033[47m"
		darkBg   = "\033[100m"
		selBg    = "\033[44m"
		cursorBg = "\033[43m"
		whiteF   = "\033[97m"
		blackF   = "\033[30m"
		dimF     = "\033[90m"
	)

	fmt.Fprintf(out, "   x: %s..%s  y: %s..%s\n", box.Left, box.Right, box.Bottom, box.Top)

	y := new(big.Int).Set(box.Top)
	for y.Cmp(box.Bottom) >= 0 {
		x := new(big.Int).Set(box.Left)
		for x.Cmp(box.Right) <= 0 {
			c := base.Coord{X: x, Y: y}

			bg := darkBg
			if parityLight(x, y) {
				bg = lightBg
			}
			if sel != nil && sel.Contains(c) {
				bg = selBg
			}
			if cursor != nil && cursor.Equal(c) {
				bg = cursorBg
			}

			glyph := " "
			fg := dimF
			mark := " "
			if p, ok := b.PieceAt(c); ok {
				glyph = base.GlyphFromPiece(p.Type)
				if base.PieceIsWhite(p.Type) {
					fg = whiteF
				} else {
					fg = blackF
				}
				if b.HasRights(c) {
					mark = "+"
				}
			}
			fmt.Fprintf(out, "%s%s %s%s%s", bg, fg, glyph, mark, reset)

			x = new(big.Int).Add(x, big.NewInt(1))
		}
		fmt.Fprintln(out)
		y = new(big.Int).Sub(y, big.NewInt(1))
	}
}

func parityLight(x, y *big.Int) bool {
	return (x.Bit(0) ^ y.Bit(0)) == 0
}
