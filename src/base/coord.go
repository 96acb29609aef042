package base

import (
	"fmt"
	"math/big"
	"strings"
)

// The board has no edges, so squares are addressed by arbitrary-precision
// integers. Fixed-width coordinates would silently wrap far from the origin.

var bigOne = big.NewInt(1)

type Coord struct {
	X *big.Int
	Y *big.Int
}

func NewCoord(x, y int64) Coord {
	return Coord{X: big.NewInt(x), Y: big.NewInt(y)}
}

// ParseCoord reads "x,y" with decimal integers of any magnitude.
func ParseCoord(s string) (Coord, error) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return Coord{}, fmt.Errorf("invalid coord %q", s)
	}
	x, ok := new(big.Int).SetString(xs, 10)
	if !ok {
		return Coord{}, fmt.Errorf("invalid coord %q", s)
	}
	y, ok := new(big.Int).SetString(ys, 10)
	if !ok {
		return Coord{}, fmt.Errorf("invalid coord %q", s)
	}
	return Coord{X: x, Y: y}, nil
}

func (c Coord) Clone() Coord {
	return Coord{X: new(big.Int).Set(c.X), Y: new(big.Int).Set(c.Y)}
}

func (c Coord) Add(v Coord) Coord {
	return Coord{
		X: new(big.Int).Add(c.X, v.X),
		Y: new(big.Int).Add(c.Y, v.Y),
	}
}

func (c Coord) Sub(v Coord) Coord {
	return Coord{
		X: new(big.Int).Sub(c.X, v.X),
		Y: new(big.Int).Sub(c.Y, v.Y),
	}
}

func (c Coord) Equal(o Coord) bool {
	return c.X.Cmp(o.X) == 0 && c.Y.Cmp(o.Y) == 0
}

// Key is the canonical "x,y" form, usable as a map key.
func (c Coord) Key() string {
	return c.X.String() + "," + c.Y.String()
}

func (c Coord) String() string { return c.Key() }

// BBox is an axis-aligned box, inclusive on all four sides, so a box with
// Left == Right spans exactly one column.
type BBox struct {
	Left   *big.Int
	Right  *big.Int
	Bottom *big.Int
	Top    *big.Int
}

// NewBBox builds a box from two opposite corners given in any order.
func NewBBox(c1, c2 Coord) BBox {
	left, right := c1.X, c2.X
	if left.Cmp(right) > 0 {
		left, right = right, left
	}
	bottom, top := c1.Y, c2.Y
	if bottom.Cmp(top) > 0 {
		bottom, top = top, bottom
	}
	return BBox{
		Left:   new(big.Int).Set(left),
		Right:  new(big.Int).Set(right),
		Bottom: new(big.Int).Set(bottom),
		Top:    new(big.Int).Set(top),
	}
}

// NewBBoxInt is a convenience for small, literal boxes.
func NewBBoxInt(left, right, bottom, top int64) BBox {
	return NewBBox(NewCoord(left, bottom), NewCoord(right, top))
}

func (b BBox) Clone() BBox {
	return BBox{
		Left:   new(big.Int).Set(b.Left),
		Right:  new(big.Int).Set(b.Right),
		Bottom: new(big.Int).Set(b.Bottom),
		Top:    new(big.Int).Set(b.Top),
	}
}

// Width is the inclusive column count, always >= 1.
func (b BBox) Width() *big.Int {
	w := new(big.Int).Sub(b.Right, b.Left)
	return w.Add(w, bigOne)
}

// Height is the inclusive row count, always >= 1.
func (b BBox) Height() *big.Int {
	h := new(big.Int).Sub(b.Top, b.Bottom)
	return h.Add(h, bigOne)
}

func (b BBox) Contains(c Coord) bool {
	return c.X.Cmp(b.Left) >= 0 && c.X.Cmp(b.Right) <= 0 &&
		c.Y.Cmp(b.Bottom) >= 0 && c.Y.Cmp(b.Top) <= 0
}

func (b BBox) Translate(v Coord) BBox {
	return BBox{
		Left:   new(big.Int).Add(b.Left, v.X),
		Right:  new(big.Int).Add(b.Right, v.X),
		Bottom: new(big.Int).Add(b.Bottom, v.Y),
		Top:    new(big.Int).Add(b.Top, v.Y),
	}
}

// Union is the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	out := b.Clone()
	if o.Left.Cmp(out.Left) < 0 {
		out.Left.Set(o.Left)
	}
	if o.Right.Cmp(out.Right) > 0 {
		out.Right.Set(o.Right)
	}
	if o.Bottom.Cmp(out.Bottom) < 0 {
		out.Bottom.Set(o.Bottom)
	}
	if o.Top.Cmp(out.Top) > 0 {
		out.Top.Set(o.Top)
	}
	return out
}

func (b BBox) Equal(o BBox) bool {
	return b.Left.Cmp(o.Left) == 0 && b.Right.Cmp(o.Right) == 0 &&
		b.Bottom.Cmp(o.Bottom) == 0 && b.Top.Cmp(o.Top) == 0
}

// Corners returns the bottom-left and top-right corners.
func (b BBox) Corners() (Coord, Coord) {
	return Coord{X: new(big.Int).Set(b.Left), Y: new(big.Int).Set(b.Bottom)},
		Coord{X: new(big.Int).Set(b.Right), Y: new(big.Int).Set(b.Top)}
}

func (b BBox) String() string {
	return fmt.Sprintf("[%s..%s]x[%s..%s]", b.Left, b.Right, b.Bottom, b.Top)
}
