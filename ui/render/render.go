// Package render rasterizes a region of a board to an image file. It is
// a presentation convenience over the editor core, useful for sharing a
// position without a running client.
package render

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"fmt"
	"math/big"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const squareSize = 48

// maximum squares per side so a stray box cannot allocate a giant canvas
const maxSide = 512

// RegionPNG draws the given box of the board and writes it as PNG.
func RegionPNG(b *board.Board, box base.BBox, path string) error {
	if !box.Width().IsInt64() || !box.Height().IsInt64() {
		return fmt.Errorf("region %s is too large to render", box)
	}
	w := box.Width().Int64()
	h := box.Height().Int64()
	if w > maxSide || h > maxSide {
		return fmt.Errorf("region %s exceeds %d squares per side", box, maxSide)
	}

	dc := gg.NewContext(int(w)*squareSize, int(h)*squareSize)
	dc.SetFontFace(basicfont.Face7x13)

	for row := int64(0); row < h; row++ {
		for col := int64(0); col < w; col++ {
			c := base.Coord{
				X: new(big.Int).Add(box.Left, big.NewInt(col)),
				Y: new(big.Int).Sub(box.Top, big.NewInt(row)),
			}
			px := float64(col) * squareSize
			py := float64(row) * squareSize

			if (col+row)%2 == 0 {
				dc.SetRGB(0.93, 0.93, 0.85)
			} else {
				dc.SetRGB(0.45, 0.53, 0.60)
			}
			dc.DrawRectangle(px, py, squareSize, squareSize)
			dc.Fill()

			p, ok := b.PieceAt(c)
			if !ok {
				continue
			}
			switch {
			case base.PieceIsWhite(p.Type):
				dc.SetRGB(1, 1, 1)
			case base.PieceIsBlack(p.Type):
				dc.SetRGB(0.05, 0.05, 0.05)
			default:
				dc.SetRGB(0.5, 0.3, 0.3)
			}
			letter := string(base.ConvertRuneFromPiece(p.Type))
			dc.DrawStringAnchored(letter, px+squareSize/2, py+squareSize/2, 0.5, 0.5)

			if b.HasRights(c) {
				dc.DrawCircle(px+squareSize-7, py+7, 3)
				dc.Fill()
			}
		}
	}
	return dc.SavePNG(path)
}
