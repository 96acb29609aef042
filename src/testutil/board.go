package testutil

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"testing"
)

// Square describes one occupied square for building test boards.
type Square struct {
	X, Y   int64
	Type   base.Piece
	Rights bool
}

// BuildBoard places the given squares on a fresh board.
func BuildBoard(t *testing.T, squares []Square) *board.Board {
	t.Helper()
	b := board.New()
	for _, sq := range squares {
		c := base.NewCoord(sq.X, sq.Y)
		if _, err := b.Place(c, sq.Type); err != nil {
			t.Fatalf("placing %v at %d,%d: %v", sq.Type, sq.X, sq.Y, err)
		}
		if sq.Rights {
			b.GrantRights(c)
		}
	}
	return b
}

// Snapshot captures the full board as a coordinate-keyed map, with a "+"
// suffix on the piece letter when the square has special rights. Two
// boards with equal snapshots hold the same position.
func Snapshot(b *board.Board) map[string]string {
	out := make(map[string]string, b.Count())
	for _, p := range b.All() {
		v := string(base.ConvertRuneFromPiece(p.Type))
		if b.HasRights(p.Coords) {
			v += "+"
		}
		out[p.Coords.Key()] = v
	}
	return out
}
