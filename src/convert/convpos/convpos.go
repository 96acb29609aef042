// Package convpos converts boards to and from the position-string
// notation: piece entries joined by '|', each "<letter><x>,<y>" with a
// trailing '+' when the square keeps its special move rights, plus an
// optional "!x,y" entry for the en-passant square.
//
// Example: "K5,1+|r-12,40000000000|!5,3"
package convpos

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"fmt"
	"sort"
	"strings"
)

// ConvertPositionToBoard parses a position string into a fresh board.
func ConvertPositionToBoard(pos string) (*board.Board, error) {
	b := board.New()
	pos = strings.TrimSpace(pos)
	if pos == "" {
		return b, nil
	}
	for _, seg := range strings.Split(pos, "|") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if strings.HasPrefix(seg, "!") {
			c, err := base.ParseCoord(seg[1:])
			if err != nil {
				return nil, fmt.Errorf("bad en-passant entry %q: %w", seg, err)
			}
			b.SetPassant(c)
			continue
		}
		rights := strings.HasSuffix(seg, "+")
		body := strings.TrimSuffix(seg, "+")
		if len(body) < 2 {
			return nil, fmt.Errorf("bad piece entry %q", seg)
		}
		r := rune(body[0])
		t := base.ConvertPieceFromRune(r)
		if t == base.InvalidPiece {
			return nil, fmt.Errorf("unknown piece letter %q in %q", r, seg)
		}
		c, err := base.ParseCoord(body[1:])
		if err != nil {
			return nil, fmt.Errorf("bad piece entry %q: %w", seg, err)
		}
		if _, err := b.Place(c, t); err != nil {
			return nil, fmt.Errorf("duplicate square in %q: %w", seg, err)
		}
		if rights {
			b.GrantRights(c)
		}
	}
	return b, nil
}

// ConvertBoardToPosition writes the whole board as a position string.
// Entries are ordered by coordinate so equal boards format identically.
func ConvertBoardToPosition(b *board.Board) string {
	return formatPieces(b, b.All(), true)
}

// FormatRegion writes only the pieces of the given box, for exporting a
// selection. The en-passant entry is omitted.
func FormatRegion(b *board.Board, pieces []board.Piece) string {
	return formatPieces(b, pieces, false)
}

func formatPieces(b *board.Board, pieces []board.Piece, withPassant bool) string {
	sort.Slice(pieces, func(i, j int) bool {
		a, z := pieces[i].Coords, pieces[j].Coords
		if cmp := a.Y.Cmp(z.Y); cmp != 0 {
			return cmp < 0
		}
		return a.X.Cmp(z.X) < 0
	})

	var sb strings.Builder
	for i, p := range pieces {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteRune(base.ConvertRuneFromPiece(p.Type))
		sb.WriteString(p.Coords.Key())
		if b.HasRights(p.Coords) {
			sb.WriteByte('+')
		}
	}
	if withPassant {
		if ep, ok := b.Passant(); ok {
			if sb.Len() > 0 {
				sb.WriteByte('|')
			}
			sb.WriteByte('!')
			sb.WriteString(ep.Key())
		}
	}
	return sb.String()
}
