package base

// Classic setup on the 1..8 corner of the unbounded board.
const POS_CLASSIC_GAME string = "P1,2+|P2,2+|P3,2+|P4,2+|P5,2+|P6,2+|P7,2+|P8,2+|R1,1+|N2,1|B3,1|Q4,1|K5,1+|B6,1|N7,1|R8,1+|p1,7+|p2,7+|p3,7+|p4,7+|p5,7+|p6,7+|p7,7+|p8,7+|r1,8+|n2,8|b3,8|q4,8|k5,8+|b6,8|n7,8|r8,8+"

type Piece uint8

const (
	WKing        Piece = 19
	WQueen       Piece = 18
	WRook        Piece = 15
	WBishop      Piece = 14
	WKnight      Piece = 13
	WPawn        Piece = 11
	BKing        Piece = 9
	BQueen       Piece = 8
	BRook        Piece = 5
	BBishop      Piece = 4
	BKnight      Piece = 3
	BPawn        Piece = 1
	NObstacle    Piece = 20
	NVoid        Piece = 21
	EmptyPiece   Piece = 99
	InvalidPiece Piece = 0
)

func PieceIsWhite(p Piece) bool {
	return p >= WPawn && p <= WKing
}

func PieceIsBlack(p Piece) bool {
	return p >= BPawn && p <= BKing
}

func PieceIsNeutral(p Piece) bool {
	return p == NObstacle || p == NVoid
}

// SwapColorPiece maps white pieces to black and back. Neutral pieces
// map to themselves.
func SwapColorPiece(p Piece) Piece {
	switch p {
	case WKing:
		return BKing
	case WQueen:
		return BQueen
	case WRook:
		return BRook
	case WBishop:
		return BBishop
	case WKnight:
		return BKnight
	case WPawn:
		return BPawn
	case BKing:
		return WKing
	case BQueen:
		return WQueen
	case BRook:
		return WRook
	case BBishop:
		return WBishop
	case BKnight:
		return WKnight
	case BPawn:
		return WPawn
	case NObstacle, NVoid:
		return p
	default:
		return InvalidPiece
	}
}

func ConvertPieceFromRune(r rune) Piece {
	switch r {
	case 'P':
		return WPawn
	case 'R':
		return WRook
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'r':
		return BRook
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'q':
		return BQueen
	case 'k':
		return BKing
	case 'o':
		return NObstacle
	case 'v':
		return NVoid
	default:
		return InvalidPiece
	}
}

func ConvertRuneFromPiece(p Piece) rune {
	switch p {
	case WPawn:
		return 'P'
	case WKnight:
		return 'N'
	case WBishop:
		return 'B'
	case WRook:
		return 'R'
	case WQueen:
		return 'Q'
	case WKing:
		return 'K'
	case BPawn:
		return 'p'
	case BKnight:
		return 'n'
	case BBishop:
		return 'b'
	case BRook:
		return 'r'
	case BQueen:
		return 'q'
	case BKing:
		return 'k'
	case NObstacle:
		return 'o'
	case NVoid:
		return 'v'
	default:
		return '.'
	}
}

// GlyphFromPiece returns a unicode glyph for terminal drawing.
func GlyphFromPiece(p Piece) string {
	switch p {
	case WKing:
		return "♔"
	case WQueen:
		return "♕"
	case WRook:
		return "♖"
	case WBishop:
		return "♗"
	case WKnight:
		return "♘"
	case WPawn:
		return "♙"
	case BKing:
		return "♚"
	case BQueen:
		return "♛"
	case BRook:
		return "♜"
	case BBishop:
		return "♝"
	case BKnight:
		return "♞"
	case BPawn:
		return "♟"
	case NObstacle:
		return "▦"
	case NVoid:
		return "▨"
	case EmptyPiece:
		return " "
	default:
		return "?"
	}
}
