package stransform_test

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/editor/edits"
	"evilboard/src/editor/stransform"
	"evilboard/src/logx"
	"evilboard/src/testutil"
	"sort"
	"testing"
)

func newLedger(t *testing.T, squares []testutil.Square) (*edits.Ledger, *board.Board) {
	t.Helper()
	b := testutil.BuildBoard(t, squares)
	return edits.NewLedger(b, nil, logx.NewNop()), b
}

func keysInBox(b *board.Board, box base.BBox) []string {
	var keys []string
	for _, p := range stransform.PiecesInBox(b, box) {
		keys = append(keys, p.Coords.Key())
	}
	sort.Strings(keys)
	return keys
}

func TestPiecesInBox(t *testing.T) {
	squares := []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn},
		{X: 3, Y: 0, Type: base.WPawn},
		{X: 0, Y: 5, Type: base.WPawn},
		{X: 2, Y: 2, Type: base.WPawn},
		{X: -4, Y: 2, Type: base.WPawn},
		{X: 100, Y: 100, Type: base.WPawn},
	}

	tests := []struct {
		name string
		box  base.BBox
		want []string
	}{
		{"everything", base.NewBBoxInt(-10, 200, -10, 200),
			[]string{"-4,2", "0,0", "0,5", "100,100", "2,2", "3,0"}},
		{"single square hit", base.NewBBoxInt(2, 2, 2, 2), []string{"2,2"}},
		{"single square miss", base.NewBBoxInt(1, 1, 1, 1), nil},
		{"single row", base.NewBBoxInt(-10, 10, 0, 0), []string{"0,0", "3,0"}},
		{"single column", base.NewBBoxInt(0, 0, -10, 10), []string{"0,0", "0,5"}},
		{"thin wide box", base.NewBBoxInt(-5, 150, 2, 2), []string{"-4,2", "2,2"}},
		{"empty region", base.NewBBoxInt(40, 60, 40, 60), nil},
		{"borders inclusive", base.NewBBoxInt(0, 3, 0, 2), []string{"0,0", "2,2", "3,0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.BuildBoard(t, squares)
			testutil.AssertEqual(t, keysInBox(b, tt.box), tt.want)
		})
	}
}

func TestTranslate(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WRook, Rights: true},
		{X: 1, Y: 1, Type: base.BKnight},
	})

	box := stransform.Translate(led, base.NewBBoxInt(0, 1, 0, 1), base.NewCoord(10, -5))

	testutil.AssertTrue(t, box.Equal(base.NewBBoxInt(10, 11, -5, -4)))
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"10,-5": "R+",
		"11,-4": "n",
	})
}

// A shift smaller than the selection overlaps itself: overlap pieces must
// move, not vanish or double.
func TestTranslateOverlap(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WRook, Rights: true},
		{X: 1, Y: 0, Type: base.WKnight},
		{X: 2, Y: 0, Type: base.WBishop},
	})
	before := testutil.Snapshot(b)

	stransform.Translate(led, base.NewBBoxInt(0, 2, 0, 0), base.NewCoord(1, 0))
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"1,0": "R+",
		"2,0": "N",
		"3,0": "B",
	})

	led.Undo()
	testutil.AssertEqual(t, testutil.Snapshot(b), before)
}

// Pieces already standing in the destination are cleared by the move and
// come back on undo.
func TestTranslateClearsDestination(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn},
		{X: 5, Y: 0, Type: base.BQueen, Rights: true},
	})
	before := testutil.Snapshot(b)

	stransform.Translate(led, base.NewBBoxInt(0, 0, 0, 0), base.NewCoord(5, 0))
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{"5,0": "P"})

	led.Undo()
	testutil.AssertEqual(t, testutil.Snapshot(b), before)
}

func TestRotateSquareBox(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WRook},
		{X: 2, Y: 0, Type: base.WBishop},
		{X: 1, Y: 1, Type: base.WKing},
	})
	parity := false

	// 3x3 box pivots on its center square
	box := stransform.Rotate(led, base.NewBBoxInt(0, 2, 0, 2), true, &parity)

	testutil.AssertTrue(t, box.Equal(base.NewBBoxInt(0, 2, 0, 2)))
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"0,2": "R", // bottom-left corner to top-left
		"0,0": "B", // bottom-right corner to bottom-left
		"1,1": "K", // center stays
	})
	testutil.AssertFalse(t, parity, "square box must not consume the parity flag")
}

func TestRotateUnevenBox(t *testing.T) {
	// 2x1 box, clockwise, fresh flag: pivot lands on (1/2, 1/2)
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WKnight, Rights: true},
		{X: 1, Y: 0, Type: base.BKnight},
	})
	parity := false

	box := stransform.Rotate(led, base.NewBBoxInt(0, 1, 0, 0), true, &parity)

	testutil.AssertTrue(t, box.Equal(base.NewBBoxInt(0, 0, 0, 1)), "rotated box is %s", box)
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"0,1": "N+",
		"0,0": "n",
	})
	testutil.AssertTrue(t, parity)
}

func TestRotatePairsRestore(t *testing.T) {
	boxes := []struct{ left, right, bottom, top int64 }{
		{0, 2, 0, 2},   // odd x odd
		{0, 1, 0, 1},   // even x even
		{0, 1, 0, 0},   // even x odd
		{0, 0, 0, 1},   // odd x even
		{-1, 1, 0, 3},  // odd x even, off origin
		{3, 6, -2, 0},  // even x odd, off origin
		{-5, -1, 2, 3}, // odd x even, negative side
	}

	for _, initialParity := range []bool{false, true} {
		for _, firstClockwise := range []bool{false, true} {
			for _, bc := range boxes {
				box := base.NewBBoxInt(bc.left, bc.right, bc.bottom, bc.top)
				// corner pieces plus an interior one where the box has room
				squares := []testutil.Square{
					{X: bc.left, Y: bc.bottom, Type: base.WRook, Rights: true},
					{X: bc.right, Y: bc.top, Type: base.BKnight},
				}
				if bc.right > bc.left && bc.top > bc.bottom &&
					!(bc.left+1 == bc.right && bc.bottom+1 == bc.top) {
					squares = append(squares, testutil.Square{X: bc.left + 1, Y: bc.bottom + 1, Type: base.BQueen})
				}
				led, b := newLedger(t, squares)
				before := testutil.Snapshot(b)
				parity := initialParity

				mid := stransform.Rotate(led, box, firstClockwise, &parity)
				back := stransform.Rotate(led, mid, !firstClockwise, &parity)

				testutil.AssertEqual(t, testutil.Snapshot(b), before,
					"box %s first-cw=%v parity=%v", box, firstClockwise, initialParity)
				testutil.AssertTrue(t, back.Equal(box),
					"box %s first-cw=%v parity=%v: selection came back as %s", box, firstClockwise, initialParity, back)
			}
		}
	}
}

func TestFlipHorizontal(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WRook, Rights: true},
		{X: 1, Y: 1, Type: base.WKnight},
		{X: 3, Y: 0, Type: base.BRook},
	})

	box := stransform.FlipHorizontal(led, base.NewBBoxInt(0, 3, 0, 1))

	testutil.AssertTrue(t, box.Equal(base.NewBBoxInt(0, 3, 0, 1)))
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"3,0": "R+",
		"2,1": "N",
		"0,0": "r",
	})
}

func TestDoubleFlipIsIdentity(t *testing.T) {
	squares := []testutil.Square{
		{X: 0, Y: 0, Type: base.WRook, Rights: true},
		{X: 2, Y: 1, Type: base.BKnight},
		{X: 1, Y: 3, Type: base.WPawn},
	}
	box := base.NewBBoxInt(0, 2, 0, 3)

	t.Run("horizontal", func(t *testing.T) {
		led, b := newLedger(t, squares)
		before := testutil.Snapshot(b)
		stransform.FlipHorizontal(led, box)
		stransform.FlipHorizontal(led, box)
		testutil.AssertEqual(t, testutil.Snapshot(b), before)
	})
	t.Run("vertical", func(t *testing.T) {
		led, b := newLedger(t, squares)
		before := testutil.Snapshot(b)
		stransform.FlipVertical(led, box)
		stransform.FlipVertical(led, box)
		testutil.AssertEqual(t, testutil.Snapshot(b), before)
	})
}

func TestInvertColor(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WQueen, Rights: true},
		{X: 1, Y: 0, Type: base.BPawn},
		{X: 2, Y: 0, Type: base.NObstacle},
		{X: 9, Y: 9, Type: base.WKing},
	})

	stransform.InvertColor(led, base.NewBBoxInt(0, 3, 0, 0))

	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"0,0": "q+",
		"1,0": "P",
		"2,0": "o", // neutral keeps its color
		"9,9": "K", // outside the box
	})
}

// Inverting a region of neutral pieces only changes nothing and must not
// grow the history.
func TestInvertColorAllNeutralIsNoOp(t *testing.T) {
	led, _ := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.NObstacle},
		{X: 1, Y: 0, Type: base.NVoid},
	})
	stransform.InvertColor(led, base.NewBBoxInt(0, 1, 0, 0))
	testutil.AssertFalse(t, led.CanUndo())
}

func TestDelete(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn, Rights: true},
		{X: 1, Y: 0, Type: base.BPawn},
		{X: 5, Y: 5, Type: base.WKing},
	})
	before := testutil.Snapshot(b)

	stransform.Delete(led, base.NewBBoxInt(0, 1, 0, 0))
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{"5,5": "K"})

	led.Undo()
	testutil.AssertEqual(t, testutil.Snapshot(b), before)
}

func TestCopyIsPureRead(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn, Rights: true},
		{X: 2, Y: 1, Type: base.BRook},
	})

	clip := stransform.Copy(b, base.NewBBoxInt(0, 2, 0, 1))

	testutil.AssertEqual(t, len(clip.Pieces), 2)
	testutil.AssertTrue(t, clip.Origin.Equal(base.NewBBoxInt(0, 2, 0, 1)))
	testutil.AssertFalse(t, led.CanUndo(), "copy must not touch history")

	rights := map[string]bool{}
	for _, sp := range clip.Pieces {
		rights[sp.Coords.Key()] = sp.Rights
	}
	testutil.AssertEqual(t, rights, map[string]bool{"0,0": true, "2,1": false})
}

// A target smaller than the clipboard still receives one whole copy,
// anchored at the target's top-left corner, and the selection grows to
// the real pasted region.
func TestPasteSmallTarget(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 1, Type: base.WPawn, Rights: true},
		{X: 2, Y: 0, Type: base.BKnight},
		{X: 11, Y: 4, Type: base.BQueen}, // inside the real paste region: cleared
		{X: 13, Y: 5, Type: base.WKing},  // outside: survives
	})
	clip := stransform.Copy(b, base.NewBBoxInt(0, 2, 0, 1)) // 3x2

	box := stransform.Paste(led, clip, base.NewBBoxInt(10, 10, 5, 5)) // 1x1 target

	testutil.AssertTrue(t, box.Equal(base.NewBBoxInt(10, 12, 4, 5)), "paste region is %s", box)
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"0,1":  "P+",
		"2,0":  "n",
		"10,5": "P+",
		"12,4": "n",
		"13,5": "K",
	})
}

func TestPasteTilesWholeCopies(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn},
	})
	clip := stransform.Copy(b, base.NewBBoxInt(0, 1, 0, 1)) // 2x2, one piece at its bottom-left

	// 5x4 target: 2x2 whole copies, the spare column is not covered
	box := stransform.Paste(led, clip, base.NewBBoxInt(10, 14, 0, 3))

	testutil.AssertTrue(t, box.Equal(base.NewBBoxInt(10, 13, 0, 3)), "paste region is %s", box)
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"0,0":  "P",
		"10,2": "P",
		"12,2": "P",
		"10,0": "P",
		"12,0": "P",
	})
}

func TestPasteWithoutClipboardIsNoOp(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn},
	})
	before := testutil.Snapshot(b)

	stransform.Paste(led, nil, base.NewBBoxInt(0, 5, 0, 5))

	testutil.AssertEqual(t, testutil.Snapshot(b), before)
	testutil.AssertFalse(t, led.CanUndo())
}

// Width-3 selection filled into a width-8 box: two whole copies plus a
// partial copy clipped to the last two columns.
func TestFillHorizontalWithPartialCopy(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn, Rights: true},
		{X: 1, Y: 0, Type: base.WKnight},
		{X: 2, Y: 0, Type: base.WBishop},
		{X: 5, Y: 0, Type: base.BQueen}, // inside the fill box: cleared first
	})

	box := stransform.Fill(led, base.NewBBoxInt(0, 2, 0, 0), base.NewBBoxInt(3, 10, 0, 0))

	testutil.AssertTrue(t, box.Equal(base.NewBBoxInt(0, 10, 0, 0)), "selection after fill is %s", box)
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"0,0":  "P+",
		"1,0":  "N",
		"2,0":  "B",
		"3,0":  "P+",
		"4,0":  "N",
		"5,0":  "B",
		"6,0":  "P+",
		"7,0":  "N",
		"8,0":  "B",
		"9,0":  "P+",
		"10,0": "N",
	})
}

func TestFillVerticalDownward(t *testing.T) {
	led, b := newLedger(t, []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn},
		{X: 0, Y: 1, Type: base.WRook},
	})

	// selection y 0..1 filled down into y -3..-1: one whole copy, then a
	// partial one keeps only the piece landing on y=-3
	box := stransform.Fill(led, base.NewBBoxInt(0, 0, 0, 1), base.NewBBoxInt(0, 0, -3, -1))

	testutil.AssertTrue(t, box.Equal(base.NewBBoxInt(0, 0, -3, 1)))
	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"0,0":  "P",
		"0,1":  "R",
		"0,-2": "P",
		"0,-1": "R",
		"0,-3": "R",
	})
}

// A fill box that is not flush against the selection, or spans different
// rows or columns, must be rejected outright: tiled copies would land on
// uncleared squares and collide with whatever already stands there.
func TestFillRejectsMisalignedBox(t *testing.T) {
	squares := []testutil.Square{
		{X: 0, Y: 0, Type: base.WPawn},
		{X: 1, Y: 0, Type: base.WKnight},
		{X: 2, Y: 0, Type: base.WBishop},
		{X: 3, Y: 0, Type: base.BQueen},
	}
	sel := base.NewBBoxInt(0, 2, 0, 0)

	tests := []struct {
		name string
		fill base.BBox
	}{
		{"different rows", base.NewBBoxInt(3, 10, 5, 5)},
		{"gap before the fill box", base.NewBBoxInt(10, 17, 0, 0)},
		{"overlaps the selection", base.NewBBoxInt(1, 8, 0, 0)},
		{"different columns vertical", base.NewBBoxInt(0, 5, 1, 3)},
		{"vertical gap", base.NewBBoxInt(0, 2, 4, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			led, b := newLedger(t, squares)
			before := testutil.Snapshot(b)

			box := stransform.Fill(led, sel, tt.fill)

			testutil.AssertTrue(t, box.Equal(sel), "selection came back as %s", box)
			testutil.AssertEqual(t, testutil.Snapshot(b), before)
			testutil.AssertFalse(t, led.CanUndo())
		})
	}
}

func TestEmptyRegionTransformsLeaveHistoryAlone(t *testing.T) {
	led, _ := newLedger(t, []testutil.Square{
		{X: 100, Y: 100, Type: base.WKing},
	})
	empty := base.NewBBoxInt(0, 3, 0, 3)
	parity := false

	stransform.Translate(led, empty, base.NewCoord(1, 1))
	stransform.Rotate(led, base.NewBBoxInt(0, 3, 0, 2), true, &parity)
	stransform.FlipHorizontal(led, empty)
	stransform.FlipVertical(led, empty)
	stransform.InvertColor(led, empty)
	stransform.Delete(led, empty)
	stransform.Fill(led, empty, base.NewBBoxInt(4, 7, 0, 3))

	testutil.AssertFalse(t, led.CanUndo())
	testutil.AssertEqual(t, led.Len(), 0)
}
