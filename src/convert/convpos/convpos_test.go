package convpos_test

import (
	"evilboard/src/base"
	"evilboard/src/convert/convpos"
	"evilboard/src/testutil"
	"testing"
)

func TestConvertPositionToBoard(t *testing.T) {
	b, err := convpos.ConvertPositionToBoard("K5,1+|p-3,12|!4,4")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, testutil.Snapshot(b), map[string]string{
		"5,1":   "K+",
		"-3,12": "p",
	})
	ep, ok := b.Passant()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, ep.Key(), "4,4")
}

func TestConvertEmptyPosition(t *testing.T) {
	for _, pos := range []string{"", "   ", "||"} {
		b, err := convpos.ConvertPositionToBoard(pos)
		testutil.AssertNoError(t, err, "pos %q", pos)
		testutil.AssertEqual(t, b.Count(), 0, "pos %q", pos)
	}
}

func TestConvertPositionErrors(t *testing.T) {
	tests := []struct {
		name string
		pos  string
	}{
		{"unknown letter", "Z1,1"},
		{"letter only", "K"},
		{"missing comma", "K11"},
		{"bad number", "Kx,y"},
		{"duplicate square", "K1,1|q1,1"},
		{"bad passant", "!nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := convpos.ConvertPositionToBoard(tt.pos)
			testutil.AssertError(t, err, "pos %q", tt.pos)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	const pos = "K5,1+|p-3,12|!4,4"
	b, err := convpos.ConvertPositionToBoard(pos)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, convpos.ConvertBoardToPosition(b), pos)
}

func TestConvertBoardToPositionOrder(t *testing.T) {
	b := testutil.BuildBoard(t, []testutil.Square{
		{X: 3, Y: 0, Type: base.WBishop},
		{X: -1, Y: 0, Type: base.WRook, Rights: true},
		{X: 0, Y: -5, Type: base.BPawn},
	})
	// rows bottom up, each row left to right
	testutil.AssertEqual(t, convpos.ConvertBoardToPosition(b), "p0,-5|R-1,0+|B3,0")
}

func TestConvertBigCoordinates(t *testing.T) {
	const pos = "r-12,40000000000000000000000001"
	b, err := convpos.ConvertPositionToBoard(pos)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, convpos.ConvertBoardToPosition(b), pos)
}

func TestClassicSetupRoundTrips(t *testing.T) {
	b, err := convpos.ConvertPositionToBoard(base.POS_CLASSIC_GAME)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, b.Count(), 32)

	// formatting reorders entries but preserves the position
	again, err := convpos.ConvertPositionToBoard(convpos.ConvertBoardToPosition(b))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.Snapshot(again), testutil.Snapshot(b))
}

func TestFormatRegionOmitsPassant(t *testing.T) {
	b, err := convpos.ConvertPositionToBoard("P1,1|n2,2+|!1,2")
	testutil.AssertNoError(t, err)

	got := convpos.FormatRegion(b, b.All())
	testutil.AssertEqual(t, got, "P1,1|n2,2+")
}
