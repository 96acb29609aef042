package base_test

import (
	"evilboard/src/base"
	"testing"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		wantKey string
		wantErr bool
	}{
		{"3,4", "3,4", false},
		{"-12,0", "-12,0", false},
		{"123456789012345678901234567890,-1", "123456789012345678901234567890,-1", false},
		{"3", "", true},
		{"a,b", "", true},
		{"", "", true},
		{"3,", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := base.ParseCoord(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCoord(%q) = %v; want error", tt.in, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoord(%q): %v", tt.in, err)
			}
			if got := c.Key(); got != tt.wantKey {
				t.Errorf("Key() = %q; want %q", got, tt.wantKey)
			}
		})
	}
}

func TestCoordArithmetic(t *testing.T) {
	a := base.NewCoord(3, -4)
	b := base.NewCoord(-1, 10)

	if got := a.Add(b).Key(); got != "2,6" {
		t.Errorf("Add = %s; want 2,6", got)
	}
	if got := a.Sub(b).Key(); got != "4,-14" {
		t.Errorf("Sub = %s; want 4,-14", got)
	}
	// operands must be untouched
	if a.Key() != "3,-4" || b.Key() != "-1,10" {
		t.Errorf("operands mutated: %s %s", a, b)
	}
}

func TestNewBBoxNormalizesCorners(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 base.Coord
	}{
		{"ordered", base.NewCoord(1, 2), base.NewCoord(5, 9)},
		{"swapped x", base.NewCoord(5, 2), base.NewCoord(1, 9)},
		{"swapped y", base.NewCoord(1, 9), base.NewCoord(5, 2)},
		{"swapped both", base.NewCoord(5, 9), base.NewCoord(1, 2)},
	}
	want := base.NewBBoxInt(1, 5, 2, 9)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.NewBBox(tt.c1, tt.c2)
			if !got.Equal(want) {
				t.Errorf("NewBBox = %s; want %s", got, want)
			}
		})
	}
}

func TestBBoxDimensions(t *testing.T) {
	box := base.NewBBoxInt(2, 2, -3, 1)
	if got := box.Width().Int64(); got != 1 {
		t.Errorf("Width = %d; want 1", got)
	}
	if got := box.Height().Int64(); got != 5 {
		t.Errorf("Height = %d; want 5", got)
	}
}

func TestBBoxContains(t *testing.T) {
	box := base.NewBBoxInt(0, 4, 0, 2)
	tests := []struct {
		c    base.Coord
		want bool
	}{
		{base.NewCoord(0, 0), true},
		{base.NewCoord(4, 2), true},
		{base.NewCoord(2, 1), true},
		{base.NewCoord(5, 1), false},
		{base.NewCoord(-1, 1), false},
		{base.NewCoord(2, 3), false},
		{base.NewCoord(2, -1), false},
	}
	for _, tt := range tests {
		if got := box.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%s) = %v; want %v", tt.c, got, tt.want)
		}
	}
}

func TestBBoxTranslateAndUnion(t *testing.T) {
	box := base.NewBBoxInt(0, 2, 0, 1)

	moved := box.Translate(base.NewCoord(-5, 10))
	if want := base.NewBBoxInt(-5, -3, 10, 11); !moved.Equal(want) {
		t.Errorf("Translate = %s; want %s", moved, want)
	}
	// original box untouched
	if want := base.NewBBoxInt(0, 2, 0, 1); !box.Equal(want) {
		t.Errorf("Translate mutated receiver: %s", box)
	}

	union := box.Union(base.NewBBoxInt(3, 10, -2, 0))
	if want := base.NewBBoxInt(0, 10, -2, 1); !union.Equal(want) {
		t.Errorf("Union = %s; want %s", union, want)
	}
}
