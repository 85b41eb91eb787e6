package layout

import (
	"testing"

	"tuicore/geom"
)

func TestGridFixedPxTracks(t *testing.T) {
	area := geom.Rect{Width: 20, Height: 10}
	out := Grid(area, GridContainer{
		Columns: []Basis{BasisPx(5), BasisPx(5)},
		Rows:    []Basis{BasisPx(10)},
	}, []GridItem{
		{Placement: Placement{Column: 0, Row: 0}},
		{Placement: Placement{Column: 1, Row: 0}},
	})
	if out[0].X != 0 || out[0].Width != 5 {
		t.Fatalf("item0 = %+v, want X 0 Width 5", out[0])
	}
	if out[1].X != 5 || out[1].Width != 5 {
		t.Fatalf("item1 = %+v, want X 5 Width 5", out[1])
	}
}

func TestGridFractionTracksSplitRemainder(t *testing.T) {
	area := geom.Rect{Width: 30, Height: 10}
	out := Grid(area, GridContainer{
		Columns: []Basis{BasisFraction(1), BasisFraction(2)},
		Rows:    []Basis{BasisFraction(1)},
	}, []GridItem{
		{Placement: Placement{Column: 0, Row: 0}},
		{Placement: Placement{Column: 1, Row: 0}},
	})
	if out[0].Width != 10 || out[1].Width != 20 {
		t.Fatalf("widths = %d/%d, want 10/20 (1:2 split of 30)", out[0].Width, out[1].Width)
	}
}

func TestGridColumnGapSeparatesTracks(t *testing.T) {
	area := geom.Rect{Width: 12, Height: 10}
	out := Grid(area, GridContainer{
		Columns:   []Basis{BasisPx(4), BasisPx(4)},
		Rows:      []Basis{BasisPx(10)},
		ColumnGap: 2,
	}, []GridItem{
		{Placement: Placement{Column: 0, Row: 0}},
		{Placement: Placement{Column: 1, Row: 0}},
	})
	if out[1].X != out[0].X+out[0].Width+2 {
		t.Fatalf("second track X = %d, want %d (first track end + gap)", out[1].X, out[0].X+out[0].Width+2)
	}
}

func TestGridItemColumnSpanUnionsTracks(t *testing.T) {
	area := geom.Rect{Width: 30, Height: 10}
	out := Grid(area, GridContainer{
		Columns: []Basis{BasisPx(10), BasisPx(10), BasisPx(10)},
		Rows:    []Basis{BasisPx(10)},
	}, []GridItem{
		{Placement: Placement{Column: 0, ColumnSpan: 2, Row: 0}},
	})
	if out[0].Width != 20 {
		t.Fatalf("Width = %d, want 20 (spans two 10-wide tracks)", out[0].Width)
	}
}

func TestGridItemRowSpanUnionsTracks(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 30}
	out := Grid(area, GridContainer{
		Columns: []Basis{BasisPx(10)},
		Rows:    []Basis{BasisPx(10), BasisPx(10), BasisPx(10)},
	}, []GridItem{
		{Placement: Placement{Column: 0, Row: 0, RowSpan: 3}},
	})
	if out[0].Height != 30 {
		t.Fatalf("Height = %d, want 30 (spans three 10-tall tracks)", out[0].Height)
	}
}

func TestGridOutOfRangePlacementReturnsZeroRect(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 10}
	out := Grid(area, GridContainer{
		Columns: []Basis{BasisPx(10)},
		Rows:    []Basis{BasisPx(10)},
	}, []GridItem{
		{Placement: Placement{Column: 5, Row: 0}},
	})
	if out[0] != (geom.Rect{}) {
		t.Fatalf("out[0] = %+v, want zero Rect for an out-of-range column", out[0])
	}
}

func TestGridSpanClampedToRemainingTracks(t *testing.T) {
	area := geom.Rect{Width: 30, Height: 10}
	out := Grid(area, GridContainer{
		Columns: []Basis{BasisPx(10), BasisPx(10), BasisPx(10)},
		Rows:    []Basis{BasisPx(10)},
	}, []GridItem{
		{Placement: Placement{Column: 1, ColumnSpan: 10, Row: 0}},
	})
	if out[0].Width != 20 {
		t.Fatalf("Width = %d, want 20 (span clamped to the 2 remaining tracks from column 1)", out[0].Width)
	}
}

func TestGridResultClampedWithinArea(t *testing.T) {
	area := geom.Rect{X: 2, Y: 2, Width: 10, Height: 10}
	out := Grid(area, GridContainer{
		Columns: []Basis{BasisPx(100)},
		Rows:    []Basis{BasisPx(100)},
	}, []GridItem{{Placement: Placement{Column: 0, Row: 0}}})
	if out[0].Right() > area.Right() || out[0].Bottom() > area.Bottom() {
		t.Fatalf("result %+v escapes area %+v", out[0], area)
	}
}
