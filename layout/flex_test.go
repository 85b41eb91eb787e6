package layout

import (
	"testing"

	"tuicore/geom"
)

func TestFlexFixedPxBasis(t *testing.T) {
	area := geom.Rect{X: 0, Y: 0, Width: 20, Height: 5}
	out := Flex(area, Container{Direction: Row}, []Item{
		{Basis: BasisPx(5)},
		{Basis: BasisPx(5)},
	})
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Width != 5 || out[1].Width != 5 {
		t.Fatalf("widths = %d/%d, want 5/5", out[0].Width, out[1].Width)
	}
	if out[0].X != 0 || out[1].X != 5 {
		t.Fatalf("x offsets = %d/%d, want 0/5", out[0].X, out[1].X)
	}
}

func TestFlexPxBasisClampedToAvailable(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 2}
	out := Flex(area, Container{Direction: Row}, []Item{{Basis: BasisPx(1000)}})
	if out[0].Width != 10 {
		t.Fatalf("Width = %d, want clamped to 10", out[0].Width)
	}
}

func TestFlexPercentBasis(t *testing.T) {
	area := geom.Rect{Width: 20, Height: 2}
	out := Flex(area, Container{Direction: Row}, []Item{
		{Basis: BasisPercent(50)},
		{Basis: BasisPercent(50)},
	})
	if out[0].Width != 10 || out[1].Width != 10 {
		t.Fatalf("widths = %d/%d, want 10/10", out[0].Width, out[1].Width)
	}
}

func TestFlexFractionBasisSplitsRemainingSpace(t *testing.T) {
	area := geom.Rect{Width: 30, Height: 2}
	out := Flex(area, Container{Direction: Row}, []Item{
		{Basis: BasisFraction(1)},
		{Basis: BasisFraction(2)},
	})
	if out[0].Width != 10 || out[1].Width != 20 {
		t.Fatalf("widths = %d/%d, want 10/20 (1:2 split)", out[0].Width, out[1].Width)
	}
}

func TestFlexGrowDistributesLeftoverSpace(t *testing.T) {
	area := geom.Rect{Width: 20, Height: 2}
	out := Flex(area, Container{Direction: Row}, []Item{
		{Basis: BasisPx(5), Grow: 1},
		{Basis: BasisPx(5), Grow: 1},
	})
	// 10 leftover split evenly between the two growers.
	if out[0].Width != 10 || out[1].Width != 10 {
		t.Fatalf("widths = %d/%d, want 10/10", out[0].Width, out[1].Width)
	}
}

func TestFlexShrinkReducesOverflowingItems(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 2}
	out := Flex(area, Container{Direction: Row}, []Item{
		{Basis: BasisPx(8), Shrink: 1},
		{Basis: BasisPx(8), Shrink: 1},
	})
	total := out[0].Width + out[1].Width
	if total > 10 {
		t.Fatalf("total width = %d, want shrunk to fit within 10", total)
	}
}

func TestFlexGapSeparatesItems(t *testing.T) {
	area := geom.Rect{Width: 12, Height: 2}
	out := Flex(area, Container{Direction: Row, Gap: 2}, []Item{
		{Basis: BasisPx(4)},
		{Basis: BasisPx(4)},
	})
	if out[1].X != out[0].X+out[0].Width+2 {
		t.Fatalf("second item X = %d, want %d (first item end + gap)", out[1].X, out[0].X+out[0].Width+2)
	}
}

func TestFlexMainEndAlignment(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 2}
	out := Flex(area, Container{Direction: Row, AlignMain: MainEnd}, []Item{{Basis: BasisPx(4)}})
	if out[0].X != 6 {
		t.Fatalf("X = %d, want 6 (pushed to the trailing edge)", out[0].X)
	}
}

func TestFlexMainCenterAlignment(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 2}
	out := Flex(area, Container{Direction: Row, AlignMain: MainCenter}, []Item{{Basis: BasisPx(4)}})
	if out[0].X != 3 {
		t.Fatalf("X = %d, want 3 (centered in 10 wide area)", out[0].X)
	}
}

func TestFlexMainSpaceBetween(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 2}
	out := Flex(area, Container{Direction: Row, AlignMain: MainSpaceBetween}, []Item{
		{Basis: BasisPx(2)},
		{Basis: BasisPx(2)},
	})
	if out[0].X != 0 {
		t.Fatalf("first item X = %d, want 0", out[0].X)
	}
	if out[1].X+out[1].Width != 10 {
		t.Fatalf("last item's trailing edge = %d, want flush with area width 10", out[1].X+out[1].Width)
	}
}

func TestFlexCrossStretchFillsContainer(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 6}
	out := Flex(area, Container{Direction: Row, AlignCross: CrossStretch}, []Item{{Basis: BasisPx(4)}})
	if out[0].Height != 6 {
		t.Fatalf("Height = %d, want 6 (stretched to cross extent)", out[0].Height)
	}
}

func TestFlexItemCrossBasisOverridesDefault(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 6}
	cb := BasisPx(2)
	out := Flex(area, Container{Direction: Row}, []Item{{Basis: BasisPx(4), CrossBasis: &cb}})
	if out[0].Height != 2 {
		t.Fatalf("Height = %d, want 2 (item's own CrossBasis)", out[0].Height)
	}
}

func TestFlexItemAlignSelfOverridesContainer(t *testing.T) {
	area := geom.Rect{Width: 10, Height: 6}
	cb := BasisPx(2)
	selfAlign := CrossEnd
	out := Flex(area, Container{Direction: Row, AlignCross: CrossStart}, []Item{
		{Basis: BasisPx(4), CrossBasis: &cb, AlignSelf: &selfAlign},
	})
	if out[0].Y != 4 {
		t.Fatalf("Y = %d, want 4 (pushed to cross-axis end, 6-2)", out[0].Y)
	}
}

func TestFlexColumnDirectionUsesVerticalMainAxis(t *testing.T) {
	area := geom.Rect{Width: 6, Height: 20}
	out := Flex(area, Container{Direction: Column}, []Item{
		{Basis: BasisPx(5)},
		{Basis: BasisPx(5)},
	})
	if out[0].Height != 5 || out[1].Height != 5 {
		t.Fatalf("heights = %d/%d, want 5/5", out[0].Height, out[1].Height)
	}
	if out[0].Y != 0 || out[1].Y != 5 {
		t.Fatalf("y offsets = %d/%d, want 0/5", out[0].Y, out[1].Y)
	}
}

func TestFlexEmptyItemsReturnsEmptySlice(t *testing.T) {
	out := Flex(geom.Rect{Width: 10, Height: 10}, Container{}, nil)
	if len(out) != 0 {
		t.Fatalf("len(out) = %d, want 0", len(out))
	}
}

func TestFlexResultsClampedWithinArea(t *testing.T) {
	area := geom.Rect{X: 5, Y: 5, Width: 4, Height: 4}
	out := Flex(area, Container{Direction: Row}, []Item{{Basis: BasisPx(100), Grow: 1}})
	if out[0].Right() > area.Right() || out[0].Bottom() > area.Bottom() {
		t.Fatalf("result %+v escapes area %+v", out[0], area)
	}
}
