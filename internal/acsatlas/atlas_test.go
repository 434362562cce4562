package acsatlas

import (
	"testing"

	"github.com/msagent-tools/acsingest/acserror"
	"github.com/msagent-tools/acsingest/geometry"
)

func TestNewSquareGrid(t *testing.T) {
	l, err := New(9, geometry.IntSize{Width: 10, Height: 20}, 16384)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if l.Columns != 3 || l.Rows != 3 {
		t.Fatalf("columns/rows = %d/%d, want 3/3", l.Columns, l.Rows)
	}
	if l.AtlasWidth != 30 || l.AtlasHeight != 60 {
		t.Fatalf("atlas size = %dx%d, want 30x60", l.AtlasWidth, l.AtlasHeight)
	}
}

func TestNewClampsColumnsToMaxDimension(t *testing.T) {
	// preferredColumns = ceil(sqrt(100)) = 10, but maxDimension/width = 100/30 = 3.
	l, err := New(100, geometry.IntSize{Width: 30, Height: 2}, 100)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if l.Columns != 3 {
		t.Fatalf("columns = %d, want 3 (clamped by maxDimension)", l.Columns)
	}
	wantRows := 34 // ceil(100/3)
	if l.Rows != wantRows {
		t.Fatalf("rows = %d, want %d", l.Rows, wantRows)
	}
}

func TestNewFailsWhenAtlasExceedsMaxDimension(t *testing.T) {
	_, err := New(4, geometry.IntSize{Width: 10000, Height: 10000}, 16384)
	if err == nil {
		t.Fatal("expected AtlasTooLarge error")
	}
	if !acserror.Is(err, acserror.InvalidInput) {
		t.Fatalf("error kind = %v, want InvalidInput", err)
	}
}

func TestPositionOf(t *testing.T) {
	l, err := New(5, geometry.IntSize{Width: 10, Height: 20}, 16384)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// preferredColumns = ceil(sqrt(5)) = 3.
	if l.Columns != 3 {
		t.Fatalf("columns = %d, want 3", l.Columns)
	}
	cases := []struct {
		k          int
		wantX, wantY int
	}{
		{0, 0, 0},
		{1, 10, 0},
		{2, 20, 0},
		{3, 0, 20},
		{4, 10, 20},
	}
	for _, c := range cases {
		x, y := l.PositionOf(c.k)
		if x != c.wantX || y != c.wantY {
			t.Errorf("PositionOf(%d) = (%d,%d), want (%d,%d)", c.k, x, y, c.wantX, c.wantY)
		}
	}
}
