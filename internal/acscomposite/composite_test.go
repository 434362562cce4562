package acscomposite

import (
	"image/color"
	"testing"

	"github.com/msagent-tools/acsingest/geometry"
	"github.com/msagent-tools/acsingest/internal/acscontainer"
)

func testPalette() acscontainer.Palette {
	var p acscontainer.Palette
	p[1] = 0x00FF0000 // red
	p[2] = 0x0000FF00 // green
	return p
}

func TestPaintBasicLayer(t *testing.T) {
	// 2x2 image, bottom-up payload: row0 (bottom) = [1,1], row1 (top) = [2,2].
	img := acscontainer.IndexedImage{
		Width:  2,
		Height: 2,
		Stride: 2,
		Payload: []byte{
			1, 1, // payload row 0 -> visual bottom row
			2, 2, // payload row 1 -> visual top row
		},
	}
	frame := acscontainer.ParsedFrame{
		Layers: []acscontainer.FrameLayer{{ImageIndex: 0, OffsetX: 0, OffsetY: 0}},
	}

	canvas := Paint(frame, []acscontainer.IndexedImage{img}, testPalette(), 0, geometry.IntSize{Width: 2, Height: 2})

	top := canvas.RGBAAt(0, 0)
	if top != (color.RGBA{R: 0, G: 0xFF, B: 0, A: 0xFF}) {
		t.Fatalf("top-left = %+v, want green (bottom-up flip)", top)
	}
	bottom := canvas.RGBAAt(0, 1)
	if bottom != (color.RGBA{R: 0xFF, G: 0, B: 0, A: 0xFF}) {
		t.Fatalf("bottom-left = %+v, want red", bottom)
	}
}

func TestPaintTransparencySkipsThrough(t *testing.T) {
	background := acscontainer.IndexedImage{
		Width:   1,
		Height:  1,
		Stride:  1,
		Payload: []byte{1}, // red
	}
	foreground := acscontainer.IndexedImage{
		Width:   1,
		Height:  1,
		Stride:  1,
		Payload: []byte{0}, // transparency index
	}
	frame := acscontainer.ParsedFrame{
		Layers: []acscontainer.FrameLayer{
			{ImageIndex: 0, OffsetX: 0, OffsetY: 0},
			{ImageIndex: 1, OffsetX: 0, OffsetY: 0},
		},
	}

	canvas := Paint(frame, []acscontainer.IndexedImage{background, foreground}, testPalette(), 0, geometry.IntSize{Width: 1, Height: 1})

	got := canvas.RGBAAt(0, 0)
	if got != (color.RGBA{R: 0xFF, G: 0, B: 0, A: 0xFF}) {
		t.Fatalf("pixel = %+v, want red to show through the transparent overlay", got)
	}
}

func TestPaintOutOfRangeLayerIndexIsSkipped(t *testing.T) {
	frame := acscontainer.ParsedFrame{
		Layers: []acscontainer.FrameLayer{{ImageIndex: 5, OffsetX: 0, OffsetY: 0}},
	}

	canvas := Paint(frame, nil, testPalette(), 0, geometry.IntSize{Width: 1, Height: 1})

	got := canvas.RGBAAt(0, 0)
	if got != (color.RGBA{}) {
		t.Fatalf("pixel = %+v, want zero value (out-of-range layer skipped)", got)
	}
}

func TestPaintIntoReusesPooledCanvasAcrossFrames(t *testing.T) {
	redFrame := acscontainer.ParsedFrame{
		Layers: []acscontainer.FrameLayer{{ImageIndex: 0, OffsetX: 0, OffsetY: 0}},
	}
	greenFrame := acscontainer.ParsedFrame{
		Layers: []acscontainer.FrameLayer{{ImageIndex: 1, OffsetX: 0, OffsetY: 0}},
	}
	red := acscontainer.IndexedImage{Width: 1, Height: 1, Stride: 1, Payload: []byte{1}}
	green := acscontainer.IndexedImage{Width: 1, Height: 1, Stride: 1, Payload: []byte{2}}
	images := []acscontainer.IndexedImage{red, green}

	canvas := NewPooledCanvas(geometry.IntSize{Width: 1, Height: 1})
	defer ReleaseCanvas(canvas)

	PaintInto(canvas, redFrame, images, testPalette(), 0)
	if got := canvas.RGBAAt(0, 0); got != (color.RGBA{R: 0xFF, G: 0, B: 0, A: 0xFF}) {
		t.Fatalf("after red frame: pixel = %+v, want red", got)
	}

	// A second frame painted into the same canvas must not show any
	// trace of the first: PaintInto clears before painting.
	PaintInto(canvas, greenFrame, images, testPalette(), 0)
	if got := canvas.RGBAAt(0, 0); got != (color.RGBA{R: 0, G: 0xFF, B: 0, A: 0xFF}) {
		t.Fatalf("after green frame: pixel = %+v, want green with no red residue", got)
	}
}

func TestPaintClipsOffCanvasOffsets(t *testing.T) {
	img := acscontainer.IndexedImage{
		Width:   2,
		Height:  2,
		Stride:  2,
		Payload: []byte{1, 1, 1, 1},
	}
	frame := acscontainer.ParsedFrame{
		Layers: []acscontainer.FrameLayer{{ImageIndex: 0, OffsetX: -1, OffsetY: -1}},
	}

	// Should not panic despite the layer extending off the top and left edges.
	canvas := Paint(frame, []acscontainer.IndexedImage{img}, testPalette(), 0, geometry.IntSize{Width: 2, Height: 2})

	got := canvas.RGBAAt(0, 0)
	if got != (color.RGBA{R: 0xFF, G: 0, B: 0, A: 0xFF}) {
		t.Fatalf("pixel (0,0) = %+v, want red from the one in-bounds source pixel", got)
	}
}
