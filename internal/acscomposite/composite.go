// Package acscomposite paints the layers of a single parsed frame onto
// an RGBA canvas using the container's palette and transparency index.
// It is a pure function of its inputs, grounded on the teacher's
// animation package canvas compositing (compositeFrame in
// animation/animation.go), here simplified from incremental
// alpha-blend-with-disposal to a single non-incremental full-canvas
// paint: ACS frames carry a complete layer list per frame rather than
// a delta against the previous frame, so there is no disposal method
// and no blend mode to honor.
package acscomposite

import (
	"image"
	"image/color"
	"sync"

	"github.com/msagent-tools/acsingest/geometry"
	"github.com/msagent-tools/acsingest/internal/acscontainer"
)

// Paint renders frame onto a freshly allocated, zero-initialized RGBA
// canvas of the given size (including alpha: fully transparent where
// no layer ever writes a pixel). Layers are painted in list order;
// later layers may overwrite earlier ones except where a source pixel
// equals transparencyIndex, in which case the destination is left
// untouched so earlier layers show through.
func Paint(frame acscontainer.ParsedFrame, images []acscontainer.IndexedImage, palette acscontainer.Palette, transparencyIndex uint8, canvasSize geometry.IntSize) *image.RGBA {
	canvas := image.NewRGBA(geometry.Rect(0, 0, canvasSize))
	paintLayers(canvas, frame, images, palette, transparencyIndex)
	return canvas
}

// canvasBufPool recycles RGBA pixel buffers across the frames of one
// animation (every frame in a container shares its canvas size, per
// the frame cell size invariant), and across the containers a batch
// run processes one after another on the same worker goroutine. Unlike
// a general-purpose size-classed allocator this pool has exactly one
// shape of caller: a single pixel buffer checked out, reused in place
// for many same-size paints, and handed back once. A plain sync.Pool
// over *[]byte with a capacity check on Get already covers that; there
// is no second size class to bucket against.
var canvasBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0)
		return &b
	},
}

// NewPooledCanvas allocates an RGBA canvas whose pixel buffer comes
// from canvasBufPool instead of a fresh make([]byte, ...) per call. A
// coordinator compositing many frames in a row (the ingest pipeline's
// per-frame loop, or a batch run across several containers) should
// pair this with ReleaseCanvas once the canvas has been blitted into
// its destination atlas, so the backing buffer is recycled rather than
// left for the garbage collector.
func NewPooledCanvas(size geometry.IntSize) *image.RGBA {
	n := size.Width * size.Height * 4
	bp := canvasBufPool.Get().(*[]byte)
	pix := *bp
	if cap(pix) < n {
		pix = make([]byte, n)
	} else {
		pix = pix[:n]
		for i := range pix {
			pix[i] = 0
		}
	}
	return &image.RGBA{
		Pix:    pix,
		Stride: size.Width * 4,
		Rect:   geometry.Rect(0, 0, size),
	}
}

// ReleaseCanvas returns a canvas obtained from NewPooledCanvas to
// canvasBufPool. The canvas must not be used again afterward.
func ReleaseCanvas(canvas *image.RGBA) {
	pix := canvas.Pix
	canvasBufPool.Put(&pix)
}

// PaintInto paints frame into an existing canvas in place, clearing it
// to fully transparent first. Intended for use with NewPooledCanvas in
// a hot loop where repeated allocation would otherwise dominate.
func PaintInto(canvas *image.RGBA, frame acscontainer.ParsedFrame, images []acscontainer.IndexedImage, palette acscontainer.Palette, transparencyIndex uint8) {
	for i := range canvas.Pix {
		canvas.Pix[i] = 0
	}
	paintLayers(canvas, frame, images, palette, transparencyIndex)
}

func paintLayers(canvas *image.RGBA, frame acscontainer.ParsedFrame, images []acscontainer.IndexedImage, palette acscontainer.Palette, transparencyIndex uint8) {
	for _, layer := range frame.Layers {
		if layer.ImageIndex < 0 || layer.ImageIndex >= len(images) {
			continue
		}
		paintLayer(canvas, images[layer.ImageIndex], palette, transparencyIndex, layer.OffsetX, layer.OffsetY)
	}
}

func paintLayer(canvas *image.RGBA, img acscontainer.IndexedImage, palette acscontainer.Palette, transparencyIndex uint8, offsetX, offsetY int) {
	bounds := canvas.Bounds()

	for sy := 0; sy < img.Height; sy++ {
		dy := offsetY + sy
		if dy < bounds.Min.Y || dy >= bounds.Max.Y {
			continue
		}
		// Source rows are stored bottom-up: row 0 of the payload is the
		// visually bottom row, so sy from the top maps to this index.
		sourceRowBase := (img.Height - 1 - sy) * img.Stride

		for sx := 0; sx < img.Width; sx++ {
			dx := offsetX + sx
			if dx < bounds.Min.X || dx >= bounds.Max.X {
				continue
			}
			p := img.Payload[sourceRowBase+sx]
			if p == transparencyIndex {
				continue
			}
			r, g, b := palette.RGB(p)
			canvas.SetRGBA(dx, dy, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
}
