// Package acsatlas computes the grid layout for packing a fixed number
// of equally sized frames into a single texture atlas, bounded by a
// maximum texture dimension. There is no corpus precedent for this
// computation (packing is absent from every example repo); it is
// plain integer/ceil arithmetic over math.Sqrt and math.Ceil, so it
// stays on the standard library rather than reaching for a dependency
// that does not exist in the ecosystem surveyed here.
package acsatlas

import (
	"math"

	"github.com/msagent-tools/acsingest/acserror"
	"github.com/msagent-tools/acsingest/geometry"
)

// Layout describes where each frame lands inside the atlas canvas.
type Layout struct {
	Columns     int
	Rows        int
	FrameSize   geometry.IntSize
	AtlasWidth  int
	AtlasHeight int
}

// New computes the grid layout for totalFrames frames of frameSize,
// bounded by maxDimension on each axis. It fails with AtlasTooLarge if
// the resulting atlas would exceed maxDimension in either dimension.
func New(totalFrames int, frameSize geometry.IntSize, maxDimension int) (Layout, error) {
	maxColumns := maxDimension / frameSize.Width
	if maxColumns < 1 {
		maxColumns = 1
	}
	preferredColumns := int(math.Ceil(math.Sqrt(float64(totalFrames))))
	if preferredColumns < 1 {
		preferredColumns = 1
	}

	columns := preferredColumns
	if maxColumns < columns {
		columns = maxColumns
	}
	rows := int(math.Ceil(float64(totalFrames) / float64(columns)))

	atlasWidth := columns * frameSize.Width
	atlasHeight := rows * frameSize.Height
	if atlasWidth > maxDimension || atlasHeight > maxDimension {
		return Layout{}, acserror.AtlasTooLarge(atlasWidth, atlasHeight, maxDimension)
	}

	return Layout{
		Columns:     columns,
		Rows:        rows,
		FrameSize:   frameSize,
		AtlasWidth:  atlasWidth,
		AtlasHeight: atlasHeight,
	}, nil
}

// PositionOf returns the top-left pixel coordinate of frame k within
// the atlas.
func (l Layout) PositionOf(k int) (x, y int) {
	return (k % l.Columns) * l.FrameSize.Width, (k / l.Columns) * l.FrameSize.Height
}
