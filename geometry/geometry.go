// Package geometry supplies the small integer 2D helpers the ingest
// pipeline shares across parsing, compositing, and atlas layout. It
// builds directly on the standard image package rather than inventing
// parallel point/rectangle types, the way the teacher's animation
// package expresses frame placement with image.Point/image.Rectangle.
package geometry

import "image"

// IntSize is a width/height pair. Both fields may be zero only where a
// caller explicitly documents that; negative values are never valid.
type IntSize struct {
	Width  int
	Height int
}

// Rect builds the image.Rectangle with top-left (x, y) and the given
// size, the idiomatic stand-in for the spec's IntRect.
func Rect(x, y int, size IntSize) image.Rectangle {
	return image.Rect(x, y, x+size.Width, y+size.Height)
}
