package acscontainer

import "github.com/msagent-tools/acsingest/geometry"

// Magic is the mandatory signature of an Agent 2.0 container.
const Magic = 0xABCDABC3

// Style flag bits gating optional header sub-sections.
const (
	styleHasTTS     = 0x00000020
	styleHasBalloon = 0x00000200
)

// Palette holds the fixed 256-entry color table. Each entry is the raw
// on-disk 32-bit word; only the low 24 bits (0x00RRGGBB) are
// meaningful, the top byte is discarded on display.
type Palette [256]uint32

// RGB extracts the displayed color channels for palette index idx.
func (p Palette) RGB(idx uint8) (r, g, b uint8) {
	v := p[idx]
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// IndexedImage is a palette-indexed bitmap stored bottom-up (DIB
// convention): row 0 of Payload is the visually bottom row.
type IndexedImage struct {
	Width   int
	Height  int
	Stride  int // row stride, rounded up to a multiple of 4
	Payload []byte
}

// FrameLayer references an IndexedImage by index plus a signed offset
// relative to the frame canvas's top-left origin.
type FrameLayer struct {
	ImageIndex int
	OffsetX    int
	OffsetY    int
}

// ParsedFrame is an ordered list of layers (painted back-to-front,
// overlays appended at the end) plus a duration in hundredths of a
// second; zero means "unknown, use the ingest fallback".
type ParsedFrame struct {
	Layers        []FrameLayer
	DurationTicks uint16
}

// ParsedAnimation is a named, ordered sequence of frames.
type ParsedAnimation struct {
	Name   string
	Frames []ParsedFrame
}

// GestureRef is a raw parsed entry from the GestureRefs block: a
// declared name plus the byte range of the referenced animation
// record. Not part of the public manifest; exposed as
// ParseResult.Gestures, which the ingest coordinator does not read.
type GestureRef struct {
	Name   string
	Offset uint32
	Size   uint32
}

// ContainerInfo surfaces header-level metadata that the distilled
// manifest format does not carry, useful for the `info` CLI
// subcommand and ingest diagnostics.
type ContainerInfo struct {
	StyleFlags        uint32
	HasTTS            bool
	HasBalloon        bool
	HasIcon           bool
	PaletteCount      int
	CanvasSize        geometry.IntSize
	TransparencyIndex uint8
}

// ParseResult is everything the container parser extracts from a
// single ACS blob.
type ParseResult struct {
	Info              ContainerInfo
	Palette           Palette
	TransparencyIndex uint8
	CanvasSize        geometry.IntSize
	Images            []IndexedImage
	Animations        []ParsedAnimation
	Gestures          []GestureRef
}
