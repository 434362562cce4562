package acscontainer

import (
	"fmt"

	"github.com/msagent-tools/acsingest/acserror"
	"github.com/msagent-tools/acsingest/internal/acsbyte"
	"github.com/msagent-tools/acsingest/internal/acslzss"
	pkgerrors "github.com/pkg/errors"
)

// parseImage decodes a single image record: a 1-byte pad, width,
// height, a compressed flag, a byte count, and that many payload
// bytes, which are either copied verbatim or fed through the
// sub-byte LZSS decompressor.
func parseImage(r *acsbyte.Reader) (IndexedImage, error) {
	if err := r.Skip(1); err != nil {
		return IndexedImage{}, pkgerrors.Wrap(err, "image: leading pad")
	}
	width, err := r.U16()
	if err != nil {
		return IndexedImage{}, pkgerrors.Wrap(err, "image: width")
	}
	height, err := r.U16()
	if err != nil {
		return IndexedImage{}, pkgerrors.Wrap(err, "image: height")
	}
	if width == 0 || height == 0 {
		return IndexedImage{}, fmt.Errorf("image: invalid dimensions %dx%d", width, height)
	}
	compressed, err := r.U8()
	if err != nil {
		return IndexedImage{}, pkgerrors.Wrap(err, "image: compressed flag")
	}
	byteCount, err := r.U32()
	if err != nil {
		return IndexedImage{}, pkgerrors.Wrap(err, "image: byte count")
	}
	payload, err := r.Bytes(int(byteCount))
	if err != nil {
		return IndexedImage{}, pkgerrors.Wrap(err, "image: payload")
	}

	stride := ((int(width) + 3) / 4) * 4
	pixelCount := stride * int(height)

	var pixels []byte
	if compressed != 0 {
		out, ok := acslzss.Decode(payload, pixelCount)
		if !ok {
			return IndexedImage{}, acserror.ImageDecodeFailed(fmt.Sprintf("image: decompression failed (target %d bytes)", pixelCount))
		}
		pixels = out
	} else {
		if len(payload) < pixelCount {
			return IndexedImage{}, fmt.Errorf("image: raw payload too short: have %d, need %d", len(payload), pixelCount)
		}
		pixels = payload[:pixelCount]
	}

	return IndexedImage{
		Width:   int(width),
		Height:  int(height),
		Stride:  stride,
		Payload: pixels,
	}, nil
}
