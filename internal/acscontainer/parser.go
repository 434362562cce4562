// Package acscontainer parses a Microsoft Agent 2.0 (ACS) binary
// container: the four-block table, the header, the gesture and image
// reference tables, and the per-image and per-animation records they
// point to.
package acscontainer

import (
	"github.com/msagent-tools/acsingest/acserror"
	"github.com/msagent-tools/acsingest/internal/acsbyte"
	pkgerrors "github.com/pkg/errors"
)

// Parse decodes a complete ACS blob into a ParseResult.
func Parse(blob []byte) (*ParseResult, error) {
	r := acsbyte.NewReader(blob)

	magic, err := r.U32()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "container: magic")
	}
	if magic != Magic {
		return nil, acserror.UnsupportedSignature(magic)
	}

	var blocks [blockCount]blockDescriptor
	for i := range blocks {
		offset, err := r.U32()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "container: block %d offset", i)
		}
		size, err := r.U32()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "container: block %d size", i)
		}
		blocks[i] = blockDescriptor{Offset: offset, Size: size}
	}

	headerReader, err := r.SubReader(int(blocks[blockHeader].Offset), int(blocks[blockHeader].Size))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "container: header block range")
	}
	info, palette, transparencyIndex, err := parseHeader(headerReader)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "container: header block")
	}

	gestureReader, err := r.SubReader(int(blocks[blockGestureRefs].Offset), int(blocks[blockGestureRefs].Size))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "container: gesture refs range")
	}
	gestureRefs, err := parseGestureRefs(gestureReader)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "container: gesture refs block")
	}

	imageRefsReader, err := r.SubReader(int(blocks[blockImageRefs].Offset), int(blocks[blockImageRefs].Size))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "container: image refs range")
	}
	imageRefs, err := parseImageRefs(imageRefsReader)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "container: image refs block")
	}

	images := make([]IndexedImage, 0, len(imageRefs))
	for i, ref := range imageRefs {
		imgReader, err := r.SubReader(int(ref.Offset), int(ref.Size))
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "container: image %d range", i)
		}
		img, err := parseImage(imgReader)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "container: image %d", i)
		}
		images = append(images, img)
	}

	animations := make([]ParsedAnimation, 0, len(gestureRefs))
	for i, ref := range gestureRefs {
		animReader, err := r.SubReader(int(ref.Offset), int(ref.Size))
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "container: gesture %d range", i)
		}
		anim, err := parseAnimation(animReader)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "container: gesture %d", i)
		}
		// The explicit gesture ref name wins unless it is empty, in
		// which case the animation's own parsed name is used.
		if ref.Name != "" {
			anim.Name = ref.Name
		}
		animations = append(animations, anim)
	}

	return &ParseResult{
		Info:              info,
		Palette:           palette,
		TransparencyIndex: transparencyIndex,
		CanvasSize:        info.CanvasSize,
		Images:            images,
		Animations:        animations,
		Gestures:          gestureRefs,
	}, nil
}
