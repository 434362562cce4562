package acscontainer

import (
	"github.com/msagent-tools/acsingest/internal/acsbyte"
	pkgerrors "github.com/pkg/errors"
)

// parseAnimation decodes a single animation record: its name, an
// ignored return-value descriptor, and an ordered list of frames, each
// with an image-layer list, a duration, and branch/overlay records
// (branches skipped outright, overlays appended as extra layers).
func parseAnimation(r *acsbyte.Reader) (ParsedAnimation, error) {
	nameLen, err := r.U32()
	if err != nil {
		return ParsedAnimation{}, pkgerrors.Wrap(err, "animation: name length")
	}
	name, err := r.UTF16String(int(nameLen))
	if err != nil {
		return ParsedAnimation{}, pkgerrors.Wrap(err, "animation: name")
	}
	if err := r.Skip(2); err != nil { // name terminator
		return ParsedAnimation{}, pkgerrors.Wrap(err, "animation: name terminator")
	}

	if err := r.Skip(1); err != nil { // return type, ignored
		return ParsedAnimation{}, pkgerrors.Wrap(err, "animation: return type")
	}
	returnNameLen, err := r.U32()
	if err != nil {
		return ParsedAnimation{}, pkgerrors.Wrap(err, "animation: return name length")
	}
	if returnNameLen != 0 {
		if err := r.Skip(int(returnNameLen)*2 + 2); err != nil {
			return ParsedAnimation{}, pkgerrors.Wrap(err, "animation: return name")
		}
	}

	frameCount, err := r.U16()
	if err != nil {
		return ParsedAnimation{}, pkgerrors.Wrap(err, "animation: frame count")
	}

	frames := make([]ParsedFrame, 0, frameCount)
	for f := uint16(0); f < frameCount; f++ {
		frame, err := parseFrame(r)
		if err != nil {
			return ParsedAnimation{}, pkgerrors.Wrapf(err, "animation: frame %d", f)
		}
		frames = append(frames, frame)
	}

	return ParsedAnimation{Name: name, Frames: frames}, nil
}

func parseFrame(r *acsbyte.Reader) (ParsedFrame, error) {
	imageCount, err := r.U16()
	if err != nil {
		return ParsedFrame{}, pkgerrors.Wrap(err, "image count")
	}
	layers := make([]FrameLayer, 0, imageCount)
	for i := uint16(0); i < imageCount; i++ {
		imageIndex, err := r.U32()
		if err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "layer %d: image index", i)
		}
		xOffset, err := r.I16()
		if err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "layer %d: x offset", i)
		}
		yOffset, err := r.I16()
		if err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "layer %d: y offset", i)
		}
		layers = append(layers, FrameLayer{
			ImageIndex: int(imageIndex),
			OffsetX:    int(xOffset),
			OffsetY:    int(yOffset),
		})
	}

	if err := r.Skip(2); err != nil { // sound id, ignored
		return ParsedFrame{}, pkgerrors.Wrap(err, "sound id")
	}
	duration, err := r.U16()
	if err != nil {
		return ParsedFrame{}, pkgerrors.Wrap(err, "duration")
	}
	if err := r.Skip(2); err != nil { // exit frame, ignored
		return ParsedFrame{}, pkgerrors.Wrap(err, "exit frame")
	}

	branchCount, err := r.U8()
	if err != nil {
		return ParsedFrame{}, pkgerrors.Wrap(err, "branch count")
	}
	if err := r.Skip(int(branchCount) * 4); err != nil {
		return ParsedFrame{}, pkgerrors.Wrap(err, "branch records")
	}

	overlayCount, err := r.U8()
	if err != nil {
		return ParsedFrame{}, pkgerrors.Wrap(err, "overlay count")
	}
	for i := uint8(0); i < overlayCount; i++ {
		if err := r.Skip(1 + 1); err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "overlay %d: leading fields", i)
		}
		imageIndex, err := r.U16()
		if err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "overlay %d: image index", i)
		}
		if err := r.Skip(1 + 1); err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "overlay %d: mid fields", i)
		}
		x, err := r.I16()
		if err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "overlay %d: x", i)
		}
		y, err := r.I16()
		if err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "overlay %d: y", i)
		}
		if err := r.Skip(2 + 2); err != nil {
			return ParsedFrame{}, pkgerrors.Wrapf(err, "overlay %d: trailing fields", i)
		}
		layers = append(layers, FrameLayer{
			ImageIndex: int(imageIndex),
			OffsetX:    int(x),
			OffsetY:    int(y),
		})
	}

	return ParsedFrame{Layers: layers, DurationTicks: duration}, nil
}
