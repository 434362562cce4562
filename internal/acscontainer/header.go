package acscontainer

import (
	"github.com/msagent-tools/acsingest/geometry"
	"github.com/msagent-tools/acsingest/internal/acsbyte"
	pkgerrors "github.com/pkg/errors"
)

// parseHeader decodes the Header block: fixed geometry/palette fields
// plus the two style-gated optional sub-sections (TTS, balloon).
func parseHeader(r *acsbyte.Reader) (ContainerInfo, Palette, uint8, error) {
	var info ContainerInfo
	var palette Palette

	if err := r.Skip(2 + 2); err != nil { // minor + major version
		return info, palette, 0, pkgerrors.Wrap(err, "header: version")
	}
	if err := r.Skip(4 + 4); err != nil { // names-table offset + size
		return info, palette, 0, pkgerrors.Wrap(err, "header: names table")
	}
	if err := r.Skip(16); err != nil { // GUID
		return info, palette, 0, pkgerrors.Wrap(err, "header: guid")
	}

	width, err := r.U16()
	if err != nil {
		return info, palette, 0, pkgerrors.Wrap(err, "header: canvas width")
	}
	height, err := r.U16()
	if err != nil {
		return info, palette, 0, pkgerrors.Wrap(err, "header: canvas height")
	}
	transparencyIndex, err := r.U8()
	if err != nil {
		return info, palette, 0, pkgerrors.Wrap(err, "header: transparency index")
	}
	styleFlags, err := r.U32()
	if err != nil {
		return info, palette, 0, pkgerrors.Wrap(err, "header: style flags")
	}
	if err := r.Skip(4); err != nil { // reserved
		return info, palette, 0, pkgerrors.Wrap(err, "header: reserved")
	}

	info.StyleFlags = styleFlags
	info.CanvasSize = geometry.IntSize{Width: int(width), Height: int(height)}
	info.TransparencyIndex = transparencyIndex

	if styleFlags&styleHasTTS != 0 {
		info.HasTTS = true
		if err := parseTTSSection(r); err != nil {
			return info, palette, 0, pkgerrors.Wrap(err, "header: tts section")
		}
	}
	if styleFlags&styleHasBalloon != 0 {
		info.HasBalloon = true
		if err := parseBalloonSection(r); err != nil {
			return info, palette, 0, pkgerrors.Wrap(err, "header: balloon section")
		}
	}

	paletteCount, err := r.U32()
	if err != nil {
		return info, palette, 0, pkgerrors.Wrap(err, "header: palette count")
	}
	n := int(paletteCount)
	if n > 256 {
		n = 256
	}
	for i := 0; i < n; i++ {
		v, err := r.U32()
		if err != nil {
			return info, palette, 0, pkgerrors.Wrapf(err, "header: palette entry %d", i)
		}
		palette[i] = v
	}
	// Any declared entries beyond 256 are consumed but discarded.
	for i := 256; i < int(paletteCount); i++ {
		if _, err := r.U32(); err != nil {
			return info, palette, 0, pkgerrors.Wrapf(err, "header: excess palette entry %d", i)
		}
	}
	info.PaletteCount = int(paletteCount)

	hasIcon, err := r.U8()
	if err != nil {
		return info, palette, 0, pkgerrors.Wrap(err, "header: has-icon flag")
	}
	if hasIcon != 0 {
		info.HasIcon = true
		maskSize, err := r.U32()
		if err != nil {
			return info, palette, 0, pkgerrors.Wrap(err, "header: icon mask size")
		}
		if err := r.Skip(int(maskSize)); err != nil {
			return info, palette, 0, pkgerrors.Wrap(err, "header: icon mask data")
		}
		colorSize, err := r.U32()
		if err != nil {
			return info, palette, 0, pkgerrors.Wrap(err, "header: icon color size")
		}
		if err := r.Skip(int(colorSize)); err != nil {
			return info, palette, 0, pkgerrors.Wrap(err, "header: icon color data")
		}
	}

	return info, palette, transparencyIndex, nil
}

// parseTTSSection skips the optional text-to-speech sub-section gated
// by style bit 0x00000020.
func parseTTSSection(r *acsbyte.Reader) error {
	if err := r.Skip(16 + 16 + 4 + 2); err != nil {
		return err
	}
	hasLanguage, err := r.U8()
	if err != nil {
		return err
	}
	if hasLanguage == 0 {
		return nil
	}
	if err := r.Skip(2); err != nil {
		return err
	}
	if err := skipLengthPrefixedUTF16(r); err != nil {
		return err
	}
	if err := r.Skip(2 + 2); err != nil {
		return err
	}
	return skipLengthPrefixedUTF16(r)
}

// parseBalloonSection skips the optional speech-balloon sub-section
// gated by style bit 0x00000200.
func parseBalloonSection(r *acsbyte.Reader) error {
	if err := r.Skip(1 + 1 + 4 + 4 + 4); err != nil {
		return err
	}
	if err := skipLengthPrefixedUTF16(r); err != nil {
		return err
	}
	return r.Skip(4 + 2 + 2 + 2)
}

// skipLengthPrefixedUTF16 reads a u32 code-unit length L and skips the
// null-terminated UTF-16 string it prefixes: (L+1)*2 bytes.
func skipLengthPrefixedUTF16(r *acsbyte.Reader) error {
	length, err := r.U32()
	if err != nil {
		return err
	}
	return r.Skip(int(length+1) * 2)
}
