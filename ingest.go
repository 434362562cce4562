// Package acsingest drives the full pipeline: parse an Agent 2.0
// container, composite every frame, pack the results into a single
// atlas image, and emit a portable manifest. It is the analogue of
// the teacher's cmd/gwebp driver code, promoted to a library package
// so the CLI, BatchIngest and this package's tests can call it directly.
package acsingest

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/msagent-tools/acsingest/acserror"
	"github.com/msagent-tools/acsingest/geometry"
	"github.com/msagent-tools/acsingest/internal/acsatlas"
	"github.com/msagent-tools/acsingest/internal/acscomposite"
	"github.com/msagent-tools/acsingest/internal/acscontainer"
	"github.com/msagent-tools/acsingest/internal/acslog"
	"github.com/msagent-tools/acsingest/manifest"
)

// defaultMaxAtlasDimension bounds the atlas on each axis, matching the
// spec's example maximum texture size.
const defaultMaxAtlasDimension = 16384

// defaultFallbackFrameDuration is used when a frame's durationTicks is
// zero ("unknown") and the caller supplies no override.
const defaultFallbackFrameDuration = 1.0 / 12.0

// Options configures a single Ingest call.
type Options struct {
	// CharacterName overrides the name derived from the input file.
	CharacterName string
	// FallbackFrameDuration is used for zero-duration frames, in
	// seconds. Zero selects defaultFallbackFrameDuration.
	FallbackFrameDuration float64
	// OutputDirectory is where atlas.png and manifest.json are written.
	OutputDirectory string
	// MaxAtlasDimension bounds the atlas on each axis. Zero selects
	// defaultMaxAtlasDimension.
	MaxAtlasDimension int
	// Logger receives one Info line per major step (parse complete,
	// atlas dimensions chosen, manifest written). Tolerated anomalies,
	// such as a skipped out-of-range layer index, are not logged. Nil
	// selects a no-op logger.
	Logger *zap.Logger
}

// Result is everything a successful Ingest call produced.
type Result struct {
	Manifest   *manifest.AssistantManifest
	AtlasPath  string
	ManifestPath string
}

// Ingest converts the ACS blob named by sourceName (used only to
// derive a default character name) into an atlas image and manifest
// written under opts.OutputDirectory.
func Ingest(blob []byte, sourceName string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = acslog.Nop()
	}

	if opts.OutputDirectory == "" {
		return nil, acserror.New(acserror.InvalidInput, "ingest: output directory is required")
	}
	if err := os.MkdirAll(opts.OutputDirectory, 0o755); err != nil {
		return nil, acserror.Wrap(acserror.IoFailed, err, "ingest: create output directory")
	}

	characterName := opts.CharacterName
	if characterName == "" {
		base := filepath.Base(sourceName)
		characterName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	parsed, err := acscontainer.Parse(blob)
	if err != nil {
		return nil, acserror.Wrap(acserror.DecodeFailed, err, "ingest: parse container")
	}
	log.Info("parse complete",
		zap.Int("images", len(parsed.Images)),
		zap.Int("animations", len(parsed.Animations)),
	)

	totalFrames := 0
	for _, anim := range parsed.Animations {
		totalFrames += len(anim.Frames)
	}
	if totalFrames == 0 {
		return nil, acserror.NoFrames()
	}

	maxDimension := opts.MaxAtlasDimension
	if maxDimension == 0 {
		maxDimension = defaultMaxAtlasDimension
	}
	fallback := opts.FallbackFrameDuration
	if fallback == 0 {
		fallback = defaultFallbackFrameDuration
	}

	layout, err := acsatlas.New(totalFrames, parsed.CanvasSize, maxDimension)
	if err != nil {
		return nil, err
	}
	log.Info("atlas dimensions chosen",
		zap.Int("columns", layout.Columns),
		zap.Int("rows", layout.Rows),
		zap.Int("width", layout.AtlasWidth),
		zap.Int("height", layout.AtlasHeight),
	)

	atlas := image.NewRGBA(image.Rect(0, 0, layout.AtlasWidth, layout.AtlasHeight))

	frames := make([]manifest.AssistantFrame, 0, totalFrames)
	clips := make([]manifest.AssistantAnimationClip, 0, len(parsed.Animations))

	globalIndex := 0
	for _, anim := range parsed.Animations {
		if len(anim.Frames) == 0 {
			continue
		}
		startFrame := globalIndex
		canvas := acscomposite.NewPooledCanvas(parsed.CanvasSize)
		for _, pf := range anim.Frames {
			acscomposite.PaintInto(canvas, pf, parsed.Images, parsed.Palette, parsed.TransparencyIndex)

			x, y := layout.PositionOf(globalIndex)
			dstRect := geometry.Rect(x, y, parsed.CanvasSize)
			drawInto(atlas, dstRect, canvas)

			duration := fallback
			if pf.DurationTicks > 0 {
				ticksSeconds := float64(pf.DurationTicks) / 100
				if ticksSeconds > 1.0/120 {
					duration = ticksSeconds
				} else {
					duration = 1.0 / 120
				}
			}

			frames = append(frames, manifest.AssistantFrame{
				Index:     globalIndex,
				ImageName: "atlas.png",
				SourceRect: manifest.IntRect{
					X: x, Y: y,
					Width:  parsed.CanvasSize.Width,
					Height: parsed.CanvasSize.Height,
				},
				TrimmedRect: manifest.IntRect{
					X: 0, Y: 0,
					Width:  parsed.CanvasSize.Width,
					Height: parsed.CanvasSize.Height,
				},
				Offset: manifest.IntPoint{X: 0, Y: 0},
				Size: manifest.IntSize{
					Width:  parsed.CanvasSize.Width,
					Height: parsed.CanvasSize.Height,
				},
				Duration: duration,
			})
			globalIndex++
		}
		acscomposite.ReleaseCanvas(canvas)
		clips = append(clips, manifest.AssistantAnimationClip{
			Name:       anim.Name,
			StartFrame: startFrame,
			FrameCount: len(anim.Frames),
			Loops:      true,
		})
	}

	if len(clips) == 0 {
		clips = append(clips, manifest.AssistantAnimationClip{
			Name:       "all",
			StartFrame: 0,
			FrameCount: len(frames),
			Loops:      true,
		})
	}
	clips = uniqueClipNames(clips)

	m := &manifest.AssistantManifest{
		CharacterName: characterName,
		FrameCellSize: manifest.IntSize{Width: parsed.CanvasSize.Width, Height: parsed.CanvasSize.Height},
		Frames:        frames,
		Animations:    clips,
	}

	atlasPath := filepath.Join(opts.OutputDirectory, "atlas.png")
	if err := writeAtlasPNG(atlasPath, atlas); err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(opts.OutputDirectory, "manifest.json")
	if err := manifest.Save(manifestPath, m); err != nil {
		return nil, err
	}
	log.Info("manifest written",
		zap.String("path", manifestPath),
		zap.Int("frames", len(frames)),
		zap.Int("clips", len(clips)),
	)

	return &Result{Manifest: m, AtlasPath: atlasPath, ManifestPath: manifestPath}, nil
}

func drawInto(dst *image.RGBA, dstRect image.Rectangle, src *image.RGBA) {
	for sy := 0; sy < src.Bounds().Dy(); sy++ {
		for sx := 0; sx < src.Bounds().Dx(); sx++ {
			dst.Set(dstRect.Min.X+sx, dstRect.Min.Y+sy, src.RGBAAt(sx, sy))
		}
	}
}

func writeAtlasPNG(path string, atlas *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return acserror.Wrap(acserror.IoFailed, err, "ingest: create atlas file")
	}
	defer f.Close()
	if err := png.Encode(f, atlas); err != nil {
		return acserror.Wrap(acserror.EncodeFailed, err, "ingest: encode atlas png")
	}
	return nil
}

// uniqueClipNames applies the manifest naming policy: empty or
// whitespace-only names become "animation"; collisions are resolved
// with a _N suffix on the second and later occurrences.
func uniqueClipNames(clips []manifest.AssistantAnimationClip) []manifest.AssistantAnimationClip {
	seen := make(map[string]int)
	out := make([]manifest.AssistantAnimationClip, len(clips))
	for i, c := range clips {
		name := c.Name
		if strings.TrimSpace(name) == "" {
			name = "animation"
		}
		n := seen[name]
		seen[name] = n + 1
		if n > 0 {
			name = name + "_" + strconv.Itoa(n)
		}
		c.Name = name
		out[i] = c
	}
	return out
}
