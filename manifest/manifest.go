// Package manifest defines the portable ingest output format — a
// character's frame atlas layout and animation clip table — and its
// JSON I/O. No third-party JSON library appears anywhere in the
// example corpus, so this package uses encoding/json directly.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"

	"github.com/msagent-tools/acsingest/acserror"
)

// IntPoint is an integer 2D point; either coordinate may be negative.
type IntPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IntSize is a non-negative integer width/height pair.
type IntSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IntRect is an axis-aligned integer rectangle with non-negative size.
type IntRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AssistantFrame is a single composited, atlas-packed frame.
type AssistantFrame struct {
	Index       int      `json:"index"`
	ImageName   string   `json:"imageName"`
	SourceRect  IntRect  `json:"sourceRect"`
	TrimmedRect IntRect  `json:"trimmedRect"`
	Offset      IntPoint `json:"offset"`
	Size        IntSize  `json:"size"`
	Duration    float64  `json:"duration"`
}

// AssistantAnimationClip is a named, contiguous range of frames.
type AssistantAnimationClip struct {
	Name       string `json:"name"`
	StartFrame int    `json:"startFrame"`
	FrameCount int    `json:"frameCount"`
	Loops      bool   `json:"loops"`
}

// AssistantManifest is the complete ingest output: one character's
// frame atlas layout and animation clip table.
type AssistantManifest struct {
	CharacterName string                   `json:"characterName"`
	FrameCellSize IntSize                   `json:"frameCellSize"`
	Frames        []AssistantFrame         `json:"frames"`
	Animations    []AssistantAnimationClip `json:"animations"`
}

// Load reads and decodes a manifest from path.
func Load(path string) (*AssistantManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, acserror.Wrap(acserror.IoFailed, err, "manifest: read "+path)
	}
	var m AssistantManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, acserror.Wrap(acserror.DecodeFailed, err, "manifest: decode "+path)
	}
	return &m, nil
}

// Save serializes m to path atomically: it writes to a sibling
// temporary file and renames it into place, so a reader never
// observes a partially written manifest.
func Save(path string, m *AssistantManifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return acserror.Wrap(acserror.EncodeFailed, err, "manifest: encode")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".manifest-*.tmp")
	if err != nil {
		return acserror.Wrap(acserror.IoFailed, err, "manifest: create temp file")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return acserror.Wrap(acserror.IoFailed, err, "manifest: write temp file")
	}
	if err := tmp.Close(); err != nil {
		return acserror.Wrap(acserror.IoFailed, err, "manifest: close temp file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return acserror.Wrap(acserror.IoFailed, pkgerrors.Wrap(err, "rename"), "manifest: finalize "+path)
	}
	return nil
}
