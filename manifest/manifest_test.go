package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleManifest() *AssistantManifest {
	return &AssistantManifest{
		CharacterName: "Clippy",
		FrameCellSize: IntSize{Width: 64, Height: 64},
		Frames: []AssistantFrame{
			{
				Index:       0,
				ImageName:   "atlas.png",
				SourceRect:  IntRect{X: 0, Y: 0, Width: 64, Height: 64},
				TrimmedRect: IntRect{X: 0, Y: 0, Width: 64, Height: 64},
				Offset:      IntPoint{X: 0, Y: 0},
				Size:        IntSize{Width: 64, Height: 64},
				Duration:    0.1,
			},
		},
		Animations: []AssistantAnimationClip{
			{Name: "all", StartFrame: 0, FrameCount: 1, Loops: true},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	want := sampleManifest()

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.CharacterName != want.CharacterName {
		t.Errorf("CharacterName = %q, want %q", got.CharacterName, want.CharacterName)
	}
	if len(got.Frames) != 1 || got.Frames[0].Duration != 0.1 {
		t.Errorf("Frames = %+v, want one frame with duration 0.1", got.Frames)
	}
	if len(got.Animations) != 1 || got.Animations[0].Name != "all" {
		t.Errorf("Animations = %+v, want one clip named \"all\"", got.Animations)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := Save(path, sampleManifest()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// Corrupt it.
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error for malformed JSON")
	}
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
