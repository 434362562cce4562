package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/msagent-tools/acsingest/manifest"
)

func threeFrameManifest() *manifest.AssistantManifest {
	frame := func(i int) manifest.AssistantFrame {
		return manifest.AssistantFrame{Index: i, ImageName: "atlas.png", Duration: 0.1}
	}
	return &manifest.AssistantManifest{
		CharacterName: "Clippy",
		FrameCellSize: manifest.IntSize{Width: 8, Height: 8},
		Frames:        []manifest.AssistantFrame{frame(0), frame(1), frame(2)},
		Animations: []manifest.AssistantAnimationClip{
			{Name: "all", StartFrame: 0, FrameCount: 3, Loops: true},
		},
	}
}

func twoFrameGreetingManifest() *manifest.AssistantManifest {
	frame := func(i int) manifest.AssistantFrame {
		return manifest.AssistantFrame{Index: i, ImageName: "atlas.png", Duration: 0.1}
	}
	return &manifest.AssistantManifest{
		CharacterName: "Clippy",
		FrameCellSize: manifest.IntSize{Width: 8, Height: 8},
		Frames:        []manifest.AssistantFrame{frame(0), frame(1)},
		Animations: []manifest.AssistantAnimationClip{
			{Name: "Greeting", StartFrame: 0, FrameCount: 2, Loops: false},
		},
	}
}

// S1 — loops within current animation.
func TestS1LoopsWithinAnimation(t *testing.T) {
	p, err := New(threeFrameManifest(), "")
	require.NoError(t, err)

	p.Update(100 * time.Millisecond)
	require.Equal(t, 1, p.CurrentGlobalFrameIndex())

	p.Update(100 * time.Millisecond)
	require.Equal(t, 2, p.CurrentGlobalFrameIndex())

	p.Update(100 * time.Millisecond)
	require.Equal(t, 0, p.CurrentGlobalFrameIndex())
}

// S2 — typed play and idle frame.
func TestS2TypedPlay(t *testing.T) {
	m := &manifest.AssistantManifest{
		CharacterName: "Clippy",
		FrameCellSize: manifest.IntSize{Width: 8, Height: 8},
		Frames:        []manifest.AssistantFrame{{Index: 0, ImageName: "atlas.png", Duration: 0.1}},
		Animations: []manifest.AssistantAnimationClip{
			{Name: "Greeting", StartFrame: 0, FrameCount: 1, Loops: true},
		},
	}
	p, err := New(m, "")
	require.NoError(t, err)

	require.NoError(t, p.Play("Greeting", true))
	require.Equal(t, "Greeting", p.CurrentAnimationName())
	require.Equal(t, 0, p.CurrentGlobalFrameIndex())
}

// S3 — play once.
func TestS3PlayOnce(t *testing.T) {
	p, err := New(twoFrameGreetingManifest(), "Greeting")
	require.NoError(t, err)

	looping := false
	p.ConfigurePlayback(&looping, 0)

	p.Update(1 * time.Second)
	require.Equal(t, 1, p.CurrentGlobalFrameIndex())

	p.Update(1 * time.Second)
	require.Equal(t, 1, p.CurrentGlobalFrameIndex())
}

// S4 — loop delay.
func TestS4LoopDelay(t *testing.T) {
	p, err := New(twoFrameGreetingManifest(), "Greeting")
	require.NoError(t, err)

	looping := true
	p.ConfigurePlayback(&looping, 200*time.Millisecond)

	p.Update(200 * time.Millisecond)
	require.Equal(t, 1, p.CurrentGlobalFrameIndex(), "after 0.2s total")

	p.Update(100 * time.Millisecond)
	require.Equal(t, 1, p.CurrentGlobalFrameIndex(), "still held on last frame mid-delay")

	p.Update(190 * time.Millisecond)
	require.Equal(t, 0, p.CurrentGlobalFrameIndex(), "delay elapsed, wrapped to first frame")

	p.Update(20 * time.Millisecond)
	require.Equal(t, 1, p.CurrentGlobalFrameIndex(), "advanced past the first frame's duration")
}

func TestNewFailsOnEmptyFrames(t *testing.T) {
	m := &manifest.AssistantManifest{CharacterName: "Clippy"}
	_, err := New(m, "")
	require.Error(t, err)
}

func TestNewFailsOnUnknownInitialClip(t *testing.T) {
	_, err := New(threeFrameManifest(), "NoSuchClip")
	require.Error(t, err)
}

func TestPlaySynthesizesAllClipWhenManifestHasNone(t *testing.T) {
	m := &manifest.AssistantManifest{
		CharacterName: "Clippy",
		Frames:        []manifest.AssistantFrame{{Index: 0, Duration: 0.1}},
	}
	p, err := New(m, "")
	require.NoError(t, err)
	require.Equal(t, "all", p.CurrentAnimationName())
}

func TestPlayUnknownAnimationFails(t *testing.T) {
	p, err := New(threeFrameManifest(), "")
	require.NoError(t, err)
	require.Error(t, p.Play("NoSuchClip", true))
}
