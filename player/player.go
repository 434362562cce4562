// Package player implements the frame-player state machine: a
// time-based cursor over a manifest's animation clips, advanced by
// externally supplied wall-clock deltas. It mirrors the teacher's
// stateful-but-synchronous style (plain struct, explicit error
// returns, no goroutines) seen in animation.AnimDecoder, adapted from
// incremental canvas decode state to clip/frame timing state.
package player

import (
	"time"

	"github.com/msagent-tools/acsingest/acserror"
	"github.com/msagent-tools/acsingest/manifest"
)

const minFrameDuration = time.Second / 120

// Player advances a single animation clip across a manifest's frames.
// Every mutating method (Play, ConfigurePlayback, Update) must be
// called from a single goroutine; Player does no internal locking.
type Player struct {
	m *manifest.AssistantManifest

	clips   []manifest.AssistantAnimationClip
	clipIdx int

	localFrameIndex int
	elapsed         time.Duration

	loopingOverride *bool
	loopDelay       time.Duration
	pendingDelay    time.Duration
}

// New constructs a Player over m, optionally starting on the clip
// named initialClip (empty string selects the manifest's first
// clip). Fails with EmptyFrames if the manifest has no frames, or
// UnknownAnimation if initialClip is non-empty and not found.
func New(m *manifest.AssistantManifest, initialClip string) (*Player, error) {
	if len(m.Frames) == 0 {
		return nil, acserror.NoFrames()
	}

	clips := m.Animations
	if len(clips) == 0 {
		clips = []manifest.AssistantAnimationClip{
			{Name: "all", StartFrame: 0, FrameCount: len(m.Frames), Loops: true},
		}
	}

	p := &Player{m: m, clips: clips}

	if initialClip == "" {
		return p, nil
	}
	if err := p.Play(initialClip, true); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) findClip(name string) (int, bool) {
	for i, c := range p.clips {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

func (p *Player) currentClip() manifest.AssistantAnimationClip {
	return p.clips[p.clipIdx]
}

// Play selects the clip named name. If restart, the cursor resets to
// the clip's first frame and any pending loop delay is cleared;
// otherwise the current local frame index is clamped into the new
// clip's range. Fails with UnknownAnimation if name is not a known
// clip.
func (p *Player) Play(name string, restart bool) error {
	idx, ok := p.findClip(name)
	if !ok {
		return acserror.UnknownAnimation(name)
	}
	p.clipIdx = idx
	if restart {
		p.localFrameIndex = 0
		p.elapsed = 0
		p.pendingDelay = 0
		return nil
	}
	if max := p.currentClip().FrameCount - 1; p.localFrameIndex > max {
		p.localFrameIndex = max
	}
	if p.localFrameIndex < 0 {
		p.localFrameIndex = 0
	}
	return nil
}

// ConfigurePlayback sets the looping override (nil defers to the
// clip's own Loops flag) and the loop delay, clamped to be
// non-negative.
func (p *Player) ConfigurePlayback(looping *bool, loopDelay time.Duration) {
	p.loopingOverride = looping
	if loopDelay < 0 {
		loopDelay = 0
	}
	p.loopDelay = loopDelay
}

// CurrentAnimationName returns the name of the clip currently playing.
func (p *Player) CurrentAnimationName() string {
	return p.currentClip().Name
}

// CurrentGlobalFrameIndex returns the index into manifest.Frames of
// the frame currently displayed.
func (p *Player) CurrentGlobalFrameIndex() int {
	return p.currentClip().StartFrame + p.localFrameIndex
}

// CurrentFrame returns the manifest.AssistantFrame currently displayed.
func (p *Player) CurrentFrame() manifest.AssistantFrame {
	return p.m.Frames[p.CurrentGlobalFrameIndex()]
}

func frameDuration(f manifest.AssistantFrame) time.Duration {
	d := time.Duration(f.Duration * float64(time.Second))
	if d < minFrameDuration {
		return minFrameDuration
	}
	return d
}

// Update advances the player's time cursor by dt. dt <= 0 is a no-op.
// Update never fails; errors are only reported by Play and New.
func (p *Player) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}

	shouldLoop := p.currentClip().Loops
	if p.loopingOverride != nil {
		shouldLoop = *p.loopingOverride
	}

	remaining := dt
	for remaining > 0 {
		if p.pendingDelay > 0 {
			consumed := remaining
			if p.pendingDelay < consumed {
				consumed = p.pendingDelay
			}
			p.pendingDelay -= consumed
			remaining -= consumed
			if p.pendingDelay > 0 {
				return
			}
			p.localFrameIndex = 0
			p.elapsed = 0
			continue
		}

		clip := p.currentClip()
		cd := frameDuration(p.m.Frames[clip.StartFrame+p.localFrameIndex])
		step := cd - p.elapsed

		if remaining < step {
			p.elapsed += remaining
			return
		}

		remaining -= step
		p.elapsed = 0

		if p.localFrameIndex+1 < clip.FrameCount {
			p.localFrameIndex++
			continue
		}
		if shouldLoop {
			if p.loopDelay > 0 {
				p.pendingDelay = p.loopDelay
				continue
			}
			p.localFrameIndex = 0
			continue
		}
		p.localFrameIndex = clip.FrameCount - 1
		return
	}
}
