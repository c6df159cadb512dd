package obj

import (
	"fmt"

	"github.com/asib/platformer/common"
)

// DirTable holds one animation parameter per real direction. Landed is
// transient and carries no animation.
type DirTable[T any] [directionCount]T

// Animation advances a directional sprite-sheet animation. The frame
// cursor selects the column within the current direction's strip and
// the tick cursor paces it: the frame advances every cycle/frames
// ticks. A cycle length not evenly divisible by the frame count gives
// an irregular cadence; callers are expected to configure divisible
// pairs.
type Animation struct {
	frame int
	tick  int

	cycles  DirTable[int]
	frames  DirTable[int]
	offsets DirTable[common.Point]
	rows    DirTable[int]

	frameW, frameH int
	reverse        bool
}

// NewAnimation validates the per-direction tables eagerly: every real
// direction must have a positive cycle length and frame count so that
// no lookup can fail mid-game.
func NewAnimation(cycles, frames DirTable[int], offsets DirTable[common.Point], rows DirTable[int], frameW, frameH int, reverse bool) (*Animation, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("animation: invalid frame size %dx%d", frameW, frameH)
	}
	for d := Down; d < Landed; d++ {
		if cycles[d] <= 0 {
			return nil, fmt.Errorf("animation: direction %s: missing cycle length", d)
		}
		if frames[d] <= 0 {
			return nil, fmt.Errorf("animation: direction %s: missing frame count", d)
		}
	}
	return &Animation{
		cycles:  cycles,
		frames:  frames,
		offsets: offsets,
		rows:    rows,
		frameW:  frameW,
		frameH:  frameH,
		reverse: reverse,
	}, nil
}

// Reset rewinds both cursors to the start of the strip. Used when
// entering a standing direction so the still pose shows immediately.
func (a *Animation) Reset() {
	a.frame = 0
	a.tick = 0
}

// Advance moves the animation forward one tick for direction d.
func (a *Animation) Advance(d Direction) {
	cycle := a.cycles[d]
	frames := a.frames[d]

	step := cycle / frames
	if step < 1 {
		step = 1
	}
	if a.tick%step == 0 {
		a.frame++
		if a.frame > frames-1 {
			a.frame = 0
		}
	}
	a.tick++
	if a.tick > cycle {
		a.tick = 1
	}
}

// FrameRect returns the atlas source rect for direction d at the
// current frame cursor.
func (a *Animation) FrameRect(d Direction) common.Rect {
	frames := a.frames[d]
	frame := a.frame
	if a.reverse && frames > 1 {
		frame = frames - frame
	}
	off := a.offsets[d]
	return common.Rect{
		X:      off.X + frame*a.frameW,
		Y:      off.Y + a.rows[d]*a.frameH,
		Width:  a.frameW,
		Height: a.frameH,
	}
}

// Cursors exposes the raw frame/tick cursors for debug display.
func (a *Animation) Cursors() (frame, tick int) {
	return a.frame, a.tick
}
