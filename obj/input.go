package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the decoded key state for one tick. The rest of the
// engine consumes only these booleans, never the device directly.
type Input struct {
	// Left/Right are true while the movement keys are held.
	Left  bool
	Right bool
	// JumpPressed is true only on the frame the jump key went down.
	JumpPressed bool
	// DebugPressed is true on the frame the debug toggle went down.
	DebugPressed bool
	// Quit is true once a quit request (Escape) has been seen.
	Quit bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and refreshes the decoded state.
func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.Quit = true
	}
}
