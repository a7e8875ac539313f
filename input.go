package flamerush

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerFrame is the pointer as seen by one Update call. Mouse and the
// first active touch are merged into a single logical pointer.
type pointerFrame struct {
	x, y     float64
	moved    bool // position changed since the previous frame
	pressed  bool // went down this frame
	released bool // went up this frame
}

type pointerState struct {
	x, y float64
	down bool
	seen bool
}

// inputState tracks the logical pointer across frames.
type inputState struct {
	pointer  pointerState
	touchIDs []ebiten.TouchID

	// device enables reading the real mouse and touchscreen. Disabled for
	// headless and scripted runs.
	device bool

	injectQueue []syntheticPointerEvent
	queuedDown  bool
}

// poll reads one frame of pointer input. A queued synthetic event replaces
// device input for that frame.
func (in *inputState) poll() pointerFrame {
	if evt, ok := in.popInjected(); ok {
		return in.apply(evt.x, evt.y, evt.pressed, true)
	}
	if !in.device {
		return pointerFrame{x: in.pointer.x, y: in.pointer.y}
	}

	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) == 0 {
		in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	}
	if len(in.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(in.touchIDs[0])
		return in.apply(float64(x), float64(y), true, false)
	}

	x, y := ebiten.CursorPosition()
	return in.apply(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), false)
}

// apply diffs a raw pointer sample against the previous frame. The first
// device sample only establishes a baseline; the first synthetic sample
// counts as movement.
func (in *inputState) apply(x, y float64, down, synthetic bool) pointerFrame {
	prev := in.pointer
	changed := x != prev.x || y != prev.y
	f := pointerFrame{
		x:        x,
		y:        y,
		moved:    (prev.seen && changed) || (synthetic && !prev.seen),
		pressed:  down && !prev.down,
		released: !down && prev.down,
	}
	in.pointer = pointerState{x: x, y: y, down: down, seen: true}
	return f
}
