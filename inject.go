package flamerush

// syntheticPointerEvent is one queued pointer sample in playfield coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

func (in *inputState) push(x, y float64, pressed bool) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: pressed})
	in.queuedDown = pressed
}

func (in *inputState) popInjected() (syntheticPointerEvent, bool) {
	if len(in.injectQueue) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
	return evt, true
}

// pending returns the number of queued synthetic events.
func (in *inputState) pending() int {
	return len(in.injectQueue)
}

// InjectMove queues a pointer move to (x, y). The button keeps whatever
// state the previously queued event left it in. Consumed on the next Update.
func (g *Game) InjectMove(x, y float64) {
	g.input.push(x, y, g.input.queuedDown)
}

// InjectPress queues a pointer press at (x, y).
func (g *Game) InjectPress(x, y float64) {
	g.input.push(x, y, true)
}

// InjectRelease queues a pointer release at (x, y).
func (g *Game) InjectRelease(x, y float64) {
	g.input.push(x, y, false)
}

// InjectClick queues a press and a release at (x, y), one frame each.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag presses at the start point, moves in a straight line, and
// releases at the end point, spread over frames frames (at least two).
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	g.InjectPress(fromX, fromY)
	moves := max(frames, 2) - 2
	for k := 1; k <= moves; k++ {
		f := float64(k) / float64(moves+1)
		g.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	g.InjectRelease(toX, toY)
}
