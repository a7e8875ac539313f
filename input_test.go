package flamerush

import "testing"

func TestPointerBaseline(t *testing.T) {
	var in inputState
	f := in.apply(10, 10, false, false)
	if f.moved || f.pressed || f.released {
		t.Errorf("first device sample = %+v, want a bare baseline", f)
	}

	f = in.apply(20, 10, false, false)
	if !f.moved {
		t.Error("position change not reported as movement")
	}
	if f.x != 20 || f.y != 10 {
		t.Errorf("position = (%v, %v), want (20, 10)", f.x, f.y)
	}
}

func TestPointerPressRelease(t *testing.T) {
	var in inputState
	in.apply(20, 10, false, false)

	f := in.apply(20, 10, true, false)
	if !f.pressed || f.released || f.moved {
		t.Errorf("press frame = %+v", f)
	}
	f = in.apply(20, 10, true, false)
	if f.pressed {
		t.Error("held button reported as a new press")
	}
	f = in.apply(20, 10, false, false)
	if !f.released || f.pressed {
		t.Errorf("release frame = %+v", f)
	}
}

func TestSyntheticFirstSampleMoves(t *testing.T) {
	var in inputState
	if f := in.apply(5, 5, false, true); !f.moved {
		t.Error("first synthetic sample should count as movement")
	}
	if f := in.apply(5, 5, false, true); f.moved {
		t.Error("synthetic sample at the same spot should not move")
	}
}

func TestPollWithoutDevice(t *testing.T) {
	var in inputState
	in.apply(42, 24, false, true)
	f := in.poll()
	if f.moved || f.pressed || f.released || f.x != 42 || f.y != 24 {
		t.Errorf("idle poll = %+v", f)
	}
}

func TestInjectQueueOrder(t *testing.T) {
	g := &Game{}
	g.InjectPress(10, 20)
	g.InjectMove(30, 40)
	g.InjectRelease(50, 60)
	g.InjectMove(70, 80)
	if g.input.pending() != 4 {
		t.Fatalf("pending = %d, want 4", g.input.pending())
	}

	want := []syntheticPointerEvent{
		{x: 10, y: 20, pressed: true},
		{x: 30, y: 40, pressed: true},
		{x: 50, y: 60, pressed: false},
		{x: 70, y: 80, pressed: false},
	}
	for i, w := range want {
		got, ok := g.input.popInjected()
		if !ok || got != w {
			t.Errorf("event %d = %+v, %v; want %+v", i, got, ok, w)
		}
	}
	if _, ok := g.input.popInjected(); ok {
		t.Error("queue should be empty")
	}
}

func TestInjectClickFrames(t *testing.T) {
	g := &Game{}
	g.InjectClick(100, 200)

	f := g.input.poll()
	if !f.pressed || f.x != 100 || f.y != 200 {
		t.Errorf("first frame = %+v, want a press at (100, 200)", f)
	}
	f = g.input.poll()
	if !f.released {
		t.Errorf("second frame = %+v, want a release", f)
	}
	if g.input.pending() != 0 {
		t.Errorf("pending = %d after two frames", g.input.pending())
	}
}

func TestInjectDrag(t *testing.T) {
	g := &Game{}
	g.InjectDrag(0, 0, 100, 0, 5)
	if g.input.pending() != 5 {
		t.Fatalf("pending = %d, want 5", g.input.pending())
	}

	wantX := []float64{0, 25, 50, 75, 100}
	for i, x := range wantX {
		evt, _ := g.input.popInjected()
		assertNear(t, "x", evt.x, x)
		wantDown := i < len(wantX)-1
		if evt.pressed != wantDown {
			t.Errorf("event %d pressed = %v, want %v", i, evt.pressed, wantDown)
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	g := &Game{}
	g.InjectDrag(0, 0, 10, 10, 1)
	if g.input.pending() != 2 {
		t.Errorf("pending = %d, want 2", g.input.pending())
	}
}
