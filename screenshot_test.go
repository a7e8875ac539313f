package flamerush

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"game-over", "game-over"},
		{"frame.01", "frame.01"},
		{"shop open", "shop_open"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := &Game{}
	g.Screenshot("a")
	g.Screenshot("b")
	g.Screenshot("c")
	if len(g.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(g.screenshotQueue))
	}
	if g.screenshotQueue[0] != "a" || g.screenshotQueue[1] != "b" || g.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", g.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	g := newTestGame(t, NewMemoryStore())
	if g.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", g.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, unpremultiply([]byte{255, 0, 0, 255}, 1, 1)); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("bounds = %v", b)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("pixel = %d %d %d %d, want opaque red", r, g, b, a)
	}
}
