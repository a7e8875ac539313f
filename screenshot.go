package flamerush

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next rendered frame to be saved as
// ScreenshotDir/<timestamp>_<label>.png. Scripts call it through the
// "screenshot" step.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots runs last in Draw and writes one file per queued label.
// Failures are logged; a missed capture never stops the game.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	labels := g.screenshotQueue
	g.screenshotQueue = g.screenshotQueue[:0]

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		logger.Printf("screenshot: %v", err)
		return
	}
	frame := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		if err := writePNG(filepath.Join(g.ScreenshotDir, name), frame); err != nil {
			logger.Printf("screenshot: %v", err)
		}
	}
}

func captureFrame(screen *ebiten.Image) *image.NRGBA {
	size := screen.Bounds().Size()
	pix := make([]byte, 4*size.X*size.Y)
	screen.ReadPixels(pix)
	return unpremultiply(pix, size.X, size.Y)
}

// unpremultiply converts Ebitengine's premultiplied RGBA bytes into a
// straight-alpha image, which is what PNG stores.
func unpremultiply(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pix), len(img.Pix))
	copy(img.Pix, pix[:n])
	for i := 0; i+3 < n; i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 0xff {
			continue
		}
		for c := i; c < i+3; c++ {
			img.Pix[c] = uint8(min(int(img.Pix[c])*0xff/a, 0xff))
		}
	}
	return img
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', and turns every
// other rune into '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
