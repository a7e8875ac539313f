package flamerush

import (
	"math/rand/v2"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera applies screen-space feedback effects: shake offsets the whole
// playfield, flash overlays a fading color.
type Camera struct {
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	shake      *gween.Tween
	intensity  float64
	offX, offY float64

	flash      *gween.Tween
	flashColor Color
	flashAlpha float64

	rng *rand.Rand
}

// newCamera creates a Camera for the given viewport.
func newCamera(viewport Rect, rng *rand.Rand) *Camera {
	return &Camera{Viewport: viewport, rng: rng}
}

// Shake jitters the view for duration. intensity is the maximum offset as a
// fraction of the viewport size and decays linearly to zero. A new shake
// replaces the current one.
func (c *Camera) Shake(duration time.Duration, intensity float64) {
	c.intensity = intensity
	c.shake = gween.New(float32(intensity), 0, float32(duration.Seconds()), ease.Linear)
}

// Flash covers the view with col, fading out over duration.
func (c *Camera) Flash(duration time.Duration, col Color) {
	c.flashColor = col
	c.flashAlpha = 1
	c.flash = gween.New(1, 0, float32(duration.Seconds()), ease.OutQuad)
}

// Shaking reports whether a shake is in progress.
func (c *Camera) Shaking() bool {
	return c.shake != nil
}

// Offset returns the current shake offset in pixels.
func (c *Camera) Offset() (x, y float64) {
	return c.offX, c.offY
}

// FlashColor returns the overlay color with its current alpha, and whether a
// flash is visible.
func (c *Camera) FlashColor() (Color, bool) {
	if c.flash == nil {
		return Color{}, false
	}
	return c.flashColor.WithAlpha(c.flashAlpha), true
}

// update advances shake and flash tweens by dt seconds.
func (c *Camera) update(dt float32) {
	if c.shake != nil {
		val, done := c.shake.Update(dt)
		c.intensity = float64(val)
		if done {
			c.shake = nil
			c.intensity = 0
			c.offX, c.offY = 0, 0
		} else {
			c.offX = (c.random()*2 - 1) * c.intensity * c.Viewport.Width
			c.offY = (c.random()*2 - 1) * c.intensity * c.Viewport.Height
		}
	}
	if c.flash != nil {
		val, done := c.flash.Update(dt)
		c.flashAlpha = float64(val)
		if done {
			c.flash = nil
			c.flashAlpha = 0
		}
	}
}

func (c *Camera) random() float64 {
	if c.rng == nil {
		return rand.Float64()
	}
	return c.rng.Float64()
}
