package flamerush

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is a straight-alpha RGBA color, each channel in [0, 1]. Drawing code
// premultiplies it.
type Color struct {
	R, G, B, A float64
}

// ColorWhite leaves whatever it tints unchanged.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromHex converts a 0xRRGGBB value to an opaque Color.
func ColorFromHex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(s, "#")) != 6 {
		return Color{}, fmt.Errorf("flamerush: invalid color %q", s)
	}
	return ColorFromHex(uint32(v)), nil
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

// Vec2 is a point or offset in playfield pixels.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned box in playfield pixels; Y grows downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) is inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a closed interval sampled by the spawner and particle emitters.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a random float64 in [Min, Max). A nil rng uses the global
// source.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	if rng == nil {
		return r.Min + rand.Float64()*(r.Max-r.Min)
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// RandomInt returns a uniformly distributed integer in [Min, Max], both
// bounds truncated toward zero.
func (r Range) RandomInt(rng *rand.Rand) int {
	lo, hi := int(r.Min), int(r.Max)
	if hi <= lo {
		return lo
	}
	if rng == nil {
		return lo + rand.IntN(hi-lo+1)
	}
	return lo + rng.IntN(hi-lo+1)
}

// valid reports whether Min <= Max.
func (r Range) valid() bool {
	return r.Min <= r.Max
}

// BlendMode is how particles composite onto the frame.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
)

// EbitenBlend maps b to Ebitengine's blend.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}
