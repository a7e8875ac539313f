package flamerush

import (
	"math/rand/v2"
	"slices"
)

// trailConfig is the flame trail for a palette: a short-lived upward plume
// anchored just below the player.
func trailConfig(palette []Color) EmitterConfig {
	return EmitterConfig{
		MaxParticles: 64,
		EmitRate:     1000.0 / 30,
		Lifetime:     Range{Min: 0.6, Max: 0.6},
		Speed:        Range{Min: -30, Max: 30},
		Angle:        degrees(260, 280),
		StartScale:   Range{Min: 0.6, Max: 0.6},
		EndScale:     Range{Min: 0, Max: 0},
		StartAlpha:   Range{Min: 1, Max: 1},
		EndAlpha:     Range{Min: 0, Max: 0},
		Gravity:      Vec2{Y: -60}, // flames rise
		Palette:      palette,
		Size:         40,
		Offset:       Vec2{X: 0, Y: 10},
		BlendMode:    BlendAdd,
	}
}

// auraConfig is the green burst that surrounds a shielded player.
func auraConfig(tint Color) EmitterConfig {
	return EmitterConfig{
		MaxParticles: 32,
		EmitRate:     20,
		Lifetime:     Range{Min: 1, Max: 1},
		Speed:        Range{Min: 100, Max: 100},
		Angle:        degrees(0, 360),
		StartScale:   Range{Min: 0.5, Max: 0.5},
		EndScale:     Range{Min: 0, Max: 0},
		StartAlpha:   Range{Min: 1, Max: 1},
		EndAlpha:     Range{Min: 1, Max: 1},
		Palette:      []Color{tint},
		Size:         24,
		BlendMode:    BlendAdd,
	}
}

// flameFX owns the particle effects attached to the player.
type flameFX struct {
	name    string
	trail   *ParticleEmitter
	aura    *ParticleEmitter
	retired []*ParticleEmitter // stopped trails whose particles are still alive
	rng     *rand.Rand
}

func newFlameFX(name string, shieldTint Color, rng *rand.Rand) *flameFX {
	f := &flameFX{rng: rng, aura: NewParticleEmitter(auraConfig(shieldTint), rng)}
	f.setFlame(name)
	return f
}

// setFlame rebuilds the trail for a cosmetic. The previous trail stops
// emitting and its particles live out.
func (f *flameFX) setFlame(name string) {
	if f.trail != nil {
		if f.name == name {
			return
		}
		f.trail.Stop()
		f.retired = append(f.retired, f.trail)
	}
	f.name = name
	f.trail = NewParticleEmitter(trailConfig(Palette(name)), f.rng)
	f.trail.Start()
}

// follow anchors every live emitter to the player.
func (f *flameFX) follow(p Vec2) {
	f.trail.MoveTo(p.X, p.Y)
	f.aura.MoveTo(p.X, p.Y)
}

func (f *flameFX) shield(on bool) {
	if on {
		f.aura.Start()
	} else {
		f.aura.Stop()
	}
}

func (f *flameFX) update(dt float64) {
	f.trail.update(dt)
	f.aura.update(dt)
	for _, e := range f.retired {
		e.update(dt)
	}
	f.retired = slices.DeleteFunc(f.retired, func(e *ParticleEmitter) bool {
		return e.AliveCount() == 0
	})
}

// emitters returns every emitter to draw, oldest first.
func (f *flameFX) emitters() []*ParticleEmitter {
	out := make([]*ParticleEmitter, 0, len(f.retired)+2)
	out = append(out, f.retired...)
	return append(out, f.trail, f.aura)
}
