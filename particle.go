package flamerush

import (
	"math"
	"math/rand/v2"
)

// fade is a value that moves linearly from one end to the other over a
// particle's life.
type fade struct{ from, to float64 }

func (f fade) at(t float64) float64 { return f.from + (f.to-f.from)*t }

type particle struct {
	x, y   float64
	vx, vy float64

	life, maxLife float64 // seconds

	scaleFade, alphaFade fade
	scale, alpha         float64
	color                Color
}

// progress is 0 at birth and 1 at death.
func (p *particle) progress() float64 {
	return 1 - p.life/p.maxLife
}

// EmitterConfig describes a particle effect. Ranges are sampled once per
// particle at birth.
type EmitterConfig struct {
	// MaxParticles bounds the pool; births beyond it are dropped.
	MaxParticles int
	// EmitRate is births per second.
	EmitRate float64
	Lifetime Range // seconds
	Speed    Range // px/s, negative emits backwards
	Angle    Range // radians, see degrees

	StartScale, EndScale Range
	StartAlpha, EndAlpha Range

	Gravity Vec2 // px/s²
	// Palette tints births in order, wrapping. Empty means white.
	Palette []Color
	// Size is the drawn diameter at scale 1.
	Size float64
	// Offset shifts the birth point from the anchor.
	Offset    Vec2
	BlendMode BlendMode
}

// ParticleEmitter simulates a fixed pool of particles on the CPU. Live
// particles occupy particles[:alive]. Particles keep their own position once
// born, so moving the anchor leaves a trail behind.
type ParticleEmitter struct {
	config    EmitterConfig
	particles []particle
	alive     int

	emitting bool
	pending  float64 // fractional births carried between updates
	paletteI int

	rng  *rand.Rand
	x, y float64
}

const defaultPoolSize = 128

// NewParticleEmitter allocates the pool for cfg. A nil rng uses the global
// source.
func NewParticleEmitter(cfg EmitterConfig, rng *rand.Rand) *ParticleEmitter {
	n := cfg.MaxParticles
	if n <= 0 {
		n = defaultPoolSize
	}
	return &ParticleEmitter{config: cfg, particles: make([]particle, n), rng: rng}
}

// Start resumes births.
func (e *ParticleEmitter) Start() { e.emitting = true }

// Stop halts births; live particles finish their lives.
func (e *ParticleEmitter) Stop() { e.emitting = false }

// Reset halts births and clears the pool.
func (e *ParticleEmitter) Reset() {
	e.emitting = false
	e.alive = 0
	e.pending = 0
}

func (e *ParticleEmitter) IsActive() bool { return e.emitting }

func (e *ParticleEmitter) AliveCount() int { return e.alive }

// Config exposes the live configuration. Changes apply to future births.
func (e *ParticleEmitter) Config() *EmitterConfig { return &e.config }

// MoveTo sets the anchor.
func (e *ParticleEmitter) MoveTo(x, y float64) { e.x, e.y = x, y }

func (e *ParticleEmitter) Position() Vec2 { return Vec2{X: e.x, Y: e.y} }

// update ages live particles by dt seconds, then emits. Particles born in
// this call are not aged until the next one.
func (e *ParticleEmitter) update(dt float64) {
	e.age(dt)
	if !e.emitting || e.config.EmitRate <= 0 {
		return
	}
	e.pending += e.config.EmitRate * dt
	for ; e.pending >= 1; e.pending-- {
		if e.alive < len(e.particles) {
			e.birth()
		}
	}
}

func (e *ParticleEmitter) age(dt float64) {
	ax, ay := e.config.Gravity.X*dt, e.config.Gravity.Y*dt
	for i := 0; i < e.alive; {
		p := &e.particles[i]
		if p.life -= dt; p.life <= 0 {
			// Swap the last live particle into the hole.
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}
		p.vx += ax
		p.vy += ay
		p.x += p.vx * dt
		p.y += p.vy * dt
		t := p.progress()
		p.scale = p.scaleFade.at(t)
		p.alpha = p.alphaFade.at(t)
		i++
	}
}

// birth initializes particles[alive] from the config.
func (e *ParticleEmitter) birth() {
	c := &e.config
	dir := c.Angle.Random(e.rng)
	speed := c.Speed.Random(e.rng)
	life := c.Lifetime.Random(e.rng)
	if life <= 0 {
		life = 1
	}

	p := particle{
		x:         e.x + c.Offset.X,
		y:         e.y + c.Offset.Y,
		vx:        math.Cos(dir) * speed,
		vy:        math.Sin(dir) * speed,
		life:      life,
		maxLife:   life,
		scaleFade: fade{c.StartScale.Random(e.rng), c.EndScale.Random(e.rng)},
		alphaFade: fade{c.StartAlpha.Random(e.rng), c.EndAlpha.Random(e.rng)},
		color:     ColorWhite,
	}
	p.scale, p.alpha = p.scaleFade.from, p.alphaFade.from
	if n := len(c.Palette); n > 0 {
		p.color = c.Palette[e.paletteI%n]
		e.paletteI = (e.paletteI + 1) % n
	}

	e.particles[e.alive] = p
	e.alive++
}

// degrees converts a degree range to radians.
func degrees(lo, hi float64) Range {
	return Range{Min: lo * math.Pi / 180, Max: hi * math.Pi / 180}
}
