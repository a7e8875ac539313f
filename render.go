package flamerush

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/flamerush/ecs"
	"github.com/yohamta/donburi"
)

const glowSize = 32

var (
	colorGameOver = ColorFromHex(0xff4d4d)
	colorPowerUp  = ColorFromHex(0xffffff)
)

// renderer draws a session. All world geometry is shifted by the camera
// shake offset; the shop panel and flash overlay are not.
type renderer struct {
	background Color

	white *ebiten.Image // 1x1 sub-image used as the DrawTriangles source
	glow  *ebiten.Image // soft disc used for particles

	verts []ebiten.Vertex
	inds  []uint16
	op    ebiten.DrawImageOptions
}

func newRenderer(background Color) *renderer {
	return &renderer{background: background}
}

// ensureImages lazily creates the shared textures on the first Draw.
func (r *renderer) ensureImages() {
	if r.white != nil {
		return
	}
	base := ebiten.NewImage(3, 3)
	base.Fill(ColorWhite.toRGBA())
	r.white = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	r.glow = ebiten.NewImage(glowSize, glowSize)
	c := float32(glowSize) / 2
	for i := 4; i >= 1; i-- {
		a := 0.25 * float64(5-i)
		vector.DrawFilledCircle(r.glow, c, c, c*float32(i)/4, ColorWhite.WithAlpha(a).toRGBA(), true)
	}
}

// drawWorld renders entities, particles, and the player.
func (r *renderer) drawWorld(dst *ebiten.Image, s *Session, fx *flameFX, ox, oy float64) {
	r.ensureImages()
	dst.Fill(r.background.toRGBA())

	w := s.World()
	ecs.Obstacles.Each(w, func(entry *donburi.Entry) {
		pos := ecs.Position.Get(entry)
		half := ecs.Body.Get(entry).EffectiveRadius()
		angle := 0.0
		if entry.HasComponent(ecs.Spin) {
			angle = ecs.Spin.Get(entry).Angle * math.Pi / 180
		}
		tint := ColorFromHex(ecs.Tint.Get(entry).RGB)
		r.drawSquare(dst, pos.X+ox, pos.Y+oy, half, angle, tint)
	})
	ecs.Coins.Each(w, func(entry *donburi.Entry) {
		pos := ecs.Position.Get(entry)
		rad := float32(ecs.Body.Get(entry).EffectiveRadius())
		tint := ColorFromHex(ecs.Tint.Get(entry).RGB)
		x, y := float32(pos.X+ox), float32(pos.Y+oy)
		vector.DrawFilledCircle(dst, x, y, rad, tint.toRGBA(), true)
		vector.StrokeCircle(dst, x, y, rad*0.6, 2, colorStroke.WithAlpha(0.3).toRGBA(), true)
	})
	ecs.PowerUps.Each(w, func(entry *donburi.Entry) {
		pos := ecs.Position.Get(entry)
		rad := float32(ecs.Body.Get(entry).EffectiveRadius())
		tint := ColorFromHex(ecs.Tint.Get(entry).RGB)
		x, y := float32(pos.X+ox), float32(pos.Y+oy)
		vector.DrawFilledCircle(dst, x, y, rad, tint.WithAlpha(0.6).toRGBA(), true)
		vector.StrokeCircle(dst, x, y, rad, 3, colorPowerUp.toRGBA(), true)
	})

	for _, e := range fx.emitters() {
		r.drawParticles(dst, e, ox, oy)
	}

	p := s.PlayerPosition()
	core := Palette(fx.name)[0]
	vector.DrawFilledCircle(dst, float32(p.X+ox), float32(p.Y+oy), float32(s.cfg.Player.Radius)*0.5, core.toRGBA(), true)
	if s.ShieldActive() {
		vector.StrokeCircle(dst, float32(p.X+ox), float32(p.Y+oy), float32(s.cfg.Player.Radius)+6, 2,
			ColorFromHex(s.cfg.Spawn.ShieldTint).WithAlpha(0.8).toRGBA(), true)
	}
}

// drawSquare draws a filled square of half-size half centered at (cx, cy)
// and rotated by angle radians.
func (r *renderer) drawSquare(dst *ebiten.Image, cx, cy, half, angle float64, c Color) {
	sin, cos := math.Sincos(angle)
	rgba := c.toRGBA()
	cr, cg, cb, ca := float32(rgba.R)/255, float32(rgba.G)/255, float32(rgba.B)/255, float32(rgba.A)/255

	r.verts = r.verts[:0]
	for _, corner := range [...]Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		lx, ly := corner.X*half, corner.Y*half
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(cx + lx*cos - ly*sin),
			DstY:   float32(cy + lx*sin + ly*cos),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.inds = append(r.inds[:0], 0, 1, 2, 0, 2, 3)
	dst.DrawTriangles(r.verts, r.inds, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawParticles draws each live particle as a tinted glow.
func (r *renderer) drawParticles(dst *ebiten.Image, e *ParticleEmitter, ox, oy float64) {
	if e.alive == 0 {
		return
	}
	op := &r.op
	base := e.config.Size / glowSize
	for i := 0; i < e.alive; i++ {
		p := &e.particles[i]
		s := base * float64(p.scale)
		if s <= 0 {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(-glowSize/2, -glowSize/2)
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(p.x+ox, p.y+oy)

		a := float32(p.alpha)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(p.color.R)*a, float32(p.color.G)*a, float32(p.color.B)*a, a)
		op.Blend = e.config.BlendMode.EbitenBlend()
		dst.DrawImage(r.glow, op)
	}
}

// drawGameOver renders the end-of-run panel with the best recorded runs
// below the restart hint.
func (r *renderer) drawGameOver(dst *ebiten.Image, s *Session, runs []Run, field Rect) {
	fillRect(dst, field, Color{A: 0.6})
	title := Rect{X: 0, Y: field.Height/2 - 90, Width: field.Width, Height: 40}
	drawTextCentered(dst, "GAME OVER", title, 3, colorGameOver)
	score := title
	score.Y += 60
	drawTextCentered(dst, scoreText(s.Score()), score, 2, ColorWhite)
	best := score
	best.Y += 36
	drawTextCentered(dst, highScoreText(s.Profile().HighScore()), best, 1.5, colorHighScore)
	hint := best
	hint.Y += 50
	drawTextCentered(dst, "Tap to restart", hint, 1.5, ColorWhite.WithAlpha(0.8))

	if len(runs) == 0 {
		return
	}
	line := hint
	line.Y += 50
	drawTextCentered(dst, "Best runs", line, 1.5, colorHighScore)
	for i, run := range runs {
		line.Y += 24
		c := ColorWhite
		if run.ID == s.ID {
			c = colorCoins
		}
		drawTextCentered(dst, runText(i+1, run), line, 1.2, c)
	}
}

// drawFlash overlays the camera flash color.
func (r *renderer) drawFlash(dst *ebiten.Image, cam *Camera) {
	if c, ok := cam.FlashColor(); ok {
		fillRect(dst, cam.Viewport, c)
	}
}

func fillRect(dst *ebiten.Image, r Rect, c Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), false)
}

func strokeRect(dst *ebiten.Image, r Rect, width float32, c Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, c.toRGBA(), false)
}
