package flamerush

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/flamerush/ecs"
	"github.com/yohamta/donburi"
)

const (
	flashDuration   = 500 * time.Millisecond
	absorbShake     = 100 * time.Millisecond
	absorbIntensity = 0.01
)

var colorFlash = ColorFromHex(0xff0000)

// shopPanel is the screen area of the shop overlay.
var shopPanel = Rect{X: 20, Y: 80, Width: 320, Height: 480}

// Game implements ebiten.Game. It owns the current Session and everything
// that outlives a single run: the store, the shop, effects, and input.
type Game struct {
	cfg   Config
	store Store
	rng   *rand.Rand
	field Rect

	session  *Session
	shop     *Shop
	shopView *shopView
	camera   *Camera
	fx       *flameFX
	renderer *renderer
	sfx      SoundPlayer
	debug    debugStats

	bestRuns []Run // shown on the game-over panel

	input      inputState
	testRunner *TestRunner
	exitOnDone bool
	restarts   int

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewGame validates cfg, loads the profile from store, and starts the first
// session. A nil rng is seeded from the clock.
func NewGame(cfg Config, store Store, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, err := ParseHexColor(cfg.Window.Background)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	g := &Game{
		cfg:           cfg,
		store:         store,
		rng:           rng,
		field:         cfg.playfield(),
		shopView:      newShopView(shopPanel),
		renderer:      newRenderer(bg),
		sfx:           nopSound{},
		debug:         debugStats{enabled: cfg.Debug},
		ScreenshotDir: "screenshots",
	}
	g.input.device = true
	g.camera = newCamera(g.field, rng)
	g.shop = NewShop(g.shopView)
	g.shop.OnSelect = func(name string) {
		g.fx.setFlame(name)
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart begins a new session from the persisted profile.
func (g *Game) restart() error {
	p, err := LoadProfile(g.store)
	if err != nil {
		return fmt.Errorf("flamerush: load profile: %w", err)
	}
	s := NewSession(g.cfg, p, g.rng)
	if rec, ok := g.store.(RunRecorder); ok {
		s.SetRunRecorder(rec)
	}
	ecs.FeedbackEvent.Subscribe(s.World(), g.onFeedback)

	if g.session != nil {
		g.restarts++
	}
	g.bestRuns = nil
	g.session = s
	if g.fx == nil {
		g.fx = newFlameFX(p.CurrentFlame(), ColorFromHex(g.cfg.Spawn.ShieldTint), g.rng)
	} else {
		g.fx.setFlame(p.CurrentFlame())
		g.fx.shield(false)
	}
	g.fx.follow(s.PlayerPosition())
	return nil
}

// onFeedback turns session events into camera, particle, and sound effects.
func (g *Game) onFeedback(_ donburi.World, f ecs.Feedback) {
	switch f.Kind {
	case ecs.FeedbackCoin:
		g.camera.Shake(g.cfg.Coin.ShakeDuration, g.cfg.Coin.ShakeIntensity)
		g.sfx.Play(SoundCoin)
	case ecs.FeedbackShieldOn:
		g.fx.shield(true)
		g.sfx.Play(SoundShield)
	case ecs.FeedbackShieldOff:
		g.fx.shield(false)
	case ecs.FeedbackAbsorbed:
		g.camera.Shake(absorbShake, absorbIntensity)
	case ecs.FeedbackGameOver:
		g.fx.shield(false)
		g.camera.Flash(flashDuration, colorFlash)
		g.sfx.Play(SoundGameOver)
		g.loadBestRuns()
	}
}

// bestRunsShown is how many runs the game-over panel lists.
const bestRunsShown = 3

// loadBestRuns fetches the run history for the game-over panel when the
// store keeps one.
func (g *Game) loadBestRuns() {
	h, ok := g.store.(RunHistory)
	if !ok {
		return
	}
	runs, err := h.TopRuns(bestRunsShown)
	if err != nil {
		logger.Printf("load best runs: %v", err)
		return
	}
	g.bestRuns = runs
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := g.cfg.tickDuration()

	if g.testRunner != nil {
		g.testRunner.step(g)
		if g.exitOnDone && g.testRunner.Done() && g.input.pending() == 0 {
			return ebiten.Termination
		}
	}
	ptr := g.input.poll()

	g.camera.update(float32(dt.Seconds()))
	g.shopView.update(dt)

	switch s := g.session; {
	case s.GameOver():
		if ptr.pressed {
			if err := g.restart(); err != nil {
				return err
			}
		}
	case g.shop.IsOpen():
		if ptr.pressed {
			g.pressShop(ptr.x, ptr.y)
		}
	case ptr.pressed && shopButton.Contains(ptr.x, ptr.y):
		if err := g.shop.Open(s); err != nil {
			logger.Printf("open shop: %v", err)
		}
	case ptr.moved:
		s.MovePlayer(ptr.x, ptr.y)
	}

	g.session.Tick(dt)
	g.fx.follow(g.session.PlayerPosition())
	g.fx.update(dt.Seconds())
	g.debug.sample(g.session, dt)
	return nil
}

// pressShop routes a press inside the open shop.
func (g *Game) pressShop(x, y float64) {
	name, closeBtn := g.shopView.hit(x, y)
	switch {
	case closeBtn:
		g.shop.Close()
	case name != "":
		err := g.shop.Select(name)
		if err != nil && !errors.Is(err, ErrInsufficientCoins) {
			logger.Printf("select %s: %v", name, err)
		}
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	ox, oy := g.camera.Offset()
	g.renderer.drawWorld(screen, s, g.fx, ox, oy)
	drawHUD(screen, s, ox, oy, g.debug.hud())
	if s.GameOver() {
		g.renderer.drawGameOver(screen, s, g.bestRuns, g.field)
	}
	g.shopView.draw(screen)
	g.renderer.drawFlash(screen, g.camera)
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The playfield has a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Session returns the current run.
func (g *Game) Session() *Session { return g.session }

// Shop returns the cosmetic shop.
func (g *Game) Shop() *Shop { return g.shop }

// Camera returns the feedback camera.
func (g *Game) Camera() *Camera { return g.camera }

// Flame returns the cosmetic the flame trail is currently drawn with.
func (g *Game) Flame() string { return g.fx.name }

// BestRuns returns the runs listed on the game-over panel, best first.
func (g *Game) BestRuns() []Run { return g.bestRuns }

// Restarts returns how many sessions were started after the first.
func (g *Game) Restarts() int { return g.restarts }

// SetSound replaces the sound player. nil mutes.
func (g *Game) SetSound(p SoundPlayer) {
	if p == nil {
		p = nopSound{}
	}
	g.sfx = p
}

// DisableDeviceInput stops reading the mouse and touchscreen so only
// injected input drives the game.
func (g *Game) DisableDeviceInput() {
	g.input.device = false
}
