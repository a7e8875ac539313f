package flamerush

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/phanxgames/flamerush/ecs"
	"github.com/yohamta/donburi"
)

// Session is the state of one run, from spawn to game over. Collision
// handlers are methods on it, so every piece of mutable game state is
// reachable from a single value and a run can be tested in isolation.
//
// A Session is terminal once GameOver reports true; start a new one to play
// again.
type Session struct {
	ID        string
	StartedAt time.Time

	cfg      Config
	profile  *Profile
	recorder RunRecorder

	world   donburi.World
	player  donburi.Entity
	timers  *Scheduler
	spawner *Spawner

	score        int
	difficulty   float64
	coinsEarned  int
	shieldActive bool
	shieldTimer  TimerHandle
	shopOpen     bool
	gameOver     bool
	resolving    bool // inside resolveCollisions
	finished     bool // results saved

	ticks  uint64
	culled int

	overlapBuf []donburi.Entity
	cullBuf    []donburi.Entity
}

// NewSession starts a run: it creates the world and the player, and arms the
// obstacle and collectible spawn timers.
func NewSession(cfg Config, profile *Profile, rng *rand.Rand) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		StartedAt:  time.Now(),
		cfg:        cfg,
		profile:    profile,
		world:      donburi.NewWorld(),
		timers:     NewScheduler(),
		spawner:    NewSpawner(cfg.Spawn, rng),
		difficulty: cfg.Difficulty.Start,
	}
	s.player = ecs.NewPlayer(s.world,
		ecs.PositionData{X: cfg.Player.StartX, Y: cfg.Player.StartY},
		cfg.Player.Radius)

	s.timers.Every(cfg.Spawn.ObstaclePeriod, func() {
		s.spawner.SpawnObstacle(s.world, s.difficulty)
	})
	s.timers.Every(cfg.Spawn.CollectiblePeriod, func() {
		s.spawner.SpawnCollectibles(s.world)
	})
	return s
}

// SetRunRecorder makes the session record itself when it ends.
func (s *Session) SetRunRecorder(r RunRecorder) {
	s.recorder = r
}

// Tick advances the run by one frame of dt: timers fire, entities move and
// are culled, difficulty and score grow, and the player is tested against
// every obstacle and collectible. Feedback events are delivered before
// Tick returns. No-op while the shop is open or after game over.
func (s *Session) Tick(dt time.Duration) {
	if s.gameOver || s.shopOpen {
		return
	}
	s.ticks++
	s.timers.Advance(dt)

	integrate(s.world, dt.Seconds())
	var n int
	s.cullBuf, n = cull(s.world, s.cfg.playfield(), s.cfg.Cull.Margin, s.cullBuf)
	s.culled += n

	s.difficulty += s.cfg.Difficulty.Step
	s.score += int(math.Floor(s.difficulty * s.cfg.Difficulty.ScoreFactor))

	s.resolveCollisions()
	ecs.FeedbackEvent.ProcessEvents(s.world)
}

// resolveCollisions dispatches each overlapping pair to its handler once,
// obstacles first. A game over does not cut the tick short: later obstacles
// are still destroyed and collectibles still collected before the run's
// results are saved.
func (s *Session) resolveCollisions() {
	s.resolving = true
	defer func() {
		s.resolving = false
		if s.gameOver {
			s.finish()
		}
	}()

	groups := []struct {
		query  *donburi.Query
		handle func(donburi.Entity)
	}{
		{ecs.Obstacles, s.HitObstacle},
		{ecs.Coins, s.CollectCoin},
		{ecs.PowerUps, s.CollectShield},
	}

	p := s.PlayerPosition()
	r := s.cfg.Player.Radius
	for _, g := range groups {
		s.overlapBuf = appendOverlaps(s.world, g.query, p.X, p.Y, r, s.overlapBuf[:0])
		for _, e := range s.overlapBuf {
			if !s.world.Valid(e) {
				continue
			}
			g.handle(e)
		}
	}
}

// MovePlayer moves the flame to (x, y), clamped to the player bounds.
// Ignored while the shop is open or after game over.
func (s *Session) MovePlayer(x, y float64) {
	if s.shopOpen || s.gameOver {
		return
	}
	b := s.cfg.Player
	pos := ecs.Position.Get(s.world.Entry(s.player))
	pos.X = max(b.BoundsX.Min, min(x, b.BoundsX.Max))
	pos.Y = max(b.BoundsY.Min, min(y, b.BoundsY.Max))
}

// OpenShop pauses the run. It fails after game over.
func (s *Session) OpenShop() error {
	if s.gameOver {
		return ErrGameOver
	}
	s.shopOpen = true
	s.timers.Pause()
	return nil
}

// CloseShop resumes the run.
func (s *Session) CloseShop() {
	if !s.shopOpen {
		return
	}
	s.shopOpen = false
	s.timers.Resume()
}

// PlayerPosition returns the flame's position.
func (s *Session) PlayerPosition() Vec2 {
	pos := ecs.Position.Get(s.world.Entry(s.player))
	return Vec2{X: pos.X, Y: pos.Y}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Difficulty returns the current difficulty multiplier.
func (s *Session) Difficulty() float64 { return s.difficulty }

// CoinsEarned returns the coins collected during this run.
func (s *Session) CoinsEarned() int { return s.coinsEarned }

// ShieldActive reports whether obstacle hits are currently absorbed.
func (s *Session) ShieldActive() bool { return s.shieldActive }

// ShieldRemaining returns the time left on the shield countdown.
func (s *Session) ShieldRemaining() time.Duration { return s.shieldTimer.Remaining() }

// ShopOpen reports whether the shop has paused the run.
func (s *Session) ShopOpen() bool { return s.shopOpen }

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Profile returns the persisted profile the session plays against.
func (s *Session) Profile() *Profile { return s.profile }

// World returns the entity world.
func (s *Session) World() donburi.World { return s.world }

// Timers returns the session scheduler.
func (s *Session) Timers() *Scheduler { return s.timers }

// Ticks returns the number of simulated frames.
func (s *Session) Ticks() uint64 { return s.ticks }

// Culled returns the number of entities removed for leaving the playfield.
func (s *Session) Culled() int { return s.culled }
