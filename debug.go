package flamerush

import (
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/flamerush/ecs"
)

var logger = log.New(os.Stderr, "[flamerush] ", log.LstdFlags)

// debugStats samples loop statistics once per second of game time. Only
// active when Config.Debug is set.
type debugStats struct {
	enabled bool
	elapsed time.Duration
	last    hudStats
}

// sample is called once per Update with the tick length.
func (d *debugStats) sample(s *Session, dt time.Duration) {
	if !d.enabled {
		return
	}
	d.elapsed += dt
	if d.elapsed < time.Second {
		return
	}
	d.elapsed -= time.Second

	w := s.World()
	d.last = hudStats{
		fps:      ebiten.ActualFPS(),
		tps:      ebiten.ActualTPS(),
		entities: w.Len(),
		shield:   s.ShieldRemaining().Seconds(),
	}
	logger.Printf("ticks=%d obstacles=%d coins=%d powerups=%d culled=%d score=%d difficulty=%.3f timers=%d",
		s.Ticks(), ecs.Obstacles.Count(w), ecs.Coins.Count(w), ecs.PowerUps.Count(w),
		s.Culled(), s.Score(), s.Difficulty(), s.Timers().Len())
}

// hud returns the stats line to draw, or nil when debug is off.
func (d *debugStats) hud() *hudStats {
	if !d.enabled {
		return nil
	}
	return &d.last
}
