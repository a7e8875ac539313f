package flamerush

import (
	"time"

	"github.com/phanxgames/flamerush/ecs"
	"github.com/yohamta/donburi"
)

func (s *Session) publish(kind ecs.FeedbackKind, value int) {
	p := s.PlayerPosition()
	ecs.FeedbackEvent.Publish(s.world, ecs.Feedback{Kind: kind, X: p.X, Y: p.Y, Value: value})
}

// CollectCoin removes the coin and credits its value to the profile.
func (s *Session) CollectCoin(coin donburi.Entity) {
	s.world.Remove(coin)
	s.coinsEarned += s.cfg.Coin.Value
	if err := s.profile.AddCoins(s.cfg.Coin.Value); err != nil {
		logger.Printf("coin pickup: %v", err)
	}
	s.publish(ecs.FeedbackCoin, s.cfg.Coin.Value)
}

// CollectShield removes the power-up and raises the shield for the configured
// duration. A power-up touched on the tick the run ends is consumed without
// effect.
func (s *Session) CollectShield(powerUp donburi.Entity) {
	s.world.Remove(powerUp)
	if s.gameOver {
		return
	}
	s.shieldActive = true

	expire := func() {
		s.shieldActive = false
		s.publish(ecs.FeedbackShieldOff, 0)
	}
	if s.cfg.Shield.ResetOnPickup {
		s.shieldTimer.Cancel()
		s.shieldTimer = s.timers.After(s.cfg.Shield.Duration, expire)
	} else {
		h := s.timers.After(s.cfg.Shield.Duration, expire)
		if !s.shieldTimer.Active() {
			s.shieldTimer = h
		}
	}
	s.publish(ecs.FeedbackShieldOn, int(s.cfg.Shield.Duration/time.Millisecond))
}

// HitObstacle removes the obstacle and ends the run unless shielded.
func (s *Session) HitObstacle(obstacle donburi.Entity) {
	s.world.Remove(obstacle)
	if s.shieldActive {
		s.publish(ecs.FeedbackAbsorbed, 0)
		return
	}
	s.end()
}

// end moves the session into its terminal state and stops its timers.
// During collision resolution the results are saved once the tick's
// remaining overlaps have been handled; otherwise they are saved at once.
func (s *Session) end() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.shieldActive = false
	s.timers.CancelAll()
	if !s.resolving {
		s.finish()
	}
}

// finish saves the high score and run history and announces the game over.
// It runs once per session.
func (s *Session) finish() {
	if s.finished {
		return
	}
	s.finished = true

	best, err := s.profile.RecordScore(s.score)
	if err != nil {
		logger.Printf("save high score: %v", err)
	}
	if s.recorder != nil {
		run := Run{
			ID:          s.ID,
			Score:       s.score,
			CoinsEarned: s.coinsEarned,
			Difficulty:  s.difficulty,
			Flame:       s.profile.CurrentFlame(),
			StartedAt:   s.StartedAt,
			EndedAt:     time.Now(),
		}
		if err := s.recorder.RecordRun(run); err != nil {
			logger.Printf("record run: %v", err)
		}
	}
	logger.Printf("game over: session=%s score=%d high_score=%d new_best=%t ticks=%d",
		s.ID, s.score, s.profile.HighScore(), best, s.ticks)
	s.publish(ecs.FeedbackGameOver, s.score)
}
