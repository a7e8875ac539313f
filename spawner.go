package flamerush

import (
	"math/rand/v2"

	"github.com/phanxgames/flamerush/ecs"
	"github.com/yohamta/donburi"
)

var obstacleVariants = [...]ecs.Variant{ecs.VariantStatic, ecs.VariantMoving, ecs.VariantRotating}

// Spawner creates obstacles and collectibles with randomized parameters.
type Spawner struct {
	cfg SpawnConfig
	rng *rand.Rand
}

// NewSpawner returns a spawner drawing from rng. A nil rng uses the global
// source.
func NewSpawner(cfg SpawnConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

func (sp *Spawner) intN(n int) int {
	if sp.rng == nil {
		return rand.IntN(n)
	}
	return sp.rng.IntN(n)
}

func (sp *Spawner) float64() float64 {
	if sp.rng == nil {
		return rand.Float64()
	}
	return sp.rng.Float64()
}

// SpawnObstacle creates one obstacle above the playfield. Its fall speed is
// the base speed scaled by difficulty at spawn time.
func (sp *Spawner) SpawnObstacle(w donburi.World, difficulty float64) donburi.Entity {
	variant := obstacleVariants[sp.intN(len(obstacleVariants))]

	pos := ecs.PositionData{X: float64(sp.cfg.X.RandomInt(sp.rng)), Y: sp.cfg.ObstacleY}
	var vel ecs.VelocityData
	var spin ecs.SpinData
	switch variant {
	case ecs.VariantMoving:
		vel.X = float64(sp.cfg.Drift.RandomInt(sp.rng))
	case ecs.VariantRotating:
		spin.Rate = float64(sp.cfg.SpinRate.RandomInt(sp.rng))
	}
	vel.Y = sp.cfg.ObstacleSpeed * difficulty

	body := ecs.BodyData{Radius: sp.cfg.EntityRadius, Scale: sp.cfg.ObstacleScale.Random(sp.rng)}
	return ecs.NewObstacle(w, variant, pos, vel, spin, body, sp.cfg.ObstacleTint)
}

// SpawnCollectibles creates one coin and, with probability ShieldChance, one
// shield power-up. ok reports whether the power-up was created.
func (sp *Spawner) SpawnCollectibles(w donburi.World) (coin, shield donburi.Entity, ok bool) {
	coin = ecs.NewCoin(w,
		ecs.PositionData{X: float64(sp.cfg.X.RandomInt(sp.rng)), Y: sp.cfg.CoinY},
		ecs.VelocityData{Y: sp.cfg.CoinSpeed},
		ecs.BodyData{Radius: sp.cfg.EntityRadius, Scale: sp.cfg.CoinScale},
		sp.cfg.CoinTint)

	if sp.float64() >= sp.cfg.ShieldChance {
		return coin, 0, false
	}
	shield = ecs.NewPowerUp(w,
		ecs.PositionData{X: float64(sp.cfg.X.RandomInt(sp.rng)), Y: sp.cfg.ShieldY},
		ecs.VelocityData{Y: sp.cfg.ShieldSpeed},
		ecs.BodyData{Radius: sp.cfg.EntityRadius, Scale: sp.cfg.ShieldScale},
		sp.cfg.ShieldTint)
	return coin, shield, true
}
