package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PositionData is an entity's world position in playfield pixels.
type PositionData struct {
	X, Y float64
}

// VelocityData is an entity's linear velocity in pixels per second.
type VelocityData struct {
	X, Y float64
}

// SpinData holds the rotation of an entity in degrees and its angular
// velocity in degrees per second.
type SpinData struct {
	Angle float64
	Rate  float64
}

// BodyData is the circular collision body. The effective radius is
// Radius * Scale.
type BodyData struct {
	Radius float64
	Scale  float64
}

// EffectiveRadius returns the scale-adjusted collision radius.
func (b BodyData) EffectiveRadius() float64 {
	return b.Radius * b.Scale
}

// TintData is the 0xRRGGBB color an entity is drawn with.
type TintData struct {
	RGB uint32
}

// Variant selects obstacle movement behavior.
type Variant uint8

const (
	VariantStatic   Variant = iota // falls straight down
	VariantMoving                  // drifts horizontally while falling
	VariantRotating                // spins while falling
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantStatic:
		return "static"
	case VariantMoving:
		return "moving"
	case VariantRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// Component types.
var (
	Position = donburi.NewComponentType[PositionData]()
	Velocity = donburi.NewComponentType[VelocityData]()
	Spin     = donburi.NewComponentType[SpinData]()
	Body     = donburi.NewComponentType[BodyData]()
	Tint     = donburi.NewComponentType[TintData]()
	Shape    = donburi.NewComponentType[Variant]()
)

// Tags identifying entity kinds.
var (
	Player   = donburi.NewTag()
	Obstacle = donburi.NewTag()
	Coin     = donburi.NewTag()
	PowerUp  = donburi.NewTag()
)

// Queries over the world. Obstacles, Coins, and PowerUps are the three groups
// tested against the player each tick.
var (
	Players   = donburi.NewQuery(filter.Contains(Player, Position, Body))
	Obstacles = donburi.NewQuery(filter.Contains(Obstacle, Position, Body))
	Coins     = donburi.NewQuery(filter.Contains(Coin, Position, Body))
	PowerUps  = donburi.NewQuery(filter.Contains(PowerUp, Position, Body))

	// Movers is every entity with a velocity.
	Movers = donburi.NewQuery(filter.Contains(Position, Velocity))
	// Spinners is every entity with angular velocity.
	Spinners = donburi.NewQuery(filter.Contains(Spin))
	// Falling is every entity subject to off-screen culling.
	Falling = donburi.NewQuery(filter.And(
		filter.Contains(Position, Velocity),
		filter.Not(filter.Contains(Player)),
	))
)

// NewPlayer creates the player flame entity.
func NewPlayer(w donburi.World, pos PositionData, radius float64) donburi.Entity {
	e := w.Create(Player, Position, Body)
	entry := w.Entry(e)
	Position.SetValue(entry, pos)
	Body.SetValue(entry, BodyData{Radius: radius, Scale: 1})
	return e
}

// NewObstacle creates an obstacle entity. spin.Rate is ignored unless the
// variant is VariantRotating.
func NewObstacle(w donburi.World, variant Variant, pos PositionData, vel VelocityData, spin SpinData, body BodyData, tint uint32) donburi.Entity {
	e := w.Create(Obstacle, Position, Velocity, Spin, Body, Tint, Shape)
	entry := w.Entry(e)
	Position.SetValue(entry, pos)
	Velocity.SetValue(entry, vel)
	if variant != VariantRotating {
		spin.Rate = 0
	}
	Spin.SetValue(entry, spin)
	Body.SetValue(entry, body)
	Tint.SetValue(entry, TintData{RGB: tint})
	Shape.SetValue(entry, variant)
	return e
}

// NewCoin creates a coin collectible.
func NewCoin(w donburi.World, pos PositionData, vel VelocityData, body BodyData, tint uint32) donburi.Entity {
	return newCollectible(w, Coin, pos, vel, body, tint)
}

// NewPowerUp creates a shield power-up collectible.
func NewPowerUp(w donburi.World, pos PositionData, vel VelocityData, body BodyData, tint uint32) donburi.Entity {
	return newCollectible(w, PowerUp, pos, vel, body, tint)
}

func newCollectible(w donburi.World, tag donburi.IComponentType, pos PositionData, vel VelocityData, body BodyData, tint uint32) donburi.Entity {
	e := w.Create(tag, Position, Velocity, Body, Tint)
	entry := w.Entry(e)
	Position.SetValue(entry, pos)
	Velocity.SetValue(entry, vel)
	Body.SetValue(entry, body)
	Tint.SetValue(entry, TintData{RGB: tint})
	return e
}
