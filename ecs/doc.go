// Package ecs holds the Donburi component types, queries, and events that
// make up flamerush's entity model.
//
// Every falling thing in a run is an entity in a [donburi.World]: the player
// flame, obstacles, coins, and shield power-ups. The root package spawns and
// moves them; this package only describes their shape.
//
// Usage:
//
//	world := donburi.NewWorld()
//	e := ecs.NewObstacle(world, ecs.VariantStatic, ecs.PositionData{X: 120, Y: -100}, ...)
//	ecs.Obstacles.Each(world, func(entry *donburi.Entry) { ... })
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
