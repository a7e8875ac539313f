// Package flamerush is a small arcade game for [Ebitengine]: a flame dodges
// falling obstacles and collects coins and shield power-ups while the fall
// speed and score rate climb. Coins persist between runs and buy flame
// colors in a shop.
//
// # Quick start
//
// The simplest way to play is [Run], which opens the profile store, creates
// a window, and blocks in the game loop:
//
//	err := flamerush.Run(flamerush.RunConfig{
//		Config: flamerush.DefaultConfig(),
//		DBPath: "flamerush.db",
//	})
//
// For full control, build a [Game] yourself and hand it to
// [ebiten.RunGame]:
//
//	g, err := flamerush.NewGame(flamerush.DefaultConfig(), flamerush.NewMemoryStore(), nil)
//	if err != nil {
//		return err
//	}
//	return ebiten.RunGame(g)
//
// # Sessions
//
// A [Session] is one run, from spawn to game over. It owns the entity world
// (see package ecs), a logical-clock [Scheduler] for spawn and shield
// timers, and the score and difficulty counters. Session.Tick advances the
// run by one frame and needs no window, so gameplay is testable headless:
//
//	s := flamerush.NewSession(cfg, profile, rng)
//	for !s.GameOver() {
//		s.Tick(time.Second / 60)
//	}
//
// # Persistence
//
// [Profile] reads and writes the player's coins, high score, selected flame,
// and unlocked colors through a [Store]. [MemoryStore] keeps them in
// process; [SQLiteStore] keeps them in a sqlite file together with a history
// of finished runs.
//
// # Shop
//
// [Shop] implements purchase and selection rules and talks to the screen
// only through [ShopPresenter], so it can be driven by tests or by the
// built-in panel.
//
// # Scripted input
//
// [LoadTestScript] parses a JSON list of pointer actions which a [Game]
// replays one frame at a time. Combined with Game.DisableDeviceInput this
// gives deterministic end-to-end runs.
//
// [Ebitengine]: https://ebitengine.org
package flamerush
