// Package partsrun is a small top-down collection game for [Ebitengine].
//
// The player steers a square around a fixed walled map and tags parts by
// walking within [TagRadius] of them. Score accrues continuously with
// elapsed time, and every tag adds a flat [TagBonus].
//
// # Quick start
//
//	game, err := partsrun.NewGame()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := partsrun.Run(game, partsrun.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// # Frame loop
//
// Each Update samples keyboard input into a [KeyState], then calls
// [Game.Tick], which:
//
//   - computes dt in 60 Hz reference frames from the injected [Clock],
//     clamped to [MaxDelta];
//   - moves the player with [MovePlayer], discarding the whole step when
//     it would overlap a wall;
//   - runs [UpdateScore], which tags parts in range and re-syncs the [HUD].
//
// Draw repaints the map with [Renderer] and the HUD panel below it.
//
// The HUD only refreshes on frames that tag a part, so the displayed score
// trails the live score in between.
//
// # Scripted play
//
// [LoadTestScript] parses a JSON list of keydown, keyup, wait and screenshot
// steps. Attach the runner with [Game.SetTestRunner]; keys can also be queued
// directly with [Game.InjectKeyDown] and [Game.InjectKeyUp].
//
// # ECS integration
//
// Tag events can be forwarded to a [Donburi] world through the adapter in
// partsrun/ecs; see [EventSink].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package partsrun
