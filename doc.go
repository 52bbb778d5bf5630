// Package tilestead is the simulation core of a tile-based building
// placement game: a grid of tiles, buildings placed on top of it, and the
// pointer pipeline that lets a player hover, press and drag those buildings
// onto tile centers.
//
// Everything lives in a [donburi] world. Tilemaps, tiles, buildings, cameras
// and pointers are entities; the component tables in this package are the
// only way systems reach them.
//
// # Tick pipeline
//
// [Scene.Update] runs one tick in a fixed order:
//
//  1. Placement requests queued with [Scene.RequestSpawn] are handled.
//  2. The [InputSource] snapshot is copied into pointer entities.
//  3. Cameras advance their scroll animations.
//  4. The picking backend maps each pointer through its camera into world
//     space and publishes one [PointerHits] list per pointer on
//     [PointerHitsEvent]. Tile hits carry the tilemap's Z as depth;
//     building hits carry the negated building Z, so a lower depth is
//     closer to the viewer.
//  5. The [InteractionTracker] picks a winner per pointer and writes
//     [Interaction] state (none, hovered, pressed).
//  6. The [DragController] starts, follows and ends drags. Followed
//     positions snap to the first tilemap's cell centers.
//  7. Visual feedback rewrites tile and building tints from the
//     interaction state.
//
// # Quick start
//
//	cfg := tilestead.DefaultConfig()
//	scene, err := tilestead.NewScene(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene.SpawnTilemap()
//	scene.NewCamera(tilestead.Rect{Width: 1280, Height: 720})
//	scene.SetInput(myInput)
//	scene.RequestSpawn("Basic Chapel")
//	for {
//		scene.Update()
//	}
//
// The host package runs a Scene in an Ebitengine window.
//
// # Headless runs
//
// [ScriptedInput] replays pointer events one per tick, and [LoadTestScript]
// turns a JSON script into a [TestRunner]:
//
//	{"steps": [
//		{"action": "spawn", "kind": "Basic Chapel"},
//		{"action": "drag", "fromX": 640, "fromY": 360, "toX": 700, "toY": 360, "frames": 10}
//	]}
//
// [Scene.HitReport] summarizes the last tick for comparison.
//
// [donburi]: https://github.com/yohamta/donburi
package tilestead
