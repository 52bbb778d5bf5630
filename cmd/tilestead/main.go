// Tilestead opens a window with a generated tilemap and a building spawn
// menu. Buildings can be dragged around and snap to tile centers.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/tilestead"
	"github.com/phanxgames/tilestead/host"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	debug := flag.Bool("debug", false, "trace picking and drag every tick")
	flag.Parse()

	cfg := tilestead.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = tilestead.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	scene, err := tilestead.NewScene(cfg)
	if err != nil {
		log.Fatal(err)
	}
	scene.SetDebugMode(*debug)
	scene.SpawnTilemap()
	camera := scene.NewCamera(tilestead.Rect{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	})

	game, err := host.NewGame(cfg, scene, camera)
	if err != nil {
		log.Fatal(err)
	}
	if err := host.Run(cfg, game); err != nil {
		log.Fatal(err)
	}
}
