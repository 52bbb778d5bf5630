// Pickreport runs a JSON input script against a headless scene and prints
// the hit lists and building positions after every tick.
//
//	pickreport -script drag.json [-config tilestead.yaml] [-max-ticks 600]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/tilestead"
)

func main() {
	scriptPath := flag.String("script", "", "JSON test script (required)")
	configPath := flag.String("config", "", "YAML config file")
	maxTicks := flag.Int("max-ticks", 600, "stop after this many ticks")
	quiet := flag.Bool("quiet", false, "print only the final report")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := tilestead.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = tilestead.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	data, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}
	runner, err := tilestead.LoadTestScript(data)
	if err != nil {
		log.Fatal(err)
	}

	scene, err := tilestead.NewScene(cfg)
	if err != nil {
		log.Fatal(err)
	}
	scene.SpawnTilemap()
	scene.NewCamera(tilestead.Rect{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	})
	scene.SetTestRunner(runner)

	for i := 0; i < *maxTicks && !runner.Done(); i++ {
		scene.Update()
		if !*quiet {
			fmt.Print(scene.HitReport())
		}
	}
	if *quiet {
		fmt.Print(scene.HitReport())
	}
	if !runner.Done() {
		log.Fatalf("script did not finish within %d ticks", *maxTicks)
	}
}
