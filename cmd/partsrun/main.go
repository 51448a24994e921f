// Partsrun opens the game window: steer with the arrow keys or WASD and walk
// over parts to tag them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/partsrun"
	"github.com/phanxgames/partsrun/ecs"
	"github.com/yohamta/donburi"
)

var (
	configPath = flag.String("config", "partsrun.toml", "TOML run config (missing file uses defaults)")
	scriptPath = flag.String("script", "", "JSON test script to play back")
	debugFlag  = flag.Bool("debug", false, "print frame timing to stderr")
)

func main() {
	flag.Parse()

	cfg, err := partsrun.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debugFlag {
		cfg.Debug = true
	}

	game, err := partsrun.NewGame()
	if err != nil {
		log.Fatal(err)
	}

	// Tag events go through a Donburi world so other systems can subscribe.
	world := donburi.NewWorld()
	game.SetEventSink(ecs.NewDonburiSink(world))
	ecs.TagEventType.Subscribe(world, func(w donburi.World, e partsrun.TagEvent) {
		_, _ = fmt.Fprintf(os.Stderr, "[partsrun] tagged %q at (%.0f, %.0f): %d/%d, score %.0f\n",
			e.Name, e.Pos.X, e.Pos.Y, e.Found, len(game.World.Parts), e.Score)
	})

	var runner *partsrun.TestRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("failed to read script: %v", err)
		}
		runner, err = partsrun.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		game.SetTestRunner(runner)
	}

	game.SetUpdateFunc(func() error {
		ecs.TagEventType.ProcessEvents(world)
		if runner != nil && runner.Done() {
			_, _ = fmt.Fprintln(os.Stderr, "[partsrun] script finished")
			runner = nil
		}
		return nil
	})

	if err := partsrun.Run(game, cfg); err != nil {
		log.Fatal(err)
	}
}
