// Command springsim runs a level without a window. It drives the simulation
// with a scripted input timeline and logs the player's trajectory.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitwiserain/springshot/assets"
	"github.com/bitwiserain/springshot/shared/physics"
)

func main() {
	level := flag.String("level", "level1", "bundled level name")
	mapPath := flag.String("map", "", "path to a .tmx file on disk (overrides -level)")
	ticks := flag.Uint64("ticks", 300, "number of simulation ticks to run")
	script := flag.String("script", "", `input timeline, e.g. "0:right,30:jump,45:!right,60:fire=400x100"`)
	every := flag.Uint64("every", 10, "log the player state every N ticks (0 = only the summary)")
	realtime := flag.Bool("realtime", false, "pace the run with the wall clock instead of stepping")
	fps := flag.Int("fps", 60, "frame rate used with -realtime")
	flag.Parse()

	events, err := parseScript(*script)
	if err != nil {
		log.Fatalf("Bad script: %v", err)
	}

	var lvl physics.Level
	if *mapPath != "" {
		lvl, err = assets.LoadLevelFrom(os.DirFS(filepath.Dir(*mapPath)), filepath.Base(*mapPath))
		if err != nil {
			log.Fatalf("Failed to load map: %v", err)
		}
	} else {
		lvl = assets.MustLoadLevel(*level)
	}

	world := physics.NewWorld(lvl)
	r := newRunner(world, events, *every)

	log.Printf("Running %d ticks (%d scripted events, step %v)", *ticks, len(events), world.Driver().Step())
	if *realtime {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			r.Stop()
		}()
		r.runRealtime(*ticks, max(*fps, 1))
	} else {
		r.runFixed(*ticks)
	}

	p := world.Player
	log.Printf("Done after %d ticks: pos=(%.2f, %.2f) %s %s, %d projectiles in flight",
		world.Driver().Ticks(), p.Position.X, p.Position.Y, p.Horizontal, p.Vertical, world.Projectiles.Len())
}
