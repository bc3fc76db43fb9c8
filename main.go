package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxbounce/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the frame counter overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "random seed for body placement (0 uses the clock)")
	scenario := flag.String("scenario", "", "scenario script in prefabs/scripts (basename, .tengo optional)")
	mute := flag.Bool("mute", false, "disable collision sound")
	list := flag.Bool("list", false, "list embedded scenarios and exit")
	flag.Parse()

	if *list {
		names, err := prefabs.ScriptNames()
		if err != nil {
			log.Fatal(err)
		}
		for _, n := range names {
			fmt.Fprintln(os.Stdout, n)
		}
		return
	}

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		if m := baseMonitorOf(ebiten.AppendMonitors(nil)); m != nil {
			ebiten.SetMonitor(m)
		} else {
			log.Printf("no monitors listed, using the primary monitor")
		}
	}

	game, err := NewGame(spec, Options{
		Debug:    *debug,
		Seed:     *seed,
		Scenario: *scenario,
		Mute:     *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(int(spec.Width), int(spec.Height))
	ebiten.SetWindowTitle(game.title())
	ebiten.SetTPS(spec.FrameRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// baseMonitorOf returns the first listed monitor, or nil when there is none.
func baseMonitorOf(monitors []*ebiten.MonitorType) *ebiten.MonitorType {
	if len(monitors) == 0 {
		return nil
	}
	return monitors[0]
}
