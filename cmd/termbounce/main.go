// Command termbounce runs the box simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/boxbounce/ecs"
	"github.com/milk9111/boxbounce/ecs/entity"
	"github.com/milk9111/boxbounce/ecs/system"
	"github.com/milk9111/boxbounce/prefabs"
	"github.com/milk9111/boxbounce/sound"
	"github.com/milk9111/boxbounce/sound/beepaudio"
)

type app struct {
	screen   tcell.Screen
	world    *ecs.World
	spec     *prefabs.WorldSpec
	rng      *rand.Rand
	scenario string
	player   sound.Player
}

type appOptions struct {
	seed     uint64
	scenario string
	mute     bool
}

// backends opens the terminal and the speaker.
type backends struct {
	screen func() (tcell.Screen, error)
	player func(frequency, volume float64) (sound.Player, error)
}

var defaultBackends = backends{
	screen: tcell.NewScreen,
	player: func(frequency, volume float64) (sound.Player, error) {
		return beepaudio.New(frequency, volume)
	},
}

func main() {
	seed := flag.Uint64("seed", 0, "random seed for body placement (0 uses the clock)")
	scenario := flag.String("scenario", "", "scenario script in prefabs/scripts")
	mute := flag.Bool("mute", false, "disable collision sound")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "termbounce: %v\n", err)
		os.Exit(1)
	}

	closeLog := redirectLog(*logPath)
	defer closeLog()

	a, err := newApp(spec, appOptions{seed: *seed, scenario: *scenario, mute: *mute}, defaultBackends)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termbounce: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}

// redirectLog keeps log output off the terminal while tcell owns it.
func redirectLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termbounce: open log: %v\n", err)
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

// newApp owns the terminal before the speaker is opened, so a terminal
// failure leaves no audio device behind.
func newApp(spec *prefabs.WorldSpec, opts appOptions, b backends) (*app, error) {
	a := &app{
		spec:     spec,
		rng:      entity.NewRand(opts.seed),
		scenario: opts.scenario,
		player:   sound.Nop{},
		world:    entity.BuildWorld(spec),
	}

	if err := a.reset(); err != nil {
		return nil, err
	}

	screen, err := b.screen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	a.screen = screen

	if spec.Sound.Enabled && !opts.mute {
		p, err := b.player(spec.Sound.Frequency, spec.Sound.Volume)
		if err != nil {
			// Non-fatal, the simulation runs without sound.
			log.Printf("audio: %v", err)
		} else {
			a.player = p
		}
	}
	a.world.AddSystem(system.NewAudioSystem(a.player))
	return a, nil
}

func (a *app) reset() error {
	bodies, err := entity.Populate(a.spec, a.rng, a.scenario)
	if err != nil {
		return err
	}
	a.world.Reset(bodies)
	return nil
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / time.Duration(a.spec.FrameRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.world.Update()
			drawWorld(a.screen, a.world)
		}
	}
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.world.TogglePaused()
		case 'r':
			if err := a.reset(); err != nil {
				log.Printf("reset: %v", err)
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) cleanup() {
	if err := a.player.Close(); err != nil {
		log.Printf("audio: close: %v", err)
	}
	if a.screen != nil {
		a.screen.Fini()
	}
}
