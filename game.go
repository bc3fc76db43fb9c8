package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/boxbounce/ecs"
	"github.com/milk9111/boxbounce/ecs/entity"
	"github.com/milk9111/boxbounce/ecs/render"
	"github.com/milk9111/boxbounce/ecs/system"
	"github.com/milk9111/boxbounce/prefabs"
	"github.com/milk9111/boxbounce/sound"
	"github.com/milk9111/boxbounce/sound/ebitenaudio"
	"golang.design/x/clipboard"
)

type Options struct {
	Debug    bool
	Seed     uint64
	Scenario string
	Mute     bool
}

type Game struct {
	spec     *prefabs.WorldSpec
	scenario string
	rng      *rand.Rand

	world   *ecs.World
	boxes   *render.BoxRenderer
	debug   *render.DebugOverlay
	draw    render.Pipeline
	player  sound.Player
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI

	clipboardReady bool
}

func NewGame(spec *prefabs.WorldSpec, opts Options) (*Game, error) {
	g := &Game{
		spec:     spec,
		scenario: opts.Scenario,
		rng:      entity.NewRand(opts.Seed),
		boxes:    render.NewBoxRenderer(),
		debug:    render.NewDebugOverlay(opts.Debug),
		player:   sound.Nop{},
	}
	g.applyStyle()

	if spec.Sound.Enabled && !opts.Mute {
		g.player = ebitenaudio.New(spec.Sound.Frequency, spec.Sound.Volume)
	}

	g.world = entity.BuildWorld(spec)
	g.world.AddSystem(system.NewAudioSystem(g.player))
	g.draw = render.Pipeline{g.boxes, g.debug}

	if err := g.reset(); err != nil {
		return nil, err
	}

	if prefabs.DiskDirExists() {
		w, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.DiskDir, err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.TogglePaused()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			log.Printf("reset: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.Enabled = !g.debug.Enabled
	}

	g.pollReload()

	if g.world.Paused() {
		g.pauseUI.Update()
		return nil
	}
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.draw.Draw(g.world, screen)
	if g.world.Paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.spec.Width), int(g.spec.Height)
}

// Close releases the watcher and the audio player.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
	if err := g.player.Close(); err != nil {
		log.Printf("audio: close: %v", err)
	}
}

func (g *Game) reset() error {
	bodies, err := entity.Populate(g.spec, g.rng, g.scenario)
	if err != nil {
		return err
	}
	g.world.Reset(bodies)
	return nil
}

func (g *Game) resume() {
	g.world.SetPaused(false)
}

func (g *Game) applyStyle() {
	g.boxes.Background = g.spec.Background.Color
	g.boxes.Outline = g.spec.Bodies.Outline.Color
	g.boxes.OutlineThickness = float32(g.spec.Bodies.OutlineThickness)
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.apply(c)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

// apply reacts to an on-disk edit. An edit to the running scenario restarts
// it; edits to other scenarios are ignored.
func (g *Game) apply(c prefabs.Change) {
	if c.IsWorldSpec() {
		g.reload(c.Path)
		return
	}
	if g.scenario == "" || prefabs.ScenarioName(g.scenario) != c.Scenario {
		return
	}
	if err := g.reset(); err != nil {
		log.Printf("prefabs: rerun %s: %v", c.Scenario, err)
		return
	}
	log.Printf("prefabs: reran %s", c.Scenario)
}

// reload applies an edited world spec. Gravity, time step and colors change
// immediately; body shape and count apply on the next reset. World size is
// fixed for the life of the window.
func (g *Game) reload(name string) {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("prefabs: reload %s: %v", name, err)
		return
	}
	if spec.Width != g.spec.Width || spec.Height != g.spec.Height {
		log.Printf("prefabs: reload %s: world size change ignored until restart", name)
		spec.Width, spec.Height = g.spec.Width, g.spec.Height
	}
	g.spec = spec
	g.world.SetGravity(spec.Gravity, spec.TimeStep)
	g.applyStyle()
	log.Printf("prefabs: reloaded %s", name)
}

func (g *Game) copySnapshot() {
	if !g.clipboardReady {
		return
	}
	data, err := prefabs.MarshalSnapshot(g.world.Stats().Frame, g.world.Bodies())
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("snapshot: copied %d bodies", len(g.world.Bodies()))
}

func (g *Game) title() string {
	if g.scenario == "" {
		return g.spec.Title
	}
	return fmt.Sprintf("%s - %s", g.spec.Title, g.scenario)
}
