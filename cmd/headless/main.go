// Command headless steps the simulation without a window and prints the
// final body store as YAML.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/milk9111/boxbounce/ecs/entity"
	"github.com/milk9111/boxbounce/prefabs"
)

func main() {
	frames := flag.Int("frames", 600, "number of frames to simulate")
	seed := flag.Uint64("seed", 1, "random seed for body placement (0 uses the clock)")
	scenario := flag.String("scenario", "", "scenario script in prefabs/scripts")
	flag.Parse()

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}

	w := entity.BuildWorld(spec)
	bodies, err := entity.Populate(spec, entity.NewRand(*seed), *scenario)
	if err != nil {
		log.Fatal(err)
	}
	w.Reset(bodies)

	for i := 0; i < *frames; i++ {
		w.Update()
	}

	data, err := prefabs.MarshalSnapshot(w.Stats().Frame, w.Bodies())
	if err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		log.Fatal(err)
	}
	stats := w.Stats()
	log.Printf("simulated %d frames, %d contacts, %d boundary hits", stats.Frame, stats.TotalContacts, stats.TotalBoundaries)
}
