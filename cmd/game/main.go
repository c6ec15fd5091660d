package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Rocket-Sense/internal/arena"
	"github.com/Garsondee/Rocket-Sense/internal/pilot"
	"github.com/Garsondee/Rocket-Sense/internal/view"
)

func main() {
	seed := flag.Int64("seed", 1, "match RNG seed")
	configDir := flag.String("config", ".", "directory holding rocket_sense.cfg.json")
	flag.Parse()

	tuning, err := pilot.LoadTuning(*configDir)
	if err != nil {
		log.Fatal(err)
	}

	match := arena.NewMatch(arena.WithSeed(*seed))
	p := pilot.New(tuning, match.Oracle())
	match.AttachDriver(p)

	v := view.New(match, p)
	ebiten.SetWindowTitle("Rocket Sense")
	ebiten.SetWindowSize(v.Size())
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
