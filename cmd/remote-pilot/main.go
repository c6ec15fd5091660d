package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Rocket-Sense/internal/netplay"
	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

func main() {
	url := flag.String("url", "ws://127.0.0.1:8787/ws", "arena server websocket URL")
	name := flag.String("name", "rocket-sense", "agent name sent in the handshake")
	configDir := flag.String("config", ".", "directory holding rocket_sense.cfg.json")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	tuning, err := pilot.LoadTuning(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("load tuning")
	}

	client, err := netplay.Dial(*url, *name)
	if err != nil {
		log.Fatal().Err(err).Str("url", *url).Msg("dial")
	}
	defer client.Close()

	log.Info().
		Str("agent_id", client.Welcome.AgentID).
		Int("tick_rate_hz", client.Welcome.TickRateHz).
		Msg("connected")

	// No local forecast over the wire; the pilot falls back to aiming
	// at the observed ball whenever the target is out of near range.
	p := pilot.New(tuning, nil)
	if err := client.Run(p); err != nil {
		log.Fatal().Err(err).Msg("session ended")
	}
}
