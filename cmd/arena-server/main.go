package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Rocket-Sense/internal/netplay"
)

func main() {
	addr := flag.String("addr", ":8787", "listen address")
	seed := flag.Int64("seed", 42, "base RNG seed; each session gets seed+session")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	srv := netplay.NewServer(log, *seed)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.Handler())

	log.Info().Str("addr", *addr).Int64("seed", *seed).Msg("arena server listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
