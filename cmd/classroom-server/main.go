package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoji1021/classroom/internal/config"
	"github.com/shoji1021/classroom/internal/form"
	"github.com/shoji1021/classroom/internal/parser"
	"github.com/shoji1021/classroom/internal/server"
	"github.com/shoji1021/classroom/internal/storage"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration failed")
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing storage failed")
	}

	srv := server.New(form.New(cfg.FormURL), parser.New(cfg.ReferenceYear), store, log)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("formURL", cfg.FormURL).Msg("starting server")
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
