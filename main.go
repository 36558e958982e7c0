package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bemycrust/bemycrust/app"
	"github.com/bemycrust/bemycrust/config"
	"github.com/bemycrust/bemycrust/database"
	"github.com/bemycrust/bemycrust/gate"
	"github.com/bemycrust/bemycrust/render"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config file, using defaults")
	}

	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("db open error")
	}
	defer store.Close()

	a, err := app.New(store, app.Options{
		RetentionMonths: cfg.RetentionMonths,
		Logger:          log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load application state")
	}

	g := gate.New(cfg.Passphrase)
	log.Info().Bool("reportGated", g.IsGated("Report")).Msg("access gate ready")

	if rep, ok := a.ReportFor(a.Today()); ok {
		render.Report(os.Stdout, rep)
	} else {
		log.Info().Str("date", a.Today()).Msg("no report generated for today yet")
	}

	if err := a.SaveAll(); err != nil {
		log.Fatal().Err(err).Msg("save all failed")
	}
}
