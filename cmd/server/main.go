package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/luckygen/internal/auth"
	"github.com/ArowuTest/luckygen/internal/config"
	"github.com/ArowuTest/luckygen/internal/generator"
	"github.com/ArowuTest/luckygen/internal/handlers"
	"github.com/ArowuTest/luckygen/internal/history"
	"github.com/ArowuTest/luckygen/internal/logging"
	"github.com/ArowuTest/luckygen/internal/metrics"
	"github.com/ArowuTest/luckygen/internal/models"
	"github.com/ArowuTest/luckygen/internal/rng"
	"github.com/ArowuTest/luckygen/internal/store"
)

func main() {
	log := logging.New("info")

	// Load config & init
	appCfg := config.Load(log)
	log = logging.New(appCfg.LogLevel)

	src, err := rng.NewDefault()
	if err != nil {
		log.WithError(err).Fatal("failed to seed random source")
	}
	gen, err := generator.New(appCfg.Generator, src, log)
	if err != nil {
		log.WithError(err).Fatal("invalid generator settings")
	}

	signer, err := auth.NewSigner(appCfg.JWTSecret)
	if err != nil {
		log.WithError(err).Warn("admin endpoints disabled")
	}

	h := &handlers.Handler{
		Generator: gen,
		History:   history.NewHolder(),
		Signer:    signer,
		Log:       log,
	}

	var historySrc history.Source = history.FileSource{Path: appCfg.HistoryFile}
	if appCfg.DBEnabled {
		db, err := config.InitDB(appCfg)
		if err != nil {
			log.WithError(err).Fatal("database unavailable")
		}
		if err := models.Migrate(db); err != nil {
			log.WithError(err).Fatal("migration failed")
		}
		st := store.New(db)
		h.Batches, h.Draws = st, st
		if signer != nil {
			h.Users = st
		}
		if appCfg.HistorySource == config.HistoryFromDB {
			historySrc = st
		}
	}

	// generation works on an empty snapshot until this finishes
	loaded := history.Start(context.Background(), historySrc, h.History, appCfg.HistoryLoadTimeout, log)
	go func() {
		<-loaded
		snap := h.History.Get()
		metrics.SetHistoryDraws(snap.Draws)
	}()

	// Setup router
	r := gin.Default()
	r.Use(config.CORSMiddleware(appCfg.FrontendURL))
	h.Register(r)

	log.WithField("port", appCfg.Port).Info("listening")
	if err := r.Run(":" + appCfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
