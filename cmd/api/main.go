package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bookingdesk/internal/config"
	"bookingdesk/internal/database"
	"bookingdesk/internal/locale"
	"bookingdesk/internal/logger"
	"bookingdesk/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("LOG_LEVEL: %v", err)
	}
	logger.InitLogger(level, cfg.LogFile)
	defer logger.CloseLogger()

	if err := locale.Init(cfg.DefaultLang); err != nil {
		log.Fatalf("translations: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := server.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}
	r, err := server.New(cfg, db)
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	if cfg.AllowClientIDs {
		logger.Warningf("AUTH_ALLOW_CLIENT_IDS is on: client-supplied user ids are trusted")
	}
	logger.Infof("listening on %s (env=%s)", cfg.HTTPAddr, cfg.AppEnv)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
