package main

import (
	"log"

	"github.com/Harvbateman/GolfSwing2/app"
	"github.com/Harvbateman/GolfSwing2/app/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := app.OpenDB(cfg.DB.Path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	app.InitStripe(cfg)

	a := app.New(db, cfg, app.NewRandomAnalyzer())
	router := app.NewRouter(a)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
