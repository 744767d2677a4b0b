// Package app wires the swing upload, scoring and billing flows behind a
// shared HTTP surface.
package app

import (
	"database/sql"

	"github.com/Harvbateman/GolfSwing2/app/config"
)

// App holds the dependencies every handler needs. Handlers hang off it so
// nothing reaches for package-level state.
type App struct {
	db       *sql.DB
	cfg      *config.Config
	analyzer Analyzer
}

func New(db *sql.DB, cfg *config.Config, analyzer Analyzer) *App {
	return &App{
		db:       db,
		cfg:      cfg,
		analyzer: analyzer,
	}
}
