package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL DEFAULT 'Guest',
	handicap          INTEGER,
	style_choice      TEXT NOT NULL DEFAULT 'classic',
	is_premium        BOOLEAN NOT NULL DEFAULT 0,
	subscription_plan TEXT
);

CREATE TABLE IF NOT EXISTS swings (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	video_path    TEXT NOT NULL,
	processed     BOOLEAN NOT NULL DEFAULT 0,
	power         INTEGER,
	accuracy      INTEGER,
	consistency   INTEGER,
	balance       INTEGER,
	style_score   INTEGER,
	overall_score INTEGER,
	style_label   TEXT,
	created_at    TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_swings_user_created
	ON swings (user_id, created_at);
`

// OpenDB opens (creating if needed) the sqlite file at path and bootstraps
// the schema.
func OpenDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}

	log.Printf("Connected to sqlite store at %s", path)
	return db, nil
}

func nullableIntToPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullableStringToPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
