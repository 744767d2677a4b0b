package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Harvbateman/GolfSwing2/app/config"
	"github.com/Harvbateman/GolfSwing2/app/models"

	"github.com/google/uuid"
)

// newTestApp builds an App over a throwaway sqlite file and upload dir.
func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")

	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Server: config.ServerConfig{
			Addr:      "127.0.0.1:0",
			PublicURL: "http://localhost:8000",
		},
		DB:      config.DBConfig{Path: dbPath},
		Uploads: config.UploadConfig{Dir: filepath.Join(dir, "uploads")},
		Stripe: config.StripeConfig{
			SecretKey:     "sk_test_x",
			PriceID:       "price_test",
			WebhookSecret: "whsec_test",
		},
	}

	return New(db, cfg, NewRandomAnalyzer())
}

func mustCreateGuest(t *testing.T, a *App, style string) models.User {
	t.Helper()
	user, err := a.createGuestUser(context.Background(), style)
	if err != nil {
		t.Fatalf("createGuestUser: %v", err)
	}
	return user
}

// insertSwingAt writes a swing row directly so tests can control created_at.
func insertSwingAt(t *testing.T, a *App, userID string, createdAt time.Time) {
	t.Helper()
	_, err := a.db.Exec(`
		INSERT INTO swings (id, user_id, video_path, processed, style_label, created_at)
		VALUES (?, ?, ?, 1, ?, ?);
	`, uuid.NewString(), userID, "uploads/test.mp4", models.DefaultStyle, createdAt)
	if err != nil {
		t.Fatalf("insert swing row: %v", err)
	}
}
