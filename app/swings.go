package app

import (
	"context"
	"time"

	"github.com/Harvbateman/GolfSwing2/app/models"

	"github.com/google/uuid"
)

// insertSwing records an accepted upload. Scores land later in the same
// request via finishSwingScores.
func (a *App) insertSwing(ctx context.Context, userID, videoPath, styleLabel string) (models.Swing, error) {
	swing := models.Swing{
		ID:         uuid.NewString(),
		UserID:     userID,
		VideoPath:  videoPath,
		StyleLabel: styleLabel,
		CreatedAt:  time.Now().UTC(),
	}

	const q = `
		INSERT INTO swings (id, user_id, video_path, processed, style_label, created_at)
		VALUES (?, ?, ?, 0, ?, ?);
	`
	if _, err := a.db.ExecContext(ctx, q, swing.ID, swing.UserID, swing.VideoPath, swing.StyleLabel, swing.CreatedAt); err != nil {
		return models.Swing{}, err
	}
	return swing, nil
}

// finishSwingScores writes the computed attribute scores back onto the swing
// row and marks it processed.
func (a *App) finishSwingScores(ctx context.Context, swingID string, attrs models.Attributes, overall int) error {
	const q = `
		UPDATE swings
		SET processed = 1,
			power = ?, accuracy = ?, consistency = ?, balance = ?, style_score = ?,
			overall_score = ?
		WHERE id = ?;
	`
	_, err := a.db.ExecContext(ctx, q,
		attrs.Power,
		attrs.Accuracy,
		attrs.Consistency,
		attrs.Balance,
		attrs.Style,
		overall,
		swingID,
	)
	return err
}

// countSwingsSince counts a user's swings created at or after cutoff.
func (a *App) countSwingsSince(ctx context.Context, userID string, cutoff time.Time) (int, error) {
	var n int
	err := a.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM swings
		WHERE user_id = ? AND created_at >= ?;
	`, userID, cutoff).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
