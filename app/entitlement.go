// Package app enforces the free-plan upload quota.
package app

import (
	"context"
	"time"

	"github.com/Harvbateman/GolfSwing2/app/models"
)

const (
	// FreeUploadLimit is how many swings a free user may upload inside the
	// rolling window.
	FreeUploadLimit = 3
	freeWindowDays  = 30
)

type planLimitError struct {
	Limit int
	Used  int
}

func (e planLimitError) Error() string {
	return "free plan limit reached"
}

// checkUploadAllowance decides whether user may upload another swing at now.
// Premium users always pass. Free users are counted against the trailing
// window before the new row exists, so 3 prior uploads block the 4th.
func (a *App) checkUploadAllowance(ctx context.Context, user models.User, now time.Time) error {
	if user.IsPremium {
		return nil
	}

	cutoff := now.AddDate(0, 0, -freeWindowDays)
	used, err := a.countSwingsSince(ctx, user.ID, cutoff)
	if err != nil {
		return err
	}

	if used >= FreeUploadLimit {
		return planLimitError{Limit: FreeUploadLimit, Used: used}
	}
	return nil
}

// remainingUploads reports how many free-plan uploads user has left in the
// current window. Premium users have no limit, reported as nil.
func (a *App) remainingUploads(ctx context.Context, user models.User, now time.Time) (*int, error) {
	if user.IsPremium {
		return nil, nil
	}

	cutoff := now.AddDate(0, 0, -freeWindowDays)
	used, err := a.countSwingsSince(ctx, user.ID, cutoff)
	if err != nil {
		return nil, err
	}

	remaining := FreeUploadLimit - used
	if remaining < 0 {
		remaining = 0
	}
	return &remaining, nil
}
