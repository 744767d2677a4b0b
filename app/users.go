// Package app provides user persistence helpers for request handling.
package app

import (
	"context"
	"database/sql"

	"github.com/Harvbateman/GolfSwing2/app/models"

	"github.com/google/uuid"
)

// createGuestUser inserts a fresh guest identity with the given style choice.
func (a *App) createGuestUser(ctx context.Context, style string) (models.User, error) {
	if style == "" {
		style = models.DefaultStyle
	}

	user := models.User{
		ID:          uuid.NewString(),
		Name:        models.DefaultName,
		StyleChoice: style,
	}

	const q = `
		INSERT INTO users (id, name, style_choice, is_premium)
		VALUES (?, ?, ?, 0);
	`
	if _, err := a.db.ExecContext(ctx, q, user.ID, user.Name, user.StyleChoice); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// getUserByID returns sql.ErrNoRows when the id is unknown.
func (a *App) getUserByID(ctx context.Context, id string) (models.User, error) {
	var (
		user     models.User
		handicap sql.NullInt64
		plan     sql.NullString
	)

	err := a.db.QueryRowContext(ctx, `
		SELECT id, name, handicap, style_choice, is_premium, subscription_plan
		FROM users
		WHERE id = ?;
	`, id).Scan(&user.ID, &user.Name, &handicap, &user.StyleChoice, &user.IsPremium, &plan)
	if err != nil {
		return models.User{}, err
	}

	user.Handicap = nullableIntToPtr(handicap)
	user.SubscriptionPlan = nullableStringToPtr(plan)
	return user, nil
}

// setUserPremium flips a user onto the given paid plan. Premium is one-way:
// nothing in the system ever sets it back to false. The bool reports whether
// a matching user row existed.
func (a *App) setUserPremium(ctx context.Context, id, plan string) (bool, error) {
	res, err := a.db.ExecContext(ctx, `
		UPDATE users
		SET is_premium = 1, subscription_plan = ?
		WHERE id = ?;
	`, plan, id)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
