// Package models defines the persisted user and swing record types.
package models

const (
	DefaultName  = "Guest"
	DefaultStyle = "classic"

	// PlanMonthly is the only subscription plan sold today.
	PlanMonthly = "monthly"
)

type User struct {
	ID               string  `db:"id"`
	Name             string  `db:"name"`
	Handicap         *int    `db:"handicap"`
	StyleChoice      string  `db:"style_choice"`
	IsPremium        bool    `db:"is_premium"`
	SubscriptionPlan *string `db:"subscription_plan"`
}
