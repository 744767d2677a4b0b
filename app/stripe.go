package app

import (
	"github.com/Harvbateman/GolfSwing2/app/config"

	"github.com/stripe/stripe-go/v79"
)

// InitStripe wires the Stripe API key from config.
func InitStripe(cfg *config.Config) {
	stripe.Key = cfg.Stripe.SecretKey
}
