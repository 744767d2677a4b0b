package app

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Harvbateman/GolfSwing2/app/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

// CreateCheckoutSession starts a subscription-mode Stripe Checkout session
// for the given user id. The id rides along as client_reference_id so the
// webhook can find the user again.
func (a *App) CreateCheckoutSession(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		userID = c.PostForm("user_id")
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id"})
		return
	}

	priceID := a.cfg.Stripe.PriceID
	publicURL := strings.TrimRight(a.cfg.Server.PublicURL, "/")
	if priceID == "" || publicURL == "" {
		log.Printf("missing Stripe config: price_id=%t public_url=%t", priceID != "", publicURL != "")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "billing not configured"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(userID),
		SuccessURL:        stripe.String(publicURL + "/?success=true"),
		CancelURL:         stripe.String(publicURL + "/?canceled=true"),
	}

	sess, err := session.New(params)
	if err != nil {
		log.Printf("stripe checkout session failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": sess.URL})
}

// StripeWebhook handles Stripe subscription events and flips users premium.
// Failures are acknowledged with 200 and an error body rather than an error
// status: a non-2xx would trigger Stripe's redelivery, which this handler
// deliberately opts out of.
func (a *App) StripeWebhook(c *gin.Context) {
	const maxBodyBytes = int64(65536)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		log.Printf("stripe webhook read failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "invalid payload"})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	endpointSecret := a.cfg.Stripe.WebhookSecret
	if endpointSecret == "" {
		log.Printf("stripe webhook secret missing")
		c.JSON(http.StatusOK, gin.H{"error": "webhook not configured"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		body,
		sigHeader,
		endpointSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		log.Printf("stripe webhook signature failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("stripe session unmarshal failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"error": "invalid session payload"})
			return
		}

		userID := sess.ClientReferenceID
		if userID == "" {
			log.Printf("stripe session missing client reference id")
			c.JSON(http.StatusOK, gin.H{"error": "missing client reference id"})
			return
		}

		upgraded, err := a.setUserPremium(c.Request.Context(), userID, models.PlanMonthly)
		if err != nil {
			log.Printf("stripe plan upgrade failed user=%s err=%v", userID, err)
			c.JSON(http.StatusOK, gin.H{"error": "failed to update user"})
			return
		}
		if !upgraded {
			// Unknown reference: drop the event, nothing to update.
			log.Printf("stripe checkout completed for unknown user=%s, dropped", userID)
		}
	default:
		// Intentionally ignore unhandled events.
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
