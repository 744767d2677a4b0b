package app

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Harvbateman/GolfSwing2/app/models"

	"github.com/gin-gonic/gin"
)

// Health is a public health check endpoint.
func (a *App) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Index serves the minimal upload page.
func (a *App) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// EnsureUser creates and returns a fresh guest identity. The client keeps
// the id and sends it back on later requests.
func (a *App) EnsureUser(c *gin.Context) {
	user, err := a.createGuestUser(c.Request.Context(), models.DefaultStyle)
	if err != nil {
		log.Printf("create guest user failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
}

// GetUser returns subscription status and preferences for a user id.
func (a *App) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := a.getUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("get user failed id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	remaining, err := a.remainingUploads(c.Request.Context(), user, time.Now().UTC())
	if err != nil {
		log.Printf("count uploads failed id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	var remainingField any = nil
	var limitField any = nil
	if remaining != nil {
		remainingField = *remaining
		limitField = FreeUploadLimit
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":           user.ID,
		"is_premium":        user.IsPremium,
		"subscription_plan": user.SubscriptionPlan,
		"handicap":          user.Handicap,
		"style_choice":      user.StyleChoice,
		"upload_limit":      limitField,
		"uploads_remaining": remainingField,
	})
}

// UploadSwing accepts a multipart swing video, gates it on the free-plan
// quota, stores it, records a swing row and returns its scores.
func (a *App) UploadSwing(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	userID := strings.TrimSpace(c.PostForm("user_id"))
	style := c.DefaultPostForm("style", models.DefaultStyle)

	// Resolve identity; an unknown or missing id becomes a fresh guest.
	var user models.User
	if userID != "" {
		user, err = a.getUserByID(ctx, userID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			log.Printf("get user failed id=%s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
			return
		}
	}
	if user.ID == "" {
		user, err = a.createGuestUser(ctx, style)
		if err != nil {
			log.Printf("create guest user failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}
	}

	now := time.Now().UTC()
	if err := a.checkUploadAllowance(ctx, user, now); err != nil {
		var limitErr planLimitError
		if errors.As(err, &limitErr) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Free plan limit reached. Upgrade to Premium for unlimited uploads.",
			})
			return
		}
		log.Printf("quota check failed user=%s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check quota"})
		return
	}

	if !isAllowedVideoFilename(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please upload a video file (mp4/mov/mkv/avi).",
		})
		return
	}

	if err := os.MkdirAll(a.cfg.Uploads.Dir, 0o755); err != nil {
		log.Printf("create upload dir failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	savePath := filepath.Join(a.cfg.Uploads.Dir, storedFilename(file.Filename))
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		log.Printf("save upload failed path=%s: %v", savePath, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	swing, err := a.insertSwing(ctx, user.ID, savePath, style)
	if err != nil {
		log.Printf("insert swing failed user=%s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record swing"})
		return
	}

	attrs, overall := a.analyzer.Analyze(style)
	if err := a.finishSwingScores(ctx, swing.ID, attrs, overall); err != nil {
		// The scores are still returned; the row just stays unprocessed.
		log.Printf("store swing scores failed swing=%s: %v", swing.ID, err)
	}

	remaining, err := a.remainingUploads(ctx, user, now)
	if err != nil {
		log.Printf("count uploads failed user=%s: %v", user.ID, err)
		remaining = nil
	}
	var remainingField any = nil
	if remaining != nil {
		remainingField = *remaining
	}

	c.JSON(http.StatusOK, gin.H{
		"swing_id":          swing.ID,
		"user_id":           user.ID,
		"attributes":        attrs,
		"overall_score":     overall,
		"is_premium":        user.IsPremium,
		"uploads_remaining": remainingField,
	})
}
