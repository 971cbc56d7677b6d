package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/service"
)

// GetMoods returns all entries sorted by date descending. There is no
// per-user filter even though entries carry a userEmail association; the
// journal is single-tenant in practice.
func GetMoods(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := app.MoodRepo().ListMoods(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch moods")
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

// PostMood persists one entry and returns the stored record with its ID.
func PostMood(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.MoodRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), &internal.ValidationError{Field: "body", Reason: err.Error()}, "Invalid JSON")
			return
		}

		if err := service.ValidateMoodRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, "Mood validation failed")
			return
		}

		entry, err := service.CreateMood(c.Request.Context(), app.MoodRepo(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to save mood")
			return
		}

		app.Logger().Infof("[request_id=%s] logged mood %s", c.GetString("request_id"), entry.Mood)
		c.JSON(http.StatusCreated, entry)
	}
}
