package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/service"
)

// PostLogin upserts by email and returns the user as a plain JSON body.
func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.LoginRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), &internal.ValidationError{Field: "body", Reason: err.Error()}, "Invalid JSON")
			return
		}

		if err := service.ValidateLoginRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, "Login validation failed")
			return
		}

		user, err := service.Login(c.Request.Context(), app.UserRepo(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to resolve user")
			return
		}

		app.Logger().Infof("[request_id=%s] login %s", c.GetString("request_id"), user.Email)
		c.JSON(http.StatusOK, user)
	}
}

// PutUser full-replaces name/bio/avatar for the user keyed by email.
func PutUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.UpdateUserRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), &internal.ValidationError{Field: "body", Reason: err.Error()}, "Invalid JSON")
			return
		}

		if err := service.ValidateUpdateUserRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, "Profile validation failed")
			return
		}

		user, err := service.UpdateUser(c.Request.Context(), app.UserRepo(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to update user")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
