package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/response"
)

// HandleError logs the failure and writes the error envelope mapped from the
// domain error kind.
func HandleError(c *gin.Context, logger internal.Logger, err error, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	status, resp := response.FromError(err)
	c.JSON(status, resp)
}
