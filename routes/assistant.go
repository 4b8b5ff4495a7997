package routes

import (
	"net/http"
	"strings"

	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/store"
	"portfolio-backend/middleware"
	"portfolio-backend/models"
	"portfolio-backend/services"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
)

// SetupAssistantRoutes registers the keyword-matching assistant endpoint.
func SetupAssistantRoutes(router *gin.Engine, st store.Store) {
	assistant := services.NewAssistant(st)

	router.POST("/assistant/chat", func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithValidationError(c, gin.H{"body": err.Error()})
			return
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			utils.RespondWithBadRequest(c, "empty_message", "Empty message")
			return
		}

		if st == nil {
			utils.RespondWithInternalError(c, "Document store is not configured")
			return
		}

		reply, err := assistant.Reply(c.Request.Context(), message)
		if err != nil {
			logger.Error("assistant reply failed", "request_id", middleware.GetRequestID(c), "error", err)
			utils.RespondWithInternalError(c, "Failed to generate reply")
			return
		}

		c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
	})
}
