package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-debate/internal/config"
	"go-debate/internal/conversation"
	"go-debate/internal/debate"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only return non-sensitive config fields
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host":    cfg.Server.Host,
				"port":    cfg.Server.Port,
				"subpath": cfg.Server.Subpath,
			},
			"backend": gin.H{
				"model":           cfg.Backend.Model,
				"max_tokens":      cfg.Backend.MaxTokens,
				"timeout_seconds": cfg.Backend.TimeoutSeconds,
			},
			"debate": gin.H{
				"ttl_hours": cfg.Debate.TTLHours,
			},
		})
	}
}

// POST /chat — one debate exchange
func ChatHandler(engine *debate.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ConversationID string `json:"conversation_id"`
			Message        string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		res, err := engine.Exchange(c.Request.Context(), req.ConversationID, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, debate.ErrEmptyMessage):
				c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			case errors.Is(err, conversation.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			default:
				log.Printf("[API] Exchange failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		messages := make([]gin.H, len(res.Window))
		for i, e := range res.Window {
			messages[i] = gin.H{"role": e.Role, "message": e.Text}
		}
		c.JSON(http.StatusOK, gin.H{
			"conversation_id": res.ConversationID,
			"message":         messages,
		})
	}
}
