package admin

import (
	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// SeedFull populates the database with the full synthetic dataset. When
// organizations already exist the generator skips and reports a warning.
func (h *Handler) SeedFull(c *gin.Context) {
	result, err := h.SeedService.SeedFull()
	if err != nil {
		logger.Errorw("admin_seed_full_failed", "error", err)
		response.ErrorWithData(c, response.CodeInternal, result.Message, result)
		return
	}
	response.Success(c, result)
}

// ClearDatabase deletes all fleet data.
func (h *Handler) ClearDatabase(c *gin.Context) {
	if err := h.SeedService.Clear(); err != nil {
		logger.Errorw("admin_clear_failed", "error", err)
		response.Error(c, response.CodeInternal, "failed to clear database")
		return
	}
	response.Success(c, gin.H{
		"status":  "success",
		"message": "all data cleared from database",
	})
}
