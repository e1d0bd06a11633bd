package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/database"
)

// StatsStore provides the aggregate row counts for the stats endpoint.
type StatsStore interface {
	GetStats() (*database.Stats, error)
}

type StatsController struct {
	store StatsStore
}

func NewStatsController(store StatsStore) *StatsController {
	return &StatsController{store: store}
}

// HealthCheck reports service liveness
// GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetStats returns aggregate entity counts
// GET /api/stats
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.store.GetStats()
	if err != nil {
		respondStoreError(c, err, "get stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
