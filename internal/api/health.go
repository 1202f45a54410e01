package api

import "github.com/gin-gonic/gin"

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	dbPing func() error
}

// NewHealthHandler takes the database ping the readiness probe depends on,
// typically db.Ping of the *sql.DB.
func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts GET /healthz (always 200 while the process runs) and
// GET /readyz (503 until Postgres answers).
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.dbPing != nil && h.dbPing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
