// Package admin exposes the broker's HTTP admin surface: health probes
// and Prometheus metrics. Data traffic never crosses this surface; it
// stays on the gRPC listener.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wenjunnutter/hailort/internal/broker"
)

// Handlers serves the admin endpoints.
type Handlers struct {
	service *broker.Service
}

// NewHandlers creates admin handlers backed by the broker service.
func NewHandlers(service *broker.Service) *Handlers {
	return &Handlers{service: service}
}

// Root identifies the daemon.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "hailort-broker",
		"version": gin.H{
			"major":    broker.VersionMajor,
			"minor":    broker.VersionMinor,
			"revision": broker.VersionRevision,
		},
	})
}

// Health reports liveness plus broker occupancy.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"stats":  h.service.Snapshot(),
	})
}
