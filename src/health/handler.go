package health

import (
	"net/http"

	"claims-processor/pkg/rest"
	"claims-processor/src/claims"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "Insurance Claim Processor"
	serviceVersion = "1.0.0"
)

// Handler answers readiness probes. A probe is healthy when the claims table
// answers a count query.
type Handler struct {
	claims claims.Repository
}

func NewHandler(claimsRepository claims.Repository) *Handler {
	return &Handler{claims: claimsRepository}
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.GET, "q", "/health", h.healthCheck),
	}
}

func (h *Handler) healthCheck(c *gin.Context) {
	count, err := h.claims.CountClaims()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"service": serviceName,
			"version": serviceVersion,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "UP",
		"service":     serviceName,
		"version":     serviceVersion,
		"totalClaims": count,
	})
}
