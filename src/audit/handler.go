package audit

import (
	"net/http"
	"strconv"

	"claims-processor/pkg/rest"
	"claims-processor/src/dto"

	"github.com/gin-gonic/gin"
)

const apiGroup = "v1/logs"

const defaultRecentLimit = 100

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.GET, apiGroup, "", h.getRecentEntries),
		rest.NewRoute(rest.GET, apiGroup, "/service/:service", h.getEntriesByService),
		rest.NewRoute(rest.GET, apiGroup, "/level/:level", h.getEntriesByLevel),
	}
}

func (h *Handler) getRecentEntries(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.Failure("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.service.RecentEntries(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Log entries", entries))
}

func (h *Handler) getEntriesByService(c *gin.Context) {
	entries, err := h.service.EntriesByService(c.Param("service"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Log entries", entries))
}

func (h *Handler) getEntriesByLevel(c *gin.Context) {
	entries, err := h.service.EntriesByLevel(c.Param("level"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Log entries", entries))
}
