package claims

import (
	"errors"
	"net/http"

	"claims-processor/pkg/rest"
	"claims-processor/src/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const apiGroup = "v1/claims"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Routes() []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, apiGroup, "/submit", h.submitClaim),
		rest.NewRoute(rest.POST, apiGroup, "/urgent", h.submitUrgentClaim),
		rest.NewRoute(rest.GET, apiGroup, "/pending", h.getPendingClaims),
		rest.NewRoute(rest.GET, apiGroup, "/policy/:policyNumber", h.getClaimsByPolicy),
		rest.NewRoute(rest.GET, apiGroup, "/:claimNumber", h.getClaim),
		rest.NewRoute(rest.GET, apiGroup, "/:claimNumber/status", h.getClaimStatus),
		rest.NewRoute(rest.GET, apiGroup, "/:claimNumber/assessment", h.getClaimAssessment),
	}
}

func (h *Handler) submitClaim(c *gin.Context) {
	var submission dto.ClaimSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}

	if err := h.service.SubmitClaim(submission); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusAccepted, dto.Success(
		"Claim submitted for processing",
		dto.Accepted(submission.ClaimNumber, submission.PolicyNumber),
	))
}

func (h *Handler) submitUrgentClaim(c *gin.Context) {
	var submission dto.ClaimSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}

	if err := h.service.SubmitUrgentClaim(submission); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusAccepted, dto.Success(
		"Urgent claim submitted for expedited processing",
		dto.UrgentAccepted(submission.ClaimNumber, submission.PolicyNumber),
	))
}

func (h *Handler) getClaim(c *gin.Context) {
	claimNumber := c.Param("claimNumber")

	claim, err := h.service.GetClaimByNumber(claimNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, dto.Failure("claim not found: "+claimNumber))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Claim found", claim))
}

func (h *Handler) getClaimStatus(c *gin.Context) {
	claimNumber := c.Param("claimNumber")

	claim, err := h.service.GetClaimByNumber(claimNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, dto.Failure("claim not found: "+claimNumber))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.String(http.StatusOK, string(claim.Status))
}

func (h *Handler) getClaimAssessment(c *gin.Context) {
	claimNumber := c.Param("claimNumber")

	assessment, err := h.service.GetLatestAssessment(claimNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, dto.Failure("no assessment found for claim: "+claimNumber))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Assessment found", assessment))
}

func (h *Handler) getClaimsByPolicy(c *gin.Context) {
	policyNumber := c.Param("policyNumber")

	claims, err := h.service.GetClaimsByPolicy(policyNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Claims found", claims))
}

func (h *Handler) getPendingClaims(c *gin.Context) {
	claims, err := h.service.GetPendingClaims()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Pending claims", claims))
}
