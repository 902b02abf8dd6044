package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/gifting-campaign-service/internal/middleware"
	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services"
	"github.com/sirupsen/logrus"
)

// IdempotencyKeyHeader names the header that dedupes launch submissions
const IdempotencyKeyHeader = "Idempotency-Key"

type LaunchHandler struct {
	launchService *services.LaunchService
	launchTimeout time.Duration
}

// NewLaunchHandler creates the handler. launchTimeout bounds each run once it
// is detached from the request; 0 leaves runs unbounded.
func NewLaunchHandler(launchService *services.LaunchService, launchTimeout time.Duration) *LaunchHandler {
	return &LaunchHandler{launchService: launchService, launchTimeout: launchTimeout}
}

// LaunchCampaign godoc
// @Summary Create, configure and launch a campaign
// @Description Runs the complete campaign flow for a designer snapshot. A failed launch after configuration returns partialSuccess with the campaign id.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param org path string true "Organization ID"
// @Param Idempotency-Key header string false "Key deduplicating repeated submissions"
// @Param async query bool false "Queue the run and return immediately"
// @Param request body models.LaunchRequest true "Designer snapshot"
// @Success 200 {object} models.LaunchRunResponse
// @Success 202 {object} models.LaunchRunResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 502 {object} models.LaunchRunResponse
// @Router /api/v1/organizations/{org}/campaigns/launch [post]
func (h *LaunchHandler) LaunchCampaign(c *gin.Context) {
	h.launch(c, models.FlowStandard)
}

// SaveDraft godoc
// @Summary Save a campaign as draft
// @Description Creates and configures a campaign and records the gift selection intent without launching
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param org path string true "Organization ID"
// @Param Idempotency-Key header string false "Key deduplicating repeated submissions"
// @Param async query bool false "Queue the run and return immediately"
// @Param request body models.LaunchRequest true "Designer snapshot"
// @Success 200 {object} models.LaunchRunResponse
// @Success 202 {object} models.LaunchRunResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 502 {object} models.LaunchRunResponse
// @Router /api/v1/organizations/{org}/campaigns/draft [post]
func (h *LaunchHandler) SaveDraft(c *gin.Context) {
	h.launch(c, models.FlowDraft)
}

// LaunchBoothGiveaway godoc
// @Summary Launch a booth giveaway campaign
// @Description Runs the booth giveaway flow and returns the claim link. Launch failure fails the whole run.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param org path string true "Organization ID"
// @Param Idempotency-Key header string false "Key deduplicating repeated submissions"
// @Param async query bool false "Queue the run and return immediately"
// @Param request body models.LaunchRequest true "Designer snapshot"
// @Success 200 {object} models.LaunchRunResponse
// @Success 202 {object} models.LaunchRunResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 502 {object} models.LaunchRunResponse
// @Router /api/v1/organizations/{org}/campaigns/booth-giveaway [post]
func (h *LaunchHandler) LaunchBoothGiveaway(c *gin.Context) {
	h.launch(c, models.FlowBooth)
}

func (h *LaunchHandler) launch(c *gin.Context, variant models.FlowVariant) {
	orgID := c.Param("org")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization ID is required"})
		return
	}

	var req models.LaunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Snapshot.CampaignName) == "" && req.Snapshot.CampaignID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": "campaignName is required"})
		return
	}

	input := services.LaunchInput{
		OrganizationID: orgID,
		AuthToken:      c.GetString(middleware.ContextAuthToken),
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
		Variant:        variant,
		Snapshot:       req.Snapshot,
	}

	var (
		run      *models.LaunchRun
		replayed bool
		err      error
	)
	// Detached from the request: a dropped connection leaves the run going
	ctx := context.WithoutCancel(c.Request.Context())
	if h.launchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.launchTimeout)
		defer cancel()
	}

	async := c.Query("async") == "true"
	if async {
		run, replayed, err = h.launchService.Enqueue(ctx, input)
	} else {
		run, replayed, err = h.launchService.Launch(ctx, input)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAsyncUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Async launches are not available", "details": err.Error()})
		case errors.Is(err, services.ErrIdempotencyConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Idempotency key conflict", "details": err.Error()})
		default:
			logrus.Errorf("Failed to start %s run: %v", variant, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start campaign run", "details": err.Error()})
		}
		return
	}

	c.Header(IdempotencyKeyHeader, run.IdempotencyKey)
	if replayed {
		c.Header("Idempotent-Replayed", "true")
	}

	response := h.launchService.ToResponse(run)
	switch {
	case !run.State.IsTerminal():
		c.JSON(http.StatusAccepted, response)
	case run.State == models.RunFailed:
		c.JSON(http.StatusBadGateway, response)
	default:
		c.JSON(http.StatusOK, response)
	}
}
