package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/gifting-campaign-service/internal/database/repository"
	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/excel"
	"github.com/onegreenvn/gifting-campaign-service/internal/utils"
	"github.com/sirupsen/logrus"
)

type LaunchRunHandler struct {
	launchService *services.LaunchService
	excelService  *excel.Service
	sseHub        *services.SSEHub
}

func NewLaunchRunHandler(launchService *services.LaunchService, excelService *excel.Service, sseHub *services.SSEHub) *LaunchRunHandler {
	return &LaunchRunHandler{
		launchService: launchService,
		excelService:  excelService,
		sseHub:        sseHub,
	}
}

// ListLaunchRuns godoc
// @Summary List launch runs
// @Description Get paginated launch runs for an organization, newest first
// @Tags launch-runs
// @Produce json
// @Security BearerAuth
// @Param org path string true "Organization ID"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {array} models.LaunchRunResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/organizations/{org}/launch-runs [get]
func (h *LaunchRunHandler) ListLaunchRuns(c *gin.Context) {
	orgID := c.Param("org")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization ID is required"})
		return
	}

	page, pageSize := utils.ParsePagination(c.Query("page"), c.Query("page_size"))

	runs, err := h.launchService.ListRuns(orgID, pageSize, utils.CalculateOffset(page, pageSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get launch runs", "details": err.Error()})
		return
	}

	responses := make([]*models.LaunchRunResponse, len(runs))
	for i, run := range runs {
		responses[i] = h.launchService.ToResponse(run)
	}
	c.JSON(http.StatusOK, responses)
}

// GetLaunchRun godoc
// @Summary Get a launch run
// @Description Get a launch run with its step results
// @Tags launch-runs
// @Produce json
// @Security BearerAuth
// @Param org path string true "Organization ID"
// @Param id path string true "Launch run ID"
// @Success 200 {object} models.LaunchRunResponse
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/organizations/{org}/launch-runs/{id} [get]
func (h *LaunchRunHandler) GetLaunchRun(c *gin.Context) {
	run, err := h.launchService.GetRun(c.Param("id"), c.Param("org"))
	if err != nil {
		if errors.Is(err, repository.ErrLaunchRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Launch run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get launch run", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.launchService.ToResponse(run))
}

// StreamLaunchRun godoc
// @Summary Stream launch run progress via Server-Sent Events (SSE)
// @Description Streams state changes and step results of a run. Emits "snapshot" on connect, then "progress" and a final "result".
// @Tags launch-runs
// @Produce text/event-stream
// @Security BearerAuth
// @Param org path string true "Organization ID"
// @Param id path string true "Launch run ID"
// @Success 200 "SSE stream"
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/organizations/{org}/launch-runs/{id}/stream [get]
func (h *LaunchRunHandler) StreamLaunchRun(c *gin.Context) {
	runID := c.Param("id")

	// Subscribe before reading the run so no transition falls between the two
	clientChan := h.sseHub.RegisterClient(services.EntityLaunchRun, runID)
	defer h.sseHub.UnregisterClient(services.EntityLaunchRun, runID, clientChan)

	run, err := h.launchService.GetRun(runID, c.Param("org"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Launch run not found"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	// Current state first so late subscribers see where the run is
	c.SSEvent("snapshot", h.launchService.ToResponse(run))
	c.Writer.Flush()
	if run.State.IsTerminal() {
		return
	}

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Infof("SSE client disconnected: %s/%s", services.EntityLaunchRun, runID)
			return
		case <-heartbeat.C:
			h.sseHub.SendHeartbeat(services.EntityLaunchRun, runID)
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

// ExportLaunchRuns godoc
// @Summary Export launch runs to Excel
// @Description Download an organization's launch runs and their step results as an xlsx workbook
// @Tags launch-runs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param org path string true "Organization ID"
// @Param limit query int false "Limit" default(1000)
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/organizations/{org}/launch-runs/export [get]
func (h *LaunchRunHandler) ExportLaunchRuns(c *gin.Context) {
	orgID := c.Param("org")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization ID is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "1000"))
	if limit <= 0 || limit > 10000 {
		limit = 1000
	}

	runs, err := h.launchService.ListRuns(orgID, limit, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get launch runs", "details": err.Error()})
		return
	}

	buf, err := h.excelService.ExportLaunchRuns(runs)
	if err != nil {
		logrus.Errorf("Failed to export launch runs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export launch runs", "details": err.Error()})
		return
	}

	filename := fmt.Sprintf("launch_runs_%s_%d.xlsx", orgID, time.Now().Unix())
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Cache-Control", "must-revalidate")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
