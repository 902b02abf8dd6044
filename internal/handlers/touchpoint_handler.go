package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/touchpoint"
)

type TouchpointHandler struct {
	tracker *touchpoint.Tracker
}

func NewTouchpointHandler(tracker *touchpoint.Tracker) *TouchpointHandler {
	return &TouchpointHandler{tracker: tracker}
}

// LogTouchpoint godoc
// @Summary Record a recipient touchpoint
// @Description Accepts a touchpoint from a recipient-facing page and forwards it to the recipient timeline. Browser metadata missing from touchpointData is filled from the request's User-Agent and Host. Delivery is asynchronous and never fails the caller.
// @Tags touchpoints
// @Accept json
// @Produce json
// @Param request body models.TouchpointEvent true "Touchpoint event"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/touchpoints [post]
func (h *TouchpointHandler) LogTouchpoint(c *gin.Context) {
	var event models.TouchpointEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if errs := touchpoint.ValidateEvent(&event); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid touchpoint", "details": errs})
		return
	}

	browsing := touchpoint.BrowsingContext{
		UserAgent: c.Request.UserAgent(),
		Host:      c.Request.Host,
	}
	h.tracker.Emit(c.Request.Context(), func() touchpoint.BrowsingContext { return browsing }, event)

	c.JSON(http.StatusAccepted, gin.H{
		"accepted":       true,
		"touchpointType": event.TouchpointType,
		"phase":          event.TouchpointType.Phase(),
	})
}

// ListTouchpointTypes godoc
// @Summary List touchpoint types
// @Description Returns every accepted touchpoint type with its journey phase
// @Tags touchpoints
// @Produce json
// @Success 200 {array} map[string]string
// @Router /api/v1/touchpoints/types [get]
func (h *TouchpointHandler) ListTouchpointTypes(c *gin.Context) {
	types := models.AllTouchpointTypes()
	response := make([]gin.H, len(types))
	for i, kind := range types {
		response[i] = gin.H{"type": kind, "phase": kind.Phase()}
	}
	c.JSON(http.StatusOK, response)
}
