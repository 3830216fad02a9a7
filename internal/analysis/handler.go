package analysis

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Historical baseline for the pricing calculator
// --------------------------------------------------
func (h *Handler) Analysis(c *gin.Context) {
	eventTypeCode := c.Query("eventTypeCode")
	if eventTypeCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventTypeCode is required"})
		return
	}

	guestCount, err := strconv.Atoi(c.DefaultQuery("guestCount", "0"))
	if err != nil || guestCount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guestCount"})
		return
	}

	baseline, err := h.service.Analyze(c.Request.Context(), eventTypeCode, guestCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, baseline)
}

// --------------------------------------------------
// Dashboard descriptive statistics
// --------------------------------------------------
func (h *Handler) Statistics(c *gin.Context) {
	result, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
