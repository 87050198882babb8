package delivery

import (
	"net/http"

	"wanderlist-backend/internal/advisor/usecase"
	"wanderlist-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// AdvisorHandler handles the AI advisory endpoints.
type AdvisorHandler struct {
	advisorUsecase usecase.AdvisorUsecase
}

func NewAdvisorHandler(advisorUsecase usecase.AdvisorUsecase) *AdvisorHandler {
	return &AdvisorHandler{
		advisorUsecase: advisorUsecase,
	}
}

type itineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1"`
	Interests   []string `json:"interests"`
}

type destinationRequest struct {
	Destination string `json:"destination" binding:"required"`
}

// GetItinerary handles POST /api/ai/itinerary
func (h *AdvisorHandler) GetItinerary(c *gin.Context) {
	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := h.advisorUsecase.GetItinerary(c.Request.Context(), req.Destination, req.Days, req.Interests)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"itinerary": text})
}

// GetBestTime handles POST /api/ai/best-time
func (h *AdvisorHandler) GetBestTime(c *gin.Context) {
	var req destinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := h.advisorUsecase.GetBestTime(c.Request.Context(), req.Destination)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bestTime": text})
}

// GetNearby handles POST /api/ai/nearby
func (h *AdvisorHandler) GetNearby(c *gin.Context) {
	var req destinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := h.advisorUsecase.GetNearby(c.Request.Context(), req.Destination)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attractions": text})
}
