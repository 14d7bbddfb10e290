package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type SegmentController struct {
	segmentService services.SegmentServiceInterface
}

func NewSegmentController(segmentService services.SegmentServiceInterface) *SegmentController {
	return &SegmentController{
		segmentService: segmentService,
	}
}

// SegmentItinerary godoc
// @Summary Segment an itinerary by destination
// @Description Partition a day-by-day itinerary into ordered location segments using the trip's destination string
// @Tags Segment
// @Accept json
// @Produce json
// @Param request body request_models.SegmentItineraryRequest true "Destination string and itinerary days"
// @Success 200 {object} response_models.ItinerarySegments
// @Failure 400 {object} utils.APIResponse
// @Router /segments/segment-itinerary [post]
func (s *SegmentController) SegmentItinerary(c *gin.Context) {
	var req request_models.SegmentItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	segments := s.segmentService.SegmentItinerary(req.Itinerary, req.Destination)

	utils.RespondSuccess(c, segments, "Itinerary segmented successfully")
}
