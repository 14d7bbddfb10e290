package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary from a prompt
// @Description Generate a day-by-day itinerary with the configured AI provider, store it and return it with destination segments
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Prompt, destination string and day count"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itineraries/generate-itinerary [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		utils.RespondError(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	detail, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Itinerary generated successfully")
}

// SaveItinerary godoc
// @Summary Save a caller-supplied itinerary
// @Description Persist an itinerary produced elsewhere and return it with destination segments
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SaveItineraryRequest true "Itinerary days and destination string"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/save-itinerary [post]
func (i *ItineraryController) SaveItinerary(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Itinerary) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary days are required")
		return
	}

	detail, err := i.itineraryService.SaveItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Itinerary saved successfully")
}

// GetItineraryById godoc
// @Summary Get itinerary details by ID
// @Description Fetch a stored itinerary with its destination segments
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/get-itinerary-by-id/{itineraryId} [get]
func (i *ItineraryController) GetItineraryById(c *gin.Context) {
	itineraryId := c.Param("itineraryId")
	if itineraryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	detail, err := i.itineraryService.GetItineraryById(c.Request.Context(), itineraryId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Itinerary fetched successfully")
}

// GetItinerariesByUserId godoc
// @Summary List itineraries by user ID
// @Description Fetch a paginated list of a user's stored itineraries
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param userId query string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItineraryResponse
// @Router /itineraries/get-itineraries-by-userid [get]
func (i *ItineraryController) GetItinerariesByUserId(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "5")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userId := c.Query("userId")
	if userId == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	itineraries, err := i.itineraryService.GetListOfItinerariesByUserId(c.Request.Context(), page, pageSize, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Description Soft-delete a stored itinerary by ID
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/delete-itinerary/{itineraryId} [post]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	itineraryId := c.Param("itineraryId")
	if itineraryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), itineraryId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
