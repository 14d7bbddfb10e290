package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type GalleryController struct {
	galleryService services.GalleryServiceInterface
}

func NewGalleryController(galleryService services.GalleryServiceInterface) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// GetCoverForSegment godoc
// @Summary Get a cover photo for a segment name
// @Description Resolve a segment name to a destination cover photo, by exact name or embedding similarity
// @Tags Gallery
// @Accept json
// @Produce json
// @Param name query string true "Segment name"
// @Success 200 {object} response_models.SegmentCover
// @Router /gallery/get-cover-for-segment [get]
func (g *GalleryController) GetCoverForSegment(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Segment name is required")
		return
	}

	cover, err := g.galleryService.GetCoverForSegment(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cover, "Cover fetched successfully")
}

// UpsertDestination godoc
// @Summary Upsert a destination cover record
// @Description Store or refresh a destination's aliases, photo URL and embedding
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body request_models.UpsertDestinationRequest true "Destination name, aliases and photo URL"
// @Success 200 {object} utils.APIResponse
// @Router /gallery/upsert-destination [post]
func (g *GalleryController) UpsertDestination(c *gin.Context) {
	var req request_models.UpsertDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination name is required")
		return
	}

	if err := g.galleryService.UpsertDestination(c.Request.Context(), req.Name, req.Aliases, req.PhotoURL); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination upserted successfully")
}
