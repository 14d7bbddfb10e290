package response_models

import "voyago/internal/models/request_models"

type ItineraryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	DayCount    int    `json:"day_count"`
	CreatedAt   int64  `json:"created_at"`
}

type ItineraryDetailResponse struct {
	ID          string                        `json:"id"`
	Title       string                        `json:"title"`
	Destination string                        `json:"destination"`
	Itinerary   []request_models.ItineraryDay `json:"itinerary"`
	Segments    ItinerarySegments             `json:"segments"`
}
