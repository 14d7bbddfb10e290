package response_models

import "voyago/internal/models/request_models"

type DestinationSegment struct {
	Name     string                        `json:"name"`
	StartDay int                           `json:"start_day"`
	EndDay   int                           `json:"end_day"`
	Days     []request_models.ItineraryDay `json:"days"`
}

// ItinerarySegments lists segments in the order their names first appeared
// while scanning the itinerary. Order mirrors that sequence and is what
// consumers use for tab labels and image lookups.
type ItinerarySegments struct {
	Order    []string             `json:"order"`
	Segments []DestinationSegment `json:"segments"`
}

type SegmentCover struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
	Matched  string `json:"matched,omitempty"`
}
