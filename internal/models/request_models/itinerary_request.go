package request_models

type ItineraryActivity struct {
	Description string `json:"description"`
	Address     string `json:"address,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
}

type ItineraryDay struct {
	Day        int                 `json:"day"`
	Date       string              `json:"date,omitempty"`
	Title      string              `json:"title"`
	Activities []ItineraryActivity `json:"activities"`
	// Destination is the upstream generator's hint for this day. It is either
	// a place name or the "Travel Day" marker; see services.SegmentService.
	Destination string `json:"_destination,omitempty"`
}

type SegmentItineraryRequest struct {
	Destination string         `json:"destination"`
	Itinerary   []ItineraryDay `json:"itinerary"`
}

type SaveItineraryRequest struct {
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Destination string         `json:"destination"`
	Itinerary   []ItineraryDay `json:"itinerary"`
}

type GenerateItineraryRequest struct {
	UserID      string `json:"user_id"`
	Prompt      string `json:"prompt"`
	Destination string `json:"destination"`
	DayCount    int    `json:"day_count"`
}

type UpsertDestinationRequest struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	PhotoURL string   `json:"photo_url"`
}
