package db_models

import (
	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	UserID      string
	Title       string
	Destination string

	Days []ItineraryDay `gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	DayNumber   int
	Date        string
	Title       string
	// DestinationHint carries the generator's per-day hint, including the
	// "Travel Day" marker, exactly as received.
	DestinationHint string

	Activities []ItineraryActivity `gorm:"foreignKey:ItineraryDayID;constraint:OnDelete:CASCADE"`
}

type ItineraryActivity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"index"`
	Description    string
	Address        string
	StartTime      string
	EndTime        string
	Position       int
}
