package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "voyago/internal/models/db_models"
)

type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) (uuid.UUID, error)
	GetItineraryById(ctx context.Context, itineraryId string) (*dbm.Itinerary, error)
	GetListOfItinerariesByUserId(ctx context.Context, page int, pageSize int, userId string) ([]dbm.Itinerary, error)
	DeleteItineraryById(ctx context.Context, itineraryId string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) (uuid.UUID, error) {
	// Days and activities ride along through gorm's association create, so
	// the whole itinerary lands in one transaction.
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) GetItineraryById(ctx context.Context, itineraryId string) (*dbm.Itinerary, error) {
	id, err := uuid.Parse(itineraryId)
	if err != nil {
		return nil, nil
	}

	var itinerary dbm.Itinerary
	err = r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_days.day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_activities.position ASC")
		}).
		First(&itinerary, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) GetListOfItinerariesByUserId(ctx context.Context, page int, pageSize int, userId string) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Days").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) DeleteItineraryById(ctx context.Context, itineraryId string) error {
	id, err := uuid.Parse(itineraryId)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	return r.db.WithContext(ctx).Delete(&dbm.Itinerary{}, "id = ?", id).Error
}
