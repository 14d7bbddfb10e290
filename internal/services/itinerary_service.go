package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const segmentCacheTTL = time.Hour

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	SaveItinerary(ctx context.Context, request request_models.SaveItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	GetItineraryById(ctx context.Context, itineraryId string) (*response_models.ItineraryDetailResponse, error)
	GetListOfItinerariesByUserId(ctx context.Context, page int, pageSize int, userId string) ([]response_models.ItineraryResponse, error)
	DeleteItinerary(ctx context.Context, itineraryId string) error
}

type ItineraryService struct {
	itineraryRepo  repositories.ItineraryRepository
	segmentService SegmentServiceInterface
	aiClient       utils.ItineraryClientInterface
	segmentCache   memcache.SegmentCacheStore
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	segmentService SegmentServiceInterface,
	aiClient utils.ItineraryClientInterface,
	segmentCache memcache.SegmentCacheStore,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo:  itineraryRepo,
		segmentService: segmentService,
		aiClient:       aiClient,
		segmentCache:   segmentCache,
	}
}

// generatedItinerary is the JSON shape the AI client is instructed to return.
type generatedItinerary struct {
	Destination string                        `json:"destination"`
	Itinerary   []request_models.ItineraryDay `json:"itinerary"`
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	if strings.TrimSpace(request.Prompt) == "" || request.DayCount < 1 {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.aiClient.GenerateItineraryJSON(ctx, request.Prompt, request.Destination, request.DayCount)
	if err != nil {
		log.Printf("itinerary generation failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	var generated generatedItinerary
	if err := json.Unmarshal([]byte(raw), &generated); err != nil {
		log.Printf("itinerary JSON did not match schema: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}
	if len(generated.Itinerary) == 0 {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	destination := request.Destination
	if strings.TrimSpace(destination) == "" {
		destination = generated.Destination
	}

	return s.persistAndRespond(ctx, request.UserID, request.Prompt, destination, generated.Itinerary)
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, request request_models.SaveItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	if len(request.Itinerary) == 0 {
		return nil, utils.ErrInvalidInput
	}
	return s.persistAndRespond(ctx, request.UserID, request.Title, request.Destination, request.Itinerary)
}

func (s *ItineraryService) persistAndRespond(ctx context.Context, userId, title, destination string, days []request_models.ItineraryDay) (*response_models.ItineraryDetailResponse, error) {
	record := &dbm.Itinerary{
		UserID:      userId,
		Title:       title,
		Destination: destination,
		Days:        dayModelsFromInput(days),
	}

	id, err := s.itineraryRepo.CreateItinerary(ctx, record)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ItineraryDetailResponse{
		ID:          id.String(),
		Title:       title,
		Destination: destination,
		Itinerary:   days,
		Segments:    s.segmentsFor(destination, days),
	}, nil
}

func (s *ItineraryService) GetItineraryById(ctx context.Context, itineraryId string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.itineraryRepo.GetItineraryById(ctx, itineraryId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	days := dayInputsFromModel(itinerary.Days)

	return &response_models.ItineraryDetailResponse{
		ID:          itinerary.ID.String(),
		Title:       itinerary.Title,
		Destination: itinerary.Destination,
		Itinerary:   days,
		Segments:    s.segmentsFor(itinerary.Destination, days),
	}, nil
}

func (s *ItineraryService) GetListOfItinerariesByUserId(ctx context.Context, page, pageSize int, userId string) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.GetListOfItinerariesByUserId(ctx, page, pageSize, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for _, itinerary := range itineraries {
		out = append(out, response_models.ItineraryResponse{
			ID:          itinerary.ID.String(),
			Title:       itinerary.Title,
			Destination: itinerary.Destination,
			DayCount:    len(itinerary.Days),
			CreatedAt:   itinerary.CreatedAt,
		})
	}
	return out, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, itineraryId string) error {
	if err := s.itineraryRepo.DeleteItineraryById(ctx, itineraryId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// segmentsFor runs the segmenter behind the content-keyed cache. The cache is
// advisory; a miss just recomputes.
func (s *ItineraryService) segmentsFor(destination string, days []request_models.ItineraryDay) response_models.ItinerarySegments {
	key := memcache.SegmentCacheKey(destination, days)
	if cached, ok := s.segmentCache.Get(key); ok {
		return cached
	}

	segments := s.segmentService.SegmentItinerary(days, destination)
	s.segmentCache.Set(key, segments, segmentCacheTTL)
	return segments
}

func dayModelsFromInput(days []request_models.ItineraryDay) []dbm.ItineraryDay {
	out := make([]dbm.ItineraryDay, 0, len(days))
	for i, day := range days {
		record := dbm.ItineraryDay{
			DayNumber:       i + 1,
			Date:            day.Date,
			Title:           day.Title,
			DestinationHint: day.Destination,
		}
		for j, activity := range day.Activities {
			record.Activities = append(record.Activities, dbm.ItineraryActivity{
				Description: activity.Description,
				Address:     activity.Address,
				StartTime:   activity.StartTime,
				EndTime:     activity.EndTime,
				Position:    j,
			})
		}
		out = append(out, record)
	}
	return out
}

func dayInputsFromModel(days []dbm.ItineraryDay) []request_models.ItineraryDay {
	out := make([]request_models.ItineraryDay, 0, len(days))
	for _, day := range days {
		input := request_models.ItineraryDay{
			Day:         day.DayNumber,
			Date:        day.Date,
			Title:       day.Title,
			Destination: day.DestinationHint,
		}
		for _, activity := range day.Activities {
			input.Activities = append(input.Activities, request_models.ItineraryActivity{
				Description: activity.Description,
				Address:     activity.Address,
				StartTime:   activity.StartTime,
				EndTime:     activity.EndTime,
			})
		}
		out = append(out, input)
	}
	return out
}
