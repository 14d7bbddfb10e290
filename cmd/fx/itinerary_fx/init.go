package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

var Module = fx.Provide(provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	segmentService services.SegmentServiceInterface,
	aiClient utils.ItineraryClientInterface,
	segmentCache memcache.SegmentCacheStore,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, segmentService, aiClient, segmentCache)
}
