package gallery_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(provideDestinationRepo, provideGalleryService)

func provideDestinationRepo(db *gorm.DB) repositories.IDestinationEmbeddingRepository {
	return repositories.NewDestinationEmbeddingRepository(db)
}

func provideGalleryService(
	destinationRepo repositories.IDestinationEmbeddingRepository,
	aiClient utils.ItineraryClientInterface,
) services.GalleryServiceInterface {
	return services.NewGalleryService(destinationRepo, aiClient)
}
