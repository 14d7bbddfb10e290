package services

import (
	"context"
	"log"
	"strings"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// GalleryService resolves segment names to cover photos. Exact name matches
// are tried first; otherwise the name is embedded and the nearest stored
// destination above the similarity floor supplies the photo. No match is not
// an error, consumers fall back to a placeholder.
type GalleryServiceInterface interface {
	GetCoverForSegment(ctx context.Context, name string) (response_models.SegmentCover, error)
	UpsertDestination(ctx context.Context, name string, aliases []string, photoURL string) error
}

type GalleryService struct {
	destinationRepo repositories.IDestinationEmbeddingRepository
	aiClient        utils.ItineraryClientInterface
}

func NewGalleryService(
	destinationRepo repositories.IDestinationEmbeddingRepository,
	aiClient utils.ItineraryClientInterface,
) GalleryServiceInterface {
	return &GalleryService{
		destinationRepo: destinationRepo,
		aiClient:        aiClient,
	}
}

func (g *GalleryService) GetCoverForSegment(ctx context.Context, name string) (response_models.SegmentCover, error) {
	cover := response_models.SegmentCover{Name: name}
	if strings.TrimSpace(name) == "" {
		return cover, nil
	}

	exact, err := g.destinationRepo.GetDestinationByName(name)
	if err != nil {
		return cover, utils.ErrDatabaseError
	}
	if exact != nil {
		cover.PhotoURL = exact.PhotoURL
		cover.Matched = exact.Name
		return cover, nil
	}

	vector, err := g.aiClient.GetEmbedding(ctx, name)
	if err != nil {
		log.Printf("embedding lookup failed for %q: %v", name, err)
		return cover, utils.ErrUnexpectedBehaviorOfAI
	}

	nearest, err := g.destinationRepo.GetNearestDestinationByVector(vector)
	if err != nil {
		return cover, utils.ErrDatabaseError
	}
	if nearest != nil {
		cover.PhotoURL = nearest.PhotoURL
		cover.Matched = nearest.Name
	}
	return cover, nil
}

func (g *GalleryService) UpsertDestination(ctx context.Context, name string, aliases []string, photoURL string) error {
	if strings.TrimSpace(name) == "" {
		return utils.ErrInvalidInput
	}

	// Embed the name together with its aliases so nearby spellings land on
	// the same record.
	vector, err := g.aiClient.GetEmbedding(ctx, strings.Join(append([]string{name}, aliases...), " "))
	if err != nil {
		return utils.ErrUnexpectedBehaviorOfAI
	}

	record := db_models.DestinationEmbedding{
		Name:      name,
		Aliases:   aliases,
		PhotoURL:  photoURL,
		Embedding: vector,
	}
	if err := g.destinationRepo.UpsertDestinationEmbedding(record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
