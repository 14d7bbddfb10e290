package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"voyago/internal/models/db_models"
)

type IDestinationEmbeddingRepository interface {
	GetDestinationByName(name string) (*db_models.DestinationEmbedding, error)
	GetNearestDestinationByVector(vector pgvector.Vector) (*db_models.DestinationEmbedding, error)
	UpsertDestinationEmbedding(destination db_models.DestinationEmbedding) error
}

type DestinationEmbeddingRepository struct {
	db *gorm.DB
}

func NewDestinationEmbeddingRepository(db *gorm.DB) IDestinationEmbeddingRepository {
	return &DestinationEmbeddingRepository{db: db}
}

func (r *DestinationEmbeddingRepository) GetDestinationByName(name string) (*db_models.DestinationEmbedding, error) {
	var result db_models.DestinationEmbedding
	err := r.db.First(&result, "lower(name) = lower(?)", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *DestinationEmbeddingRepository) GetNearestDestinationByVector(vector pgvector.Vector) (*db_models.DestinationEmbedding, error) {
	var results []db_models.DestinationEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM destination_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 1
    `

	err := r.db.Raw(query, vecStr).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *DestinationEmbeddingRepository) UpsertDestinationEmbedding(destination db_models.DestinationEmbedding) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&destination).Error
}
