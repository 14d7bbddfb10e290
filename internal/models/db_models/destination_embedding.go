package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type DestinationEmbedding struct {
	Name      string          `gorm:"primaryKey;column:name"`
	Aliases   pq.StringArray  `gorm:"type:text[]"`
	PhotoURL  string          `gorm:"column:photo_url"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
