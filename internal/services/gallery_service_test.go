package services

import (
	"context"
	"testing"

	"github.com/pgvector/pgvector-go"
	"voyago/internal/models/db_models"
)

type mockDestinationRepo struct {
	byName   map[string]*db_models.DestinationEmbedding
	nearest  *db_models.DestinationEmbedding
	upserted []db_models.DestinationEmbedding
}

func (m *mockDestinationRepo) GetDestinationByName(name string) (*db_models.DestinationEmbedding, error) {
	return m.byName[name], nil
}

func (m *mockDestinationRepo) GetNearestDestinationByVector(vector pgvector.Vector) (*db_models.DestinationEmbedding, error) {
	return m.nearest, nil
}

func (m *mockDestinationRepo) UpsertDestinationEmbedding(destination db_models.DestinationEmbedding) error {
	m.upserted = append(m.upserted, destination)
	return nil
}

func TestGetCoverForSegmentExactMatch(t *testing.T) {
	repo := &mockDestinationRepo{byName: map[string]*db_models.DestinationEmbedding{
		"Japan": {Name: "Japan", PhotoURL: "https://img.example/japan.jpg"},
	}}
	svc := NewGalleryService(repo, &mockAIClient{})

	cover, err := svc.GetCoverForSegment(context.Background(), "Japan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cover.PhotoURL != "https://img.example/japan.jpg" || cover.Matched != "Japan" {
		t.Fatalf("cover = %+v", cover)
	}
}

func TestGetCoverForSegmentVectorFallback(t *testing.T) {
	repo := &mockDestinationRepo{
		byName:  map[string]*db_models.DestinationEmbedding{},
		nearest: &db_models.DestinationEmbedding{Name: "Tokyo", PhotoURL: "https://img.example/tokyo.jpg"},
	}
	svc := NewGalleryService(repo, &mockAIClient{})

	cover, err := svc.GetCoverForSegment(context.Background(), "Tokio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cover.Matched != "Tokyo" {
		t.Fatalf("expected vector match on Tokyo, got %+v", cover)
	}
}

func TestGetCoverForSegmentNoMatch(t *testing.T) {
	repo := &mockDestinationRepo{byName: map[string]*db_models.DestinationEmbedding{}}
	svc := NewGalleryService(repo, &mockAIClient{})

	cover, err := svc.GetCoverForSegment(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("no match must not error: %v", err)
	}
	if cover.PhotoURL != "" {
		t.Fatalf("expected empty cover, got %+v", cover)
	}
}

func TestUpsertDestination(t *testing.T) {
	repo := &mockDestinationRepo{byName: map[string]*db_models.DestinationEmbedding{}}
	svc := NewGalleryService(repo, &mockAIClient{})

	err := svc.UpsertDestination(context.Background(), "Denmark", []string{"Copenhagen"}, "https://img.example/dk.jpg")
	if err != nil {
		t.Fatalf("UpsertDestination failed: %v", err)
	}
	if len(repo.upserted) != 1 || repo.upserted[0].Name != "Denmark" {
		t.Fatalf("upserted = %+v", repo.upserted)
	}

	if err := svc.UpsertDestination(context.Background(), "  ", nil, ""); err == nil {
		t.Fatal("blank name must be rejected")
	}
}
