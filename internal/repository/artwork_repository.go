package repository

import (
	"context"

	"app/internal/domain/model"
)

type ArtworkListQuery struct {
	Page  int
	Limit int
}

type ArtworkRepository interface {
	ListAvailable(ctx context.Context, q ArtworkListQuery) ([]model.Artwork, int64, error)
	FindByID(ctx context.Context, artworkID int64) (model.Artwork, error)
}
