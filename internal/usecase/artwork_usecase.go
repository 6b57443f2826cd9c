package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ArtworkUsecase struct {
	artworkRepo repo.ArtworkRepository
}

func NewArtworkUsecase(artworkRepo repo.ArtworkRepository) *ArtworkUsecase {
	return &ArtworkUsecase{artworkRepo: artworkRepo}
}

type ListArtworksInput struct {
	Page  int
	Limit int
}

type ListArtworksOutput struct {
	Items []model.Artwork `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ArtworkUsecase) ListAvailable(ctx context.Context, in ListArtworksInput) (ListArtworksOutput, error) {
	if in.Page <= 0 {
		return ListArtworksOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit <= 0 || in.Limit > 100 {
		return ListArtworksOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.artworkRepo.ListAvailable(ctx, repo.ArtworkListQuery{
		Page:  in.Page,
		Limit: in.Limit,
	})
	if err != nil {
		return ListArtworksOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ListArtworksOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

// Detail hides unavailable artworks from the public surface.
func (u *ArtworkUsecase) Detail(ctx context.Context, artworkID int64) (model.Artwork, error) {
	if artworkID <= 0 {
		return model.Artwork{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	a, err := u.artworkRepo.FindByID(ctx, artworkID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Artwork{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Artwork{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !a.IsAvailable {
		return model.Artwork{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	return a, nil
}
