package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ArtworkGormRepository struct {
	db *gorm.DB
}

func NewArtworkGormRepository(db *gorm.DB) *ArtworkGormRepository {
	return &ArtworkGormRepository{db: db}
}

func (r *ArtworkGormRepository) ListAvailable(ctx context.Context, q repo.ArtworkListQuery) ([]model.Artwork, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}

	base := r.db.WithContext(ctx).Model(&model.Artwork{}).
		Where("is_available = ?", true)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return []model.Artwork{}, 0, err
	}

	var items []model.Artwork
	offset := (q.Page - 1) * q.Limit
	if err := base.Order("id desc").Limit(q.Limit).Offset(offset).Find(&items).Error; err != nil {
		return []model.Artwork{}, 0, err
	}

	return items, total, nil
}

func (r *ArtworkGormRepository) FindByID(ctx context.Context, artworkID int64) (model.Artwork, error) {
	var a model.Artwork
	err := r.db.WithContext(ctx).Where("id = ?", artworkID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Artwork{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Artwork{}, err
	}
	return a, nil
}
