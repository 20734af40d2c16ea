package repository

import (
	"context"
	"errors"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"gorm.io/gorm"
)

type GuideListParams struct {
	Category      *string
	PublishedOnly bool
	Page          int
	PageSize      int
}

type GuideRepository interface {
	Create(ctx context.Context, g *domain.Guide) error
	GetByID(ctx context.Context, id int64) (*domain.Guide, error)
	List(ctx context.Context, params GuideListParams) ([]domain.Guide, int64, error)
	Update(ctx context.Context, g *domain.Guide) error
	Delete(ctx context.Context, id int64) error
}

type GormGuideRepo struct {
	db *gorm.DB
}

func NewGormGuideRepo(db *gorm.DB) *GormGuideRepo {
	return &GormGuideRepo{db: db}
}

func (r *GormGuideRepo) Create(ctx context.Context, g *domain.Guide) error {
	model := guideModelFromDomain(g)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if g != nil {
		*g = *guideModelToDomain(model)
	}
	return nil
}

func (r *GormGuideRepo) GetByID(ctx context.Context, id int64) (*domain.Guide, error) {
	var model GuideModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return guideModelToDomain(&model), nil
}

func (r *GormGuideRepo) List(ctx context.Context, params GuideListParams) ([]domain.Guide, int64, error) {
	query := r.db.WithContext(ctx).Model(&GuideModel{})

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.PublishedOnly {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := max(params.Page, 1)
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	pageSize = min(pageSize, 100)

	var models []GuideModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	guides := make([]domain.Guide, 0, len(models))
	for i := range models {
		guides = append(guides, *guideModelToDomain(&models[i]))
	}

	return guides, total, nil
}

func (r *GormGuideRepo) Update(ctx context.Context, g *domain.Guide) error {
	if g == nil {
		return domain.ErrNotFound
	}

	result := r.db.WithContext(ctx).
		Model(&GuideModel{}).
		Where("id = ?", g.ID).
		Updates(map[string]any{
			"title":     g.Title,
			"category":  g.Category,
			"summary":   g.Summary,
			"content":   g.Content,
			"image_url": g.ImageURL,
			"published": g.Published,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormGuideRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&GuideModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
