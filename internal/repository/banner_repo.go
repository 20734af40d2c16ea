package repository

import (
	"context"
	"errors"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"gorm.io/gorm"
)

type BannerInquiryListParams struct {
	Status   *domain.BannerInquiryStatus
	Page     int
	PageSize int
}

type BannerInquiryRepository interface {
	Create(ctx context.Context, b *domain.BannerInquiry) error
	GetByID(ctx context.Context, id int64) (*domain.BannerInquiry, error)
	List(ctx context.Context, params BannerInquiryListParams) ([]domain.BannerInquiry, int64, error)
	MarkReviewed(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type GormBannerInquiryRepo struct {
	db *gorm.DB
}

func NewGormBannerInquiryRepo(db *gorm.DB) *GormBannerInquiryRepo {
	return &GormBannerInquiryRepo{db: db}
}

func (r *GormBannerInquiryRepo) Create(ctx context.Context, b *domain.BannerInquiry) error {
	model := bannerInquiryModelFromDomain(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if b != nil {
		*b = *bannerInquiryModelToDomain(model)
	}
	return nil
}

func (r *GormBannerInquiryRepo) GetByID(ctx context.Context, id int64) (*domain.BannerInquiry, error) {
	var model BannerInquiryModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bannerInquiryModelToDomain(&model), nil
}

func (r *GormBannerInquiryRepo) List(ctx context.Context, params BannerInquiryListParams) ([]domain.BannerInquiry, int64, error) {
	query := r.db.WithContext(ctx).Model(&BannerInquiryModel{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := max(params.Page, 1)
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	pageSize = min(pageSize, 100)

	var models []BannerInquiryModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	inquiries := make([]domain.BannerInquiry, 0, len(models))
	for i := range models {
		inquiries = append(inquiries, *bannerInquiryModelToDomain(&models[i]))
	}

	return inquiries, total, nil
}

func (r *GormBannerInquiryRepo) MarkReviewed(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&BannerInquiryModel{}).
		Where("id = ? AND status = ?", id, domain.BannerInquiryStatusNew).
		Update("status", domain.BannerInquiryStatusReviewed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *GormBannerInquiryRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&BannerInquiryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
