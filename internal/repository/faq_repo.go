package repository

import (
	"context"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"gorm.io/gorm"
)

type FaqRepository interface {
	ListAll(ctx context.Context) ([]domain.Faq, error)
}

type GormFaqRepo struct {
	db *gorm.DB
}

func NewGormFaqRepo(db *gorm.DB) *GormFaqRepo {
	return &GormFaqRepo{db: db}
}

func (r *GormFaqRepo) ListAll(ctx context.Context) ([]domain.Faq, error) {
	var models []FaqModel
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	faqs := make([]domain.Faq, 0, len(models))
	for i := range models {
		faqs = append(faqs, *faqModelToDomain(&models[i]))
	}

	return faqs, nil
}
