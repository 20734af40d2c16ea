package repository

import (
	"context"
	"errors"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"gorm.io/gorm"
)

type QnaListParams struct {
	Category *string
	Page     int
	PageSize int
}

type QnaRepository interface {
	Create(ctx context.Context, q *domain.Qna) error
	GetByID(ctx context.Context, id int64) (*domain.Qna, error)
	List(ctx context.Context, params QnaListParams) ([]domain.Qna, int64, error)
	Update(ctx context.Context, q *domain.Qna) error
	Delete(ctx context.Context, id int64) error
}

type GormQnaRepo struct {
	db *gorm.DB
}

func NewGormQnaRepo(db *gorm.DB) *GormQnaRepo {
	return &GormQnaRepo{db: db}
}

func (r *GormQnaRepo) Create(ctx context.Context, q *domain.Qna) error {
	model := qnaModelFromDomain(q)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if q != nil {
		*q = *qnaModelToDomain(model)
	}
	return nil
}

func (r *GormQnaRepo) GetByID(ctx context.Context, id int64) (*domain.Qna, error) {
	var model QnaModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return qnaModelToDomain(&model), nil
}

func (r *GormQnaRepo) List(ctx context.Context, params QnaListParams) ([]domain.Qna, int64, error) {
	query := r.db.WithContext(ctx).Model(&QnaModel{})

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
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

	var models []QnaModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	qnas := make([]domain.Qna, 0, len(models))
	for i := range models {
		qnas = append(qnas, *qnaModelToDomain(&models[i]))
	}

	return qnas, total, nil
}

func (r *GormQnaRepo) Update(ctx context.Context, q *domain.Qna) error {
	if q == nil {
		return domain.ErrNotFound
	}

	result := r.db.WithContext(ctx).
		Model(&QnaModel{}).
		Where("id = ?", q.ID).
		Updates(map[string]any{
			"category": q.Category,
			"question": q.Question,
			"answer":   q.Answer,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormQnaRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&QnaModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
