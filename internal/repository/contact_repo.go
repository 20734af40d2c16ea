package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"gorm.io/gorm"
)

type ContactListParams struct {
	Status   *domain.ContactStatus
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	List(ctx context.Context, params ContactListParams) ([]domain.Contact, int64, error)
	MarkAccepted(ctx context.Context, id int64, staffName string, staffEmail string) error
	MarkRejected(ctx context.Context, id int64, reason string) error
}

type GormContactRepo struct {
	db *gorm.DB
}

func NewGormContactRepo(db *gorm.DB) *GormContactRepo {
	return &GormContactRepo{db: db}
}

func (r *GormContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	model := contactModelFromDomain(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if c != nil {
		*c = *contactModelToDomain(model)
	}
	return nil
}

func (r *GormContactRepo) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	var model ContactModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return contactModelToDomain(&model), nil
}

func (r *GormContactRepo) List(ctx context.Context, params ContactListParams) ([]domain.Contact, int64, error) {
	query := r.db.WithContext(ctx).Model(&ContactModel{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("created_at <= ?", *params.To)
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

	var models []ContactModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	contacts := make([]domain.Contact, 0, len(models))
	for i := range models {
		contacts = append(contacts, *contactModelToDomain(&models[i]))
	}

	return contacts, total, nil
}

// MarkAccepted writes the accept block and clears the reject block.
// Last write wins; there is no optimistic-concurrency check.
func (r *GormContactRepo) MarkAccepted(ctx context.Context, id int64, staffName string, staffEmail string) error {
	result := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           domain.ContactStatusAccepted,
			"lighthouse_name":  staffName,
			"lighthouse_email": staffEmail,
			"rejection_reason": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkRejected writes the reject block and clears the accept block.
func (r *GormContactRepo) MarkRejected(ctx context.Context, id int64, reason string) error {
	result := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           domain.ContactStatusRejected,
			"rejection_reason": reason,
			"lighthouse_name":  nil,
			"lighthouse_email": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
