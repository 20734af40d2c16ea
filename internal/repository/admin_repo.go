package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"gorm.io/gorm"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	CreateIfMissing(ctx context.Context, admin *domain.Admin) error
}

type GormAdminRepo struct {
	db *gorm.DB
}

func NewGormAdminRepo(db *gorm.DB) *GormAdminRepo {
	return &GormAdminRepo{db: db}
}

func (r *GormAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var model AdminModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return adminModelToDomain(&model), nil
}

// CreateIfMissing inserts the bootstrap admin unless the email is taken.
func (r *GormAdminRepo) CreateIfMissing(ctx context.Context, admin *domain.Admin) error {
	if admin == nil {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(admin.Email))

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&AdminModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	model := &AdminModel{
		Email:        email,
		Name:         admin.Name,
		PasswordHash: admin.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	*admin = *adminModelToDomain(model)
	return nil
}
