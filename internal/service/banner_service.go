package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"go.uber.org/zap"
)

type BannerService struct {
	inquiries repository.BannerInquiryRepository
	logger    *zap.Logger
}

func NewBannerService(inquiries repository.BannerInquiryRepository, logger *zap.Logger) (*BannerService, error) {
	if inquiries == nil {
		return nil, fmt.Errorf("banner inquiry repository is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &BannerService{inquiries: inquiries, logger: logger}, nil
}

func (s *BannerService) CreateInquiry(ctx context.Context, inquiry *domain.BannerInquiry) (*domain.BannerInquiry, error) {
	if inquiry == nil {
		return nil, fmt.Errorf("%w: inquiry is required", domain.ErrValidation)
	}

	inquiry.CompanyName = strings.TrimSpace(inquiry.CompanyName)
	inquiry.ContactName = strings.TrimSpace(inquiry.ContactName)
	inquiry.Email = strings.TrimSpace(inquiry.Email)
	inquiry.Phone = strings.TrimSpace(inquiry.Phone)
	inquiry.Message = strings.TrimSpace(inquiry.Message)
	inquiry.Status = domain.BannerInquiryStatusNew

	if err := inquiry.Validate(); err != nil {
		return nil, err
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to store banner inquiry: %w", err)
	}
	return inquiry, nil
}

func (s *BannerService) GetByID(ctx context.Context, id int64) (*domain.BannerInquiry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: inquiry id is required", domain.ErrValidation)
	}
	return s.inquiries.GetByID(ctx, id)
}

func (s *BannerService) List(ctx context.Context, params repository.BannerInquiryListParams) ([]domain.BannerInquiry, int64, error) {
	return s.inquiries.List(ctx, params)
}

func (s *BannerService) MarkReviewed(ctx context.Context, id int64) (*domain.BannerInquiry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: inquiry id is required", domain.ErrValidation)
	}

	if err := s.inquiries.MarkReviewed(ctx, id); err != nil {
		return nil, err
	}
	return s.inquiries.GetByID(ctx, id)
}

func (s *BannerService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: inquiry id is required", domain.ErrValidation)
	}
	return s.inquiries.Delete(ctx, id)
}
