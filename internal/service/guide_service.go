package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"go.uber.org/zap"
)

type GuideService struct {
	guides repository.GuideRepository
	logger *zap.Logger
}

func NewGuideService(guides repository.GuideRepository, logger *zap.Logger) (*GuideService, error) {
	if guides == nil {
		return nil, fmt.Errorf("guide repository is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GuideService{guides: guides, logger: logger}, nil
}

func (s *GuideService) Create(ctx context.Context, guide *domain.Guide) (*domain.Guide, error) {
	if guide == nil {
		return nil, fmt.Errorf("%w: guide is required", domain.ErrValidation)
	}

	normalizeGuide(guide)
	if err := guide.Validate(); err != nil {
		return nil, err
	}

	if err := s.guides.Create(ctx, guide); err != nil {
		return nil, fmt.Errorf("failed to store guide: %w", err)
	}
	return guide, nil
}

func (s *GuideService) GetByID(ctx context.Context, id int64, includeUnpublished bool) (*domain.Guide, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: guide id is required", domain.ErrValidation)
	}

	guide, err := s.guides.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !guide.Published && !includeUnpublished {
		return nil, domain.ErrNotFound
	}
	return guide, nil
}

func (s *GuideService) List(ctx context.Context, params repository.GuideListParams) ([]domain.Guide, int64, error) {
	return s.guides.List(ctx, params)
}

func (s *GuideService) Update(ctx context.Context, guide *domain.Guide) (*domain.Guide, error) {
	if guide == nil || guide.ID <= 0 {
		return nil, fmt.Errorf("%w: guide id is required", domain.ErrValidation)
	}

	normalizeGuide(guide)
	if err := guide.Validate(); err != nil {
		return nil, err
	}

	if err := s.guides.Update(ctx, guide); err != nil {
		return nil, err
	}
	return s.guides.GetByID(ctx, guide.ID)
}

func (s *GuideService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: guide id is required", domain.ErrValidation)
	}
	return s.guides.Delete(ctx, id)
}

func normalizeGuide(g *domain.Guide) {
	g.Title = strings.TrimSpace(g.Title)
	g.Category = strings.TrimSpace(g.Category)
	g.Summary = strings.TrimSpace(g.Summary)
	g.Content = strings.TrimSpace(g.Content)
}
