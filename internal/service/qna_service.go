package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"go.uber.org/zap"
)

type QnaService struct {
	qnas   repository.QnaRepository
	logger *zap.Logger
}

func NewQnaService(qnas repository.QnaRepository, logger *zap.Logger) (*QnaService, error) {
	if qnas == nil {
		return nil, fmt.Errorf("qna repository is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QnaService{qnas: qnas, logger: logger}, nil
}

func (s *QnaService) Create(ctx context.Context, qna *domain.Qna) (*domain.Qna, error) {
	if qna == nil {
		return nil, fmt.Errorf("%w: qna is required", domain.ErrValidation)
	}

	normalizeQna(qna)
	if err := qna.Validate(); err != nil {
		return nil, err
	}

	if err := s.qnas.Create(ctx, qna); err != nil {
		return nil, fmt.Errorf("failed to store qna: %w", err)
	}
	return qna, nil
}

func (s *QnaService) GetByID(ctx context.Context, id int64) (*domain.Qna, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: qna id is required", domain.ErrValidation)
	}
	return s.qnas.GetByID(ctx, id)
}

func (s *QnaService) List(ctx context.Context, params repository.QnaListParams) ([]domain.Qna, int64, error) {
	return s.qnas.List(ctx, params)
}

func (s *QnaService) Update(ctx context.Context, qna *domain.Qna) (*domain.Qna, error) {
	if qna == nil || qna.ID <= 0 {
		return nil, fmt.Errorf("%w: qna id is required", domain.ErrValidation)
	}

	normalizeQna(qna)
	if err := qna.Validate(); err != nil {
		return nil, err
	}

	if err := s.qnas.Update(ctx, qna); err != nil {
		return nil, err
	}
	return s.qnas.GetByID(ctx, qna.ID)
}

func (s *QnaService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: qna id is required", domain.ErrValidation)
	}
	return s.qnas.Delete(ctx, id)
}

func normalizeQna(q *domain.Qna) {
	q.Category = strings.TrimSpace(q.Category)
	q.Question = strings.TrimSpace(q.Question)
	q.Answer = strings.TrimSpace(q.Answer)
}
