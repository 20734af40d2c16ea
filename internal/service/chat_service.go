package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lighthouse-program/lighthouse-api/internal/assistant"
	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/observability"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"go.uber.org/zap"
)

const maxChatQuestionLength = 2000

// Completer produces an answer for a question given a system prompt.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, question string) (string, error)
}

type ChatService struct {
	faqs      repository.FaqRepository
	completer Completer
	metrics   *observability.Metrics
	logger    *zap.Logger
}

func NewChatService(faqs repository.FaqRepository, completer Completer, metrics *observability.Metrics, logger *zap.Logger) (*ChatService, error) {
	if faqs == nil {
		return nil, fmt.Errorf("faq repository is required")
	}
	if completer == nil {
		return nil, fmt.Errorf("completer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ChatService{faqs: faqs, completer: completer, metrics: metrics, logger: logger}, nil
}

// Ask answers a visitor question from the fixed FAQ corpus. The corpus is
// loaded fresh per request so admin edits show up without a restart.
func (s *ChatService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		s.metrics.IncChatRequest("invalid")
		return "", fmt.Errorf("%w: question is required", domain.ErrValidation)
	}
	if len(question) > maxChatQuestionLength {
		s.metrics.IncChatRequest("invalid")
		return "", fmt.Errorf("%w: question exceeds %d characters", domain.ErrValidation, maxChatQuestionLength)
	}

	faqs, err := s.faqs.ListAll(ctx)
	if err != nil {
		s.metrics.IncChatRequest("error")
		return "", fmt.Errorf("failed to load faq corpus: %w", err)
	}

	start := time.Now()
	answer, err := s.completer.Complete(ctx, assistant.BuildPrompt(faqs), question)
	s.metrics.ObserveChatDuration(time.Since(start))
	if err != nil {
		s.metrics.IncChatRequest("error")
		s.logger.Error("chat completion failed", zap.Error(err))
		return "", fmt.Errorf("failed to answer question: %w", err)
	}

	s.metrics.IncChatRequest("ok")
	return answer, nil
}

func (s *ChatService) ListFaqs(ctx context.Context) ([]domain.Faq, error) {
	return s.faqs.ListAll(ctx)
}
