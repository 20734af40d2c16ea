package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
)

func TestChatServiceAsk(t *testing.T) {
	t.Parallel()

	faqs := []domain.Faq{
		{ID: 1, Question: "When does the program run?", Answer: "March through November.", SortOrder: 1},
		{ID: 2, Question: "Is there a fee?", Answer: "No, participation is free.", SortOrder: 2},
	}

	var gotPrompt, gotQuestion string
	completer := &fakeCompleter{
		completeFn: func(ctx context.Context, systemPrompt string, question string) (string, error) {
			gotPrompt = systemPrompt
			gotQuestion = question
			return "The program runs March through November.", nil
		},
	}
	repo := &fakeFaqRepo{listAllFn: func(ctx context.Context) ([]domain.Faq, error) { return faqs, nil }}

	service, err := NewChatService(repo, completer, nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	answer, err := service.Ask(context.Background(), "  When does the program run?  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if answer != "The program runs March through November." {
		t.Errorf("unexpected answer %q", answer)
	}
	if gotQuestion != "When does the program run?" {
		t.Errorf("expected trimmed question, got %q", gotQuestion)
	}
	if !strings.Contains(gotPrompt, "March through November.") {
		t.Errorf("expected prompt to carry the faq corpus, got %q", gotPrompt)
	}
}

func TestChatServiceAskValidation(t *testing.T) {
	t.Parallel()

	completerCalls := 0
	completer := &fakeCompleter{
		completeFn: func(ctx context.Context, systemPrompt string, question string) (string, error) {
			completerCalls++
			return "should not be called", nil
		},
	}

	service, err := NewChatService(&fakeFaqRepo{}, completer, nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	testCases := []struct {
		name     string
		question string
	}{
		{name: "empty question", question: ""},
		{name: "whitespace question", question: "   \n\t"},
		{name: "oversized question", question: strings.Repeat("a", maxChatQuestionLength+1)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Ask(context.Background(), tc.question)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}

	if completerCalls != 0 {
		t.Errorf("expected no completion calls, got %d", completerCalls)
	}
}

func TestChatServiceAskCompletionFailure(t *testing.T) {
	t.Parallel()

	completer := &fakeCompleter{
		completeFn: func(ctx context.Context, systemPrompt string, question string) (string, error) {
			return "", errors.New("upstream timeout")
		},
	}

	service, err := NewChatService(&fakeFaqRepo{}, completer, nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = service.Ask(context.Background(), "When does the program run?")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Errorf("completion failure must not map to a validation error, got %v", err)
	}
}

func TestChatServiceAskCorpusLoadFailure(t *testing.T) {
	t.Parallel()

	completerCalls := 0
	completer := &fakeCompleter{
		completeFn: func(ctx context.Context, systemPrompt string, question string) (string, error) {
			completerCalls++
			return "", nil
		},
	}
	repo := &fakeFaqRepo{listAllFn: func(ctx context.Context) ([]domain.Faq, error) {
		return nil, errors.New("connection refused")
	}}

	service, err := NewChatService(repo, completer, nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := service.Ask(context.Background(), "Is there a fee?"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if completerCalls != 0 {
		t.Errorf("expected no completion calls when the corpus load fails, got %d", completerCalls)
	}
}

func TestNewChatServiceValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewChatService(nil, &fakeCompleter{}, nil, nil); err == nil {
		t.Error("expected error for nil faq repository")
	}
	if _, err := NewChatService(&fakeFaqRepo{}, nil, nil, nil); err == nil {
		t.Error("expected error for nil completer")
	}
}
