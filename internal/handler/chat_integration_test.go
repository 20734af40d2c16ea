package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/transport"
	"go.uber.org/zap"
)

type stubChatService struct {
	askFn      func(ctx context.Context, question string) (string, error)
	listFaqsFn func(ctx context.Context) ([]domain.Faq, error)
}

func (s *stubChatService) Ask(ctx context.Context, question string) (string, error) {
	if s.askFn != nil {
		return s.askFn(ctx, question)
	}
	return "", nil
}

func (s *stubChatService) ListFaqs(ctx context.Context) ([]domain.Faq, error) {
	if s.listFaqsFn != nil {
		return s.listFaqsFn(ctx)
	}
	return nil, nil
}

func newChatTestApp(t *testing.T, svc ChatService) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: transport.ErrorHandler(zap.NewNop()),
	})

	v1 := app.Group("/v1")
	if err := RegisterChatRoutes(v1, svc); err != nil {
		t.Fatalf("RegisterChatRoutes() error = %v", err)
	}

	return app
}

func TestChatIntegration_Ask(t *testing.T) {
	t.Parallel()

	svc := &stubChatService{
		askFn: func(ctx context.Context, question string) (string, error) {
			if question == "" {
				return "", fmt.Errorf("%w: question is required", domain.ErrValidation)
			}
			return "The program runs March through November.", nil
		},
	}

	app := newChatTestApp(t, svc)

	resp, body := performRequest(t, app, http.MethodPost, "/v1/chat", `{"question":"When does the program run?"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("json unmarshal error = %v", err)
	}
	if parsed.Data.Answer != "The program runs March through November." {
		t.Fatalf("answer = %q", parsed.Data.Answer)
	}

	resp, _ = performRequest(t, app, http.MethodPost, "/v1/chat", `{"question":""}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for empty question", resp.StatusCode)
	}
}

func TestChatIntegration_ListFaqs(t *testing.T) {
	t.Parallel()

	svc := &stubChatService{
		listFaqsFn: func(ctx context.Context) ([]domain.Faq, error) {
			return []domain.Faq{
				{ID: 1, Question: "Is there a fee?", Answer: "No, participation is free."},
			}, nil
		},
	}

	app := newChatTestApp(t, svc)

	resp, body := performRequest(t, app, http.MethodGet, "/v1/faqs", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Data []faqResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("json unmarshal error = %v", err)
	}
	if len(parsed.Data) != 1 || parsed.Data[0].Question != "Is there a fee?" {
		t.Fatalf("unexpected faqs %+v", parsed.Data)
	}
}
