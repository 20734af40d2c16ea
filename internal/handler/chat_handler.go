package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/domain"
)

type ChatService interface {
	Ask(ctx context.Context, question string) (string, error)
	ListFaqs(ctx context.Context) ([]domain.Faq, error)
}

type ChatHandler struct {
	service ChatService
}

func NewChatHandler(service ChatService) (*ChatHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("chat service is required")
	}
	return &ChatHandler{service: service}, nil
}

func RegisterChatRoutes(router fiber.Router, service ChatService, middleware ...fiber.Handler) error {
	h, err := NewChatHandler(service)
	if err != nil {
		return err
	}

	handlers := make([]fiber.Handler, 0, len(middleware)+1)
	handlers = append(handlers, middleware...)
	handlers = append(handlers, h.Ask)
	router.Post("/chat", handlers...)
	router.Get("/faqs", h.ListFaqs)

	return nil
}

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Message string   `json:"message"`
	Data    chatData `json:"data"`
}

type chatData struct {
	Answer string `json:"answer"`
}

type faqResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	answer, err := h.service.Ask(c.Context(), req.Question)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(chatResponse{
		Message: "answer generated",
		Data:    chatData{Answer: answer},
	})
}

func (h *ChatHandler) ListFaqs(c *fiber.Ctx) error {
	faqs, err := h.service.ListFaqs(c.Context())
	if err != nil {
		return toHTTPError(err)
	}

	responses := make([]faqResponse, 0, len(faqs))
	for _, faq := range faqs {
		responses = append(responses, faqResponse{ID: faq.ID, Question: faq.Question, Answer: faq.Answer})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": responses})
}
