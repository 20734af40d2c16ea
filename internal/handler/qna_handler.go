package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
)

type QnaService interface {
	Create(ctx context.Context, qna *domain.Qna) (*domain.Qna, error)
	GetByID(ctx context.Context, id int64) (*domain.Qna, error)
	List(ctx context.Context, params repository.QnaListParams) ([]domain.Qna, int64, error)
	Update(ctx context.Context, qna *domain.Qna) (*domain.Qna, error)
	Delete(ctx context.Context, id int64) error
}

type QnaHandler struct {
	service QnaService
}

func NewQnaHandler(service QnaService) (*QnaHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("qna service is required")
	}
	return &QnaHandler{service: service}, nil
}

func RegisterPublicQnaRoutes(router fiber.Router, service QnaService) error {
	h, err := NewQnaHandler(service)
	if err != nil {
		return err
	}

	router.Get("/qna", h.ListQnas)
	router.Get("/qna/:id", h.GetQna)

	return nil
}

func RegisterAdminQnaRoutes(router fiber.Router, service QnaService) error {
	h, err := NewQnaHandler(service)
	if err != nil {
		return err
	}

	router.Get("/qna", h.ListQnas)
	router.Get("/qna/:id", h.GetQna)
	router.Post("/qna", h.CreateQna)
	router.Put("/qna/:id", h.UpdateQna)
	router.Delete("/qna/:id", h.DeleteQna)

	return nil
}

type qnaRequest struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type qnaResponse struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listQnasResponse struct {
	Data []qnaResponse `json:"data"`
	Meta listMeta      `json:"meta"`
}

func (h *QnaHandler) ListQnas(c *fiber.Ctx) error {
	params := repository.QnaListParams{
		Page:     c.QueryInt("page", defaultPage),
		PageSize: c.QueryInt("pageSize", defaultPageSize),
	}

	if params.Page < 1 {
		return toHTTPError(fmt.Errorf("%w: page must be >= 1", domain.ErrValidation))
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		return toHTTPError(fmt.Errorf("%w: pageSize must be between 1 and %d", domain.ErrValidation, maxPageSize))
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		params.Category = &category
	}

	qnas, total, err := h.service.List(c.Context(), params)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(listQnasResponse{
		Data: toQnaResponses(qnas),
		Meta: listMeta{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}

func (h *QnaHandler) GetQna(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid qna id", domain.ErrValidation))
	}

	qna, err := h.service.GetByID(c.Context(), int64(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toQnaResponse(qna))
}

func (h *QnaHandler) CreateQna(c *fiber.Ctx) error {
	var req qnaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.Create(c.Context(), &domain.Qna{
		Category: req.Category,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toQnaResponse(created))
}

func (h *QnaHandler) UpdateQna(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid qna id", domain.ErrValidation))
	}

	var req qnaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.Update(c.Context(), &domain.Qna{
		ID:       int64(id),
		Category: req.Category,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toQnaResponse(updated))
}

func (h *QnaHandler) DeleteQna(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid qna id", domain.ErrValidation))
	}

	if err := h.service.Delete(c.Context(), int64(id)); err != nil {
		return toHTTPError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toQnaResponses(qnas []domain.Qna) []qnaResponse {
	responses := make([]qnaResponse, 0, len(qnas))
	for _, qna := range qnas {
		q := qna
		responses = append(responses, toQnaResponse(&q))
	}
	return responses
}

func toQnaResponse(q *domain.Qna) qnaResponse {
	if q == nil {
		return qnaResponse{}
	}

	return qnaResponse{
		ID:        q.ID,
		Category:  q.Category,
		Question:  q.Question,
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
