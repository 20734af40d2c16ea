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

type GuideService interface {
	Create(ctx context.Context, guide *domain.Guide) (*domain.Guide, error)
	GetByID(ctx context.Context, id int64, includeUnpublished bool) (*domain.Guide, error)
	List(ctx context.Context, params repository.GuideListParams) ([]domain.Guide, int64, error)
	Update(ctx context.Context, guide *domain.Guide) (*domain.Guide, error)
	Delete(ctx context.Context, id int64) error
}

type GuideHandler struct {
	service GuideService
}

func NewGuideHandler(service GuideService) (*GuideHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("guide service is required")
	}
	return &GuideHandler{service: service}, nil
}

func RegisterPublicGuideRoutes(router fiber.Router, service GuideService) error {
	h, err := NewGuideHandler(service)
	if err != nil {
		return err
	}

	router.Get("/guides", h.ListPublishedGuides)
	router.Get("/guides/:id", h.GetPublishedGuide)

	return nil
}

func RegisterAdminGuideRoutes(router fiber.Router, service GuideService) error {
	h, err := NewGuideHandler(service)
	if err != nil {
		return err
	}

	router.Get("/guides", h.ListAllGuides)
	router.Get("/guides/:id", h.GetGuide)
	router.Post("/guides", h.CreateGuide)
	router.Put("/guides/:id", h.UpdateGuide)
	router.Delete("/guides/:id", h.DeleteGuide)

	return nil
}

type guideRequest struct {
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Summary   string  `json:"summary"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Published bool    `json:"published"`
}

type guideResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listGuidesResponse struct {
	Data []guideResponse `json:"data"`
	Meta listMeta        `json:"meta"`
}

func (h *GuideHandler) ListPublishedGuides(c *fiber.Ctx) error {
	return h.listGuides(c, true)
}

func (h *GuideHandler) ListAllGuides(c *fiber.Ctx) error {
	return h.listGuides(c, false)
}

func (h *GuideHandler) listGuides(c *fiber.Ctx, publishedOnly bool) error {
	params, err := parseGuideListParams(c, publishedOnly)
	if err != nil {
		return toHTTPError(err)
	}

	guides, total, err := h.service.List(c.Context(), params)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(listGuidesResponse{
		Data: toGuideResponses(guides),
		Meta: listMeta{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}

func (h *GuideHandler) GetPublishedGuide(c *fiber.Ctx) error {
	return h.getGuide(c, false)
}

func (h *GuideHandler) GetGuide(c *fiber.Ctx) error {
	return h.getGuide(c, true)
}

func (h *GuideHandler) getGuide(c *fiber.Ctx, includeUnpublished bool) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid guide id", domain.ErrValidation))
	}

	guide, err := h.service.GetByID(c.Context(), int64(id), includeUnpublished)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toGuideResponse(guide))
}

func (h *GuideHandler) CreateGuide(c *fiber.Ctx) error {
	var req guideRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.Create(c.Context(), requestToDomainGuide(req, 0))
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toGuideResponse(created))
}

func (h *GuideHandler) UpdateGuide(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid guide id", domain.ErrValidation))
	}

	var req guideRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.Update(c.Context(), requestToDomainGuide(req, int64(id)))
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toGuideResponse(updated))
}

func (h *GuideHandler) DeleteGuide(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid guide id", domain.ErrValidation))
	}

	if err := h.service.Delete(c.Context(), int64(id)); err != nil {
		return toHTTPError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseGuideListParams(c *fiber.Ctx, publishedOnly bool) (repository.GuideListParams, error) {
	params := repository.GuideListParams{
		PublishedOnly: publishedOnly,
		Page:          c.QueryInt("page", defaultPage),
		PageSize:      c.QueryInt("pageSize", defaultPageSize),
	}

	if params.Page < 1 {
		return repository.GuideListParams{}, fmt.Errorf("%w: page must be >= 1", domain.ErrValidation)
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		return repository.GuideListParams{}, fmt.Errorf("%w: pageSize must be between 1 and %d", domain.ErrValidation, maxPageSize)
	}

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		params.Category = &category
	}

	return params, nil
}

func requestToDomainGuide(req guideRequest, id int64) *domain.Guide {
	return &domain.Guide{
		ID:        id,
		Title:     req.Title,
		Category:  req.Category,
		Summary:   req.Summary,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
}

func toGuideResponses(guides []domain.Guide) []guideResponse {
	responses := make([]guideResponse, 0, len(guides))
	for _, guide := range guides {
		g := guide
		responses = append(responses, toGuideResponse(&g))
	}
	return responses
}

func toGuideResponse(g *domain.Guide) guideResponse {
	if g == nil {
		return guideResponse{}
	}

	return guideResponse{
		ID:        g.ID,
		Title:     g.Title,
		Category:  g.Category,
		Summary:   g.Summary,
		Content:   g.Content,
		ImageURL:  g.ImageURL,
		Published: g.Published,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
