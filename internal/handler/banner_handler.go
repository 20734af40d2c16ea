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

type BannerService interface {
	CreateInquiry(ctx context.Context, inquiry *domain.BannerInquiry) (*domain.BannerInquiry, error)
	GetByID(ctx context.Context, id int64) (*domain.BannerInquiry, error)
	List(ctx context.Context, params repository.BannerInquiryListParams) ([]domain.BannerInquiry, int64, error)
	MarkReviewed(ctx context.Context, id int64) (*domain.BannerInquiry, error)
	Delete(ctx context.Context, id int64) error
}

type BannerHandler struct {
	service BannerService
}

func NewBannerHandler(service BannerService) (*BannerHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("banner service is required")
	}
	return &BannerHandler{service: service}, nil
}

func RegisterPublicBannerRoutes(router fiber.Router, service BannerService, middleware ...fiber.Handler) error {
	h, err := NewBannerHandler(service)
	if err != nil {
		return err
	}

	handlers := make([]fiber.Handler, 0, len(middleware)+1)
	handlers = append(handlers, middleware...)
	handlers = append(handlers, h.CreateInquiry)
	router.Post("/banners", handlers...)

	return nil
}

func RegisterAdminBannerRoutes(router fiber.Router, service BannerService) error {
	h, err := NewBannerHandler(service)
	if err != nil {
		return err
	}

	router.Get("/banners", h.ListInquiries)
	router.Get("/banners/:id", h.GetInquiry)
	router.Post("/banners/:id/review", h.ReviewInquiry)
	router.Delete("/banners/:id", h.DeleteInquiry)

	return nil
}

type createBannerInquiryRequest struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
}

type bannerInquiryResponse struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"companyName"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type listBannerInquiriesResponse struct {
	Data []bannerInquiryResponse `json:"data"`
	Meta listMeta                `json:"meta"`
}

func (h *BannerHandler) CreateInquiry(c *fiber.Ctx) error {
	var req createBannerInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.CreateInquiry(c.Context(), &domain.BannerInquiry{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "banner inquiry received",
		"data":    toBannerInquiryResponse(created),
	})
}

func (h *BannerHandler) GetInquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid inquiry id", domain.ErrValidation))
	}

	inquiry, err := h.service.GetByID(c.Context(), int64(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toBannerInquiryResponse(inquiry))
}

func (h *BannerHandler) ListInquiries(c *fiber.Ctx) error {
	params := repository.BannerInquiryListParams{
		Page:     c.QueryInt("page", defaultPage),
		PageSize: c.QueryInt("pageSize", defaultPageSize),
	}

	if params.Page < 1 {
		return toHTTPError(fmt.Errorf("%w: page must be >= 1", domain.ErrValidation))
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		return toHTTPError(fmt.Errorf("%w: pageSize must be between 1 and %d", domain.ErrValidation, maxPageSize))
	}
	if rawStatus := strings.TrimSpace(c.Query("status")); rawStatus != "" {
		status := domain.BannerInquiryStatus(strings.ToUpper(rawStatus))
		if !status.IsValid() {
			return toHTTPError(fmt.Errorf("%w: invalid status %q", domain.ErrValidation, rawStatus))
		}
		params.Status = &status
	}

	inquiries, total, err := h.service.List(c.Context(), params)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(listBannerInquiriesResponse{
		Data: toBannerInquiryResponses(inquiries),
		Meta: listMeta{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}

func (h *BannerHandler) ReviewInquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid inquiry id", domain.ErrValidation))
	}

	reviewed, err := h.service.MarkReviewed(c.Context(), int64(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toBannerInquiryResponse(reviewed))
}

func (h *BannerHandler) DeleteInquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid inquiry id", domain.ErrValidation))
	}

	if err := h.service.Delete(c.Context(), int64(id)); err != nil {
		return toHTTPError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toBannerInquiryResponses(inquiries []domain.BannerInquiry) []bannerInquiryResponse {
	responses := make([]bannerInquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		b := inquiry
		responses = append(responses, toBannerInquiryResponse(&b))
	}
	return responses
}

func toBannerInquiryResponse(b *domain.BannerInquiry) bannerInquiryResponse {
	if b == nil {
		return bannerInquiryResponse{}
	}

	return bannerInquiryResponse{
		ID:          b.ID,
		CompanyName: b.CompanyName,
		ContactName: b.ContactName,
		Email:       b.Email,
		Phone:       b.Phone,
		Message:     b.Message,
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
