package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"github.com/lighthouse-program/lighthouse-api/internal/service"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 100
)

type ContactService interface {
	CreateIntake(ctx context.Context, contact *domain.Contact) (*service.IntakeResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	List(ctx context.Context, params repository.ContactListParams) ([]domain.Contact, int64, error)
	Accept(ctx context.Context, in service.AcceptInput) (*service.TransitionResult, error)
	Reject(ctx context.Context, in service.RejectInput) (*service.TransitionResult, error)
	Reschedule(ctx context.Context, in service.RescheduleInput) (*service.TransitionResult, error)
}

type ContactHandler struct {
	service ContactService
}

func NewContactHandler(service ContactService) (*ContactHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("contact service is required")
	}
	return &ContactHandler{service: service}, nil
}

// RegisterPublicContactRoutes mounts the visitor-facing intake endpoint.
// The extra middleware slot carries the rate limiter.
func RegisterPublicContactRoutes(router fiber.Router, service ContactService, middleware ...fiber.Handler) error {
	h, err := NewContactHandler(service)
	if err != nil {
		return err
	}

	handlers := make([]fiber.Handler, 0, len(middleware)+1)
	handlers = append(handlers, middleware...)
	handlers = append(handlers, h.CreateContact)
	router.Post("/contacts", handlers...)

	return nil
}

func RegisterAdminContactRoutes(router fiber.Router, service ContactService) error {
	h, err := NewContactHandler(service)
	if err != nil {
		return err
	}

	router.Get("/contacts", h.ListContacts)
	router.Get("/contacts/:id", h.GetContact)
	router.Post("/contacts/accept", h.AcceptContact)
	router.Post("/contacts/reject", h.RejectContact)
	router.Post("/contacts/reschedule", h.RescheduleContact)

	return nil
}

type createContactRequest struct {
	OrgName       string `json:"orgName"`
	ContactName   string `json:"contactName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Content       string `json:"content"`
	Method        string `json:"method"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
}

type acceptContactRequest struct {
	ContactID       int64  `json:"contactId"`
	LighthouseName  string `json:"lighthouseContactName"`
	LighthouseEmail string `json:"lighthouseContactEmail"`
}

type rejectContactRequest struct {
	ContactID int64  `json:"contactId"`
	Reason    string `json:"reason"`
}

type rescheduleContactRequest struct {
	ContactID    int64  `json:"contactId"`
	PreviousDate string `json:"previousDate"`
	PreviousTime string `json:"previousTime"`
	NewDate      string `json:"newDate"`
	NewTime      string `json:"newTime"`
	Reason       string `json:"reason"`
}

type contactResponse struct {
	ID              int64     `json:"id"`
	OrgName         string    `json:"orgName"`
	ContactName     string    `json:"contactName"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Content         string    `json:"content"`
	Method          string    `json:"method"`
	PreferredDate   string    `json:"preferredDate"`
	PreferredTime   string    `json:"preferredTime"`
	Status          string    `json:"status"`
	LighthouseName  *string   `json:"lighthouseContactName,omitempty"`
	LighthouseEmail *string   `json:"lighthouseContactEmail,omitempty"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type transitionResponse struct {
	Message string          `json:"message"`
	Data    contactResponse `json:"data"`
	Warning string          `json:"warning,omitempty"`
}

type listContactsResponse struct {
	Data []contactResponse `json:"data"`
	Meta listMeta          `json:"meta"`
}

type listMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var req createContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	method, err := domain.ParseContactMethodFromString(req.Method)
	if err != nil {
		return toHTTPError(err)
	}

	contact := &domain.Contact{
		OrgName:       req.OrgName,
		ContactName:   req.ContactName,
		Phone:         req.Phone,
		Email:         req.Email,
		Content:       req.Content,
		Method:        method,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
	}

	result, err := h.service.CreateIntake(c.Context(), contact)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(transitionResponse{
		Message: "contact request received",
		Data:    toContactResponse(result.Contact),
	})
}

func (h *ContactHandler) GetContact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return toHTTPError(fmt.Errorf("%w: invalid contact id", domain.ErrValidation))
	}

	contact, err := h.service.GetByID(c.Context(), int64(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toContactResponse(contact))
}

func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	params, err := parseContactListParams(c)
	if err != nil {
		return toHTTPError(err)
	}

	contacts, total, err := h.service.List(c.Context(), params)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(listContactsResponse{
		Data: toContactResponses(contacts),
		Meta: listMeta{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}

func (h *ContactHandler) AcceptContact(c *fiber.Ctx) error {
	var req acceptContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Accept(c.Context(), service.AcceptInput{
		ContactID:  req.ContactID,
		StaffName:  req.LighthouseName,
		StaffEmail: req.LighthouseEmail,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(transitionResponse{
		Message: "contact accepted",
		Data:    toContactResponse(result.Contact),
		Warning: result.Warning,
	})
}

func (h *ContactHandler) RejectContact(c *fiber.Ctx) error {
	var req rejectContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Reject(c.Context(), service.RejectInput{
		ContactID: req.ContactID,
		Reason:    req.Reason,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(transitionResponse{
		Message: "contact rejected",
		Data:    toContactResponse(result.Contact),
		Warning: result.Warning,
	})
}

func (h *ContactHandler) RescheduleContact(c *fiber.Ctx) error {
	var req rescheduleContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Reschedule(c.Context(), service.RescheduleInput{
		ContactID:    req.ContactID,
		PreviousDate: req.PreviousDate,
		PreviousTime: req.PreviousTime,
		NewDate:      req.NewDate,
		NewTime:      req.NewTime,
		Reason:       req.Reason,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(transitionResponse{
		Message: "reschedule notice sent",
		Data:    toContactResponse(result.Contact),
		Warning: result.Warning,
	})
}

func parseContactListParams(c *fiber.Ctx) (repository.ContactListParams, error) {
	params := repository.ContactListParams{
		Page:     c.QueryInt("page", defaultPage),
		PageSize: c.QueryInt("pageSize", defaultPageSize),
	}

	if params.Page < 1 {
		return repository.ContactListParams{}, fmt.Errorf("%w: page must be >= 1", domain.ErrValidation)
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		return repository.ContactListParams{}, fmt.Errorf("%w: pageSize must be between 1 and %d", domain.ErrValidation, maxPageSize)
	}

	if rawStatus := strings.TrimSpace(c.Query("status")); rawStatus != "" {
		status, err := domain.ParseContactStatusFromString(rawStatus)
		if err != nil {
			return repository.ContactListParams{}, err
		}
		params.Status = &status
	}

	from, err := parseRFC3339Query(c.Query("from"), "from")
	if err != nil {
		return repository.ContactListParams{}, err
	}
	to, err := parseRFC3339Query(c.Query("to"), "to")
	if err != nil {
		return repository.ContactListParams{}, err
	}
	params.From = from
	params.To = to

	return params, nil
}

func parseRFC3339Query(value string, field string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be RFC3339", domain.ErrValidation, field)
	}
	return &t, nil
}

func toContactResponses(contacts []domain.Contact) []contactResponse {
	responses := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		c := contact
		responses = append(responses, toContactResponse(&c))
	}
	return responses
}

func toContactResponse(c *domain.Contact) contactResponse {
	if c == nil {
		return contactResponse{}
	}

	return contactResponse{
		ID:              c.ID,
		OrgName:         c.OrgName,
		ContactName:     c.ContactName,
		Phone:           c.Phone,
		Email:           c.Email,
		Content:         c.Content,
		Method:          c.Method.String(),
		PreferredDate:   c.PreferredDate,
		PreferredTime:   c.PreferredTime,
		Status:          c.Status.String(),
		LighthouseName:  c.LighthouseName,
		LighthouseEmail: c.LighthouseEmail,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
