package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"github.com/lighthouse-program/lighthouse-api/internal/service"
	"github.com/lighthouse-program/lighthouse-api/internal/transport"
	"go.uber.org/zap"
)

type stubContactService struct {
	createIntakeFn func(ctx context.Context, contact *domain.Contact) (*service.IntakeResult, error)
	getByIDFn      func(ctx context.Context, id int64) (*domain.Contact, error)
	listFn         func(ctx context.Context, params repository.ContactListParams) ([]domain.Contact, int64, error)
	acceptFn       func(ctx context.Context, in service.AcceptInput) (*service.TransitionResult, error)
	rejectFn       func(ctx context.Context, in service.RejectInput) (*service.TransitionResult, error)
	rescheduleFn   func(ctx context.Context, in service.RescheduleInput) (*service.TransitionResult, error)
}

func (s *stubContactService) CreateIntake(ctx context.Context, contact *domain.Contact) (*service.IntakeResult, error) {
	if s.createIntakeFn != nil {
		return s.createIntakeFn(ctx, contact)
	}
	return &service.IntakeResult{Contact: contact}, nil
}

func (s *stubContactService) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (s *stubContactService) List(ctx context.Context, params repository.ContactListParams) ([]domain.Contact, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, params)
	}
	return nil, 0, nil
}

func (s *stubContactService) Accept(ctx context.Context, in service.AcceptInput) (*service.TransitionResult, error) {
	if s.acceptFn != nil {
		return s.acceptFn(ctx, in)
	}
	return nil, domain.ErrNotFound
}

func (s *stubContactService) Reject(ctx context.Context, in service.RejectInput) (*service.TransitionResult, error) {
	if s.rejectFn != nil {
		return s.rejectFn(ctx, in)
	}
	return nil, domain.ErrNotFound
}

func (s *stubContactService) Reschedule(ctx context.Context, in service.RescheduleInput) (*service.TransitionResult, error) {
	if s.rescheduleFn != nil {
		return s.rescheduleFn(ctx, in)
	}
	return nil, domain.ErrNotFound
}

func newContactTestApp(t *testing.T, svc ContactService) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: transport.ErrorHandler(zap.NewNop()),
	})

	v1 := app.Group("/v1")
	if err := RegisterPublicContactRoutes(v1, svc); err != nil {
		t.Fatalf("RegisterPublicContactRoutes() error = %v", err)
	}
	admin := app.Group("/v1/admin")
	if err := RegisterAdminContactRoutes(admin, svc); err != nil {
		t.Fatalf("RegisterAdminContactRoutes() error = %v", err)
	}

	return app
}

func performRequest(t *testing.T, app *fiber.App, method string, path string, body string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func acceptedContact(id int64, staffName string, staffEmail string) *domain.Contact {
	return &domain.Contact{
		ID:              id,
		OrgName:         "Green Coast",
		ContactName:     "Lee",
		Phone:           "010-1234-5678",
		Email:           "req@org.kr",
		Content:         "Consultation about the spring cleanup.",
		Method:          domain.ContactMethodCall,
		PreferredDate:   "2026-04-10",
		PreferredTime:   "14:00",
		Status:          domain.ContactStatusAccepted,
		LighthouseName:  &staffName,
		LighthouseEmail: &staffEmail,
	}
}

func TestContactIntegration_CreateContact(t *testing.T) {
	t.Parallel()

	svc := &stubContactService{
		createIntakeFn: func(ctx context.Context, contact *domain.Contact) (*service.IntakeResult, error) {
			if err := contact.Validate(); err != nil {
				return nil, err
			}
			contact.ID = 101
			contact.Status = domain.ContactStatusPending
			return &service.IntakeResult{Contact: contact}, nil
		},
	}

	app := newContactTestApp(t, svc)

	validBody := `{"orgName":"Green Coast","contactName":"Lee","phone":"010-1234-5678","email":"req@org.kr","content":"Consultation about the spring cleanup.","method":"CALL","preferredDate":"2026-04-10","preferredTime":"14:00"}`
	resp, body := performRequest(t, app, http.MethodPost, "/v1/contacts", validBody)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Message string          `json:"message"`
		Data    contactResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("json unmarshal error = %v", err)
	}
	if parsed.Data.ID != 101 {
		t.Fatalf("id = %d, want 101", parsed.Data.ID)
	}
	if parsed.Data.Status != domain.ContactStatusPending.String() {
		t.Fatalf("status = %s, want PENDING", parsed.Data.Status)
	}

	invalidMethodBody := `{"orgName":"Green Coast","contactName":"Lee","phone":"010-1234-5678","email":"req@org.kr","content":"hello","method":"FAX","preferredDate":"2026-04-10","preferredTime":"14:00"}`
	resp, _ = performRequest(t, app, http.MethodPost, "/v1/contacts", invalidMethodBody)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for invalid method", resp.StatusCode)
	}

	missingEmailBody := `{"orgName":"Green Coast","contactName":"Lee","phone":"010-1234-5678","email":"","content":"hello","method":"CALL","preferredDate":"2026-04-10","preferredTime":"14:00"}`
	resp, _ = performRequest(t, app, http.MethodPost, "/v1/contacts", missingEmailBody)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing email", resp.StatusCode)
	}
}

func TestContactIntegration_AcceptContact(t *testing.T) {
	t.Parallel()

	svc := &stubContactService{
		acceptFn: func(ctx context.Context, in service.AcceptInput) (*service.TransitionResult, error) {
			if in.ContactID != 42 {
				return nil, fmt.Errorf("%w: contact 42 only", domain.ErrNotFound)
			}
			if in.StaffName != "Kim" || in.StaffEmail != "kim@example.org" {
				t.Fatalf("staff = %q <%s>, want Kim <kim@example.org>", in.StaffName, in.StaffEmail)
			}
			return &service.TransitionResult{
				Contact:   acceptedContact(42, in.StaffName, in.StaffEmail),
				MessageID: "msg-accept-42",
			}, nil
		},
	}

	app := newContactTestApp(t, svc)

	validBody := `{"contactId":42,"lighthouseContactName":"Kim","lighthouseContactEmail":"kim@example.org"}`
	resp, body := performRequest(t, app, http.MethodPost, "/v1/admin/contacts/accept", validBody)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", resp.StatusCode, string(body))
	}

	var parsed transitionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("json unmarshal error = %v", err)
	}
	if parsed.Data.Status != domain.ContactStatusAccepted.String() {
		t.Fatalf("status = %s, want ACCEPTED", parsed.Data.Status)
	}
	if parsed.Data.LighthouseName == nil || *parsed.Data.LighthouseName != "Kim" {
		t.Fatalf("lighthouseContactName = %v, want Kim", parsed.Data.LighthouseName)
	}
	if parsed.Data.RejectionReason != nil {
		t.Fatalf("rejectionReason = %v, want absent", parsed.Data.RejectionReason)
	}
	if parsed.Warning != "" {
		t.Fatalf("warning = %q, want empty", parsed.Warning)
	}
}

func TestContactIntegration_AcceptUnknownContact(t *testing.T) {
	t.Parallel()

	dispatched := 0
	svc := &stubContactService{
		acceptFn: func(ctx context.Context, in service.AcceptInput) (*service.TransitionResult, error) {
			if in.ContactID == 999 {
				return nil, fmt.Errorf("%w: contact %d", domain.ErrNotFound, in.ContactID)
			}
			dispatched++
			return &service.TransitionResult{Contact: acceptedContact(in.ContactID, in.StaffName, in.StaffEmail)}, nil
		},
	}

	app := newContactTestApp(t, svc)

	body := `{"contactId":999,"lighthouseContactName":"Kim","lighthouseContactEmail":"kim@example.org"}`
	resp, respBody := performRequest(t, app, http.MethodPost, "/v1/admin/contacts/accept", body)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404, body=%s", resp.StatusCode, string(respBody))
	}
	if dispatched != 0 {
		t.Fatalf("dispatched = %d, want 0", dispatched)
	}

	var parsed map[string]any
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		t.Fatalf("json unmarshal error = %v", err)
	}
	if _, ok := parsed["error"]; !ok {
		t.Fatalf("body = %s, want error field", string(respBody))
	}
}

func TestContactIntegration_RejectBlankReason(t *testing.T) {
	t.Parallel()

	svc := &stubContactService{
		rejectFn: func(ctx context.Context, in service.RejectInput) (*service.TransitionResult, error) {
			return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
		},
	}

	app := newContactTestApp(t, svc)

	body := `{"contactId":42,"reason":"   "}`
	resp, respBody := performRequest(t, app, http.MethodPost, "/v1/admin/contacts/reject", body)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body=%s", resp.StatusCode, string(respBody))
	}
}

func TestContactIntegration_TransitionWarning(t *testing.T) {
	t.Parallel()

	reason := "Schedule conflict."
	svc := &stubContactService{
		rejectFn: func(ctx context.Context, in service.RejectInput) (*service.TransitionResult, error) {
			contact := acceptedContact(in.ContactID, "", "")
			contact.Status = domain.ContactStatusRejected
			contact.LighthouseName = nil
			contact.LighthouseEmail = nil
			contact.RejectionReason = &reason
			return &service.TransitionResult{
				Contact:   contact,
				MessageID: "msg-reject",
				Warning:   "notification sent but the stored status could not be updated",
			}, nil
		},
	}

	app := newContactTestApp(t, svc)

	body := `{"contactId":42,"reason":"Schedule conflict."}`
	resp, respBody := performRequest(t, app, http.MethodPost, "/v1/admin/contacts/reject", body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", resp.StatusCode, string(respBody))
	}

	var parsed transitionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		t.Fatalf("json unmarshal error = %v", err)
	}
	if parsed.Warning == "" {
		t.Fatal("warning should surface when the store write failed after dispatch")
	}
	if parsed.Data.RejectionReason == nil || *parsed.Data.RejectionReason != reason {
		t.Fatalf("rejectionReason = %v, want %q", parsed.Data.RejectionReason, reason)
	}
}

func TestContactIntegration_RescheduleContact(t *testing.T) {
	t.Parallel()

	svc := &stubContactService{
		rescheduleFn: func(ctx context.Context, in service.RescheduleInput) (*service.TransitionResult, error) {
			if in.NewDate == "" || in.NewTime == "" || in.PreviousDate == "" || in.PreviousTime == "" {
				return nil, fmt.Errorf("%w: all schedule fields are required", domain.ErrValidation)
			}
			contact := acceptedContact(in.ContactID, "Kim", "kim@example.org")
			return &service.TransitionResult{Contact: contact, MessageID: "msg-reschedule"}, nil
		},
	}

	app := newContactTestApp(t, svc)

	validBody := `{"contactId":42,"previousDate":"2026-04-10","previousTime":"14:00","newDate":"2026-04-17","newTime":"15:00"}`
	resp, respBody := performRequest(t, app, http.MethodPost, "/v1/admin/contacts/reschedule", validBody)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", resp.StatusCode, string(respBody))
	}

	var parsed transitionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		t.Fatalf("json unmarshal error = %v", err)
	}
	if parsed.Data.Status != domain.ContactStatusAccepted.String() {
		t.Fatalf("status = %s, reschedule must not change the stored status", parsed.Data.Status)
	}

	missingFieldBody := `{"contactId":42,"previousDate":"2026-04-10","previousTime":"14:00","newDate":"","newTime":"15:00"}`
	resp, _ = performRequest(t, app, http.MethodPost, "/v1/admin/contacts/reschedule", missingFieldBody)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing newDate", resp.StatusCode)
	}
}

func TestContactIntegration_ListContacts(t *testing.T) {
	t.Parallel()

	svc := &stubContactService{
		listFn: func(ctx context.Context, params repository.ContactListParams) ([]domain.Contact, int64, error) {
			if params.Status == nil || *params.Status != domain.ContactStatusPending {
				t.Fatalf("status filter = %v, want PENDING", params.Status)
			}
			return []domain.Contact{*acceptedContact(1, "Kim", "kim@example.org")}, 1, nil
		},
	}

	app := newContactTestApp(t, svc)

	resp, body := performRequest(t, app, http.MethodGet, "/v1/admin/contacts?status=pending", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", resp.StatusCode, string(body))
	}

	var parsed listContactsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("json unmarshal error = %v", err)
	}
	if len(parsed.Data) != 1 || parsed.Meta.Total != 1 {
		t.Fatalf("data len = %d total = %d, want 1/1", len(parsed.Data), parsed.Meta.Total)
	}

	resp, _ = performRequest(t, app, http.MethodGet, "/v1/admin/contacts?status=pending&pageSize=500", "")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for oversized pageSize", resp.StatusCode)
	}
}
