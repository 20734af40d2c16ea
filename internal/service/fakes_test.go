package service

import (
	"context"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/mailer"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
)

type fakeContactRepo struct {
	createFn       func(ctx context.Context, c *domain.Contact) error
	getByIDFn      func(ctx context.Context, id int64) (*domain.Contact, error)
	listFn         func(ctx context.Context, params repository.ContactListParams) ([]domain.Contact, int64, error)
	markAcceptedFn func(ctx context.Context, id int64, staffName string, staffEmail string) error
	markRejectedFn func(ctx context.Context, id int64, reason string) error
}

func (f *fakeContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeContactRepo) List(ctx context.Context, params repository.ContactListParams) ([]domain.Contact, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *fakeContactRepo) MarkAccepted(ctx context.Context, id int64, staffName string, staffEmail string) error {
	if f.markAcceptedFn != nil {
		return f.markAcceptedFn(ctx, id, staffName, staffEmail)
	}
	return nil
}

func (f *fakeContactRepo) MarkRejected(ctx context.Context, id int64, reason string) error {
	if f.markRejectedFn != nil {
		return f.markRejectedFn(ctx, id, reason)
	}
	return nil
}

type fakeMailer struct {
	sendFn func(ctx context.Context, msg mailer.Message) (*mailer.SendResult, error)
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) (*mailer.SendResult, error) {
	if f.sendFn != nil {
		return f.sendFn(ctx, msg)
	}
	return &mailer.SendResult{MessageID: "fake-message-id", StatusCode: 200}, nil
}

type fakeFaqRepo struct {
	listAllFn func(ctx context.Context) ([]domain.Faq, error)
}

func (f *fakeFaqRepo) ListAll(ctx context.Context) ([]domain.Faq, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return nil, nil
}

type fakeCompleter struct {
	completeFn func(ctx context.Context, systemPrompt string, question string) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt string, question string) (string, error) {
	if f.completeFn != nil {
		return f.completeFn(ctx, systemPrompt, question)
	}
	return "fake answer", nil
}

type fakeAdminRepo struct {
	getByEmailFn      func(ctx context.Context, email string) (*domain.Admin, error)
	createIfMissingFn func(ctx context.Context, admin *domain.Admin) error
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAdminRepo) CreateIfMissing(ctx context.Context, admin *domain.Admin) error {
	if f.createIfMissingFn != nil {
		return f.createIfMissingFn(ctx, admin)
	}
	return nil
}

type fakeSessionManager struct {
	createFn func(ctx context.Context, adminID int64) (string, error)
	deleteFn func(ctx context.Context, token string) error
}

func (f *fakeSessionManager) Create(ctx context.Context, adminID int64) (string, error) {
	if f.createFn != nil {
		return f.createFn(ctx, adminID)
	}
	return "fake-token", nil
}

func (f *fakeSessionManager) Delete(ctx context.Context, token string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, token)
	}
	return nil
}

func pendingContact(id int64) *domain.Contact {
	return &domain.Contact{
		ID:            id,
		OrgName:       "Green Coast",
		ContactName:   "Lee",
		Phone:         "010-1234-5678",
		Email:         "req@org.kr",
		Content:       "Consultation about the spring cleanup.",
		Method:        domain.ContactMethodCall,
		PreferredDate: "2026-04-10",
		PreferredTime: "14:00",
		Status:        domain.ContactStatusPending,
	}
}
