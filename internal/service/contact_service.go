package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/mailer"
	"github.com/lighthouse-program/lighthouse-api/internal/notification"
	"github.com/lighthouse-program/lighthouse-api/internal/observability"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"go.uber.org/zap"
)

// MailSettings carries the sender identity and routing addresses the
// orchestrator stamps onto outgoing notifications.
type MailSettings struct {
	From            string
	FallbackReplyTo string
	AdminRecipients []string
}

// ContactService orchestrates the radio contact lifecycle: intake plus
// the accept / reject / reschedule transitions. Every transition uses
// the same ordering: validate, load, render, dispatch, then store, so a
// store failure after a successful dispatch degrades to a warning
// instead of failing the request.
type ContactService struct {
	contacts repository.ContactRepository
	mail     mailer.Mailer
	metrics  *observability.Metrics
	logger   *zap.Logger
	settings MailSettings
}

type AcceptInput struct {
	ContactID  int64
	StaffName  string
	StaffEmail string
}

type RejectInput struct {
	ContactID int64
	Reason    string
}

type RescheduleInput struct {
	ContactID    int64
	PreviousDate string
	PreviousTime string
	NewDate      string
	NewTime      string
	Reason       string
}

// TransitionResult is the outcome of one lifecycle transition. Warning
// is set when the notification went out but the store write failed.
type TransitionResult struct {
	Contact   *domain.Contact
	MessageID string
	Warning   string
}

// DispatchOutcome captures one of the two intake notifications.
type DispatchOutcome struct {
	MessageID string
	Err       error
}

// IntakeResult reports the stored contact and both intake dispatch
// outcomes so callers and tests can assert on each independently.
type IntakeResult struct {
	Contact   *domain.Contact
	Admin     DispatchOutcome
	Requester DispatchOutcome
}

func NewContactService(
	contacts repository.ContactRepository,
	mail mailer.Mailer,
	metrics *observability.Metrics,
	logger *zap.Logger,
	settings MailSettings,
) (*ContactService, error) {
	if contacts == nil {
		return nil, fmt.Errorf("contact repository is required")
	}
	if mail == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	if strings.TrimSpace(settings.From) == "" {
		return nil, fmt.Errorf("sender identity is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ContactService{
		contacts: contacts,
		mail:     mail,
		metrics:  metrics,
		logger:   logger,
		settings: settings,
	}, nil
}

// CreateIntake stores a new pending contact and dispatches the admin
// notice and the requester receipt concurrently. Dispatch failures are
// captured into the result and logged; they never fail the intake.
func (s *ContactService) CreateIntake(ctx context.Context, contact *domain.Contact) (*IntakeResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if contact == nil {
		return nil, fmt.Errorf("%w: contact is required", domain.ErrValidation)
	}

	normalizeContact(contact)
	contact.Status = domain.ContactStatusPending
	contact.LighthouseName = nil
	contact.LighthouseEmail = nil
	contact.RejectionReason = nil

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to store contact: %w", err)
	}

	result := &IntakeResult{Contact: contact}
	snapshot := snapshotOf(contact)

	noticeHTML, noticeErr := notification.RenderIntakeNotice(notification.IntakeParams{Contact: snapshot})
	receiptHTML, receiptErr := notification.RenderIntakeReceipt(notification.IntakeParams{Contact: snapshot})
	if noticeErr != nil {
		result.Admin.Err = noticeErr
	}
	if receiptErr != nil {
		result.Requester.Err = receiptErr
	}

	var wg sync.WaitGroup
	if noticeErr == nil && len(s.settings.AdminRecipients) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Admin.MessageID, result.Admin.Err = s.dispatch(ctx, notification.KindIntakeNotice, mailer.Message{
				From:    s.settings.From,
				To:      s.settings.AdminRecipients,
				ReplyTo: contact.Email,
				Subject: notification.Subject(notification.KindIntakeNotice, contact.OrgName),
				HTML:    noticeHTML,
			})
		}()
	}
	if receiptErr == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Requester.MessageID, result.Requester.Err = s.dispatch(ctx, notification.KindIntakeReceipt, mailer.Message{
				From:    s.settings.From,
				To:      []string{contact.Email},
				ReplyTo: s.settings.FallbackReplyTo,
				Subject: notification.Subject(notification.KindIntakeReceipt, contact.OrgName),
				HTML:    receiptHTML,
			})
		}()
	}
	wg.Wait()

	if result.Admin.Err != nil {
		s.logger.Warn("intake admin notice failed",
			zap.Int64("contactId", contact.ID),
			zap.Bool("transient", mailer.IsTransient(result.Admin.Err)),
			zap.Error(result.Admin.Err),
		)
	}
	if result.Requester.Err != nil {
		s.logger.Warn("intake receipt failed",
			zap.Int64("contactId", contact.ID),
			zap.Bool("transient", mailer.IsTransient(result.Requester.Err)),
			zap.Error(result.Requester.Err),
		)
	}

	return result, nil
}

// Accept notifies the requester of the acceptance with the assigned
// staff as reply-to, then marks the record accepted.
func (s *ContactService) Accept(ctx context.Context, in AcceptInput) (*TransitionResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	in.StaffName = strings.TrimSpace(in.StaffName)
	in.StaffEmail = strings.TrimSpace(in.StaffEmail)
	if in.ContactID <= 0 {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrValidation)
	}
	if in.StaffName == "" {
		return nil, fmt.Errorf("%w: lighthouse contact name is required", domain.ErrValidation)
	}
	if in.StaffEmail == "" {
		return nil, fmt.Errorf("%w: lighthouse contact email is required", domain.ErrValidation)
	}

	contact, err := s.contacts.GetByID(ctx, in.ContactID)
	if err != nil {
		return nil, err
	}

	html, err := notification.RenderAcceptance(notification.AcceptanceParams{
		Contact:    snapshotOf(contact),
		StaffName:  in.StaffName,
		StaffEmail: in.StaffEmail,
	})
	if err != nil {
		return nil, err
	}

	messageID, err := s.dispatch(ctx, notification.KindAcceptance, mailer.Message{
		From:    s.settings.From,
		To:      []string{contact.Email},
		ReplyTo: in.StaffEmail,
		Subject: notification.Subject(notification.KindAcceptance, contact.OrgName),
		HTML:    html,
	})
	if err != nil {
		return nil, err
	}

	// The notification is the user-visible outcome; reflect it in the
	// returned record even if the store write below fails.
	contact.Status = domain.ContactStatusAccepted
	contact.LighthouseName = &in.StaffName
	contact.LighthouseEmail = &in.StaffEmail
	contact.RejectionReason = nil

	result := &TransitionResult{Contact: contact, MessageID: messageID}

	if err := s.contacts.MarkAccepted(ctx, in.ContactID, in.StaffName, in.StaffEmail); err != nil {
		s.logger.Warn("acceptance stored-state update failed after dispatch",
			zap.Int64("contactId", in.ContactID),
			zap.Error(err),
		)
		result.Warning = "notification sent but the stored status could not be updated"
	}

	return result, nil
}

// Reject notifies the requester with the trimmed reason, then marks the
// record rejected.
func (s *ContactService) Reject(ctx context.Context, in RejectInput) (*TransitionResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	in.Reason = strings.TrimSpace(in.Reason)
	if in.ContactID <= 0 {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrValidation)
	}
	if in.Reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}

	contact, err := s.contacts.GetByID(ctx, in.ContactID)
	if err != nil {
		return nil, err
	}

	html, err := notification.RenderRejection(notification.RejectionParams{
		Contact: snapshotOf(contact),
		Reason:  in.Reason,
	})
	if err != nil {
		return nil, err
	}

	messageID, err := s.dispatch(ctx, notification.KindRejection, mailer.Message{
		From:    s.settings.From,
		To:      []string{contact.Email},
		ReplyTo: s.settings.FallbackReplyTo,
		Subject: notification.Subject(notification.KindRejection, contact.OrgName),
		HTML:    html,
	})
	if err != nil {
		return nil, err
	}

	contact.Status = domain.ContactStatusRejected
	contact.RejectionReason = &in.Reason
	contact.LighthouseName = nil
	contact.LighthouseEmail = nil

	result := &TransitionResult{Contact: contact, MessageID: messageID}

	if err := s.contacts.MarkRejected(ctx, in.ContactID, in.Reason); err != nil {
		s.logger.Warn("rejection stored-state update failed after dispatch",
			zap.Int64("contactId", in.ContactID),
			zap.Error(err),
		)
		result.Warning = "notification sent but the stored status could not be updated"
	}

	return result, nil
}

// Reschedule notifies the requester of the new schedule. The record is
// not mutated; the new date and time live only in the notification.
func (s *ContactService) Reschedule(ctx context.Context, in RescheduleInput) (*TransitionResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if in.ContactID <= 0 {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrValidation)
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{name: "previous date", value: in.PreviousDate},
		{name: "previous time", value: in.PreviousTime},
		{name: "new date", value: in.NewDate},
		{name: "new time", value: in.NewTime},
	} {
		if strings.TrimSpace(field.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", domain.ErrValidation, field.name)
		}
	}

	contact, err := s.contacts.GetByID(ctx, in.ContactID)
	if err != nil {
		return nil, err
	}

	staffName := ""
	if contact.LighthouseName != nil {
		staffName = *contact.LighthouseName
	}
	replyTo := s.settings.FallbackReplyTo
	if contact.LighthouseEmail != nil && strings.TrimSpace(*contact.LighthouseEmail) != "" {
		replyTo = *contact.LighthouseEmail
	}

	html, err := notification.RenderReschedule(notification.RescheduleParams{
		Contact:      snapshotOf(contact),
		PreviousDate: strings.TrimSpace(in.PreviousDate),
		PreviousTime: strings.TrimSpace(in.PreviousTime),
		NewDate:      strings.TrimSpace(in.NewDate),
		NewTime:      strings.TrimSpace(in.NewTime),
		Reason:       strings.TrimSpace(in.Reason),
		StaffName:    staffName,
	})
	if err != nil {
		return nil, err
	}

	messageID, err := s.dispatch(ctx, notification.KindReschedule, mailer.Message{
		From:    s.settings.From,
		To:      []string{contact.Email},
		ReplyTo: replyTo,
		Subject: notification.Subject(notification.KindReschedule, contact.OrgName),
		HTML:    html,
	})
	if err != nil {
		return nil, err
	}

	return &TransitionResult{Contact: contact, MessageID: messageID}, nil
}

func (s *ContactService) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrValidation)
	}
	return s.contacts.GetByID(ctx, id)
}

func (s *ContactService) List(ctx context.Context, params repository.ContactListParams) ([]domain.Contact, int64, error) {
	return s.contacts.List(ctx, params)
}

func (s *ContactService) dispatch(ctx context.Context, kind notification.Kind, msg mailer.Message) (string, error) {
	start := time.Now()
	result, err := s.mail.Send(ctx, msg)
	s.metrics.ObserveEmailSendDuration(kind.String(), time.Since(start))
	if err != nil {
		s.metrics.IncEmailFailed(kind.String())
		return "", err
	}

	s.metrics.IncEmailSent(kind.String())
	return result.MessageID, nil
}

func normalizeContact(c *domain.Contact) {
	c.OrgName = strings.TrimSpace(c.OrgName)
	c.ContactName = strings.TrimSpace(c.ContactName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Content = strings.TrimSpace(c.Content)
	c.PreferredDate = strings.TrimSpace(c.PreferredDate)
	c.PreferredTime = strings.TrimSpace(c.PreferredTime)
}

func snapshotOf(c *domain.Contact) notification.ContactSnapshot {
	return notification.ContactSnapshot{
		OrgName:       c.OrgName,
		ContactName:   c.ContactName,
		Phone:         c.Phone,
		Email:         c.Email,
		Content:       c.Content,
		Method:        c.Method.String(),
		PreferredDate: c.PreferredDate,
		PreferredTime: c.PreferredTime,
	}
}
