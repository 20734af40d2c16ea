package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContactStatus represents the lifecycle state of a radio contact request.
type ContactStatus string

const (
	ContactStatusPending  ContactStatus = "PENDING"
	ContactStatusAccepted ContactStatus = "ACCEPTED"
	ContactStatusRejected ContactStatus = "REJECTED"
)

func (s ContactStatus) String() string { return string(s) }

func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusPending, ContactStatusAccepted, ContactStatusRejected:
		return true
	}
	return false
}

func ParseContactStatusFromString(s string) (ContactStatus, error) {
	st := ContactStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: invalid contact status %q", ErrValidation, s)
	}
	return st, nil
}

// ContactMethod represents how the organization wants to be contacted.
type ContactMethod string

const (
	ContactMethodCall  ContactMethod = "CALL"
	ContactMethodVisit ContactMethod = "VISIT"
)

func (m ContactMethod) String() string { return string(m) }

func (m ContactMethod) IsValid() bool {
	switch m {
	case ContactMethodCall, ContactMethodVisit:
		return true
	}
	return false
}

func ParseContactMethodFromString(s string) (ContactMethod, error) {
	m := ContactMethod(strings.ToUpper(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: invalid contact method %q", ErrValidation, s)
	}
	return m, nil
}

// Contact is a request by an organization for a scheduled radio contact
// with program staff. Accept and reject each populate their own metadata
// block; a reschedule is communicated by email only and never mutates
// the record.
type Contact struct {
	ID              int64
	OrgName         string
	ContactName     string
	Phone           string
	Email           string
	Content         string
	Method          ContactMethod
	PreferredDate   string
	PreferredTime   string
	Status          ContactStatus
	LighthouseName  *string
	LighthouseEmail *string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (c *Contact) Validate() error {
	if strings.TrimSpace(c.OrgName) == "" {
		return fmt.Errorf("%w: organization name is required", ErrValidation)
	}
	if strings.TrimSpace(c.ContactName) == "" {
		return fmt.Errorf("%w: contact name is required", ErrValidation)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: invalid email %q", ErrValidation, c.Email)
	}
	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if !c.Method.IsValid() {
		return fmt.Errorf("%w: invalid contact method %q", ErrValidation, c.Method)
	}
	if strings.TrimSpace(c.PreferredDate) == "" {
		return fmt.Errorf("%w: preferred date is required", ErrValidation)
	}
	if strings.TrimSpace(c.PreferredTime) == "" {
		return fmt.Errorf("%w: preferred time is required", ErrValidation)
	}
	return nil
}
