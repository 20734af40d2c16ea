package domain

import (
	"fmt"
	"strings"
	"time"
)

// BannerInquiryStatus tracks whether an admin has looked at an inquiry.
type BannerInquiryStatus string

const (
	BannerInquiryStatusNew      BannerInquiryStatus = "NEW"
	BannerInquiryStatusReviewed BannerInquiryStatus = "REVIEWED"
)

func (s BannerInquiryStatus) String() string { return string(s) }

func (s BannerInquiryStatus) IsValid() bool {
	switch s {
	case BannerInquiryStatusNew, BannerInquiryStatusReviewed:
		return true
	}
	return false
}

// BannerInquiry is a request from a company to place a banner on the site.
type BannerInquiry struct {
	ID          int64
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Message     string
	Status      BannerInquiryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b *BannerInquiry) Validate() error {
	if strings.TrimSpace(b.CompanyName) == "" {
		return fmt.Errorf("%w: company name is required", ErrValidation)
	}
	if strings.TrimSpace(b.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !strings.Contains(b.Email, "@") {
		return fmt.Errorf("%w: invalid email %q", ErrValidation, b.Email)
	}
	if strings.TrimSpace(b.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	return nil
}
