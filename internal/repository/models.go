package repository

import (
	"time"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
)

// ContactModel is the persistence model for the contacts table.
type ContactModel struct {
	ID              int64                `gorm:"primaryKey;autoIncrement"`
	OrgName         string               `gorm:"type:varchar(255);not null"`
	ContactName     string               `gorm:"type:varchar(255);not null"`
	Phone           string               `gorm:"type:varchar(50);not null"`
	Email           string               `gorm:"type:varchar(255);not null"`
	Content         string               `gorm:"type:text;not null"`
	Method          domain.ContactMethod `gorm:"type:varchar(10);not null"`
	PreferredDate   string               `gorm:"type:varchar(20);not null"`
	PreferredTime   string               `gorm:"type:varchar(20);not null"`
	Status          domain.ContactStatus `gorm:"type:varchar(20);not null"`
	LighthouseName  *string              `gorm:"type:varchar(255)"`
	LighthouseEmail *string              `gorm:"type:varchar(255)"`
	RejectionReason *string              `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ContactModel) TableName() string {
	return "contacts"
}

// GuideModel is the persistence model for the guides table.
type GuideModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Title     string  `gorm:"type:varchar(255);not null"`
	Category  string  `gorm:"type:varchar(100)"`
	Summary   string  `gorm:"type:varchar(500)"`
	Content   string  `gorm:"type:text;not null"`
	ImageURL  *string `gorm:"type:varchar(500)"`
	Published bool    `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GuideModel) TableName() string {
	return "guides"
}

// QnaModel is the persistence model for the qnas table.
type QnaModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Category  string `gorm:"type:varchar(100)"`
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (QnaModel) TableName() string {
	return "qnas"
}

// BannerInquiryModel is the persistence model for the banner_inquiries table.
type BannerInquiryModel struct {
	ID          int64                      `gorm:"primaryKey;autoIncrement"`
	CompanyName string                     `gorm:"type:varchar(255);not null"`
	ContactName string                     `gorm:"type:varchar(255)"`
	Email       string                     `gorm:"type:varchar(255);not null"`
	Phone       string                     `gorm:"type:varchar(50)"`
	Message     string                     `gorm:"type:text;not null"`
	Status      domain.BannerInquiryStatus `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BannerInquiryModel) TableName() string {
	return "banner_inquiries"
}

// FaqModel is the persistence model for the faqs table.
type FaqModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (FaqModel) TableName() string {
	return "faqs"
}

// AdminModel is the persistence model for the admins table.
type AdminModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AdminModel) TableName() string {
	return "admins"
}

func contactModelFromDomain(c *domain.Contact) *ContactModel {
	if c == nil {
		return nil
	}

	return &ContactModel{
		ID:              c.ID,
		OrgName:         c.OrgName,
		ContactName:     c.ContactName,
		Phone:           c.Phone,
		Email:           c.Email,
		Content:         c.Content,
		Method:          c.Method,
		PreferredDate:   c.PreferredDate,
		PreferredTime:   c.PreferredTime,
		Status:          c.Status,
		LighthouseName:  c.LighthouseName,
		LighthouseEmail: c.LighthouseEmail,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func contactModelToDomain(m *ContactModel) *domain.Contact {
	if m == nil {
		return nil
	}

	return &domain.Contact{
		ID:              m.ID,
		OrgName:         m.OrgName,
		ContactName:     m.ContactName,
		Phone:           m.Phone,
		Email:           m.Email,
		Content:         m.Content,
		Method:          m.Method,
		PreferredDate:   m.PreferredDate,
		PreferredTime:   m.PreferredTime,
		Status:          m.Status,
		LighthouseName:  m.LighthouseName,
		LighthouseEmail: m.LighthouseEmail,
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func guideModelFromDomain(g *domain.Guide) *GuideModel {
	if g == nil {
		return nil
	}

	return &GuideModel{
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

func guideModelToDomain(m *GuideModel) *domain.Guide {
	if m == nil {
		return nil
	}

	return &domain.Guide{
		ID:        m.ID,
		Title:     m.Title,
		Category:  m.Category,
		Summary:   m.Summary,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func qnaModelFromDomain(q *domain.Qna) *QnaModel {
	if q == nil {
		return nil
	}

	return &QnaModel{
		ID:        q.ID,
		Category:  q.Category,
		Question:  q.Question,
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func qnaModelToDomain(m *QnaModel) *domain.Qna {
	if m == nil {
		return nil
	}

	return &domain.Qna{
		ID:        m.ID,
		Category:  m.Category,
		Question:  m.Question,
		Answer:    m.Answer,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func bannerInquiryModelFromDomain(b *domain.BannerInquiry) *BannerInquiryModel {
	if b == nil {
		return nil
	}

	return &BannerInquiryModel{
		ID:          b.ID,
		CompanyName: b.CompanyName,
		ContactName: b.ContactName,
		Email:       b.Email,
		Phone:       b.Phone,
		Message:     b.Message,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func bannerInquiryModelToDomain(m *BannerInquiryModel) *domain.BannerInquiry {
	if m == nil {
		return nil
	}

	return &domain.BannerInquiry{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		ContactName: m.ContactName,
		Email:       m.Email,
		Phone:       m.Phone,
		Message:     m.Message,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func faqModelToDomain(m *FaqModel) *domain.Faq {
	if m == nil {
		return nil
	}

	return &domain.Faq{
		ID:        m.ID,
		Question:  m.Question,
		Answer:    m.Answer,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}

func adminModelToDomain(m *AdminModel) *domain.Admin {
	if m == nil {
		return nil
	}

	return &domain.Admin{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
