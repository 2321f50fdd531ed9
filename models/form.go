package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Form struct {
	ID                       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title                    string         `gorm:"size:255;not null" json:"title"`
	Description              string         `gorm:"type:text" json:"description"`
	CreatedBy                uint           `gorm:"not null;index" json:"created_by"`
	Owner                    User           `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
	Slug                     string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	IsTemplate               bool           `gorm:"default:false" json:"is_template"`
	IsActive                 bool           `gorm:"default:true" json:"is_active"`
	IsPublished              bool           `gorm:"default:true" json:"is_published"`
	AllowMultipleSubmissions bool           `gorm:"default:true" json:"allow_multiple_submissions"`
	ExpiresAt                *time.Time     `json:"expires_at"`
	IsPasswordProtected      bool           `gorm:"default:false" json:"is_password_protected"`
	AccessCode               *string        `gorm:"size:255" json:"-"`
	EnableEmailNotifications bool           `gorm:"default:false" json:"enable_email_notifications"`
	NotificationEmails       datatypes.JSON `json:"notification_emails"`
	RateLimitEnabled         bool           `gorm:"default:true" json:"rate_limit_enabled"`
	RateLimitCount           uint           `gorm:"default:5" json:"rate_limit_count"`
	RateLimitPeriod          uint           `gorm:"default:3600" json:"rate_limit_period"` // seconds
	AllowPartialSaves        bool           `gorm:"default:true" json:"allow_partial_saves"`
	SubmissionLimit          *uint          `json:"submission_limit"`
	CreatedAt                time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	Questions                []Question     `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (f *Form) IsExpired() bool {
	if f.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*f.ExpiresAt)
}

// AcceptsSubmissions reports whether the form is open for new submissions.
func (f *Form) AcceptsSubmissions() bool {
	return f.IsActive && !f.IsExpired()
}

func (f *Form) SetAccessCode(raw string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	code := string(hashed)
	f.AccessCode = &code
	return nil
}

// CheckAccessCode is always true for unprotected forms.
func (f *Form) CheckAccessCode(code string) bool {
	if !f.IsPasswordProtected || f.AccessCode == nil {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(*f.AccessCode), []byte(code)) == nil
}

// RecipientEmails decodes the configured notification address list.
func (f *Form) RecipientEmails() []string {
	if len(f.NotificationEmails) == 0 {
		return nil
	}
	var emails []string
	if err := json.Unmarshal(f.NotificationEmails, &emails); err != nil {
		return nil
	}
	return emails
}
