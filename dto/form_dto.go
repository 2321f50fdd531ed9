package dto

import (
	"time"

	"gorm.io/datatypes"
)

type CreateFormDTO struct {
	Title                    string          `json:"title" binding:"required"`
	Description              string          `json:"description"`
	Slug                     string          `json:"slug" binding:"required"`
	IsTemplate               *bool           `json:"is_template"`
	IsActive                 *bool           `json:"is_active"`
	IsPublished              *bool           `json:"is_published"`
	AllowMultipleSubmissions *bool           `json:"allow_multiple_submissions"`
	ExpiresAt                *time.Time      `json:"expires_at"`
	AccessCode               *string         `json:"access_code"`
	EnableEmailNotifications *bool           `json:"enable_email_notifications"`
	NotificationEmails       datatypes.JSON  `json:"notification_emails"`
	RateLimitEnabled         *bool           `json:"rate_limit_enabled"`
	RateLimitCount           *uint           `json:"rate_limit_count"`
	RateLimitPeriod          *uint           `json:"rate_limit_period"`
	AllowPartialSaves        *bool           `json:"allow_partial_saves"`
	SubmissionLimit          *uint           `json:"submission_limit"`
	Questions                []QuestionInput `json:"questions"`
}

type UpdateFormDTO struct {
	Title              *string        `json:"title"`
	Description        *string        `json:"description"`
	IsTemplate         *bool          `json:"is_template"`
	IsPublished        *bool          `json:"is_published"`
	NotificationEmails datatypes.JSON `json:"notification_emails"`
}

// FormSettingsDTO carries the owner-patchable policy fields. Anything else in
// the settings payload is rejected by the handler.
type FormSettingsDTO struct {
	IsActive                 *bool      `json:"is_active"`
	AllowMultipleSubmissions *bool      `json:"allow_multiple_submissions"`
	ExpiresAt                *time.Time `json:"expires_at"`
	ClearExpiresAt           *bool      `json:"clear_expires_at"`
	RateLimitEnabled         *bool      `json:"rate_limit_enabled"`
	RateLimitCount           *uint      `json:"rate_limit_count"`
	RateLimitPeriod          *uint      `json:"rate_limit_period"`
	IsPasswordProtected      *bool      `json:"is_password_protected"`
	AccessCode               *string    `json:"access_code"`
	SubmissionLimit          *uint      `json:"submission_limit"`
	ClearSubmissionLimit     *bool      `json:"clear_submission_limit"`
	EnableEmailNotifications *bool      `json:"enable_email_notifications"`
}

type VerifyAccessInput struct {
	Code string `json:"code" binding:"required"`
}

type AccessStatus struct {
	IsExpired   bool `json:"is_expired"`
	RateLimited bool `json:"rate_limited"`
}

type RateLimitStatus struct {
	IP                string     `json:"ip"`
	SubmissionCount   uint       `json:"submission_count"`
	FirstSubmissionAt *time.Time `json:"first_submission_at,omitempty"`
	LastSubmissionAt  *time.Time `json:"last_submission_at,omitempty"`
	IsBlocked         bool       `json:"is_blocked"`
	BlockedUntil      *time.Time `json:"blocked_until,omitempty"`
}

type RateLimitResetInput struct {
	IP *string `json:"ip"`
}
