package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRateLimit is the per (form, ip) submission counter. Rows are
// created lazily on the first submission from an address and only ever
// mutated inside the owning form's admission transaction.
type SubmissionRateLimit struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FormID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_ratelimit_form_ip" json:"form_id"`
	Form              Form       `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
	IPAddress         string     `gorm:"size:45;not null;uniqueIndex:idx_ratelimit_form_ip" json:"ip_address"`
	SubmissionCount   uint       `gorm:"default:0" json:"submission_count"`
	FirstSubmissionAt time.Time  `gorm:"autoCreateTime" json:"first_submission_at"`
	LastSubmissionAt  time.Time  `gorm:"autoUpdateTime" json:"last_submission_at"`
	IsBlocked         bool       `gorm:"default:false" json:"is_blocked"`
	BlockedUntil      *time.Time `json:"blocked_until"`
}

func (rl *SubmissionRateLimit) BeforeCreate(tx *gorm.DB) error {
	if rl.ID == uuid.Nil {
		rl.ID = uuid.New()
	}
	return nil
}

// WindowExpired reports whether the counting window has elapsed and the
// counter should reset before the next check.
func (rl *SubmissionRateLimit) WindowExpired(periodSeconds uint, now time.Time) bool {
	return now.Sub(rl.FirstSubmissionAt) > time.Duration(periodSeconds)*time.Second
}

func (rl *SubmissionRateLimit) WithinLimit(maxCount uint) bool {
	return rl.SubmissionCount < maxCount
}

// Blocked reports an explicit administrative block, separate from the
// counting window.
func (rl *SubmissionRateLimit) Blocked(now time.Time) bool {
	if !rl.IsBlocked {
		return false
	}
	if rl.BlockedUntil != nil && now.After(*rl.BlockedUntil) {
		return false
	}
	return true
}
