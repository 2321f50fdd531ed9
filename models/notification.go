package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormNotificationLog is the audit trail of notification deliveries. Failures
// are recorded here and never surfaced to the submitting caller.
type FormNotificationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FormID       uuid.UUID `gorm:"type:uuid;not null;index" json:"form_id"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;index" json:"submission_id"`
	ToEmail      string    `gorm:"size:255;not null" json:"to_email"`
	SentAt       time.Time `gorm:"autoCreateTime" json:"sent_at"`
	Success      bool      `gorm:"default:true" json:"success"`
	Message      string    `gorm:"type:text" json:"message"`
}

func (l *FormNotificationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
