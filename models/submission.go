package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormSubmission is one respondent's set of answers. It stays mutable while
// IsDraft is true; finalizing is a one-way transition.
type FormSubmission struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FormID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_submission_form_ip" json:"form_id"`
	Form        Form       `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
	SubmittedBy *uint      `json:"submitted_by"`
	SubmittedAt time.Time  `gorm:"autoCreateTime;index:idx_submission_form_ip" json:"submitted_at"`
	IPAddress   string     `gorm:"size:45;index:idx_submission_form_ip" json:"ip_address"`
	IsDraft     bool       `gorm:"default:false" json:"is_draft"`
	CompletedAt *time.Time `json:"completed_at"`
	LastSavedAt time.Time  `gorm:"autoUpdateTime" json:"last_saved_at"`
	Answers     []Answer   `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"answers"`
}

func (s *FormSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Answer holds one value for one question. Exactly one of the answer_*
// columns is set, selected by the question's type.
type Answer struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_answer_submission_question" json:"submission_id"`
	QuestionID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_answer_submission_question" json:"question"`
	Question      Question         `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	AnswerText    *string          `gorm:"type:text" json:"answer_text"`
	AnswerNumber  *decimal.Decimal `gorm:"type:numeric(10,2)" json:"answer_number"`
	AnswerDate    *time.Time       `gorm:"type:date" json:"answer_date"`
	AnswerChoices datatypes.JSON   `json:"answer_choices"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
