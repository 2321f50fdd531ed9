package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type QuestionInput struct {
	QuestionText string           `json:"question_text" binding:"required"`
	QuestionType string           `json:"question_type" binding:"required"`
	IsRequired   bool             `json:"is_required"`
	Order        uint             `json:"order" binding:"required"`
	Placeholder  *string          `json:"placeholder"`
	MinLength    *uint            `json:"min_length"`
	MaxLength    *uint            `json:"max_length"`
	MinValue     *decimal.Decimal `json:"min_value"`
	MaxValue     *decimal.Decimal `json:"max_value"`
	Options      datatypes.JSON   `json:"options"`
}

type UpdateQuestionInput struct {
	QuestionText *string          `json:"question_text"`
	IsRequired   *bool            `json:"is_required"`
	Placeholder  *string          `json:"placeholder"`
	MinLength    *uint            `json:"min_length"`
	MaxLength    *uint            `json:"max_length"`
	MinValue     *decimal.Decimal `json:"min_value"`
	MaxValue     *decimal.Decimal `json:"max_value"`
	Options      datatypes.JSON   `json:"options"`
}

type ReorderInput struct {
	Order []uuid.UUID `json:"order" binding:"required"`
}

// ClientQuestion is the read-only projection a rendering client needs.
type ClientQuestion struct {
	ID           uuid.UUID        `json:"id"`
	QuestionText string           `json:"question_text"`
	QuestionType string           `json:"question_type"`
	IsRequired   bool             `json:"is_required"`
	Order        uint             `json:"order"`
	Placeholder  *string          `json:"placeholder,omitempty"`
	MinLength    *uint            `json:"min_length,omitempty"`
	MaxLength    *uint            `json:"max_length,omitempty"`
	MinValue     *decimal.Decimal `json:"min_value,omitempty"`
	MaxValue     *decimal.Decimal `json:"max_value,omitempty"`
	Options      datatypes.JSON   `json:"options,omitempty"`
}

type ClientSchema struct {
	FormID    uuid.UUID        `json:"form_id"`
	Title     string           `json:"title"`
	Slug      string           `json:"slug"`
	Questions []ClientQuestion `json:"questions"`
}
