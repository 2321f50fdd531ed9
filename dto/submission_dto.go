package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/models"
	"github.com/shopspring/decimal"
)

// AnswerInput has one typed slot per storage column. The question's declared
// type decides which slot is read; values in other slots are rejected.
type AnswerInput struct {
	Question      uuid.UUID        `json:"question" binding:"required"`
	AnswerText    *string          `json:"answer_text"`
	AnswerNumber  *decimal.Decimal `json:"answer_number"`
	AnswerDate    *string          `json:"answer_date"`
	AnswerChoices json.RawMessage  `json:"answer_choices"`
}

func (a AnswerInput) Value() models.AnswerValue {
	return models.AnswerValue{
		Text:    a.AnswerText,
		Number:  a.AnswerNumber,
		Date:    a.AnswerDate,
		Choices: a.AnswerChoices,
	}
}

type SubmissionInput struct {
	IsDraft bool          `json:"is_draft"`
	Answers []AnswerInput `json:"answers"`
}

type ValidateAnswerInput struct {
	AnswerText    *string          `json:"answer_text"`
	AnswerNumber  *decimal.Decimal `json:"answer_number"`
	AnswerDate    *string          `json:"answer_date"`
	AnswerChoices json.RawMessage  `json:"answer_choices"`
}

func (a ValidateAnswerInput) Value() models.AnswerValue {
	return models.AnswerValue{
		Text:    a.AnswerText,
		Number:  a.AnswerNumber,
		Date:    a.AnswerDate,
		Choices: a.AnswerChoices,
	}
}
