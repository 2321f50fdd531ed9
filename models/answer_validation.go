package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// FieldErrors maps a field name to the reason it was rejected. Callers always
// receive the full map, never a single flat message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// AnswerErrors collects per-question field errors for a whole submission,
// keyed by question id.
type AnswerErrors map[string]FieldErrors

func (e AnswerErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": {"+e[k].Error()+"}")
	}
	return strings.Join(parts, "; ")
}

// AnswerValue carries the typed payload slots of one submitted answer. The
// question's declared type alone decides which slot is authoritative; a value
// in any other slot is rejected, never coerced.
type AnswerValue struct {
	Text    *string
	Number  *decimal.Decimal
	Date    *string
	Choices json.RawMessage
}

// SlotName returns the payload field a question of this type reads.
func (t QuestionType) SlotName() string {
	switch t {
	case QuestionTypeNumber:
		return "answer_number"
	case QuestionTypeDate:
		return "answer_date"
	case QuestionTypeCheckbox, QuestionTypeMultiselect:
		return "answer_choices"
	default:
		return "answer_text"
	}
}

func (v AnswerValue) wrongSlots(t QuestionType) []string {
	var wrong []string
	if v.Text != nil && t.SlotName() != "answer_text" {
		wrong = append(wrong, "answer_text")
	}
	if v.Number != nil && t.SlotName() != "answer_number" {
		wrong = append(wrong, "answer_number")
	}
	if v.Date != nil && t.SlotName() != "answer_date" {
		wrong = append(wrong, "answer_date")
	}
	if v.Choices != nil && t.SlotName() != "answer_choices" {
		wrong = append(wrong, "answer_choices")
	}
	return wrong
}

// Empty reports whether the authoritative slot carries no value.
func (v AnswerValue) Empty(t QuestionType) bool {
	switch t.SlotName() {
	case "answer_number":
		return v.Number == nil
	case "answer_date":
		return v.Date == nil || *v.Date == ""
	case "answer_choices":
		if v.Choices == nil {
			return true
		}
		var list []json.RawMessage
		if err := json.Unmarshal(v.Choices, &list); err != nil {
			return false // present but malformed, let validation report it
		}
		return len(list) == 0
	default:
		return v.Text == nil || *v.Text == ""
	}
}

func decodeChoiceElement(raw json.RawMessage) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	return scalarString(v)
}

// ValidateAnswer applies the runtime rules for this question's type to one
// answer value. It is the single implementation behind both submission
// admission and the standalone validate endpoint. A nil return means valid.
func (q *Question) ValidateAnswer(v AnswerValue) FieldErrors {
	slot := q.QuestionType.SlotName()
	errs := FieldErrors{}

	for _, w := range v.wrongSlots(q.QuestionType) {
		errs[w] = fmt.Sprintf("Field does not apply to question type %s.", q.QuestionType)
	}
	if len(errs) > 0 {
		return errs
	}

	if v.Empty(q.QuestionType) {
		if q.IsRequired {
			return FieldErrors{slot: "This field is required."}
		}
		return nil
	}

	switch q.QuestionType {
	case QuestionTypeText, QuestionTypeTextarea:
		length := uint(len([]rune(*v.Text)))
		if q.MinLength != nil && length < *q.MinLength {
			errs[slot] = fmt.Sprintf("Answer must be at least %d characters.", *q.MinLength)
		} else if q.MaxLength != nil && length > *q.MaxLength {
			errs[slot] = fmt.Sprintf("Answer must be at most %d characters.", *q.MaxLength)
		}

	case QuestionTypeEmail:
		if _, err := mail.ParseAddress(*v.Text); err != nil {
			errs[slot] = "Invalid email address."
		}

	case QuestionTypeNumber:
		num := *v.Number
		if q.MinValue != nil && num.LessThan(*q.MinValue) {
			errs[slot] = fmt.Sprintf("Number is below minimum of %s.", q.MinValue.String())
		} else if q.MaxValue != nil && num.GreaterThan(*q.MaxValue) {
			errs[slot] = fmt.Sprintf("Number is above maximum of %s.", q.MaxValue.String())
		}

	case QuestionTypeDate:
		d, err := time.Parse(dateLayout, *v.Date)
		if err != nil {
			errs[slot] = "Invalid date format, expected YYYY-MM-DD."
			break
		}
		opts := q.dateOptions()
		y, m, day := time.Now().UTC().Date()
		today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
		if !opts.AllowPast && d.Before(today) {
			errs[slot] = "Past dates are not allowed for this question."
		} else if opts.MinDate != nil && d.Before(*opts.MinDate) {
			errs[slot] = fmt.Sprintf("Date is before allowed minimum %s.", opts.MinDate.Format(dateLayout))
		} else if opts.MaxDate != nil && d.After(*opts.MaxDate) {
			errs[slot] = fmt.Sprintf("Date is after allowed maximum %s.", opts.MaxDate.Format(dateLayout))
		}

	case QuestionTypeRadio, QuestionTypeDropdown:
		if !containsValue(q.OptionValues(), *v.Text) {
			errs[slot] = "Selected value is not a valid option."
		}

	case QuestionTypeCheckbox, QuestionTypeMultiselect:
		var list []json.RawMessage
		if err := json.Unmarshal(v.Choices, &list); err != nil {
			errs[slot] = "Answer must be a list of selected options."
			break
		}
		values := q.OptionValues()
		for _, raw := range list {
			s, ok := decodeChoiceElement(raw)
			if !ok || !containsValue(values, s) {
				errs[slot] = fmt.Sprintf("Selected value %s is not a valid option.", strings.Trim(string(raw), `"`))
				break
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// BuildAnswer stores a validated value into the single column the question
// type owns; the other columns stay unset.
func (q *Question) BuildAnswer(v AnswerValue) (Answer, error) {
	a := Answer{QuestionID: q.ID}
	if v.Empty(q.QuestionType) {
		return a, nil
	}
	switch q.QuestionType.SlotName() {
	case "answer_number":
		a.AnswerNumber = v.Number
	case "answer_date":
		d, err := time.Parse(dateLayout, *v.Date)
		if err != nil {
			return a, err
		}
		a.AnswerDate = &d
	case "answer_choices":
		a.AnswerChoices = datatypes.JSON(v.Choices)
	default:
		a.AnswerText = v.Text
	}
	return a, nil
}
