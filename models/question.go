package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeText        QuestionType = "text"
	QuestionTypeEmail       QuestionType = "email"
	QuestionTypeNumber      QuestionType = "number"
	QuestionTypeDate        QuestionType = "date"
	QuestionTypeTextarea    QuestionType = "textarea"
	QuestionTypeRadio       QuestionType = "radio"
	QuestionTypeCheckbox    QuestionType = "checkbox"
	QuestionTypeDropdown    QuestionType = "dropdown"
	QuestionTypeMultiselect QuestionType = "multiselect"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeEmail, QuestionTypeNumber, QuestionTypeDate,
		QuestionTypeTextarea, QuestionTypeRadio, QuestionTypeCheckbox,
		QuestionTypeDropdown, QuestionTypeMultiselect:
		return true
	}
	return false
}

// IsChoice reports whether answers are constrained to the options list.
func (t QuestionType) IsChoice() bool {
	switch t {
	case QuestionTypeRadio, QuestionTypeCheckbox, QuestionTypeDropdown, QuestionTypeMultiselect:
		return true
	}
	return false
}

// IsMulti reports whether the answer is a list of selected options.
func (t QuestionType) IsMulti() bool {
	return t == QuestionTypeCheckbox || t == QuestionTypeMultiselect
}

const dateLayout = "2006-01-02"

type Question struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	FormID       uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_question_form_order" json:"form_id"`
	QuestionText string           `gorm:"type:text;not null" json:"question_text"`
	QuestionType QuestionType     `gorm:"size:50;not null" json:"question_type"`
	IsRequired   bool             `gorm:"default:false" json:"is_required"`
	Order        uint             `gorm:"not null;uniqueIndex:idx_question_form_order" json:"order"`
	Placeholder  *string          `gorm:"size:255" json:"placeholder"`
	MinLength    *uint            `json:"min_length"`
	MaxLength    *uint            `json:"max_length"`
	MinValue     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"min_value"`
	MaxValue     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"max_value"`
	Options      datatypes.JSON   `json:"options"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// decodedOptions parses the options JSON keeping numbers exact.
func (q *Question) decodedOptions() (any, error) {
	if len(q.Options) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(q.Options))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// scalarString renders a string or integer option value for comparison.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	}
	return "", false
}

// OptionValues returns the comparable value of every option. Object-shaped
// options contribute their "value" member; the label is display-only.
func (q *Question) OptionValues() []string {
	opts, err := q.decodedOptions()
	if err != nil {
		return nil
	}
	list, ok := opts.([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(list))
	for _, o := range list {
		if m, ok := o.(map[string]any); ok {
			if s, ok := scalarString(m["value"]); ok {
				values = append(values, s)
			}
			continue
		}
		if s, ok := scalarString(o); ok {
			values = append(values, s)
		}
	}
	return values
}

type dateOptions struct {
	AllowPast bool
	MinDate   *time.Time
	MaxDate   *time.Time
}

func (q *Question) dateOptions() dateOptions {
	out := dateOptions{AllowPast: true}
	opts, err := q.decodedOptions()
	if err != nil {
		return out
	}
	m, ok := opts.(map[string]any)
	if !ok {
		return out
	}
	if b, ok := m["allow_past"].(bool); ok {
		out.AllowPast = b
	}
	if s, ok := m["min_date"].(string); ok && s != "" {
		if d, err := time.Parse(dateLayout, s); err == nil {
			out.MinDate = &d
		}
	}
	if s, ok := m["max_date"].(string); ok && s != "" {
		if d, err := time.Parse(dateLayout, s); err == nil {
			out.MaxDate = &d
		}
	}
	return out
}

// ValidateDefinition checks the type-specific constraint shape. It runs at
// question create and update time, not only when answers arrive.
func (q *Question) ValidateDefinition() FieldErrors {
	errs := FieldErrors{}

	if !q.QuestionType.Valid() {
		errs["question_type"] = fmt.Sprintf("%q is not a valid question type.", string(q.QuestionType))
		return errs
	}

	opts, err := q.decodedOptions()
	if err != nil {
		errs["options"] = "Options must be valid JSON."
		return errs
	}

	if q.QuestionType.IsChoice() {
		list, ok := opts.([]any)
		if opts == nil || !ok {
			errs["options"] = "Options must be a list of strings or objects with label/value."
			return errs
		}
		if len(list) == 0 {
			errs["options"] = "Options list cannot be empty."
			return errs
		}
		for i, o := range list {
			if m, ok := o.(map[string]any); ok {
				if _, hasLabel := m["label"]; !hasLabel {
					errs["options"] = fmt.Sprintf("Option at index %d must contain label and value keys.", i)
					return errs
				}
				if _, hasValue := m["value"]; !hasValue {
					errs["options"] = fmt.Sprintf("Option at index %d must contain label and value keys.", i)
					return errs
				}
				continue
			}
			if _, ok := scalarString(o); !ok {
				errs["options"] = fmt.Sprintf("Option at index %d must be a string, int, or an object with label/value.", i)
				return errs
			}
		}
	}

	if q.QuestionType == QuestionTypeDate && opts != nil {
		m, ok := opts.(map[string]any)
		if !ok {
			errs["options"] = "Date options must be an object with allow_past/min_date/max_date."
			return errs
		}
		if v, present := m["allow_past"]; present {
			if _, ok := v.(bool); !ok {
				errs["options"] = "allow_past must be a boolean."
				return errs
			}
		}
		var minDate, maxDate *time.Time
		for _, key := range []string{"min_date", "max_date"} {
			v, present := m[key]
			if !present || v == nil {
				continue
			}
			s, ok := v.(string)
			if !ok {
				errs["options"] = fmt.Sprintf("%s must be a date string in YYYY-MM-DD format.", key)
				return errs
			}
			d, err := time.Parse(dateLayout, s)
			if err != nil {
				errs["options"] = fmt.Sprintf("%s must be a date string in YYYY-MM-DD format.", key)
				return errs
			}
			if key == "min_date" {
				minDate = &d
			} else {
				maxDate = &d
			}
		}
		if minDate != nil && maxDate != nil && minDate.After(*maxDate) {
			errs["options"] = "min_date cannot be after max_date."
			return errs
		}
	}

	if q.QuestionType == QuestionTypeNumber {
		if q.MinValue != nil && q.MaxValue != nil && q.MinValue.GreaterThan(*q.MaxValue) {
			errs["min_value"] = "min_value cannot be greater than max_value."
			return errs
		}
	}

	if q.QuestionType == QuestionTypeEmail && opts != nil {
		if _, ok := opts.(map[string]any); !ok {
			errs["options"] = `Email options must be an object (for example {"pattern": "..."}).`
			return errs
		}
	}

	if q.MinLength != nil && q.MaxLength != nil && *q.MinLength > *q.MaxLength {
		errs["min_length"] = "min_length cannot be greater than max_length."
		return errs
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
