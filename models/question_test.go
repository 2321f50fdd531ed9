package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func ptrString(s string) *string { return &s }
func ptrUint(n uint) *uint       { return &n }

func ptrDecimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// --------------------- ValidateDefinition ---------------------

func TestValidateDefinition_InvalidType(t *testing.T) {
	q := Question{QuestionType: "slider"}
	errs := q.ValidateDefinition()
	assert.Equal(t, `"slider" is not a valid question type.`, errs["question_type"])
}

func TestValidateDefinition_ChoiceNeedsOptions(t *testing.T) {
	q := Question{QuestionType: QuestionTypeRadio}
	errs := q.ValidateDefinition()
	assert.Equal(t, "Options must be a list of strings or objects with label/value.", errs["options"])

	q.Options = datatypes.JSON(`[]`)
	errs = q.ValidateDefinition()
	assert.Equal(t, "Options list cannot be empty.", errs["options"])
}

func TestValidateDefinition_ChoiceOptionShapes(t *testing.T) {
	q := Question{QuestionType: QuestionTypeDropdown, Options: datatypes.JSON(`["a", 2, {"label": "Three", "value": "3"}]`)}
	assert.Nil(t, q.ValidateDefinition())

	q.Options = datatypes.JSON(`["a", {"label": "no value"}]`)
	errs := q.ValidateDefinition()
	assert.Equal(t, "Option at index 1 must contain label and value keys.", errs["options"])

	q.Options = datatypes.JSON(`["a", true]`)
	errs = q.ValidateDefinition()
	assert.Equal(t, "Option at index 1 must be a string, int, or an object with label/value.", errs["options"])
}

func TestValidateDefinition_DateOptions(t *testing.T) {
	q := Question{QuestionType: QuestionTypeDate}
	assert.Nil(t, q.ValidateDefinition())

	q.Options = datatypes.JSON(`["2024-01-01"]`)
	errs := q.ValidateDefinition()
	assert.Equal(t, "Date options must be an object with allow_past/min_date/max_date.", errs["options"])

	q.Options = datatypes.JSON(`{"allow_past": "yes"}`)
	errs = q.ValidateDefinition()
	assert.Equal(t, "allow_past must be a boolean.", errs["options"])

	q.Options = datatypes.JSON(`{"min_date": "01/02/2024"}`)
	errs = q.ValidateDefinition()
	assert.Equal(t, "min_date must be a date string in YYYY-MM-DD format.", errs["options"])

	q.Options = datatypes.JSON(`{"min_date": "2024-06-01", "max_date": "2024-01-01"}`)
	errs = q.ValidateDefinition()
	assert.Equal(t, "min_date cannot be after max_date.", errs["options"])

	q.Options = datatypes.JSON(`{"allow_past": false, "min_date": "2024-01-01", "max_date": "2024-12-31"}`)
	assert.Nil(t, q.ValidateDefinition())
}

func TestValidateDefinition_NumberBounds(t *testing.T) {
	q := Question{
		QuestionType: QuestionTypeNumber,
		MinValue:     ptrDecimal("100"),
		MaxValue:     ptrDecimal("18"),
	}
	errs := q.ValidateDefinition()
	assert.Equal(t, "min_value cannot be greater than max_value.", errs["min_value"])
}

func TestValidateDefinition_LengthBounds(t *testing.T) {
	q := Question{
		QuestionType: QuestionTypeText,
		MinLength:    ptrUint(10),
		MaxLength:    ptrUint(5),
	}
	errs := q.ValidateDefinition()
	assert.Equal(t, "min_length cannot be greater than max_length.", errs["min_length"])
}

func TestValidateDefinition_EmailOptionsShape(t *testing.T) {
	q := Question{QuestionType: QuestionTypeEmail, Options: datatypes.JSON(`["not-an-object"]`)}
	errs := q.ValidateDefinition()
	assert.Equal(t, `Email options must be an object (for example {"pattern": "..."}).`, errs["options"])

	q.Options = datatypes.JSON(`{"pattern": ".*@example\\.com"}`)
	assert.Nil(t, q.ValidateDefinition())
}

// --------------------- ValidateAnswer ---------------------

func TestValidateAnswer_NumberBounds(t *testing.T) {
	q := Question{
		QuestionType: QuestionTypeNumber,
		IsRequired:   true,
		MinValue:     ptrDecimal("18"),
		MaxValue:     ptrDecimal("99"),
	}

	cases := []struct {
		value string
		want  string
	}{
		{"30", ""},
		{"99", ""},
		{"18", ""},
		{"10", "Number is below minimum of 18."},
		{"100", "Number is above maximum of 99."},
	}
	for _, tc := range cases {
		errs := q.ValidateAnswer(AnswerValue{Number: ptrDecimal(tc.value)})
		if tc.want == "" {
			assert.Nil(t, errs, "value %s", tc.value)
		} else {
			assert.Equal(t, tc.want, errs["answer_number"], "value %s", tc.value)
		}
	}
}

func TestValidateAnswer_RequiredAndEmpty(t *testing.T) {
	q := Question{QuestionType: QuestionTypeText, IsRequired: true}
	errs := q.ValidateAnswer(AnswerValue{})
	assert.Equal(t, "This field is required.", errs["answer_text"])

	errs = q.ValidateAnswer(AnswerValue{Text: ptrString("")})
	assert.Equal(t, "This field is required.", errs["answer_text"])

	optional := Question{QuestionType: QuestionTypeText}
	assert.Nil(t, optional.ValidateAnswer(AnswerValue{}))
}

func TestValidateAnswer_WrongSlotRejected(t *testing.T) {
	q := Question{QuestionType: QuestionTypeNumber}
	errs := q.ValidateAnswer(AnswerValue{Text: ptrString("thirty")})
	assert.Equal(t, "Field does not apply to question type number.", errs["answer_text"])
}

func TestValidateAnswer_TextLength(t *testing.T) {
	q := Question{
		QuestionType: QuestionTypeText,
		MinLength:    ptrUint(3),
		MaxLength:    ptrUint(5),
	}
	errs := q.ValidateAnswer(AnswerValue{Text: ptrString("ab")})
	assert.Equal(t, "Answer must be at least 3 characters.", errs["answer_text"])

	errs = q.ValidateAnswer(AnswerValue{Text: ptrString("abcdef")})
	assert.Equal(t, "Answer must be at most 5 characters.", errs["answer_text"])

	assert.Nil(t, q.ValidateAnswer(AnswerValue{Text: ptrString("abcd")}))
}

func TestValidateAnswer_Email(t *testing.T) {
	q := Question{QuestionType: QuestionTypeEmail}
	errs := q.ValidateAnswer(AnswerValue{Text: ptrString("not-an-email")})
	assert.Equal(t, "Invalid email address.", errs["answer_text"])

	assert.Nil(t, q.ValidateAnswer(AnswerValue{Text: ptrString("alice@example.com")}))
}

func TestValidateAnswer_DateRules(t *testing.T) {
	q := Question{QuestionType: QuestionTypeDate}

	errs := q.ValidateAnswer(AnswerValue{Date: ptrString("01/02/2024")})
	assert.Equal(t, "Invalid date format, expected YYYY-MM-DD.", errs["answer_date"])

	q.Options = datatypes.JSON(`{"allow_past": false}`)
	errs = q.ValidateAnswer(AnswerValue{Date: ptrString("2000-01-01")})
	assert.Equal(t, "Past dates are not allowed for this question.", errs["answer_date"])

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	assert.Nil(t, q.ValidateAnswer(AnswerValue{Date: ptrString(future)}))

	// today counts as not-past regardless of the local clock's offset
	today := time.Now().UTC().Format("2006-01-02")
	assert.Nil(t, q.ValidateAnswer(AnswerValue{Date: ptrString(today)}))

	q.Options = datatypes.JSON(`{"min_date": "2030-01-01", "max_date": "2030-12-31"}`)
	errs = q.ValidateAnswer(AnswerValue{Date: ptrString("2029-06-01")})
	assert.Equal(t, "Date is before allowed minimum 2030-01-01.", errs["answer_date"])

	errs = q.ValidateAnswer(AnswerValue{Date: ptrString("2031-06-01")})
	assert.Equal(t, "Date is after allowed maximum 2030-12-31.", errs["answer_date"])

	assert.Nil(t, q.ValidateAnswer(AnswerValue{Date: ptrString("2030-06-15")}))
}

func TestValidateAnswer_SingleChoice(t *testing.T) {
	q := Question{QuestionType: QuestionTypeRadio, Options: datatypes.JSON(`["a", "b", "c"]`)}

	assert.Nil(t, q.ValidateAnswer(AnswerValue{Text: ptrString("b")}))

	errs := q.ValidateAnswer(AnswerValue{Text: ptrString("d")})
	assert.Equal(t, "Selected value is not a valid option.", errs["answer_text"])
}

func TestValidateAnswer_LabelIsNotAValue(t *testing.T) {
	q := Question{
		QuestionType: QuestionTypeDropdown,
		Options:      datatypes.JSON(`[{"label": "First choice", "value": "first"}]`),
	}
	assert.Nil(t, q.ValidateAnswer(AnswerValue{Text: ptrString("first")}))

	errs := q.ValidateAnswer(AnswerValue{Text: ptrString("First choice")})
	assert.Equal(t, "Selected value is not a valid option.", errs["answer_text"])
}

func TestValidateAnswer_MultiChoice(t *testing.T) {
	q := Question{QuestionType: QuestionTypeMultiselect, Options: datatypes.JSON(`["x", "y", "z"]`)}

	assert.Nil(t, q.ValidateAnswer(AnswerValue{Choices: json.RawMessage(`["x", "z"]`)}))

	errs := q.ValidateAnswer(AnswerValue{Choices: json.RawMessage(`"x"`)})
	assert.Equal(t, "Answer must be a list of selected options.", errs["answer_choices"])

	errs = q.ValidateAnswer(AnswerValue{Choices: json.RawMessage(`["x", "w"]`)})
	assert.Equal(t, "Selected value w is not a valid option.", errs["answer_choices"])
}

func TestValidateAnswer_IntegerOptionsStayExact(t *testing.T) {
	q := Question{QuestionType: QuestionTypeCheckbox, Options: datatypes.JSON(`[1, 2, 3]`)}

	assert.Nil(t, q.ValidateAnswer(AnswerValue{Choices: json.RawMessage(`[1, 3]`)}))

	errs := q.ValidateAnswer(AnswerValue{Choices: json.RawMessage(`[4]`)})
	assert.Equal(t, "Selected value 4 is not a valid option.", errs["answer_choices"])
}

// --------------------- BuildAnswer ---------------------

func TestBuildAnswer_StoresSingleSlot(t *testing.T) {
	text := Question{QuestionType: QuestionTypeText}
	a, err := text.BuildAnswer(AnswerValue{Text: ptrString("hello")})
	assert.NoError(t, err)
	assert.Equal(t, "hello", *a.AnswerText)
	assert.Nil(t, a.AnswerNumber)
	assert.Nil(t, a.AnswerDate)
	assert.Nil(t, a.AnswerChoices)

	date := Question{QuestionType: QuestionTypeDate}
	a, err = date.BuildAnswer(AnswerValue{Date: ptrString("2030-06-15")})
	assert.NoError(t, err)
	assert.Equal(t, "2030-06-15", a.AnswerDate.Format("2006-01-02"))

	multi := Question{QuestionType: QuestionTypeMultiselect, Options: datatypes.JSON(`["x"]`)}
	a, err = multi.BuildAnswer(AnswerValue{Choices: json.RawMessage(`["x"]`)})
	assert.NoError(t, err)
	assert.JSONEq(t, `["x"]`, string(a.AnswerChoices))
}
