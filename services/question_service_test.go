package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/models"
	"github.com/hctseng/formcraft-go/repositories"
	"github.com/hctseng/formcraft-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupQuestionServiceMocks(t *testing.T) (*QuestionService, *mock_repositories.MockFormRepo, *mock_repositories.MockQuestionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockQuestion := mock_repositories.NewMockQuestionRepo(ctrl)
	repos := &repositories.Repos{
		Form:     mockForm,
		Question: mockQuestion,
	}
	forms := NewFormService(repos)
	return NewQuestionService(repos, forms), mockForm, mockQuestion
}

func ownedTestForm(uid uint) *models.Form {
	return &models.Form{ID: uuid.New(), Slug: "survey", CreatedBy: uid}
}

// --------------------- Create ---------------------

func TestCreateQuestion_Success(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)
	mockQuestion.EXPECT().ListByForm(form.ID).Return(nil, nil)
	mockQuestion.EXPECT().Create(gomock.Any()).Return(nil)

	input := dto.QuestionInput{
		QuestionText: "Pick one",
		QuestionType: "radio",
		Order:        1,
		Options:      datatypes.JSON(`["a", "b"]`),
	}
	q, err := svc.Create(1, "survey", input)
	assert.NoError(t, err)
	assert.Equal(t, form.ID, q.FormID)
}

func TestCreateQuestion_InvalidDefinition(t *testing.T) {
	svc, mockForm, _ := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)

	input := dto.QuestionInput{
		QuestionText: "Pick one",
		QuestionType: "radio",
		Order:        1,
	}
	_, err := svc.Create(1, "survey", input)

	var fieldErrs models.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "options")
}

func TestCreateQuestion_OrderConflict(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)
	mockQuestion.EXPECT().ListByForm(form.ID).Return([]models.Question{{Order: 1}}, nil)

	input := dto.QuestionInput{
		QuestionText: "Name",
		QuestionType: "text",
		Order:        1,
	}
	_, err := svc.Create(1, "survey", input)

	var fieldErrs models.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "A question with this order already exists.", fieldErrs["order"])
}

func TestCreateQuestion_NotOwner(t *testing.T) {
	svc, mockForm, _ := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)

	_, err := svc.Create(2, "survey", dto.QuestionInput{QuestionText: "x", QuestionType: "text", Order: 1})
	assert.Equal(t, ErrForbidden, err)
}

// --------------------- Reorder ---------------------

func TestReorder_Success(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	q1 := models.Question{ID: uuid.New(), FormID: form.ID, Order: 1}
	q2 := models.Question{ID: uuid.New(), FormID: form.ID, Order: 2}

	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)
	mockQuestion.EXPECT().ListByForm(form.ID).Return([]models.Question{q1, q2}, nil)
	mockQuestion.EXPECT().Reorder(form.ID, []uuid.UUID{q2.ID, q1.ID}).Return(nil)
	mockQuestion.EXPECT().ListByForm(form.ID).Return([]models.Question{q2, q1}, nil)

	out, err := svc.Reorder(1, "survey", []uuid.UUID{q2.ID, q1.ID})
	assert.NoError(t, err)
	assert.Equal(t, q2.ID, out[0].ID)
}

func TestReorder_WrongLength(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	q1 := models.Question{ID: uuid.New(), FormID: form.ID, Order: 1}
	q2 := models.Question{ID: uuid.New(), FormID: form.ID, Order: 2}

	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)
	mockQuestion.EXPECT().ListByForm(form.ID).Return([]models.Question{q1, q2}, nil)

	_, err := svc.Reorder(1, "survey", []uuid.UUID{q1.ID})
	assert.Equal(t, ErrOrderMismatch, err)
}

func TestReorder_UnknownID(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	q1 := models.Question{ID: uuid.New(), FormID: form.ID, Order: 1}
	q2 := models.Question{ID: uuid.New(), FormID: form.ID, Order: 2}

	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)
	mockQuestion.EXPECT().ListByForm(form.ID).Return([]models.Question{q1, q2}, nil)

	_, err := svc.Reorder(1, "survey", []uuid.UUID{q1.ID, uuid.New()})
	assert.Equal(t, ErrOrderMismatch, err)
}

func TestReorder_DuplicateID(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	q1 := models.Question{ID: uuid.New(), FormID: form.ID, Order: 1}
	q2 := models.Question{ID: uuid.New(), FormID: form.ID, Order: 2}

	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)
	mockQuestion.EXPECT().ListByForm(form.ID).Return([]models.Question{q1, q2}, nil)

	_, err := svc.Reorder(1, "survey", []uuid.UUID{q1.ID, q1.ID})
	assert.Equal(t, ErrOrderMismatch, err)
}

// --------------------- ValidateAnswer ---------------------

func TestValidateAnswer_Passthrough(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	q := &models.Question{
		ID:           uuid.New(),
		FormID:       form.ID,
		QuestionType: models.QuestionTypeRadio,
		Options:      datatypes.JSON(`["a", "b"]`),
	}
	mockForm.EXPECT().GetBySlug("survey").Return(form, nil).Times(2)
	mockQuestion.EXPECT().GetByID(q.ID).Return(q, nil).Times(2)

	errs, err := svc.ValidateAnswer("survey", q.ID, models.AnswerValue{Text: ptrString("a")})
	assert.NoError(t, err)
	assert.Nil(t, errs)

	errs, err = svc.ValidateAnswer("survey", q.ID, models.AnswerValue{Text: ptrString("z")})
	assert.NoError(t, err)
	assert.Equal(t, "Selected value is not a valid option.", errs["answer_text"])
}

func TestValidateAnswer_QuestionNotOnForm(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	q := &models.Question{
		ID:           uuid.New(),
		FormID:       uuid.New(),
		QuestionType: models.QuestionTypeText,
	}
	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)
	mockQuestion.EXPECT().GetByID(q.ID).Return(q, nil)

	_, err := svc.ValidateAnswer("survey", q.ID, models.AnswerValue{Text: ptrString("a")})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// --------------------- Update ---------------------

func TestUpdateQuestion_RevalidatesDefinition(t *testing.T) {
	svc, mockForm, mockQuestion := setupQuestionServiceMocks(t)

	form := ownedTestForm(1)
	q := &models.Question{
		ID:           uuid.New(),
		FormID:       form.ID,
		QuestionType: models.QuestionTypeNumber,
		Order:        1,
	}

	mockForm.EXPECT().GetBySlug("survey").Return(form, nil)
	mockQuestion.EXPECT().GetByID(q.ID).Return(q, nil)

	input := dto.UpdateQuestionInput{
		MinValue: ptrDecimal("100"),
		MaxValue: ptrDecimal("1"),
	}
	_, err := svc.Update(1, "survey", q.ID, input)

	var fieldErrs models.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "min_value cannot be greater than max_value.", fieldErrs["min_value"])
}
