package services

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/models"
	"github.com/hctseng/formcraft-go/repositories"
	"gorm.io/gorm"
)

type QuestionService struct {
	Repos *repositories.Repos
	Forms *FormService
}

func NewQuestionService(repos *repositories.Repos, forms *FormService) *QuestionService {
	return &QuestionService{Repos: repos, Forms: forms}
}

func questionFromInput(input dto.QuestionInput) models.Question {
	return models.Question{
		QuestionText: input.QuestionText,
		QuestionType: models.QuestionType(input.QuestionType),
		IsRequired:   input.IsRequired,
		Order:        input.Order,
		Placeholder:  input.Placeholder,
		MinLength:    input.MinLength,
		MaxLength:    input.MaxLength,
		MinValue:     input.MinValue,
		MaxValue:     input.MaxValue,
		Options:      input.Options,
	}
}

func indexKey(i int) string {
	return strconv.Itoa(i)
}

func (s *QuestionService) List(uid uint, slug string) ([]models.Question, error) {
	form, err := s.Forms.ownedForm(uid, slug)
	if err != nil {
		return nil, err
	}
	return s.Repos.Question.ListByForm(form.ID)
}

func (s *QuestionService) Create(uid uint, slug string, input dto.QuestionInput) (*models.Question, error) {
	form, err := s.Forms.ownedForm(uid, slug)
	if err != nil {
		return nil, err
	}
	q := questionFromInput(input)
	q.FormID = form.ID
	if errs := q.ValidateDefinition(); errs != nil {
		return nil, errs
	}
	existing, err := s.Repos.Question.ListByForm(form.ID)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.Order == q.Order {
			return nil, models.FieldErrors{"order": "A question with this order already exists."}
		}
	}
	if err := s.Repos.Question.Create(&q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) Update(uid uint, slug string, questionID uuid.UUID, input dto.UpdateQuestionInput) (*models.Question, error) {
	form, err := s.Forms.ownedForm(uid, slug)
	if err != nil {
		return nil, err
	}
	q, err := s.questionOfForm(form.ID, questionID)
	if err != nil {
		return nil, err
	}
	if input.QuestionText != nil {
		q.QuestionText = *input.QuestionText
	}
	if input.IsRequired != nil {
		q.IsRequired = *input.IsRequired
	}
	if input.Placeholder != nil {
		q.Placeholder = input.Placeholder
	}
	if input.MinLength != nil {
		q.MinLength = input.MinLength
	}
	if input.MaxLength != nil {
		q.MaxLength = input.MaxLength
	}
	if input.MinValue != nil {
		q.MinValue = input.MinValue
	}
	if input.MaxValue != nil {
		q.MaxValue = input.MaxValue
	}
	if input.Options != nil {
		q.Options = input.Options
	}
	if errs := q.ValidateDefinition(); errs != nil {
		return nil, errs
	}
	if err := s.Repos.Question.Save(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(uid uint, slug string, questionID uuid.UUID) error {
	form, err := s.Forms.ownedForm(uid, slug)
	if err != nil {
		return err
	}
	q, err := s.questionOfForm(form.ID, questionID)
	if err != nil {
		return err
	}
	return s.Repos.Question.Delete(q.ID)
}

// Reorder accepts only a permutation of the form's full question id set.
func (s *QuestionService) Reorder(uid uint, slug string, ordered []uuid.UUID) ([]models.Question, error) {
	form, err := s.Forms.ownedForm(uid, slug)
	if err != nil {
		return nil, err
	}
	existing, err := s.Repos.Question.ListByForm(form.ID)
	if err != nil {
		return nil, err
	}
	if len(ordered) != len(existing) {
		return nil, ErrOrderMismatch
	}
	known := make(map[uuid.UUID]bool, len(existing))
	for _, q := range existing {
		known[q.ID] = true
	}
	seen := make(map[uuid.UUID]bool, len(ordered))
	for _, id := range ordered {
		if !known[id] || seen[id] {
			return nil, ErrOrderMismatch
		}
		seen[id] = true
	}
	if err := s.Repos.Question.Reorder(form.ID, ordered); err != nil {
		return nil, err
	}
	return s.Repos.Question.ListByForm(form.ID)
}

// ValidateAnswer runs a single answer through the question's rules without
// persisting anything. Backs the live per-field feedback endpoint.
func (s *QuestionService) ValidateAnswer(slug string, questionID uuid.UUID, value models.AnswerValue) (models.FieldErrors, error) {
	form, err := s.Repos.Form.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	q, err := s.Repos.Question.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if q.FormID != form.ID {
		return nil, gorm.ErrRecordNotFound
	}
	return q.ValidateAnswer(value), nil
}

func (s *QuestionService) questionOfForm(formID, questionID uuid.UUID) (*models.Question, error) {
	q, err := s.Repos.Question.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if q.FormID != formID {
		return nil, ErrForbidden
	}
	return q, nil
}
