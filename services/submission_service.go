package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/models"
	"github.com/hctseng/formcraft-go/repositories"
	"gorm.io/gorm"
)

type SubmissionService struct {
	Repos        *repositories.Repos
	Notification *NotificationService
}

func NewSubmissionService(repos *repositories.Repos, notification *NotificationService) *SubmissionService {
	return &SubmissionService{Repos: repos, Notification: notification}
}

// Create validates the whole payload, then hands the admission decision to
// the repository's locked transaction. The pre-checks here only exist to
// answer obvious rejections without opening a transaction; the locked
// re-checks inside CreateAdmitted are the ones that count.
func (s *SubmissionService) Create(slug, ip string, submittedBy *uint, input dto.SubmissionInput) (*models.FormSubmission, error) {
	form, err := s.Repos.Form.GetBySlugWithQuestions(slug)
	if err != nil {
		return nil, err
	}
	if !form.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}
	if !form.AcceptsSubmissions() {
		return nil, ErrFormUnavailable
	}
	if input.IsDraft && !form.AllowPartialSaves {
		return nil, ErrDraftsDisabled
	}

	if !input.IsDraft {
		if err := s.precheck(form, ip); err != nil {
			return nil, err
		}
	}

	answers, err := s.validateAnswers(form, input.Answers, input.IsDraft)
	if err != nil {
		return nil, err
	}

	sub := models.FormSubmission{
		FormID:      form.ID,
		SubmittedBy: submittedBy,
		IPAddress:   ip,
		IsDraft:     input.IsDraft,
		Answers:     answers,
	}
	if !input.IsDraft {
		now := time.Now()
		sub.CompletedAt = &now
	}
	if err := s.Repos.Submission.CreateAdmitted(&sub); err != nil {
		return nil, err
	}
	if !sub.IsDraft {
		s.Notification.NotifySubmission(form, &sub)
	}
	return &sub, nil
}

// precheck answers the cheap rejections before the admission transaction.
func (s *SubmissionService) precheck(form *models.Form, ip string) error {
	if form.SubmissionLimit != nil {
		count, err := s.Repos.Submission.CountFinal(form.ID)
		if err != nil {
			return err
		}
		if count >= int64(*form.SubmissionLimit) {
			return repositories.ErrSubmissionLimitReached
		}
	}
	if form.RateLimitEnabled {
		ledger, err := s.Repos.RateLimit.Get(form.ID, ip)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		now := time.Now()
		if ledger.Blocked(now) {
			return repositories.ErrRateLimited
		}
		if !ledger.WindowExpired(form.RateLimitPeriod, now) && !ledger.WithinLimit(form.RateLimitCount) {
			return repositories.ErrRateLimited
		}
	}
	return nil
}

// validateAnswers checks every answer against its question and collects all
// failures instead of stopping at the first. Required questions are enforced
// only on final submissions; drafts may leave anything blank.
func (s *SubmissionService) validateAnswers(form *models.Form, inputs []dto.AnswerInput, isDraft bool) ([]models.Answer, error) {
	byID := make(map[uuid.UUID]*models.Question, len(form.Questions))
	for i := range form.Questions {
		byID[form.Questions[i].ID] = &form.Questions[i]
	}

	allErrs := models.AnswerErrors{}
	answered := make(map[uuid.UUID]bool, len(inputs))
	answers := make([]models.Answer, 0, len(inputs))

	for _, in := range inputs {
		key := in.Question.String()
		q, ok := byID[in.Question]
		if !ok {
			allErrs[key] = models.FieldErrors{"question": "Invalid question id"}
			continue
		}
		if answered[q.ID] {
			allErrs[key] = models.FieldErrors{"question": "Duplicate answer for question"}
			continue
		}
		answered[q.ID] = true

		value := in.Value()
		if isDraft && value.Empty(q.QuestionType) {
			continue
		}
		if errs := q.ValidateAnswer(value); errs != nil {
			allErrs[key] = errs
			continue
		}
		answer, err := q.BuildAnswer(value)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}

	if !isDraft {
		for i := range form.Questions {
			q := &form.Questions[i]
			if q.IsRequired && !answered[q.ID] {
				allErrs[q.ID.String()] = models.FieldErrors{q.QuestionType.SlotName(): "This field is required."}
			}
		}
	}

	if len(allErrs) > 0 {
		return nil, allErrs
	}
	return answers, nil
}

// SaveDraft replaces a draft's answers wholesale with the new payload.
func (s *SubmissionService) SaveDraft(slug string, id uuid.UUID, input dto.SubmissionInput) (*models.FormSubmission, error) {
	form, sub, err := s.submissionOfForm(slug, id)
	if err != nil {
		return nil, err
	}
	if !form.AllowPartialSaves {
		return nil, ErrDraftsDisabled
	}
	if !sub.IsDraft {
		return nil, repositories.ErrAlreadyFinalized
	}
	answers, err := s.validateAnswers(form, input.Answers, true)
	if err != nil {
		return nil, err
	}
	return s.Repos.Submission.ReplaceDraftAnswers(sub.ID, answers)
}

// Finalize promotes a draft to a final submission. Required questions are
// enforced against the answers already saved on the draft.
func (s *SubmissionService) Finalize(slug string, id uuid.UUID) (*models.FormSubmission, error) {
	form, sub, err := s.submissionOfForm(slug, id)
	if err != nil {
		return nil, err
	}
	if !sub.IsDraft {
		return nil, repositories.ErrAlreadyFinalized
	}

	answered := make(map[uuid.UUID]bool, len(sub.Answers))
	for _, a := range sub.Answers {
		answered[a.QuestionID] = true
	}
	missing := models.AnswerErrors{}
	for i := range form.Questions {
		q := &form.Questions[i]
		if q.IsRequired && !answered[q.ID] {
			missing[q.ID.String()] = models.FieldErrors{q.QuestionType.SlotName(): "This field is required."}
		}
	}
	if len(missing) > 0 {
		return nil, missing
	}

	final, err := s.Repos.Submission.Finalize(sub.ID)
	if err != nil {
		return nil, err
	}
	s.Notification.NotifySubmission(form, final)
	return final, nil
}

func (s *SubmissionService) ListByForm(uid uint, slug string) ([]models.FormSubmission, error) {
	form, err := s.Repos.Form.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if form.CreatedBy != uid {
		return nil, ErrForbidden
	}
	return s.Repos.Submission.ListByForm(form.ID)
}

func (s *SubmissionService) Get(uid uint, slug string, id uuid.UUID) (*models.FormSubmission, error) {
	form, err := s.Repos.Form.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if form.CreatedBy != uid {
		return nil, ErrForbidden
	}
	sub, err := s.Repos.Submission.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub.FormID != form.ID {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

func (s *SubmissionService) submissionOfForm(slug string, id uuid.UUID) (*models.Form, *models.FormSubmission, error) {
	form, err := s.Repos.Form.GetBySlugWithQuestions(slug)
	if err != nil {
		return nil, nil, err
	}
	sub, err := s.Repos.Submission.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if sub.FormID != form.ID {
		return nil, nil, gorm.ErrRecordNotFound
	}
	return form, sub, nil
}
