package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/config"
	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/models"
	"github.com/hctseng/formcraft-go/repositories"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type FormService struct {
	Repos *repositories.Repos
}

func NewFormService(repos *repositories.Repos) *FormService {
	return &FormService{Repos: repos}
}

// ownedForm loads a form and enforces that uid is its owner.
func (s *FormService) ownedForm(uid uint, slug string) (*models.Form, error) {
	form, err := s.Repos.Form.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if form.CreatedBy != uid {
		return nil, ErrForbidden
	}
	return form, nil
}

func (s *FormService) Create(uid uint, input dto.CreateFormDTO) (*models.Form, error) {
	if !slugPattern.MatchString(input.Slug) {
		return nil, models.FieldErrors{"slug": "Slug must be lowercase letters, digits and hyphens."}
	}
	if _, err := s.Repos.Form.GetBySlug(input.Slug); err == nil {
		return nil, models.FieldErrors{"slug": "A form with this slug already exists."}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	form := models.Form{
		Title:                    input.Title,
		Description:              input.Description,
		CreatedBy:                uid,
		Slug:                     input.Slug,
		IsActive:                 true,
		IsPublished:              true,
		AllowMultipleSubmissions: true,
		AllowPartialSaves:        true,
		ExpiresAt:                input.ExpiresAt,
		NotificationEmails:       input.NotificationEmails,
		RateLimitEnabled:         true,
		RateLimitCount:           config.DefaultRateLimitCount,
		RateLimitPeriod:          config.DefaultRateLimitPeriod,
		SubmissionLimit:          input.SubmissionLimit,
	}
	applyOptionalBool(&form.IsTemplate, input.IsTemplate)
	applyOptionalBool(&form.IsActive, input.IsActive)
	applyOptionalBool(&form.IsPublished, input.IsPublished)
	applyOptionalBool(&form.AllowMultipleSubmissions, input.AllowMultipleSubmissions)
	applyOptionalBool(&form.EnableEmailNotifications, input.EnableEmailNotifications)
	applyOptionalBool(&form.RateLimitEnabled, input.RateLimitEnabled)
	applyOptionalBool(&form.AllowPartialSaves, input.AllowPartialSaves)
	if input.RateLimitCount != nil {
		form.RateLimitCount = *input.RateLimitCount
	}
	if input.RateLimitPeriod != nil {
		form.RateLimitPeriod = *input.RateLimitPeriod
	}
	if input.AccessCode != nil && *input.AccessCode != "" {
		if err := form.SetAccessCode(*input.AccessCode); err != nil {
			return nil, err
		}
		form.IsPasswordProtected = true
	}

	for i, qi := range input.Questions {
		q := questionFromInput(qi)
		if errs := q.ValidateDefinition(); errs != nil {
			return nil, models.AnswerErrors{indexKey(i): errs}
		}
		form.Questions = append(form.Questions, q)
	}

	if err := s.Repos.Form.Create(&form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *FormService) ListByOwner(uid uint) ([]models.Form, error) {
	return s.Repos.Form.ListByOwner(uid)
}

// GetPublic serves the respondent-facing view: unpublished forms stay
// invisible, expired forms answer 410.
func (s *FormService) GetPublic(slug string) (*models.Form, error) {
	form, err := s.Repos.Form.GetBySlugWithQuestions(slug)
	if err != nil {
		return nil, err
	}
	if !form.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}
	if form.IsExpired() {
		return nil, ErrFormUnavailable
	}
	return form, nil
}

func (s *FormService) GetOwned(uid uint, slug string) (*models.Form, error) {
	form, err := s.Repos.Form.GetBySlugWithQuestions(slug)
	if err != nil {
		return nil, err
	}
	if form.CreatedBy != uid {
		return nil, ErrForbidden
	}
	return form, nil
}

func (s *FormService) Update(uid uint, slug string, input dto.UpdateFormDTO) (*models.Form, error) {
	form, err := s.ownedForm(uid, slug)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		form.Title = *input.Title
	}
	if input.Description != nil {
		form.Description = *input.Description
	}
	applyOptionalBool(&form.IsTemplate, input.IsTemplate)
	applyOptionalBool(&form.IsPublished, input.IsPublished)
	if input.NotificationEmails != nil {
		form.NotificationEmails = input.NotificationEmails
	}
	if err := s.Repos.Form.Save(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) UpdateSettings(uid uint, slug string, input dto.FormSettingsDTO) (*models.Form, error) {
	form, err := s.ownedForm(uid, slug)
	if err != nil {
		return nil, err
	}
	applyOptionalBool(&form.IsActive, input.IsActive)
	applyOptionalBool(&form.AllowMultipleSubmissions, input.AllowMultipleSubmissions)
	applyOptionalBool(&form.RateLimitEnabled, input.RateLimitEnabled)
	applyOptionalBool(&form.IsPasswordProtected, input.IsPasswordProtected)
	applyOptionalBool(&form.EnableEmailNotifications, input.EnableEmailNotifications)
	if input.ExpiresAt != nil {
		form.ExpiresAt = input.ExpiresAt
	}
	if input.ClearExpiresAt != nil && *input.ClearExpiresAt {
		form.ExpiresAt = nil
	}
	if input.RateLimitCount != nil {
		form.RateLimitCount = *input.RateLimitCount
	}
	if input.RateLimitPeriod != nil {
		form.RateLimitPeriod = *input.RateLimitPeriod
	}
	if input.SubmissionLimit != nil {
		form.SubmissionLimit = input.SubmissionLimit
	}
	if input.ClearSubmissionLimit != nil && *input.ClearSubmissionLimit {
		form.SubmissionLimit = nil
	}
	if input.AccessCode != nil && *input.AccessCode != "" {
		if err := form.SetAccessCode(*input.AccessCode); err != nil {
			return nil, err
		}
		form.IsPasswordProtected = true
	}
	if err := s.Repos.Form.Save(form); err != nil {
		return nil, err
	}
	return form, nil
}

// Duplicate copies a form and its questions under a derived slug.
func (s *FormService) Duplicate(uid uint, slug string) (*models.Form, error) {
	form, err := s.GetOwned(uid, slug)
	if err != nil {
		return nil, err
	}

	copySlug := form.Slug + "-copy"
	if _, err := s.Repos.Form.GetBySlug(copySlug); err == nil {
		return nil, models.FieldErrors{"slug": "A form with this slug already exists."}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dup := *form
	dup.ID = uuid.Nil
	dup.Title = form.Title + " (copy)"
	dup.Slug = copySlug
	dup.CreatedAt = time.Time{}
	dup.UpdatedAt = time.Time{}
	dup.Questions = make([]models.Question, 0, len(form.Questions))
	for _, q := range form.Questions {
		qc := q
		qc.ID = uuid.Nil
		qc.FormID = uuid.Nil
		qc.CreatedAt = time.Time{}
		qc.UpdatedAt = time.Time{}
		dup.Questions = append(dup.Questions, qc)
	}

	if err := s.Repos.Form.Create(&dup); err != nil {
		return nil, err
	}
	return &dup, nil
}

func (s *FormService) Delete(uid uint, slug string) error {
	form, err := s.ownedForm(uid, slug)
	if err != nil {
		return err
	}
	return s.Repos.Form.Delete(form.ID)
}

func (s *FormService) VerifyAccess(slug, code string) error {
	form, err := s.Repos.Form.GetBySlug(slug)
	if err != nil {
		return err
	}
	if !form.IsPasswordProtected {
		return ErrNotProtected
	}
	if !form.CheckAccessCode(code) {
		return ErrAccessDenied
	}
	return nil
}

// CheckAccess is the cheap pre-flight probe a client runs before rendering.
func (s *FormService) CheckAccess(slug, ip string) (dto.AccessStatus, error) {
	form, err := s.Repos.Form.GetBySlug(slug)
	if err != nil {
		return dto.AccessStatus{}, err
	}
	status := dto.AccessStatus{IsExpired: form.IsExpired()}
	if form.RateLimitEnabled {
		ledger, err := s.Repos.RateLimit.Get(form.ID, ip)
		if err == nil {
			now := time.Now()
			expired := ledger.WindowExpired(form.RateLimitPeriod, now)
			if ledger.Blocked(now) || (!expired && !ledger.WithinLimit(form.RateLimitCount)) {
				status.RateLimited = true
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AccessStatus{}, err
		}
	}
	return status, nil
}

func (s *FormService) ClientSchema(slug string) (*dto.ClientSchema, error) {
	form, err := s.GetPublic(slug)
	if err != nil {
		return nil, err
	}
	schema := dto.ClientSchema{
		FormID:    form.ID,
		Title:     form.Title,
		Slug:      form.Slug,
		Questions: make([]dto.ClientQuestion, 0, len(form.Questions)),
	}
	for _, q := range form.Questions {
		schema.Questions = append(schema.Questions, dto.ClientQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: string(q.QuestionType),
			IsRequired:   q.IsRequired,
			Order:        q.Order,
			Placeholder:  q.Placeholder,
			MinLength:    q.MinLength,
			MaxLength:    q.MaxLength,
			MinValue:     q.MinValue,
			MaxValue:     q.MaxValue,
			Options:      q.Options,
		})
	}
	return &schema, nil
}

func (s *FormService) RateLimitStatus(uid uint, slug, ip string) (dto.RateLimitStatus, error) {
	form, err := s.ownedForm(uid, slug)
	if err != nil {
		return dto.RateLimitStatus{}, err
	}
	ledger, err := s.Repos.RateLimit.Get(form.ID, ip)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.RateLimitStatus{IP: ip}, nil
	}
	if err != nil {
		return dto.RateLimitStatus{}, err
	}
	return dto.RateLimitStatus{
		IP:                ip,
		SubmissionCount:   ledger.SubmissionCount,
		FirstSubmissionAt: &ledger.FirstSubmissionAt,
		LastSubmissionAt:  &ledger.LastSubmissionAt,
		IsBlocked:         ledger.IsBlocked,
		BlockedUntil:      ledger.BlockedUntil,
	}, nil
}

func (s *FormService) RateLimitReset(uid uint, slug string, ip *string) (int64, error) {
	form, err := s.ownedForm(uid, slug)
	if err != nil {
		return 0, err
	}
	return s.Repos.RateLimit.Reset(form.ID, ip)
}

func applyOptionalBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
