package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/db"
	"github.com/hctseng/formcraft-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepo interface {
	CreateAdmitted(sub *models.FormSubmission) error
	ReplaceDraftAnswers(id uuid.UUID, answers []models.Answer) (*models.FormSubmission, error)
	Finalize(id uuid.UUID) (*models.FormSubmission, error)
	GetByID(id uuid.UUID) (*models.FormSubmission, error)
	ListByForm(formID uuid.UUID) ([]models.FormSubmission, error)
	CountFinal(formID uuid.UUID) (int64, error)
}

type DBSubmissionRepo struct{}

// CreateAdmitted runs the atomic admission unit: it takes an exclusive lock
// on the form row, re-checks the submission cap under that lock, inserts the
// submission with its answers, and advances the rate-limit ledger. All writes
// commit together or not at all; concurrent admissions for the same form
// serialize on the row lock, admissions for different forms do not contend.
func (r *DBSubmissionRepo) CreateAdmitted(sub *models.FormSubmission) error {
	now := time.Now()
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var form models.Form
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&form, "id = ?", sub.FormID).Error
		if err != nil {
			return err
		}

		if !sub.IsDraft && form.SubmissionLimit != nil {
			var count int64
			err := tx.Model(&models.FormSubmission{}).
				Where("form_id = ? AND is_draft = ?", form.ID, false).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count >= int64(*form.SubmissionLimit) {
				return ErrSubmissionLimitReached
			}
		}

		if form.RateLimitEnabled {
			var ledger models.SubmissionRateLimit
			err := tx.Where("form_id = ? AND ip_address = ?", form.ID, sub.IPAddress).
				First(&ledger).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				ledger = models.SubmissionRateLimit{
					FormID:            form.ID,
					IPAddress:         sub.IPAddress,
					FirstSubmissionAt: now,
				}
			case err != nil:
				return err
			}
			if ledger.Blocked(now) {
				return ErrRateLimited
			}
			if ledger.WindowExpired(form.RateLimitPeriod, now) {
				ledger.SubmissionCount = 0
				ledger.FirstSubmissionAt = now
			}
			if !ledger.WithinLimit(form.RateLimitCount) {
				return ErrRateLimited
			}
			ledger.SubmissionCount++
			ledger.LastSubmissionAt = now
			if err := tx.Save(&ledger).Error; err != nil {
				return err
			}
		}

		return tx.Create(sub).Error
	})
}

// ReplaceDraftAnswers swaps out a draft's answers wholesale. Finalized
// submissions are immutable.
func (r *DBSubmissionRepo) ReplaceDraftAnswers(id uuid.UUID, answers []models.Answer) (*models.FormSubmission, error) {
	var sub models.FormSubmission
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sub, "id = ?", id).Error
		if err != nil {
			return err
		}
		if !sub.IsDraft {
			return ErrAlreadyFinalized
		}
		if err := tx.Where("submission_id = ?", sub.ID).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].SubmissionID = sub.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return tx.Model(&sub).UpdateColumn("last_saved_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(sub.ID)
}

// Finalize flips draft to final exactly once; the transition never reverses.
func (r *DBSubmissionRepo) Finalize(id uuid.UUID) (*models.FormSubmission, error) {
	var sub models.FormSubmission
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sub, "id = ?", id).Error
		if err != nil {
			return err
		}
		if !sub.IsDraft {
			return ErrAlreadyFinalized
		}
		now := time.Now()
		sub.IsDraft = false
		sub.CompletedAt = &now
		return tx.Model(&sub).Updates(map[string]any{
			"is_draft":     false,
			"completed_at": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(sub.ID)
}

func (r *DBSubmissionRepo) GetByID(id uuid.UUID) (*models.FormSubmission, error) {
	var sub models.FormSubmission
	if err := db.DB.Preload("Answers").First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *DBSubmissionRepo) ListByForm(formID uuid.UUID) ([]models.FormSubmission, error) {
	var subs []models.FormSubmission
	err := db.DB.Preload("Answers").
		Where("form_id = ?", formID).
		Order("submitted_at desc").
		Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) CountFinal(formID uuid.UUID) (int64, error) {
	var count int64
	err := db.DB.Model(&models.FormSubmission{}).
		Where("form_id = ? AND is_draft = ?", formID, false).
		Count(&count).Error
	return count, err
}
