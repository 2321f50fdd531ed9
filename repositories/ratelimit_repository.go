package repositories

import (
	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/db"
	"github.com/hctseng/formcraft-go/models"
)

type RateLimitRepo interface {
	Get(formID uuid.UUID, ip string) (*models.SubmissionRateLimit, error)
	Reset(formID uuid.UUID, ip *string) (int64, error)
}

type DBRateLimitRepo struct{}

func (r *DBRateLimitRepo) Get(formID uuid.UUID, ip string) (*models.SubmissionRateLimit, error) {
	var ledger models.SubmissionRateLimit
	err := db.DB.Where("form_id = ? AND ip_address = ?", formID, ip).First(&ledger).Error
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

// Reset deletes ledger rows for a form, optionally narrowed to one address.
// Owner-only operation; the next submission recreates the row lazily.
func (r *DBRateLimitRepo) Reset(formID uuid.UUID, ip *string) (int64, error) {
	q := db.DB.Where("form_id = ?", formID)
	if ip != nil && *ip != "" {
		q = q.Where("ip_address = ?", *ip)
	}
	res := q.Delete(&models.SubmissionRateLimit{})
	return res.RowsAffected, res.Error
}
