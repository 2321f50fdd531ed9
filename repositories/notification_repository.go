package repositories

import (
	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/db"
	"github.com/hctseng/formcraft-go/models"
)

type NotificationLogRepo interface {
	Create(entry *models.FormNotificationLog) error
	ListByForm(formID uuid.UUID) ([]models.FormNotificationLog, error)
}

type DBNotificationLogRepo struct{}

func (r *DBNotificationLogRepo) Create(entry *models.FormNotificationLog) error {
	return db.DB.Create(entry).Error
}

func (r *DBNotificationLogRepo) ListByForm(formID uuid.UUID) ([]models.FormNotificationLog, error) {
	var entries []models.FormNotificationLog
	err := db.DB.Where("form_id = ?", formID).Order("sent_at desc").Find(&entries).Error
	return entries, err
}
