package repositories

import (
	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/db"
	"github.com/hctseng/formcraft-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FormRepo interface {
	Create(form *models.Form) error
	GetBySlug(slug string) (*models.Form, error)
	GetBySlugWithQuestions(slug string) (*models.Form, error)
	ListByOwner(uid uint) ([]models.Form, error)
	Save(form *models.Form) error
	Delete(id uuid.UUID) error
}

type DBFormRepo struct{}

func (r *DBFormRepo) Create(form *models.Form) error {
	return db.DB.Create(form).Error
}

func (r *DBFormRepo) GetBySlug(slug string) (*models.Form, error) {
	var form models.Form
	if err := db.DB.Where("slug = ?", slug).First(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *DBFormRepo) GetBySlugWithQuestions(slug string) (*models.Form, error) {
	var form models.Form
	err := db.DB.Preload("Questions", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("\"order\" asc")
	}).Where("slug = ?", slug).First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *DBFormRepo) ListByOwner(uid uint) ([]models.Form, error) {
	var forms []models.Form
	err := db.DB.Where("created_by = ?", uid).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) Save(form *models.Form) error {
	return db.DB.Save(form).Error
}

func (r *DBFormRepo) Delete(id uuid.UUID) error {
	return db.DB.Select(clause.Associations).Delete(&models.Form{ID: id}).Error
}
