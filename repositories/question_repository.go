package repositories

import (
	"github.com/google/uuid"
	"github.com/hctseng/formcraft-go/db"
	"github.com/hctseng/formcraft-go/models"
	"gorm.io/gorm"
)

type QuestionRepo interface {
	Create(q *models.Question) error
	GetByID(id uuid.UUID) (*models.Question, error)
	ListByForm(formID uuid.UUID) ([]models.Question, error)
	Save(q *models.Question) error
	Delete(id uuid.UUID) error
	Reorder(formID uuid.UUID, ordered []uuid.UUID) error
}

type DBQuestionRepo struct{}

func (r *DBQuestionRepo) Create(q *models.Question) error {
	return db.DB.Create(q).Error
}

func (r *DBQuestionRepo) GetByID(id uuid.UUID) (*models.Question, error) {
	var q models.Question
	if err := db.DB.First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *DBQuestionRepo) ListByForm(formID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := db.DB.Where("form_id = ?", formID).Order("\"order\" asc").Find(&questions).Error
	return questions, err
}

func (r *DBQuestionRepo) Save(q *models.Question) error {
	return db.DB.Save(q).Error
}

func (r *DBQuestionRepo) Delete(id uuid.UUID) error {
	return db.DB.Delete(&models.Question{}, "id = ?", id).Error
}

// Reorder rewrites every question's order to its 1-based position in the
// supplied id list. The (form, order) unique index forces a two-phase update:
// shift every row clear of the target range first, then assign positions.
func (r *DBQuestionRepo) Reorder(formID uuid.UUID, ordered []uuid.UUID) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		// shifting past the current maximum keeps every intermediate row
		// clear of both the old and the new positions
		var maxOrder int64
		err := tx.Model(&models.Question{}).
			Where("form_id = ?", formID).
			Select("COALESCE(MAX(\"order\"), 0)").
			Scan(&maxOrder).Error
		if err != nil {
			return err
		}
		err = tx.Model(&models.Question{}).
			Where("form_id = ?", formID).
			UpdateColumn("order", gorm.Expr("\"order\" + ?", maxOrder)).Error
		if err != nil {
			return err
		}
		for idx, id := range ordered {
			err := tx.Model(&models.Question{}).
				Where("form_id = ? AND id = ?", formID, id).
				UpdateColumn("order", idx+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
