package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// Upsert writes the latest submission score. The first submission creates
// the row with attempts=1, later ones overwrite the score and increment
// attempts. Attempts counts every submission, passing or not.
func (r *ScoreRepository) Upsert(userID, lectureID string, score int) error {
	return r.UpsertTx(r.DB, userID, lectureID, score)
}

func (r *ScoreRepository) UpsertTx(tx *gorm.DB, userID, lectureID string, score int) error {
	var existing model.Score
	err := tx.Where("user_id = ? AND lecture_id = ?", userID, lectureID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(&model.Score{
			UserID:    userID,
			LectureID: lectureID,
			Score:     score,
			MaxScore:  100,
			Attempts:  1,
		}).Error
	}
	if err != nil {
		return err
	}

	existing.Score = score
	existing.MaxScore = 100
	existing.Attempts++
	return tx.Save(&existing).Error
}

func (r *ScoreRepository) Find(userID, lectureID string) (*model.Score, error) {
	var score model.Score
	err := r.DB.Where("user_id = ? AND lecture_id = ?", userID, lectureID).First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}
