package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// MarkCompleted upserts the (user, lecture) progress row to completed.
// Calling it twice leaves a single completed row.
func (r *ProgressRepository) MarkCompleted(userID, lectureID string) error {
	return r.MarkCompletedTx(r.DB, userID, lectureID)
}

// MarkCompletedTx is MarkCompleted running on a caller-provided handle so it
// can join an enclosing transaction.
func (r *ProgressRepository) MarkCompletedTx(tx *gorm.DB, userID, lectureID string) error {
	var existing model.Progress
	err := tx.Where("user_id = ? AND lecture_id = ?", userID, lectureID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(&model.Progress{
			UserID:      userID,
			LectureID:   lectureID,
			IsCompleted: true,
		}).Error
	}
	if err != nil {
		return err
	}

	if existing.IsCompleted {
		return nil
	}
	existing.IsCompleted = true
	return tx.Save(&existing).Error
}

func (r *ProgressRepository) Find(userID, lectureID string) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Where("user_id = ? AND lecture_id = ?", userID, lectureID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// CompletedLectureIDs returns which of the given lectures the user has
// completed, as a set.
func (r *ProgressRepository) CompletedLectureIDs(userID string, lectureIDs []string) (map[string]bool, error) {
	completed := make(map[string]bool)
	if len(lectureIDs) == 0 {
		return completed, nil
	}

	var rows []model.Progress
	err := r.DB.
		Where("user_id = ? AND lecture_id IN ? AND is_completed = ?", userID, lectureIDs, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, p := range rows {
		completed[p.LectureID] = true
	}
	return completed, nil
}

func (r *ProgressRepository) CountCompleted(userID string, lectureIDs []string) (int, error) {
	if len(lectureIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.Progress{}).
		Where("user_id = ? AND lecture_id IN ? AND is_completed = ?", userID, lectureIDs, true).
		Count(&count).Error
	return int(count), err
}
