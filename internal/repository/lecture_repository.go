package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type LectureRepository struct {
	DB *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{DB: db}
}

// FindDetail loads a lecture with its attachments and questions including
// options. Option correctness is stripped at the view layer.
func (r *LectureRepository) FindDetail(id string) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.DB.
		Preload("Attachments").
		Preload("Questions.Options").
		First(&lecture, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lecture, nil
}

func (r *LectureRepository) FindByID(id string) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.DB.First(&lecture, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lecture, nil
}

// FindQuestions returns a quiz lecture's questions with their options.
func (r *LectureRepository) FindQuestions(lectureID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Preload("Options").
		Where("lecture_id = ?", lectureID).
		Find(&questions).Error
	return questions, err
}

func (r *LectureRepository) FindIDsByCourse(courseID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Lecture{}).
		Where("course_id = ?", courseID).
		Order("position ASC").
		Pluck("id", &ids).Error
	return ids, err
}
