package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// CreateGraph persists a course together with its nested lectures,
// attachments, questions and options in one transaction.
func (r *CourseRepository) CreateGraph(course *model.Course) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(course).Error
	})
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindDetail loads a course with its instructor and lectures ordered by
// position. Lecture bodies are not selected; the catalog view only needs
// id, title, type and position.
func (r *CourseRepository) FindDetail(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Lectures", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "course_id", "title", "type", "position").Order("position ASC")
		}).
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindWithLectures loads a course and its full lectures ordered by position.
func (r *CourseRepository) FindWithLectures(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Lectures", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) ListAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Preload("Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListByInstructor(instructorID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

// CountLectures returns lecture counts keyed by course id.
func (r *CourseRepository) CountLectures(courseIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(courseIDs))
	if len(courseIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CourseID string
		Total    int
	}
	var rows []row
	err := r.DB.Model(&model.Lecture{}).
		Select("course_id, COUNT(*) AS total").
		Where("course_id IN ?", courseIDs).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.CourseID] = rw.Total
	}
	return counts, nil
}
