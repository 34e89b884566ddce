package service

import (
	"fmt"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", model.GenerateUUID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", model.GenerateUUID()),
		Role:  role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createReadingCourse persists a course with n text reading lectures at
// dense 1-based positions and returns it with IDs populated.
func createReadingCourse(t *testing.T, db *gorm.DB, instructorID, title string, n int) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:        title,
		Description:  "fixture course",
		InstructorID: instructorID,
	}
	for i := 1; i <= n; i++ {
		course.Lectures = append(course.Lectures, model.Lecture{
			Title:    fmt.Sprintf("Lecture %d", i),
			Type:     model.Reading,
			Position: i,
			Content:  "body",
		})
	}
	require.NoError(t, repository.NewCourseRepository(db).CreateGraph(course))
	return course
}

// createQuizLecture persists a quiz lecture with the given number of
// questions. Each question has two options; the first is correct.
func createQuizLecture(t *testing.T, db *gorm.DB, courseID string, position, questions int) *model.Lecture {
	t.Helper()
	lecture := &model.Lecture{
		CourseID: courseID,
		Title:    fmt.Sprintf("Quiz %d", position),
		Type:     model.Quiz,
		Position: position,
	}
	for i := 0; i < questions; i++ {
		lecture.Questions = append(lecture.Questions, model.Question{
			Text: fmt.Sprintf("Question %d", i+1),
			Options: []model.Option{
				{Text: "right", IsCorrect: true},
				{Text: "wrong"},
			},
		})
	}
	require.NoError(t, db.Create(lecture).Error)
	return lecture
}

// correctAnswers builds an answer set choosing the correct option for the
// first n questions and the wrong option for the rest.
func correctAnswers(lecture *model.Lecture, n int) map[string]string {
	answers := make(map[string]string)
	for i, q := range lecture.Questions {
		if i < n {
			answers[q.ID] = q.Options[0].ID
		} else {
			answers[q.ID] = q.Options[1].ID
		}
	}
	return answers
}

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewLectureRepository(db),
		repository.NewProgressRepository(db),
		repository.NewScoreRepository(db),
		db,
	)
}

func newCourseService(db *gorm.DB) *CourseService {
	return NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewLectureRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewProgressRepository(db),
		nil,
	)
}

func newLectureServiceForTest(db *gorm.DB) *LectureService {
	return NewLectureService(
		repository.NewCourseRepository(db),
		repository.NewLectureRepository(db),
		repository.NewProgressRepository(db),
	)
}
