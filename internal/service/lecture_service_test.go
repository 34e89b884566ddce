package service

import (
	"encoding/json"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLectureDetailNavigation(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 5)
	current := course.Lectures[2]

	require.NoError(t, repository.NewProgressRepository(db).MarkCompleted(student.ID, course.Lectures[0].ID))

	view, err := newLectureServiceForTest(db).LectureDetail(student.ID, course.ID, current.ID)
	require.NoError(t, err)

	assert.Equal(t, "Go Basics", view.CourseTitle)
	assert.Equal(t, current.ID, view.Lecture.ID)
	assert.Equal(t, 2, view.CurrentLectureIndex)
	assert.False(t, view.IsCompleted)

	require.Len(t, view.AllLectures, 5)
	for i, l := range view.AllLectures {
		assert.Equal(t, i+1, l.Position, "siblings come back ordered by position")
	}
	assert.True(t, view.AllLectures[0].IsCompleted)
	assert.False(t, view.AllLectures[2].IsCompleted)
}

func TestLectureDetailWithholdsAnswers(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	quiz := createQuizLecture(t, db, course.ID, 2, 2)

	view, err := newLectureServiceForTest(db).LectureDetail(student.ID, course.ID, quiz.ID)
	require.NoError(t, err)

	require.Len(t, view.Lecture.Questions, 2)
	require.Len(t, view.Lecture.Questions[0].Options, 2)

	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "isCorrect")
}

func TestLectureDetailRejectsForeignLecture(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	other := createReadingCourse(t, db, instructor.ID, "Advanced Go", 1)

	svc := newLectureServiceForTest(db)

	_, err := svc.LectureDetail(student.ID, course.ID, other.Lectures[0].ID)
	assert.ErrorIs(t, err, util.ErrLectureNotFound)

	_, err = svc.LectureDetail(student.ID, "missing", course.Lectures[0].ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, err = svc.LectureDetail(student.ID, course.ID, "missing")
	assert.ErrorIs(t, err, util.ErrLectureNotFound)
}

func TestLectureDetailCompletionFlag(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	lectureID := course.Lectures[0].ID

	require.NoError(t, repository.NewProgressRepository(db).MarkCompleted(student.ID, lectureID))

	view, err := newLectureServiceForTest(db).LectureDetail(student.ID, course.ID, lectureID)
	require.NoError(t, err)
	assert.True(t, view.IsCompleted)

	// Another user's completion does not leak.
	stranger := createUser(t, db, "Val", model.Student)
	view, err = newLectureServiceForTest(db).LectureDetail(stranger.ID, course.ID, lectureID)
	require.NoError(t, err)
	assert.False(t, view.IsCompleted)
}
