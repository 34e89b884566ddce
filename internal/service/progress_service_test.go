package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRoundPercent(t *testing.T) {
	cases := []struct {
		part, total, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 4, 25},
		{7, 10, 70},
		{9, 13, 69},
		{1, 2, 50},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, roundPercent(c.part, c.total), "%d/%d", c.part, c.total)
	}
}

func TestCompleteLectureIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	lectureID := course.Lectures[0].ID

	svc := newProgressService(db)

	require.NoError(t, svc.CompleteLecture(student.ID, lectureID))
	require.NoError(t, svc.CompleteLecture(student.ID, lectureID))

	var count int64
	require.NoError(t, db.Model(&model.Progress{}).
		Where("user_id = ? AND lecture_id = ?", student.ID, lectureID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	progress, err := repository.NewProgressRepository(db).Find(student.ID, lectureID)
	require.NoError(t, err)
	assert.True(t, progress.IsCompleted)
}

func TestCompleteLectureUnknownLecture(t *testing.T) {
	db := newTestDB(t)
	student := createUser(t, db, "Sam", model.Student)

	err := newProgressService(db).CompleteLecture(student.ID, "missing")
	assert.ErrorIs(t, err, util.ErrLectureNotFound)
}

func TestSubmitQuizRoundsScore(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	quiz := createQuizLecture(t, db, course.ID, 2, 3)

	result, err := newProgressService(db).SubmitQuiz(student.ID, quiz.ID, correctAnswers(quiz, 2))
	require.NoError(t, err)

	assert.Equal(t, 67, result.Score)
	assert.False(t, result.Passed)
}

func TestSubmitQuizPassThreshold(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	svc := newProgressService(db)

	// 7/10 rounds to exactly 70 and passes.
	quiz := createQuizLecture(t, db, course.ID, 2, 10)
	result, err := svc.SubmitQuiz(student.ID, quiz.ID, correctAnswers(quiz, 7))
	require.NoError(t, err)
	assert.Equal(t, 70, result.Score)
	assert.True(t, result.Passed)

	progress, err := repository.NewProgressRepository(db).Find(student.ID, quiz.ID)
	require.NoError(t, err)
	assert.True(t, progress.IsCompleted)

	// 9/13 rounds to 69 and fails; no completion is written.
	other := createQuizLecture(t, db, course.ID, 3, 13)
	result, err = svc.SubmitQuiz(student.ID, other.ID, correctAnswers(other, 9))
	require.NoError(t, err)
	assert.Equal(t, 69, result.Score)
	assert.False(t, result.Passed)

	_, err = repository.NewProgressRepository(db).Find(student.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubmitQuizAccumulatesAttempts(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	quiz := createQuizLecture(t, db, course.ID, 2, 4)
	svc := newProgressService(db)

	for _, n := range []int{1, 4, 2} {
		_, err := svc.SubmitQuiz(student.ID, quiz.ID, correctAnswers(quiz, n))
		require.NoError(t, err)
	}

	score, err := repository.NewScoreRepository(db).Find(student.ID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, score.Attempts)
	assert.Equal(t, 50, score.Score)
	assert.Equal(t, 100, score.MaxScore)
}

func TestSubmitQuizFailedRetakeKeepsCompletion(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	quiz := createQuizLecture(t, db, course.ID, 2, 4)
	svc := newProgressService(db)

	result, err := svc.SubmitQuiz(student.ID, quiz.ID, correctAnswers(quiz, 4))
	require.NoError(t, err)
	require.True(t, result.Passed)

	result, err = svc.SubmitQuiz(student.ID, quiz.ID, correctAnswers(quiz, 0))
	require.NoError(t, err)
	require.False(t, result.Passed)

	progress, err := repository.NewProgressRepository(db).Find(student.ID, quiz.ID)
	require.NoError(t, err)
	assert.True(t, progress.IsCompleted, "a failed retake must not undo completion")

	score, err := repository.NewScoreRepository(db).Find(student.ID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, score.Score, "the latest score wins")
	assert.Equal(t, 2, score.Attempts)
}

func TestSubmitQuizWithoutQuestions(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	empty := createQuizLecture(t, db, course.ID, 2, 0)

	_, err := newProgressService(db).SubmitQuiz(student.ID, empty.ID, map[string]string{})
	assert.ErrorIs(t, err, util.ErrNoQuestions)

	var count int64
	require.NoError(t, db.Model(&model.Score{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "a rejected submission must not record a score")
}

func TestSubmitQuizIgnoresUnknownAnswers(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 1)
	quiz := createQuizLecture(t, db, course.ID, 2, 2)

	answers := correctAnswers(quiz, 1)
	answers["bogus-question"] = "bogus-option"
	delete(answers, quiz.Questions[1].ID)

	result, err := newProgressService(db).SubmitQuiz(student.ID, quiz.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 50, result.Score, "unanswered questions score zero")
}
