package service

import (
	"context"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseBuildsGraph(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	svc := newCourseService(db)

	input := CreateCourseInput{
		Title:       "Intro to Go",
		Description: "From zero to gopher",
		Lectures: []LectureInput{
			{
				Title:   "Welcome",
				Type:    "reading",
				Reading: &ReadingInput{Subtype: model.SubtypeText, Content: "Hello"},
			},
			{
				Title:   "Slides",
				Type:    "reading",
				Reading: &ReadingInput{Subtype: model.SubtypePDF, Content: "https://cdn.example.com/slides.pdf"},
			},
			{
				Title: "Checkpoint",
				Type:  "quiz",
				Quiz: &QuizInput{Questions: []QuestionInput{
					{Text: "What declares a function?", Options: []string{"var", "func", "def"}, CorrectOption: 1},
				}},
			},
		},
	}

	course, err := svc.CreateCourse(instructor.ID, input)
	require.NoError(t, err)
	require.NotEmpty(t, course.ID)

	detail, err := repository.NewLectureRepository(db).FindDetail(course.Lectures[2].ID)
	require.NoError(t, err)

	// Positions are dense and follow input order.
	for i, l := range course.Lectures {
		assert.Equal(t, i+1, l.Position)
	}

	// Text readings keep content inline, the pdf becomes an attachment
	// named "<title> - <subtype>".
	assert.Equal(t, "Hello", course.Lectures[0].Content)
	var attachments []model.Attachment
	require.NoError(t, db.Where("lecture_id = ?", course.Lectures[1].ID).Find(&attachments).Error)
	require.Len(t, attachments, 1)
	assert.Equal(t, "Slides - pdf", attachments[0].Name)
	assert.Equal(t, model.SubtypePDF, attachments[0].Subtype)
	assert.Equal(t, "https://cdn.example.com/slides.pdf", attachments[0].URL)

	// Exactly one option per question is correct.
	require.Len(t, detail.Questions, 1)
	correct := 0
	for _, opt := range detail.Questions[0].Options {
		if opt.IsCorrect {
			correct++
			assert.Equal(t, "func", opt.Text)
		}
	}
	assert.Equal(t, 1, correct)
}

func TestCreateCourseRejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	svc := newCourseService(db)

	cases := []struct {
		name    string
		lecture LectureInput
	}{
		{
			name:    "reading without payload",
			lecture: LectureInput{Title: "Empty", Type: "reading"},
		},
		{
			name: "unknown reading subtype",
			lecture: LectureInput{
				Title:   "Weird",
				Type:    "reading",
				Reading: &ReadingInput{Subtype: "audio", Content: "x"},
			},
		},
		{
			name: "correct option out of range",
			lecture: LectureInput{
				Title: "Broken quiz",
				Type:  "quiz",
				Quiz: &QuizInput{Questions: []QuestionInput{
					{Text: "Q", Options: []string{"a", "b"}, CorrectOption: 2},
				}},
			},
		},
		{
			name:    "quiz without questions",
			lecture: LectureInput{Title: "No questions", Type: "quiz", Quiz: &QuizInput{}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCourse(instructor.ID, CreateCourseInput{
				Title:       "Bad course",
				Description: "d",
				Lectures:    []LectureInput{tc.lecture},
			})
			assert.Error(t, err)
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.Course{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "rejected input must leave nothing behind")
}

func TestCourseDetail(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 2)

	require.NoError(t, repository.NewEnrollmentRepository(db).Create(&model.Enrollment{
		UserID:   student.ID,
		CourseID: course.ID,
	}))
	require.NoError(t, repository.NewProgressRepository(db).MarkCompleted(student.ID, course.Lectures[0].ID))

	view, err := newCourseService(db).CourseDetail(student.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, "Go Basics", view.Title)
	assert.Equal(t, "Ina", view.InstructorName)
	assert.Equal(t, 2, view.LectureCount)
	assert.True(t, view.IsEnrolled)
	require.Len(t, view.Lectures, 2)
	assert.True(t, view.Lectures[0].IsCompleted)
	assert.False(t, view.Lectures[1].IsCompleted)
}

func TestCourseDetailUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	student := createUser(t, db, "Sam", model.Student)

	_, err := newCourseService(db).CourseDetail(student.ID, "missing")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCatalogListsEveryCourse(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	createReadingCourse(t, db, instructor.ID, "Go Basics", 3)
	createReadingCourse(t, db, instructor.ID, "Advanced Go", 5)

	summaries, err := newCourseService(db).Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	counts := make(map[string]int)
	for _, s := range summaries {
		counts[s.Title] = s.LectureCount
		assert.Equal(t, "Ina", s.InstructorName)
	}
	assert.Equal(t, 3, counts["Go Basics"])
	assert.Equal(t, 5, counts["Advanced Go"])
}

func TestListMyCoursesStudentProgress(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	student := createUser(t, db, "Sam", model.Student)
	course := createReadingCourse(t, db, instructor.ID, "Go Basics", 4)

	require.NoError(t, repository.NewEnrollmentRepository(db).Create(&model.Enrollment{
		UserID:   student.ID,
		CourseID: course.ID,
	}))
	require.NoError(t, repository.NewProgressRepository(db).MarkCompleted(student.ID, course.Lectures[0].ID))

	out, err := newCourseService(db).ListMyCourses(student.ID, model.Student)
	require.NoError(t, err)

	assert.Equal(t, model.Student, out.Role)
	require.Len(t, out.Enrolled, 1)
	assert.Equal(t, 1, out.Enrolled[0].CompletedLectures)
	assert.Equal(t, 25, out.Enrolled[0].Progress)
	assert.Equal(t, 4, out.Enrolled[0].LectureCount)
}

func TestListMyCoursesInstructor(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, "Ina", model.Instructor)
	other := createUser(t, db, "Omar", model.Instructor)
	createReadingCourse(t, db, instructor.ID, "Go Basics", 2)
	createReadingCourse(t, db, other.ID, "Not Mine", 1)

	out, err := newCourseService(db).ListMyCourses(instructor.ID, model.Instructor)
	require.NoError(t, err)

	require.Len(t, out.Teaching, 1)
	assert.Equal(t, "Go Basics", out.Teaching[0].Title)
	assert.Equal(t, 2, out.Teaching[0].LectureCount)
	assert.Empty(t, out.Enrolled)
}

func TestListMyCoursesRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	student := createUser(t, db, "Sam", model.Student)

	_, err := newCourseService(db).ListMyCourses(student.ID, "ADMIN")
	assert.ErrorIs(t, err, util.ErrInvalidRole)
}
