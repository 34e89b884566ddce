package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "courses:catalog"
	catalogCacheTTL = time.Minute
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	LectureRepo    *repository.LectureRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	Redis          *redis.Client
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	rdb *redis.Client,
) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		LectureRepo:    lectureRepo,
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		Redis:          rdb,
	}
}

// ReadingInput carries a reading lecture's payload: plain text for the
// "text" subtype, an upload or external URL for pdf/video/link.
type ReadingInput struct {
	Subtype model.ReadingSubtype `json:"readingType" binding:"required"`
	Content string               `json:"content" binding:"required"`
}

type QuestionInput struct {
	Text          string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectOption int      `json:"correctOption"`
}

type QuizInput struct {
	Questions []QuestionInput `json:"questions" binding:"required,min=1"`
}

// LectureInput is the tagged union for authoring a lecture: exactly one of
// Reading or Quiz must be set, matching Type.
type LectureInput struct {
	Title   string        `json:"title" binding:"required"`
	Type    string        `json:"type" binding:"required,oneof=reading quiz"`
	Reading *ReadingInput `json:"reading,omitempty"`
	Quiz    *QuizInput    `json:"quiz,omitempty"`
}

type CreateCourseInput struct {
	Title          string         `json:"title" binding:"required"`
	Description    string         `json:"description" binding:"required"`
	BannerImageURL string         `json:"bannerImageUrl"`
	Lectures       []LectureInput `json:"lectures" binding:"required,min=1"`
}

func validReadingSubtype(s model.ReadingSubtype) bool {
	switch s {
	case model.SubtypeText, model.SubtypeLink, model.SubtypePDF, model.SubtypeVideo:
		return true
	}
	return false
}

// buildLecture turns one authoring input into a persisted-shape lecture.
// Positions are dense and 1-based, assigned from input order.
func buildLecture(in LectureInput, position int) (*model.Lecture, error) {
	lecture := &model.Lecture{
		Title:    in.Title,
		Position: position,
	}

	switch in.Type {
	case "reading":
		if in.Reading == nil {
			return nil, fmt.Errorf("lecture %q: reading payload is required", in.Title)
		}
		if !validReadingSubtype(in.Reading.Subtype) {
			return nil, fmt.Errorf("lecture %q: unknown reading type %q", in.Title, in.Reading.Subtype)
		}
		lecture.Type = model.Reading
		if in.Reading.Subtype == model.SubtypeText {
			lecture.Content = in.Reading.Content
		} else {
			lecture.Attachments = []model.Attachment{{
				Name:    fmt.Sprintf("%s - %s", in.Title, in.Reading.Subtype),
				Subtype: in.Reading.Subtype,
				URL:     in.Reading.Content,
			}}
		}
	case "quiz":
		if in.Quiz == nil || len(in.Quiz.Questions) == 0 {
			return nil, fmt.Errorf("lecture %q: quiz needs at least one question", in.Title)
		}
		lecture.Type = model.Quiz
		for _, q := range in.Quiz.Questions {
			if len(q.Options) < 2 {
				return nil, fmt.Errorf("question %q needs at least two options", q.Text)
			}
			if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
				return nil, fmt.Errorf("question %q: correct option index out of range", q.Text)
			}
			question := model.Question{Text: q.Text}
			for i, opt := range q.Options {
				question.Options = append(question.Options, model.Option{
					Text:      opt,
					IsCorrect: i == q.CorrectOption,
				})
			}
			lecture.Questions = append(lecture.Questions, question)
		}
	default:
		return nil, fmt.Errorf("lecture %q: unknown type %q", in.Title, in.Type)
	}

	return lecture, nil
}

// CreateCourse assembles and persists the whole course graph atomically.
// A failure anywhere leaves no orphaned course behind.
func (s *CourseService) CreateCourse(instructorID string, input CreateCourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.BannerImageURL,
		InstructorID: instructorID,
	}

	for i, in := range input.Lectures {
		lecture, err := buildLecture(in, i+1)
		if err != nil {
			return nil, err
		}
		course.Lectures = append(course.Lectures, *lecture)
	}

	if err := s.CourseRepo.CreateGraph(course); err != nil {
		return nil, err
	}

	s.invalidateCatalog()
	return course, nil
}

// CourseSummary is the catalog/list projection of a course.
type CourseSummary struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	InstructorName string    `json:"instructorName"`
	LectureCount   int       `json:"lectureCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

func courseSummary(course *model.Course, lectureCount int) CourseSummary {
	summary := CourseSummary{
		ID:           course.ID,
		Title:        course.Title,
		Description:  course.Description,
		ImageURL:     course.ImageURL,
		LectureCount: lectureCount,
		CreatedAt:    course.CreatedAt,
	}
	if course.Instructor != nil {
		summary.InstructorName = course.Instructor.Name
	}
	return summary
}

// Catalog lists every course for the public landing page, newest first.
// Served from Redis when warm.
func (s *CourseService) Catalog(ctx context.Context) ([]CourseSummary, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, catalogCacheKey).Result(); err == nil {
			var summaries []CourseSummary
			if err := json.Unmarshal([]byte(cached), &summaries); err == nil {
				return summaries, nil
			}
		}
	}

	courses, err := s.CourseRepo.ListAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	counts, err := s.CourseRepo.CountLectures(ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for i := range courses {
		summaries = append(summaries, courseSummary(&courses[i], counts[courses[i].ID]))
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(summaries); err == nil {
			if err := s.Redis.Set(ctx, catalogCacheKey, payload, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return summaries, nil
}

func (s *CourseService) invalidateCatalog() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), catalogCacheKey).Err(); err != nil {
		logger.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

// LectureSummary annotates a catalog lecture with the caller's completion.
type LectureSummary struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Type        model.LectureType `json:"type"`
	Position    int               `json:"position"`
	IsCompleted bool              `json:"isCompleted"`
}

type CourseView struct {
	CourseSummary
	Lectures   []LectureSummary `json:"lectures"`
	IsEnrolled bool             `json:"isEnrolled"`
}

// CourseDetail composes the course page: ordered lectures with the caller's
// per-lecture completion and whether the caller is enrolled.
func (s *CourseService) CourseDetail(userID, courseID string) (*CourseView, error) {
	course, err := s.CourseRepo.FindDetail(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lectureIDs := make([]string, len(course.Lectures))
	for i, l := range course.Lectures {
		lectureIDs[i] = l.ID
	}

	completed, err := s.ProgressRepo.CompletedLectureIDs(userID, lectureIDs)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.EnrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return nil, err
	}

	view := &CourseView{
		CourseSummary: courseSummary(course, len(course.Lectures)),
		IsEnrolled:    enrolled,
		Lectures:      make([]LectureSummary, 0, len(course.Lectures)),
	}
	for _, l := range course.Lectures {
		view.Lectures = append(view.Lectures, LectureSummary{
			ID:          l.ID,
			Title:       l.Title,
			Type:        l.Type,
			Position:    l.Position,
			IsCompleted: completed[l.ID],
		})
	}

	return view, nil
}

// EnrolledCourse is a my-courses entry for students, with aggregate progress.
type EnrolledCourse struct {
	CourseSummary
	CompletedLectures int `json:"completedLectures"`
	// Progress is the completed share in whole percent, 0 for empty courses.
	Progress int `json:"progress"`
}

type MyCourses struct {
	Role     model.UserRole   `json:"role"`
	Teaching []CourseSummary  `json:"teaching,omitempty"`
	Enrolled []EnrolledCourse `json:"enrolled,omitempty"`
}

// ListMyCourses returns the role-specific course list: owned courses for
// instructors, enrolled courses with progress for students. Any other role
// is rejected.
func (s *CourseService) ListMyCourses(userID string, role model.UserRole) (*MyCourses, error) {
	switch role {
	case model.Instructor:
		courses, err := s.CourseRepo.ListByInstructor(userID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(courses))
		for i, c := range courses {
			ids[i] = c.ID
		}
		counts, err := s.CourseRepo.CountLectures(ids)
		if err != nil {
			return nil, err
		}
		out := &MyCourses{Role: role, Teaching: make([]CourseSummary, 0, len(courses))}
		for i := range courses {
			out.Teaching = append(out.Teaching, courseSummary(&courses[i], counts[courses[i].ID]))
		}
		return out, nil

	case model.Student:
		enrollments, err := s.EnrollmentRepo.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		out := &MyCourses{Role: role, Enrolled: make([]EnrolledCourse, 0, len(enrollments))}
		for _, e := range enrollments {
			if e.Course == nil {
				continue
			}
			lectureIDs, err := s.LectureRepo.FindIDsByCourse(e.CourseID)
			if err != nil {
				return nil, err
			}
			completedCount, err := s.ProgressRepo.CountCompleted(userID, lectureIDs)
			if err != nil {
				return nil, err
			}

			total := len(lectureIDs)
			progress := 0
			if total > 0 {
				progress = roundPercent(completedCount, total)
			}
			out.Enrolled = append(out.Enrolled, EnrolledCourse{
				CourseSummary:     courseSummary(e.Course, total),
				CompletedLectures: completedCount,
				Progress:          progress,
			})
		}
		return out, nil

	default:
		return nil, util.ErrInvalidRole
	}
}
