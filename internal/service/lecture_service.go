package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type LectureService struct {
	CourseRepo   *repository.CourseRepository
	LectureRepo  *repository.LectureRepository
	ProgressRepo *repository.ProgressRepository
}

func NewLectureService(
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	progressRepo *repository.ProgressRepository,
) *LectureService {
	return &LectureService{
		CourseRepo:   courseRepo,
		LectureRepo:  lectureRepo,
		ProgressRepo: progressRepo,
	}
}

// OptionView withholds the correctness flag so answers never reach the wire.
type OptionView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type QuestionView struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options"`
}

type LectureContent struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Type        model.LectureType  `json:"type"`
	Position    int                `json:"position"`
	Content     string             `json:"content,omitempty"`
	Attachments []model.Attachment `json:"attachments,omitempty"`
	Questions   []QuestionView     `json:"questions,omitempty"`
}

type LectureView struct {
	CourseTitle string         `json:"courseTitle"`
	Lecture     LectureContent `json:"lecture"`
	IsCompleted bool           `json:"isCompleted"`
	// AllLectures is the full sibling list ordered by position, used by the
	// client for prev/next navigation and lock display.
	AllLectures []LectureSummary `json:"allLectures"`
	// CurrentLectureIndex is the 0-based index of this lecture in AllLectures.
	CurrentLectureIndex int `json:"currentLectureIndex"`
}

// LectureDetail composes the lecture page for one caller. Reads are not
// gated on enrollment; the catalog allows previewing content.
func (s *LectureService) LectureDetail(userID, courseID, lectureID string) (*LectureView, error) {
	course, err := s.CourseRepo.FindWithLectures(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lecture, err := s.LectureRepo.FindDetail(lectureID)
	if err != nil || lecture.CourseID != courseID {
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
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

	siblings := make([]LectureSummary, 0, len(course.Lectures))
	currentIndex := -1
	for i, l := range course.Lectures {
		if l.ID == lectureID {
			currentIndex = i
		}
		siblings = append(siblings, LectureSummary{
			ID:          l.ID,
			Title:       l.Title,
			Type:        l.Type,
			Position:    l.Position,
			IsCompleted: completed[l.ID],
		})
	}

	content := LectureContent{
		ID:          lecture.ID,
		Title:       lecture.Title,
		Type:        lecture.Type,
		Position:    lecture.Position,
		Content:     lecture.Content,
		Attachments: lecture.Attachments,
	}
	for _, q := range lecture.Questions {
		qv := QuestionView{ID: q.ID, Text: q.Text}
		for _, opt := range q.Options {
			qv.Options = append(qv.Options, OptionView{ID: opt.ID, Text: opt.Text})
		}
		content.Questions = append(content.Questions, qv)
	}

	return &LectureView{
		CourseTitle:         course.Title,
		Lecture:             content,
		IsCompleted:         completed[lectureID],
		AllLectures:         siblings,
		CurrentLectureIndex: currentIndex,
	}, nil
}
