package service

import (
	"errors"
	"math"

	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

// passThreshold is the fixed passing score for quizzes, in percent.
const passThreshold = 70

type ProgressService struct {
	LectureRepo  *repository.LectureRepository
	ProgressRepo *repository.ProgressRepository
	ScoreRepo    *repository.ScoreRepository
	DB           *gorm.DB
}

func NewProgressService(
	lectureRepo *repository.LectureRepository,
	progressRepo *repository.ProgressRepository,
	scoreRepo *repository.ScoreRepository,
	db *gorm.DB,
) *ProgressService {
	return &ProgressService{
		LectureRepo:  lectureRepo,
		ProgressRepo: progressRepo,
		ScoreRepo:    scoreRepo,
		DB:           db,
	}
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

// CompleteLecture marks a lecture done for the caller. Idempotent, and
// deliberately type-agnostic: routing decides what gets sent here.
func (s *ProgressService) CompleteLecture(userID, lectureID string) error {
	if _, err := s.LectureRepo.FindByID(lectureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLectureNotFound
		}
		return err
	}
	return s.ProgressRepo.MarkCompleted(userID, lectureID)
}

type QuizResult struct {
	Score  int  `json:"score"`
	Passed bool `json:"passed"`
}

// SubmitQuiz grades an answer set against the lecture's questions.
// Unanswered questions score zero, there is no partial credit. The score
// upsert and, on a pass, the progress upsert commit in one transaction.
// A failed retake after a pass leaves completion untouched.
func (s *ProgressService) SubmitQuiz(userID, lectureID string, answers map[string]string) (*QuizResult, error) {
	questions, err := s.LectureRepo.FindQuestions(lectureID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}

	correct := 0
	for _, q := range questions {
		for _, opt := range q.Options {
			if opt.IsCorrect {
				if answers[q.ID] == opt.ID {
					correct++
				}
				break
			}
		}
	}

	score := roundPercent(correct, len(questions))
	passed := score >= passThreshold

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ScoreRepo.UpsertTx(tx, userID, lectureID, score); err != nil {
			return err
		}
		if passed {
			return s.ProgressRepo.MarkCompletedTx(tx, userID, lectureID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &QuizResult{Score: score, Passed: passed}, nil
}
