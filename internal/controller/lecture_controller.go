package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LectureController struct {
	LectureService  *service.LectureService
	ProgressService *service.ProgressService
}

func NewLectureController(
	lectureService *service.LectureService,
	progressService *service.ProgressService,
) *LectureController {
	return &LectureController{
		LectureService:  lectureService,
		ProgressService: progressService,
	}
}

// @Summary Lecture detail with sibling navigation
// @Description Anonymous callers can preview the lecture; completion flags need a session.
// @Tags lectures
// @Produce json
// @Param courseId path string true "course id"
// @Param lectureId path string true "lecture id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/lectures/{lectureId} [get]
func (c *LectureController) GetLectureDetail(ctx *gin.Context) {
	userID := ""
	if user := util.GetUserFromContext(ctx); user != nil {
		userID = user.UserID
	}

	view, err := c.LectureService.LectureDetail(userID, ctx.Param("courseId"), ctx.Param("lectureId"))
	if err != nil {
		switch err {
		case util.ErrCourseNotFound:
			util.NotFound(ctx, "Course not found")
		case util.ErrLectureNotFound:
			util.NotFound(ctx, "Lecture not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

// @Summary Mark a lecture complete
// @Tags lectures
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param lectureId path string true "lecture id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/lectures/{lectureId}/complete [post]
func (c *LectureController) CompleteLecture(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ProgressService.CompleteLecture(user.UserID, ctx.Param("lectureId")); err != nil {
		if err == util.ErrLectureNotFound {
			util.NotFound(ctx, "Lecture not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Progress updated"})
}

type QuizSubmission struct {
	// Answers maps question id to the chosen option id. Missing keys count
	// as unanswered.
	Answers map[string]string `json:"answers" binding:"required"`
}

// @Summary Submit quiz answers
// @Tags lectures
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param lectureId path string true "lecture id"
// @Param body body QuizSubmission true "answers keyed by question id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/lectures/{lectureId}/submit [post]
func (c *LectureController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var submission QuizSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ProgressService.SubmitQuiz(user.UserID, ctx.Param("lectureId"), submission.Answers)
	if err != nil {
		if err == util.ErrNoQuestions {
			util.NotFound(ctx, "No questions found for this quiz")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
