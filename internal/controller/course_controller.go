package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService     *service.CourseService
	EnrollmentService *service.EnrollmentService
}

func NewCourseController(
	courseService *service.CourseService,
	enrollmentService *service.EnrollmentService,
) *CourseController {
	return &CourseController{
		CourseService:     courseService,
		EnrollmentService: enrollmentService,
	}
}

// @Summary Public course catalog
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.Catalog(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Publish a course
// @Description Creates the course with all lectures, questions, options and attachments in one shot.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateCourseInput true "course payload"
// @Success 201 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.CreateCourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(user.UserID, input)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, course)
}

// @Summary Course detail with per-lecture completion
// @Description Anonymous callers get the course page without completion or enrollment state.
// @Tags courses
// @Produce json
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetCourseDetail(ctx *gin.Context) {
	userID := ""
	if user := util.GetUserFromContext(ctx); user != nil {
		userID = user.UserID
	}

	courseID := ctx.Param("courseId")
	view, err := c.CourseService.CourseDetail(userID, courseID)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx, "Course not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary Role-specific course list
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/courses/my-courses [get]
func (c *CourseController) GetMyCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.ListMyCourses(user.UserID, user.Role)
	if err != nil {
		if err == util.ErrInvalidRole {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary Enroll in a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 201 {object} util.Response
// @Router /api/courses/{courseId}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := ctx.Param("courseId")
	enrollment, err := c.EnrollmentService.Enroll(user.UserID, courseID)
	if err != nil {
		switch err {
		case util.ErrAlreadyEnrolled:
			util.BadRequest(ctx, err.Error())
		case util.ErrCourseNotFound:
			util.NotFound(ctx, "Course not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, enrollment)
}
