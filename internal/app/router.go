package app

import (
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes, no session required.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/auth/google", c.auth.GoogleSignIn)
		public.GET("/courses", c.course.ListCourses)
	}

	// Preview-able reads: the caller is resolved when a token is present,
	// anonymous requests get the content without personal state.
	preview := router.Group("/api")
	preview.Use(middleware.TryAuthMiddleware(cfg))
	{
		preview.GET("/courses/:courseId", c.course.GetCourseDetail)
		preview.GET("/courses/:courseId/lectures/:lectureId", c.lecture.GetLectureDetail)
	}

	// Everything below needs an authenticated principal.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.POST("/profile/complete", c.user.CompleteProfile)

		authGroup.GET("/courses/my-courses", c.course.GetMyCourses)
		authGroup.POST("/courses/:courseId/lectures/:lectureId/complete", c.lecture.CompleteLecture)
		authGroup.POST("/courses/:courseId/lectures/:lectureId/submit", c.lecture.SubmitQuiz)

		// Student-only actions
		student := authGroup.Group("/")
		student.Use(middleware.RoleMiddleware(model.Student))
		{
			student.POST("/courses/:courseId/enroll", c.course.Enroll)
		}

		// Instructor-only actions
		instructor := authGroup.Group("/")
		instructor.Use(middleware.RoleMiddleware(model.Instructor))
		{
			instructor.POST("/courses", c.course.CreateCourse)
			instructor.POST("/uploads", c.upload.Upload)
		}
	}
}
