package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type CompleteProfileRequest struct {
	Name string         `json:"name" binding:"required"`
	Role model.UserRole `json:"role" binding:"required"`
}

// @Summary Complete the signup profile
// @Description Sets the display name and role after first sign-in.
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CompleteProfileRequest true "profile payload"
// @Success 200 {object} util.Response
// @Router /api/profile/complete [post]
func (c *UserController) CompleteProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	summary, err := c.UserService.CompleteProfile(user.UserID, req.Name, req.Role)
	if err != nil {
		switch err {
		case util.ErrInvalidProfile, util.ErrInvalidRole:
			util.BadRequest(ctx, err.Error())
		case util.ErrUserNotFound:
			util.NotFound(ctx, "User not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, summary)
}
