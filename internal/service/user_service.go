package service

import (
	"strings"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// UserSummary is the wire shape for the authenticated user.
type UserSummary struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  model.UserRole `json:"role"`
	Image string         `json:"image"`
}

func summarize(user *model.User) *UserSummary {
	return &UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Image: user.Image,
	}
}

func (s *UserService) GetProfile(userID string) (*UserSummary, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return summarize(user), nil
}

// CompleteProfile sets the display name and role chosen after first
// sign-in. Only STUDENT and INSTRUCTOR are accepted.
func (s *UserService) CompleteProfile(userID, name string, role model.UserRole) (*UserSummary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrInvalidProfile
	}
	if role != model.Student && role != model.Instructor {
		return nil, util.ErrInvalidRole
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	user.Name = name
	user.Role = role
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	return summarize(user), nil
}
