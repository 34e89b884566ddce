package util

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")
	ErrCourseNotFound  = errors.New("course not found")
	ErrLectureNotFound = errors.New("lecture not found")
	ErrNoQuestions     = errors.New("no questions found for this quiz")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrInvalidRole     = errors.New("invalid user role")
	ErrInvalidProfile  = errors.New("name and role are required")
)
