package model

// Enrollment grants a student access to a course's tracked progress.
// One row per (user, course), never removed.
type Enrollment struct {
	BaseModel
	UserID   string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_user_course" json:"userId"`
	CourseID string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_user_course" json:"courseId"`
	Course   *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
