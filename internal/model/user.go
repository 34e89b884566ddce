package model

import "time"

type UserRole string

const (
	Student    UserRole = "STUDENT"
	Instructor UserRole = "INSTRUCTOR"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100" json:"-"`
	Role      UserRole  `gorm:"size:20;default:'STUDENT';index" json:"role"`
	Image     string    `gorm:"size:255" json:"image"`
	LastLogin time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
