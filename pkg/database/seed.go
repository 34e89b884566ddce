package database

import (
	"log"

	"lms_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts a demo instructor, student and one sample course when the
// database is empty. Safe to run repeatedly.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: users already present")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	instructor := &model.User{
		Name:     "Demo Instructor",
		Email:    "instructor@example.com",
		Password: string(hash),
		Role:     model.Instructor,
	}
	student := &model.User{
		Name:     "Demo Student",
		Email:    "student@example.com",
		Password: string(hash),
		Role:     model.Student,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(instructor).Error; err != nil {
			return err
		}
		if err := tx.Create(student).Error; err != nil {
			return err
		}

		course := &model.Course{
			Title:        "Getting Started with Go",
			Description:  "A short introduction course used for local development.",
			InstructorID: instructor.ID,
			Lectures: []model.Lecture{
				{
					Title:    "Welcome",
					Type:     model.Reading,
					Position: 1,
					Content:  "Welcome to the course. Work through the lectures in order.",
				},
				{
					Title:    "Check your understanding",
					Type:     model.Quiz,
					Position: 2,
					Questions: []model.Question{
						{
							Text: "Which keyword declares a function in Go?",
							Options: []model.Option{
								{Text: "def"},
								{Text: "func", IsCorrect: true},
								{Text: "fn"},
							},
						},
					},
				},
			},
		}
		if err := tx.Create(course).Error; err != nil {
			return err
		}

		log.Println("Seed data created")
		return nil
	})
}
