package model

type LectureType string

const (
	Reading LectureType = "READING"
	Quiz    LectureType = "QUIZ"
)

// ReadingSubtype distinguishes how a reading lecture stores its payload:
// plain text lives on the lecture itself, everything else on an attachment.
type ReadingSubtype string

const (
	SubtypeText  ReadingSubtype = "text"
	SubtypeLink  ReadingSubtype = "link"
	SubtypePDF   ReadingSubtype = "pdf"
	SubtypeVideo ReadingSubtype = "video"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	ImageURL     string    `gorm:"size:512" json:"imageUrl"`
	InstructorID string    `gorm:"type:varchar(36);index;not null" json:"instructorId"`
	Instructor   *User     `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Lectures     []Lecture `gorm:"foreignKey:CourseID" json:"lectures,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Lecture
type Lecture struct {
	BaseModel
	CourseID string      `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Title    string      `gorm:"size:255;not null" json:"title"`
	Type     LectureType `gorm:"size:20;not null" json:"type"`
	// Position is a dense 1-based ordering within a course, assigned at
	// creation time. Navigation relies on it having no gaps.
	Position    int          `gorm:"not null;index" json:"position"`
	Content     string       `gorm:"type:text" json:"content,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:LectureID" json:"attachments,omitempty"`
	Questions   []Question   `gorm:"foreignKey:LectureID" json:"questions,omitempty"`
}

func (Lecture) TableName() string {
	return "lectures"
}

// swagger:model Attachment
type Attachment struct {
	BaseModel
	LectureID string `gorm:"type:varchar(36);index;not null" json:"lectureId"`
	Name      string `gorm:"size:255;not null" json:"name"`
	// Subtype is stored explicitly instead of being parsed back out of the
	// "<title> - <subtype>" name convention the client still receives.
	Subtype ReadingSubtype `gorm:"size:20;not null" json:"subtype"`
	URL     string         `gorm:"size:512;not null" json:"url"`
}

func (Attachment) TableName() string {
	return "attachments"
}

// swagger:model Question
type Question struct {
	BaseModel
	LectureID string   `gorm:"type:varchar(36);index;not null" json:"lectureId"`
	Text      string   `gorm:"type:text;not null" json:"text"`
	Options   []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Option
type Option struct {
	BaseModel
	QuestionID string `gorm:"type:varchar(36);index;not null" json:"questionId"`
	Text       string `gorm:"size:512;not null" json:"text"`
	// Exactly one option per question is correct; the authoring flow
	// validates this before anything is written.
	IsCorrect bool `gorm:"not null;default:false" json:"isCorrect,omitempty"`
}

func (Option) TableName() string {
	return "options"
}
