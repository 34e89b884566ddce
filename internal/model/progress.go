package model

// Progress is the per-(user, lecture) completion flag. Reading lectures set
// it directly, quiz lectures only on a passing submission. Never reverted.
type Progress struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_lecture" json:"userId"`
	LectureID   string `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_lecture" json:"lectureId"`
	IsCompleted bool   `gorm:"not null;default:false" json:"isCompleted"`
}

func (Progress) TableName() string {
	return "progress"
}

// Score records the latest quiz result per (user, lecture). Re-submissions
// overwrite the score and bump the attempt counter, one row per pair.
type Score struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);not null;uniqueIndex:idx_score_user_lecture" json:"userId"`
	LectureID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_score_user_lecture" json:"lectureId"`
	Score     int    `gorm:"not null" json:"score"`
	MaxScore  int    `gorm:"not null;default:100" json:"maxScore"`
	Attempts  int    `gorm:"not null;default:1" json:"attempts"`
}

func (Score) TableName() string {
	return "scores"
}
