package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz groups questions for a course
type Quiz struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	IsDeleted bool   `gorm:"default:false"`
}

// Question is a multiple choice question belonging to a quiz
type Question struct {
	gorm.Model
	QuizID       uint           `json:"quiz_id" gorm:"index;not null"`
	Text         string         `json:"text"`
	Options      datatypes.JSON `json:"options" gorm:"default:'[]'"` // ordered answer texts
	CorrectIndex int            `json:"-" gorm:"default:0"`          // never serialized to students
	OrderIndex   int            `json:"order_index" gorm:"default:0"`
	IsDeleted    bool           `gorm:"default:false"`
}

// QuizAttempt records a student's scored submission
type QuizAttempt struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	QuizID    uint `json:"quiz_id" gorm:"index;not null"`
	Score     int  `json:"score"`
	Total     int  `json:"total"`
	IsDeleted bool `gorm:"default:false"`
}
