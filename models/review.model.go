package models

import "gorm.io/gorm"

// Review holds a single user's rating for a course
type Review struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex:idx_user_course_review;not null"`
	CourseID  uint   `json:"course_id" gorm:"uniqueIndex:idx_user_course_review;not null"`
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment   string `json:"comment" gorm:"type:text;default:''"`                      // Optional comment
	IsDeleted bool   `gorm:"default:false"`
	User      User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
