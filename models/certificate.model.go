package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued once a user completes a course
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course_certificate;not null"`
	CourseID     uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course_certificate;not null"`
	SerialNumber string    `json:"serial_number" gorm:"unique;not null"`
	IssuedAt     time.Time `json:"issued_at"`
	IsDeleted    bool      `gorm:"default:false"`
}
