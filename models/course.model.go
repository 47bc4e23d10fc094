package models

import "gorm.io/gorm"

// Course is the aggregate root for derived enrollment/rating/lesson totals.
// EnrollmentCount, Rating, RatingCount, LessonCount and Duration are maintained
// by the catalog service, never written by request payloads directly.
type Course struct {
	gorm.Model
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category" gorm:"index;default:''"`
	InstructorID    uint    `json:"instructor_id" gorm:"index;not null"`
	Price           float64 `json:"price" gorm:"default:0"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	EnrollmentCount int     `json:"enrollment_count" gorm:"default:0"`
	Rating          float64 `json:"rating" gorm:"default:0"` // mean of all reviews, 0 until the first review
	RatingCount     int     `json:"rating_count" gorm:"default:0"`
	LessonCount     int     `json:"lesson_count" gorm:"default:0"`
	Duration        int     `json:"duration" gorm:"default:0"` // total minutes across lessons
	IsPublished     bool    `json:"is_published" gorm:"default:false"`
	IsDeleted       bool    `gorm:"default:false"`
}
