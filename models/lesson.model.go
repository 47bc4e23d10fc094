package models

import "gorm.io/gorm"

// Lesson belongs to a course; Order defines the display sequence within it
type Lesson struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Content   string `json:"content" gorm:"type:text;default:''"`
	VideoURL  string `json:"video_url" gorm:"default:''"`
	Order     int    `json:"order" gorm:"column:order_index;default:0"`
	Duration  int    `json:"duration" gorm:"default:0"` // minutes
	IsDeleted bool   `gorm:"default:false"`
}
