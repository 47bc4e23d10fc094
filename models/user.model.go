package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name            string         `json:"name" gorm:"default:''"`
	Email           string         `json:"email" gorm:"unique;not null"`
	Password        string         `json:"-" gorm:"not null"`
	Role            string         `json:"role" gorm:"default:'USER'"` // USER, INSTRUCTOR, ADMIN
	Bio             string         `json:"bio" gorm:"type:text;default:''"`
	ProfileImage    string         `json:"profile_image" gorm:"default:''"`
	EnrolledCourses datatypes.JSON `json:"enrolled_courses" gorm:"default:'[]'"` // deduplicated course id set
	LastLogin       *time.Time     `json:"last_login"`
	IsDeleted       bool           `gorm:"default:false"`
}
