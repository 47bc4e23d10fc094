package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course with progress.
// The composite unique index enforces at most one enrollment per (user, course);
// duplicate inserts fail at the storage layer instead of racing a lookup.
type Enrollment struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"uniqueIndex:idx_user_course_enrollment;not null"`
	CourseID         uint           `json:"course_id" gorm:"uniqueIndex:idx_user_course_enrollment;not null"`
	Progress         float64        `json:"progress" gorm:"default:0"` // completion percentage (0-100)
	CompletedLessons datatypes.JSON `json:"completed_lessons" gorm:"default:'[]'"`
	IsCompleted      bool           `json:"is_completed" gorm:"default:false"`
	CompletedAt      *time.Time     `json:"completed_at"`
	IsDeleted        bool           `gorm:"default:false"`
	Course           Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
