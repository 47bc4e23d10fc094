package models

import "gorm.io/gorm"

// Payment statuses. The only legal transitions are
// PENDING → COMPLETED | FAILED and COMPLETED → REFUNDED.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

type Payment struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"index;not null"`
	CourseID  uint    `json:"course_id" gorm:"index;not null"`
	Amount    float64 `json:"amount" gorm:"not null"`
	Currency  string  `json:"currency" gorm:"default:'USD'"`
	Reference string  `json:"reference" gorm:"unique;not null"` // uuid handed to the client
	Status    string  `json:"status" gorm:"default:'PENDING'"`
	IsDeleted bool    `gorm:"default:false"`
}
