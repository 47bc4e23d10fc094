// Package catalog keeps the derived aggregate fields on courses and users
// consistent with the source-of-truth tables. Every child-record write that
// feeds an aggregate (enrollment count, average rating, lesson totals,
// completion progress) goes through here, inside a single transaction, so a
// failed step never leaves the primary record and its aggregates disagreeing.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lms/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enroll creates an enrollment for (userID, courseID) and propagates the
// dependent updates: the course's enrollment_count and the user's
// enrolled-courses set. Uniqueness comes from the composite index on the
// enrollments table, so a concurrent duplicate fails at the insert and
// surfaces as ErrConflict.
func Enroll(db *gorm.DB, userID, courseID uint) (*models.Enrollment, error) {
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:           userID,
		CourseID:         courseID,
		Progress:         0,
		CompletedLessons: datatypes.JSON("[]"),
		IsCompleted:      false,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: user %d already enrolled in course %d", ErrConflict, userID, courseID)
			}
			return err
		}

		if err := tx.Model(&models.Course{}).Where("id = ?", courseID).
			UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + 1")).Error; err != nil {
			return err
		}

		enrolled, err := decodeIDSet(user.EnrolledCourses)
		if err != nil {
			return err
		}
		updated, changed := addToSet(enrolled, courseID)
		if changed {
			encoded, err := encodeIDSet(updated)
			if err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				UpdateColumn("enrolled_courses", encoded).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// AddReview records a user's rating for a course and writes the recomputed
// average back onto it. The average is recomputed by the store over all of the
// course's reviews on every write rather than maintained incrementally, so
// floating-point drift cannot accumulate; review volume is low enough that the
// extra scan does not matter.
func AddReview(db *gorm.DB, userID, courseID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}
		return nil, err
	}

	review := models.Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   rating,
		Comment:  comment,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: user %d already reviewed course %d", ErrConflict, userID, courseID)
			}
			return err
		}

		avg, count, err := averageRating(tx, courseID)
		if err != nil {
			return err
		}

		return tx.Model(&models.Course{}).Where("id = ?", courseID).
			UpdateColumns(map[string]interface{}{
				"rating":       avg,
				"rating_count": count,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// AddLesson inserts a lesson under the course and folds its duration into the
// course totals in one combined update. A missing course produces ErrNotFound
// with no side effects.
func AddLesson(db *gorm.DB, courseID uint, lesson *models.Lesson) error {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}
		return err
	}

	lesson.CourseID = courseID

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lesson).Error; err != nil {
			return err
		}

		return tx.Model(&models.Course{}).Where("id = ?", courseID).
			UpdateColumns(map[string]interface{}{
				"lesson_count": gorm.Expr("lesson_count + 1"),
				"duration":     gorm.Expr("duration + ?", lesson.Duration),
			}).Error
	})
}

// CompleteLesson marks a lesson done on the user's enrollment and refreshes the
// derived progress percentage. Marking the same lesson twice is a no-op. When
// progress reaches 100 the enrollment flips to completed and a certificate is
// issued once.
func CompleteLesson(db *gorm.DB, userID, courseID, lessonID uint) (*models.Enrollment, error) {
	var lesson models.Lesson
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lesson %d in course %d", ErrNotFound, lessonID, courseID)
		}
		return nil, err
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d is not enrolled in course %d", ErrNotFound, userID, courseID)
		}
		return nil, err
	}

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		completed, err := decodeIDSet(enrollment.CompletedLessons)
		if err != nil {
			return err
		}
		updated, changed := addToSet(completed, lessonID)
		if !changed {
			return nil
		}

		encoded, err := encodeIDSet(updated)
		if err != nil {
			return err
		}
		enrollment.CompletedLessons = encoded

		if course.LessonCount > 0 {
			enrollment.Progress = 100 * float64(len(updated)) / float64(course.LessonCount)
		}
		if enrollment.Progress >= 100 && !enrollment.IsCompleted {
			now := time.Now()
			enrollment.IsCompleted = true
			enrollment.CompletedAt = &now

			certificate := models.Certificate{
				UserID:       userID,
				CourseID:     courseID,
				SerialNumber: uuid.NewString(),
				IssuedAt:     now,
			}
			if err := tx.Create(&certificate).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
		}

		return tx.Model(&models.Enrollment{}).Where("id = ?", enrollment.ID).
			UpdateColumns(map[string]interface{}{
				"completed_lessons": enrollment.CompletedLessons,
				"progress":          enrollment.Progress,
				"is_completed":      enrollment.IsCompleted,
				"completed_at":      enrollment.CompletedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// RecomputeCourseAggregates rebuilds every derived field on a course from the
// source-of-truth tables. The nightly reconciler sweeps all courses through
// this; it also serves as the repair path if an operator ever needs one.
// It reports whether any stored value drifted from the recomputed truth.
func RecomputeCourseAggregates(db *gorm.DB, courseID uint) (bool, error) {
	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}
		return false, err
	}

	var enrollments int64
	if err := db.Model(&models.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&enrollments).Error; err != nil {
		return false, err
	}

	avg, ratings, err := averageRating(db, courseID)
	if err != nil {
		return false, err
	}

	type lessonTotals struct {
		Count    int64
		Duration int64
	}
	var lessons lessonTotals
	if err := db.Model(&models.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COUNT(*) AS count, COALESCE(SUM(duration), 0) AS duration").
		Scan(&lessons).Error; err != nil {
		return false, err
	}

	drift := course.EnrollmentCount != int(enrollments) ||
		course.Rating != avg ||
		course.RatingCount != ratings ||
		course.LessonCount != int(lessons.Count) ||
		course.Duration != int(lessons.Duration)
	if !drift {
		return false, nil
	}

	err = db.Model(&models.Course{}).Where("id = ?", courseID).
		UpdateColumns(map[string]interface{}{
			"enrollment_count": enrollments,
			"rating":           avg,
			"rating_count":     ratings,
			"lesson_count":     lessons.Count,
			"duration":         lessons.Duration,
		}).Error
	return true, err
}

// averageRating reads the mean and count over all live reviews for a course
func averageRating(db *gorm.DB, courseID uint) (float64, int, error) {
	type ratingAggregate struct {
		Avg   float64
		Count int64
	}

	var agg ratingAggregate
	err := db.Model(&models.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}

	return agg.Avg, int(agg.Count), nil
}

// decodeIDSet parses a JSON id array column
func decodeIDSet(raw datatypes.JSON) ([]uint, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("corrupt id set %q: %w", string(raw), err)
	}
	return ids, nil
}

// encodeIDSet serializes an id set back into its JSON column form
func encodeIDSet(ids []uint) (datatypes.JSON, error) {
	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}

// addToSet appends id only if absent, reporting whether the set changed
func addToSet(ids []uint, id uint) ([]uint, bool) {
	for _, existing := range ids {
		if existing == id {
			return ids, false
		}
	}
	return append(ids, id), true
}
