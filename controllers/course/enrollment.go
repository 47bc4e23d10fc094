package controllers

import (
	"log"

	"lms/middleware"
	"lms/models"
	"lms/pagination"
	"lms/services/catalog"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the calling user into a course
func (ctrl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	enrollment, err := catalog.Enroll(ctrl.Db, userID, courseID)
	if err != nil {
		return respondError(c, err)
	}

	// Confirmation mail must not hold up the response
	go func(userID, courseID uint) {
		var user models.User
		var course models.Course
		if ctrl.Db.First(&user, userID).Error == nil && ctrl.Db.First(&course, courseID).Error == nil {
			if err := utils.SendEnrollmentConfirmation(&user, &course); err != nil {
				log.Printf("enrollment confirmation email failed for user %d: %v", userID, err)
			}
		}
	}(userID, courseID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetUserEnrollments lists the calling user's enrollments, newest first
func (ctrl *Controller) GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	page, limit := listParams(c)

	var enrollments []models.Enrollment
	query := ctrl.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course")

	result, err := pagination.List(query, "created_at desc", page, limit, &enrollments)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// CompleteLesson marks a lesson finished for the calling user's enrollment
func (ctrl *Controller) CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	enrollment, err := catalog.CompleteLesson(ctrl.Db, userID, courseID, lessonID)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", enrollment)
}

// GetUserCertificates lists certificates earned by the calling user
func (ctrl *Controller) GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []models.Certificate
	if err := ctrl.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}
