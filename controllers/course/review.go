package controllers

import (
	"lms/middleware"
	"lms/models"
	"lms/pagination"
	"lms/services/catalog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitReview records the calling user's rating for a course
func (ctrl *Controller) SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review, err := catalog.AddReview(ctrl.Db, userID, courseID, reqData.Rating, reqData.Comment)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// GetCourseReviews lists a course's reviews, newest first, with reviewer names
func (ctrl *Controller) GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	page, limit := listParams(c)

	var course models.Course
	if err := ctrl.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var reviews []models.Review
	query := ctrl.Db.Model(&models.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		})

	result, err := pagination.List(query, "created_at desc", page, limit, &reviews)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", result)
}
