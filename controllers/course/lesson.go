package controllers

import (
	"lms/middleware"
	"lms/models"
	"lms/services/catalog"

	"github.com/gofiber/fiber/v2"
)

// AddLesson appends a lesson to a course and folds its duration into the
// course totals
func (ctrl *Controller) AddLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		VideoURL string `json:"video_url"`
		Order    int    `json:"order"`
		Duration int    `json:"duration"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := models.Lesson{
		Title:    reqData.Title,
		Content:  reqData.Content,
		VideoURL: reqData.VideoURL,
		Order:    reqData.Order,
		Duration: reqData.Duration,
	}

	if err := catalog.AddLesson(ctrl.Db, courseID, &lesson); err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

// GetLessons lists a course's lessons in display order
func (ctrl *Controller) GetLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []models.Lesson
	if err := ctrl.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}
