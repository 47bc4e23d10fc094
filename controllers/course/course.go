package controllers

import (
	"lms/middleware"
	"lms/models"
	"lms/pagination"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses, newest first, paginated
func (ctrl *Controller) GetAllCourses(c *fiber.Ctx) error {
	page, limit := listParams(c)

	var courses []models.Course
	query := ctrl.Db.Model(&models.Course{}).Where("is_published = ? AND is_deleted = ?", true, false)

	result, err := pagination.List(query, "created_at desc", page, limit, &courses)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetCoursesByInstructor lists the courses taught by one instructor
func (ctrl *Controller) GetCoursesByInstructor(c *fiber.Ctx) error {
	instructorID := c.Locals("instructorID").(uint)
	page, limit := listParams(c)

	var courses []models.Course
	query := ctrl.Db.Model(&models.Course{}).
		Where("instructor_id = ? AND is_published = ? AND is_deleted = ?", instructorID, true, false)

	result, err := pagination.List(query, "created_at desc", page, limit, &courses)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetCourseDetails returns one course with its lessons in display order
func (ctrl *Controller) GetCourseDetails(c *fiber.Ctx) error {
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

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":  course,
		"lessons": lessons,
	})
}

// CreateCourse creates a course owned by the calling instructor
func (ctrl *Controller) CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Price       float64 `json:"price"`
		IsPublished bool    `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Price:        reqData.Price,
		InstructorID: userID,
		IsPublished:  reqData.IsPublished,
	}

	if err := ctrl.Db.Create(&course).Error; err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}
