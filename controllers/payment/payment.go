package controllers

import (
	"errors"
	"log"

	"lms/middleware"
	"lms/models"
	"lms/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Controller serves the payment endpoints. Payments are stored records only;
// no gateway is called from here.
type Controller struct {
	Db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{Db: db}
}

// allowedTransitions lists the legal status moves
var allowedTransitions = map[string][]string{
	models.PaymentPending:   {models.PaymentCompleted, models.PaymentFailed},
	models.PaymentCompleted: {models.PaymentRefunded},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Checkout opens a pending payment for a course and hands the reference back
func (ctrl *Controller) Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCheckout").(*struct {
		CourseID uint   `json:"course_id"`
		Currency string `json:"currency"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := ctrl.Db.Where("id = ? AND is_published = ? AND is_deleted = ?", reqData.CourseID, true, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	payment := models.Payment{
		UserID:    userID,
		CourseID:  course.ID,
		Amount:    course.Price,
		Currency:  reqData.Currency,
		Reference: uuid.NewString(),
		Status:    models.PaymentPending,
	}

	if err := ctrl.Db.Create(&payment).Error; err != nil {
		log.Printf("persistence failure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment created successfully!", payment)
}

// UpdateStatus moves a payment along its lifecycle; anything outside
// PENDING → COMPLETED|FAILED and COMPLETED → REFUNDED is rejected
func (ctrl *Controller) UpdateStatus(c *fiber.Ctx) error {
	reference := c.Params("reference")

	reqData, ok := c.Locals("validatedStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var payment models.Payment
	if err := ctrl.Db.Where("reference = ? AND is_deleted = ?", reference, false).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
		}
		log.Printf("persistence failure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment!", nil)
	}

	if !transitionAllowed(payment.Status, reqData.Status) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			"Cannot move payment from "+payment.Status+" to "+reqData.Status+"!", nil)
	}

	payment.Status = reqData.Status
	if err := ctrl.Db.Model(&payment).UpdateColumn("status", payment.Status).Error; err != nil {
		log.Printf("persistence failure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status updated successfully!", payment)
}

// GetUserPayments lists the calling user's payments, newest first
func (ctrl *Controller) GetUserPayments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", pagination.DefaultPage)
	limit := c.QueryInt("limit", pagination.DefaultLimit)

	var payments []models.Payment
	query := ctrl.Db.Model(&models.Payment{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	result, err := pagination.List(query, "created_at desc", page, limit, &payments)
	if err != nil {
		var invalid pagination.ErrInvalidParams
		if errors.As(err, &invalid) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, invalid.Error(), nil)
		}
		log.Printf("persistence failure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", result)
}
