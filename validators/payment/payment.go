package paymentValidator

import (
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// Checkout validates the checkout request
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint   `json:"course_id"`
			Currency string `json:"currency"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Currency = strings.TrimSpace(strings.ToUpper(reqData.Currency))

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.Currency == "" {
			reqData.Currency = "USD"
		} else if len(reqData.Currency) != 3 {
			errors["currency"] = "Currency must be a 3-letter code!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}

// UpdateStatus validates the status transition request
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.TrimSpace(strings.ToUpper(reqData.Status))

		switch reqData.Status {
		case models.PaymentCompleted, models.PaymentFailed, models.PaymentRefunded:
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be COMPLETED, FAILED, or REFUNDED!", nil)
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
