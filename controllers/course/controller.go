package controllers

import (
	"errors"
	"log"

	"lms/middleware"
	"lms/pagination"
	"lms/services/catalog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller serves the course, lesson, enrollment, review and quiz endpoints
type Controller struct {
	Db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{Db: db}
}

// listParams reads the page/limit query parameters. Absent or non-numeric
// values fall back to the defaults; out-of-range values are caught by the
// pagination calculator before any query runs.
func listParams(c *fiber.Ctx) (int, int) {
	return c.QueryInt("page", pagination.DefaultPage), c.QueryInt("limit", pagination.DefaultLimit)
}

// respondError translates service errors into the HTTP taxonomy: validation
// and conflicts are 400, missing entities 404, everything else is logged and
// answered with a generic 500 so storage internals never leak.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, catalog.ErrConflict):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, catalog.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	default:
		var invalid pagination.ErrInvalidParams
		if errors.As(err, &invalid) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, invalid.Error(), nil)
		}
		log.Printf("persistence failure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again later!", nil)
	}
}
