package controllers

import (
	"errors"
	"log"

	"lms/middleware"
	"lms/models"
	"lms/pagination"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller serves the blog endpoints
type Controller struct {
	Db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{Db: db}
}

// GetPublishedPosts lists published posts, newest first, paginated
func (ctrl *Controller) GetPublishedPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", pagination.DefaultPage)
	limit := c.QueryInt("limit", pagination.DefaultLimit)

	var posts []models.BlogPost
	query := ctrl.Db.Model(&models.BlogPost{}).Where("is_published = ? AND is_deleted = ?", true, false)

	result, err := pagination.List(query, "created_at desc", page, limit, &posts)
	if err != nil {
		var invalid pagination.ErrInvalidParams
		if errors.As(err, &invalid) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, invalid.Error(), nil)
		}
		log.Printf("persistence failure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blog posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog posts fetched successfully!", result)
}

// GetPostBySlug fetches one published post by its slug
func (ctrl *Controller) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post models.BlogPost
	if err := ctrl.Db.Where("slug = ? AND is_published = ? AND is_deleted = ?", slug, true, false).
		First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post fetched successfully!", post)
}

// CreatePost creates a blog post authored by the calling user
func (ctrl *Controller) CreatePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPost").(*struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Content     string `json:"content"`
		CoverImage  string `json:"cover_image"`
		IsPublished bool   `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	post := models.BlogPost{
		Title:       reqData.Title,
		Slug:        reqData.Slug,
		Content:     reqData.Content,
		CoverImage:  reqData.CoverImage,
		AuthorID:    userID,
		IsPublished: reqData.IsPublished,
	}

	if err := ctrl.Db.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A post with this slug already exists!", nil)
		}
		log.Printf("persistence failure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create blog post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Blog post created successfully!", post)
}
