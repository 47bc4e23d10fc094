package controllers

import (
	"encoding/json"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateQuiz creates a quiz with its questions for a course
func (ctrl *Controller) CreateQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title     string `json:"title"`
		Questions []struct {
			Text         string   `json:"text"`
			Options      []string `json:"options"`
			CorrectIndex int      `json:"correct_index"`
		} `json:"questions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := ctrl.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	quiz := models.Quiz{CourseID: courseID, Title: reqData.Title}

	err := ctrl.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		for i, q := range reqData.Questions {
			options, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			question := models.Question{
				QuizID:       quiz.ID,
				Text:         q.Text,
				Options:      datatypes.JSON(options),
				CorrectIndex: q.CorrectIndex,
				OrderIndex:   i,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// GetCourseQuiz returns a course's quizzes with questions, correct answers
// stripped
func (ctrl *Controller) GetCourseQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var quizzes []models.Quiz
	if err := ctrl.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&quizzes).Error; err != nil {
		return respondError(c, err)
	}

	type quizWithQuestions struct {
		models.Quiz
		Questions []models.Question `json:"questions"`
	}

	result := make([]quizWithQuestions, len(quizzes))
	for i, quiz := range quizzes {
		result[i].Quiz = quiz
		if err := ctrl.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
			Order("order_index asc").Find(&result[i].Questions).Error; err != nil {
			return respondError(c, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", result)
}

// SubmitQuiz scores the calling user's answers and records the attempt.
// Answers map question order to the chosen option index; unanswered questions
// score zero.
func (ctrl *Controller) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	quizID := c.Locals("quizID").(uint)

	reqData, ok := c.Locals("validatedQuizSubmission").(*struct {
		Answers []int `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var quiz models.Quiz
	if err := ctrl.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.Question
	if err := ctrl.Db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Order("order_index asc").Find(&questions).Error; err != nil {
		return respondError(c, err)
	}

	score := 0
	for i, question := range questions {
		if i < len(reqData.Answers) && reqData.Answers[i] == question.CorrectIndex {
			score++
		}
	}

	attempt := models.QuizAttempt{
		UserID: userID,
		QuizID: quizID,
		Score:  score,
		Total:  len(questions),
	}
	if err := ctrl.Db.Create(&attempt).Error; err != nil {
		return respondError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz submitted successfully!", attempt)
}
