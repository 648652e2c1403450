package feedbackController

import (
	"errors"
	"log"

	"pfs/database"
	"pfs/middleware"
	"pfs/models"
	"pfs/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitFeedback creates a feedback record for the authenticated user. The
// author is always taken from the token, never from the payload. A negative
// classification triggers the operator alert inside the same transaction, so
// a failed alert rolls the record back.
func SubmitFeedback(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedFeedback").(*struct {
		Category     string `json:"category"`
		ProductName  string `json:"product_name"`
		FeedbackText string `json:"feedback_text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	feedback := models.Feedback{
		UserID:       userId,
		Category:     reqData.Category,
		ProductName:  reqData.ProductName,
		FeedbackText: reqData.FeedbackText,
		Sentiment:    utils.AnalyzeSentiment(reqData.FeedbackText),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&feedback).Error; err != nil {
			return err
		}
		if feedback.Sentiment == models.SentimentNegative {
			return utils.SendNegativeFeedbackAlert(tx, &feedback, &user)
		}
		return nil
	})
	if err != nil {
		log.Printf("Error submitting feedback: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully.", feedback)
}

// UpdateFeedback applies a partial edit to one of the requester's own
// records. Sentiment is recomputed from the current text on every save.
// A record owned by someone else is reported as not found.
func UpdateFeedback(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found or unauthorized.", nil)
	}

	reqData, ok := c.Locals("validatedFeedbackUpdate").(*struct {
		Category     *string `json:"category"`
		ProductName  *string `json:"product_name"`
		FeedbackText *string `json:"feedback_text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var feedback models.Feedback
	if err := db.Where("id = ? AND user_id = ?", id, userId).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found or unauthorized.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	if reqData.Category != nil {
		feedback.Category = *reqData.Category
	}
	if reqData.ProductName != nil {
		feedback.ProductName = *reqData.ProductName
	}
	if reqData.FeedbackText != nil {
		feedback.FeedbackText = *reqData.FeedbackText
	}
	feedback.Sentiment = utils.AnalyzeSentiment(feedback.FeedbackText)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&feedback).Error; err != nil {
			return err
		}
		if feedback.Sentiment == models.SentimentNegative {
			return utils.SendNegativeFeedbackAlert(tx, &feedback, &user)
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating feedback %d: %v", feedback.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback updated successfully.", feedback)
}

// DeleteFeedback removes one of the requester's own records. Ownership is
// masked the same way as UpdateFeedback.
func DeleteFeedback(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found or unauthorized.", nil)
	}

	db := database.Database.Db

	var feedback models.Feedback
	if err := db.Where("id = ? AND user_id = ?", id, userId).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found or unauthorized.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	if err := db.Delete(&feedback).Error; err != nil {
		log.Printf("Error deleting feedback %d: %v", feedback.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback deleted successfully.", nil)
}
