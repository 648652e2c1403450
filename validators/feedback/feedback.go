package feedbackValidator

import (
	"strings"

	"pfs/middleware"
	"pfs/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitFeedback validates the create payload
func SubmitFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category     string `json:"category"`
			ProductName  string `json:"product_name"`
			FeedbackText string `json:"feedback_text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Category = strings.TrimSpace(reqData.Category)
		if reqData.Category == "" {
			errors["category"] = "Category is required!"
		} else if !models.IsValidCategory(reqData.Category) {
			errors["category"] = "Invalid category! Allowed: " + strings.Join(models.FeedbackCategories, ", ")
		}

		reqData.ProductName = strings.TrimSpace(reqData.ProductName)
		if reqData.ProductName == "" {
			errors["product_name"] = "Product name is required!"
		} else if len(reqData.ProductName) > 255 {
			errors["product_name"] = "Product name must not exceed 255 characters!"
		}

		reqData.FeedbackText = strings.TrimSpace(reqData.FeedbackText)
		if reqData.FeedbackText == "" {
			errors["feedback_text"] = "Feedback text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}

// UpdateFeedback validates the partial edit payload. Only category,
// product_name and feedback_text are mutable.
func UpdateFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category     *string `json:"category"`
			ProductName  *string `json:"product_name"`
			FeedbackText *string `json:"feedback_text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Category != nil {
			*reqData.Category = strings.TrimSpace(*reqData.Category)
			if !models.IsValidCategory(*reqData.Category) {
				errors["category"] = "Invalid category! Allowed: " + strings.Join(models.FeedbackCategories, ", ")
			}
		}
		if reqData.ProductName != nil {
			*reqData.ProductName = strings.TrimSpace(*reqData.ProductName)
			if *reqData.ProductName == "" {
				errors["product_name"] = "Product name must not be blank!"
			} else if len(*reqData.ProductName) > 255 {
				errors["product_name"] = "Product name must not exceed 255 characters!"
			}
		}
		if reqData.FeedbackText != nil {
			*reqData.FeedbackText = strings.TrimSpace(*reqData.FeedbackText)
			if *reqData.FeedbackText == "" {
				errors["feedback_text"] = "Feedback text must not be blank!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedbackUpdate", reqData)
		return c.Next()
	}
}

// DashboardQuery validates the shared dashboard query parameters
func DashboardQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Search   *string `query:"search"`
			Category *string `query:"category"`
			Page     *int    `query:"page"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDashboardQuery", reqData)
		return c.Next()
	}
}
