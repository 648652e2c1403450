package feedbackController

import (
	"strings"
	"time"

	"pfs/database"
	"pfs/middleware"
	"pfs/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const dashboardPageSize = 10

type staffFeedbackRow struct {
	ID           uint      `json:"id"`
	Category     string    `json:"category"`
	ProductName  string    `json:"product_name"`
	FeedbackText string    `json:"feedback_text"`
	Sentiment    string    `json:"sentiment"`
	CreatedAt    time.Time `json:"created_at"`
}

type adminFeedbackRow struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Category     string    `json:"category"`
	ProductName  string    `json:"product_name"`
	FeedbackText string    `json:"feedback_text"`
	Sentiment    string    `json:"sentiment"`
	CreatedAt    time.Time `json:"created_at"`
}

type sentimentCounts struct {
	PositiveCount int64
	NegativeCount int64
	NeutralCount  int64
	TotalCount    int64
}

// feedbackScope builds the filtered queryset shared by both dashboards.
// ownerID nil means all records (admin scope); the admin scope additionally
// matches the author's username in search.
func feedbackScope(db *gorm.DB, ownerID *uint, search, category string) *gorm.DB {
	query := db.Model(&models.Feedback{})

	if ownerID != nil {
		query = query.Where("feedbacks.user_id = ?", *ownerID)
	} else {
		query = query.Joins("JOIN users ON users.id = feedbacks.user_id")
	}

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		if ownerID != nil {
			query = query.Where(
				"LOWER(feedbacks.product_name) LIKE ? OR LOWER(feedbacks.feedback_text) LIKE ?",
				pattern, pattern,
			)
		} else {
			query = query.Where(
				"LOWER(users.username) LIKE ? OR LOWER(feedbacks.product_name) LIKE ? OR LOWER(feedbacks.feedback_text) LIKE ?",
				pattern, pattern, pattern,
			)
		}
	}
	if category != "" {
		query = query.Where("feedbacks.category = ?", category)
	}

	return query
}

// clampPage returns the effective page and the page count. An out-of-range
// page clamps to the nearest valid page instead of erroring, and an empty
// result set still has one page.
func clampPage(page int, total int64, pageSize int) (int, int) {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}

func dashboardParams(c *fiber.Ctx) (search, category string, page int, ok bool) {
	reqData, valid := c.Locals("validatedDashboardQuery").(*struct {
		Search   *string `query:"search"`
		Category *string `query:"category"`
		Page     *int    `query:"page"`
	})
	if !valid {
		return "", "", 0, false
	}

	page = 1
	if reqData.Search != nil {
		search = *reqData.Search
	}
	if reqData.Category != nil {
		category = *reqData.Category
	}
	if reqData.Page != nil {
		page = *reqData.Page
	}
	return search, category, page, true
}

// StaffDashboard lists the requester's own feedback with search, category
// filter and pagination. Sentiment counts are computed over the filtered set,
// not the full table.
func StaffDashboard(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	search, category, page, ok := dashboardParams(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var counts sentimentCounts
	err := feedbackScope(db, &userId, search, category).
		Select(
			"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS positive_count, "+
				"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS negative_count, "+
				"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS neutral_count, "+
				"COUNT(*) AS total_count",
			models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral,
		).
		Scan(&counts).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	page, totalPages := clampPage(page, counts.TotalCount, dashboardPageSize)

	rows := make([]staffFeedbackRow, 0, dashboardPageSize)
	err = feedbackScope(db, &userId, search, category).
		Select("id, category, product_name, feedback_text, sentiment, created_at").
		Order("created_at DESC").
		Offset((page - 1) * dashboardPageSize).
		Limit(dashboardPageSize).
		Scan(&rows).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Staff dashboard.", fiber.Map{
		"staff_info": fiber.Map{
			"name":  user.DisplayName(),
			"email": user.Email,
		},
		"feedbacks":    rows,
		"total_pages":  totalPages,
		"current_page": page,
		"sentiment_counts": fiber.Map{
			"positive_count": counts.PositiveCount,
			"neutral_count":  counts.NeutralCount,
			"negative_count": counts.NegativeCount,
			"total_count":    counts.TotalCount,
		},
	})
}

// AdminDashboard lists every user's feedback with author columns. Search
// additionally matches usernames; no sentiment counts are returned.
func AdminDashboard(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	search, category, page, ok := dashboardParams(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var total int64
	if err := feedbackScope(db, nil, search, category).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	page, totalPages := clampPage(page, total, dashboardPageSize)

	rows := make([]adminFeedbackRow, 0, dashboardPageSize)
	err := feedbackScope(db, nil, search, category).
		Select("feedbacks.id, users.username, users.email, feedbacks.category, " +
			"feedbacks.product_name, feedbacks.feedback_text, feedbacks.sentiment, feedbacks.created_at").
		Order("feedbacks.created_at DESC").
		Offset((page - 1) * dashboardPageSize).
		Limit(dashboardPageSize).
		Scan(&rows).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin dashboard.", fiber.Map{
		"admin_info": fiber.Map{
			"name":  user.DisplayName(),
			"email": user.Email,
		},
		"feedbacks":    rows,
		"total_pages":  totalPages,
		"current_page": page,
	})
}
