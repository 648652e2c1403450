package feedbackController

import (
	"time"

	"pfs/database"
	"pfs/middleware"
	"pfs/models"

	"github.com/gofiber/fiber/v2"
)

// FeedbackAnalysis reports the sentiment breakdown for the requested time
// window plus the fixed-window volume counts, which are always computed over
// their own ranges regardless of the filter. An unknown filter value falls
// back to total.
func FeedbackAnalysis(c *fiber.Ctx) error {
	db := database.Database.Db

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	scoped := db.Model(&models.Feedback{})
	switch c.Query("filter", "total") {
	case "last7days":
		scoped = scoped.Where("created_at >= ?", now.AddDate(0, 0, -7))
	case "lastmonth":
		scoped = scoped.Where("created_at >= ?", now.AddDate(0, 0, -30))
	case "today":
		scoped = scoped.Where("created_at >= ?", midnight)
	}

	var counts struct {
		Positive int64
		Negative int64
		Neutral  int64
	}
	err := scoped.Select(
		"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS positive, "+
			"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS negative, "+
			"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS neutral",
		models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral,
	).Scan(&counts).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute analysis!", nil)
	}

	var totalCount int64
	db.Model(&models.Feedback{}).Count(&totalCount)

	var lastDay, lastWeek, lastMonth int64
	db.Model(&models.Feedback{}).Where("created_at >= ?", midnight).Count(&lastDay)
	db.Model(&models.Feedback{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&lastWeek)
	db.Model(&models.Feedback{}).Where("created_at >= ?", now.AddDate(0, 0, -30)).Count(&lastMonth)

	var activeUsers int64
	db.Model(&models.User{}).Where("is_active = ? AND role = ?", true, models.RoleStaff).Count(&activeUsers)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback analysis.", fiber.Map{
		"positive":             counts.Positive,
		"negative":             counts.Negative,
		"neutral":              counts.Neutral,
		"total_count":          totalCount,
		"feedbacks_last_day":   lastDay,
		"feedbacks_last_week":  lastWeek,
		"feedbacks_last_month": lastMonth,
		"active_users_count":   activeUsers,
	})
}
