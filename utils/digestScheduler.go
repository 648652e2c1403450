package utils

import (
	"fmt"
	"log"
	"time"

	"pfs/config"
	"pfs/database"
	"pfs/models"

	"github.com/robfig/cron/v3"
)

// logDigest logs digest scheduler events with timestamp
func logDigest(message string) {
	log.Printf("[DIGEST-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartDigestScheduler schedules the daily feedback summary email.
func StartDigestScheduler() {
	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.DigestCron, SendDailyDigest); err != nil {
		logDigest("Invalid DIGEST_CRON expression: " + err.Error())
		return
	}
	c.Start()
	logDigest("Scheduled daily digest (" + config.AppConfig.DigestCron + ")")
}

// SendDailyDigest emails the operator address a summary of feedback volume
// and sentiment since local midnight.
func SendDailyDigest() {
	db := database.Database.Db
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var counts struct {
		Positive int64
		Negative int64
		Neutral  int64
		Total    int64
	}
	err := db.Model(&models.Feedback{}).
		Where("created_at >= ?", midnight).
		Select(
			"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS positive, "+
				"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS negative, "+
				"COUNT(CASE WHEN sentiment = ? THEN 1 END) AS neutral, "+
				"COUNT(*) AS total",
			models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral,
		).
		Scan(&counts).Error
	if err != nil {
		logDigest("Error computing digest counts: " + err.Error())
		return
	}

	var allTime int64
	db.Model(&models.Feedback{}).Count(&allTime)

	subject := "Daily Feedback Digest - " + now.Format("02 Jan 2006")
	body := fmt.Sprintf(
		"Feedback received since midnight: %d\n\n"+
			"Positive: %d\nNegative: %d\nNeutral: %d\n\n"+
			"All-time feedback count: %d",
		counts.Total, counts.Positive, counts.Negative, counts.Neutral, allTime,
	)

	if err := SendEmail(config.AppConfig.AdminAlertEmail, subject, body); err != nil {
		logDigest("Error sending daily digest: " + err.Error())
		return
	}
	logDigest("Daily digest sent")
}
