package utils

import (
	"log"
	"time"

	"pfs/config"

	"github.com/go-resty/resty/v2"
)

// PostAlertWebhook pushes a negative feedback alert to the configured ops
// webhook. Failures are logged only.
func PostAlertWebhook(payload map[string]interface{}) {
	url := config.AppConfig.AlertWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		log.Printf("Error posting alert webhook: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Alert webhook returned status %d", resp.StatusCode())
	}
}
