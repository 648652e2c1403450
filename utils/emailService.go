package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"pfs/config"
	"pfs/models"

	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmailSender performs the actual delivery. It is a package variable so tests
// can stub it out.
var EmailSender = sendGridSend

func sendGridSend(to, subject, plainBody, htmlBody string) error {
	from := mail.NewEmail("Feedback Desk", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainBody, htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: status %d", to, response.StatusCode)
		return fmt.Errorf("sendgrid rejected message: status %d", response.StatusCode)
	}
	return nil
}

// SendEmail delivers a message through the configured SendGrid account.
func SendEmail(to, subject, plainBody string) error {
	return EmailSender(to, subject, plainBody, getEmailTemplate(subject, plainBody))
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1F2A44; padding: 24px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 22px; }
			.content { padding: 30px; color: #1F2A44; line-height: 1.6; white-space: pre-line; }
			.footer { background-color: #F6F6F6; padding: 16px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>FEEDBACK DESK</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Automated message from the feedback service.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendNegativeFeedbackAlert notifies the operator address about a negative
// feedback record and writes an audit row inside the caller's transaction.
// A delivery failure is returned to the caller so the surrounding save can be
// rolled back.
func SendNegativeFeedbackAlert(tx *gorm.DB, feedback *models.Feedback, author *models.User) error {
	subject := "Negative Feedback Alert"
	body := fmt.Sprintf(
		"Negative feedback received:\n\n"+
			"User: %s\n"+
			"Email: %s\n"+
			"Category: %s\n"+
			"Product: %s\n\n"+
			"Feedback: %s",
		author.Username, author.Email, feedback.Category, feedback.ProductName, feedback.FeedbackText,
	)

	recipient := config.AppConfig.AdminAlertEmail
	if err := EmailSender(recipient, subject, body, getEmailTemplate(subject, body)); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"user":          author.Username,
		"email":         author.Email,
		"category":      feedback.Category,
		"product_name":  feedback.ProductName,
		"feedback_text": feedback.FeedbackText,
		"sentiment":     feedback.Sentiment,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	entry := models.NotificationLog{
		Reference:  uuid.NewString(),
		FeedbackID: feedback.ID,
		Recipient:  recipient,
		Channel:    models.ChannelEmail,
		Payload:    datatypes.JSON(raw),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	// Ops webhook is best effort and never blocks or fails the save.
	if config.AppConfig.AlertWebhookURL != "" {
		go PostAlertWebhook(payload)
	}

	return nil
}
