package feedbackController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pfs/config"
	"pfs/database"
	"pfs/middleware"
	"pfs/models"
	feedbackRoutes "pfs/routers/feedbackRoutes"
	"pfs/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupTestApp wires the feedback routes against a fresh in-memory database
// and stubs out email delivery, capturing every message.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB, *[]capturedMail) {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	var sent []capturedMail
	orig := utils.EmailSender
	utils.EmailSender = func(to, subject, plainBody, htmlBody string) error {
		sent = append(sent, capturedMail{To: to, Subject: subject, Body: plainBody})
		return nil
	}
	t.Cleanup(func() { utils.EmailSender = orig })

	app := fiber.New()
	feedbackRoutes.SetupFeedbackRoutes(app)

	return app, db, &sent
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Name:     username + " test",
		Email:    username + "@example.com",
		Role:     role,
		Password: "not-a-real-hash",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createFeedback(t *testing.T, db *gorm.DB, user *models.User, category, product, text, sentiment string, createdAt time.Time) *models.Feedback {
	t.Helper()

	feedback := models.Feedback{
		UserID:       user.ID,
		Category:     category,
		ProductName:  product,
		FeedbackText: text,
		Sentiment:    sentiment,
	}
	feedback.CreatedAt = createdAt
	require.NoError(t, db.Create(&feedback).Error)
	return &feedback
}

func doRequest(t *testing.T, app *fiber.App, user *models.User, method, target string, body interface{}) (*http.Response, apiEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		token, err := middleware.GenerateJWT(user.ID, user.Username, user.Name, user.Role, user.Email)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}
