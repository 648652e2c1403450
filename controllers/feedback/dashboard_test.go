package feedbackController_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	feedbackController "pfs/controllers/feedback"
	"pfs/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staffFeedbackRow = feedbackController.StaffFeedbackRow
type adminFeedbackRow = feedbackController.AdminFeedbackRow

type staffDashboardData struct {
	StaffInfo struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"staff_info"`
	Feedbacks       []staffFeedbackRow `json:"feedbacks"`
	TotalPages      int                `json:"total_pages"`
	CurrentPage     int                `json:"current_page"`
	SentimentCounts struct {
		PositiveCount int64 `json:"positive_count"`
		NeutralCount  int64 `json:"neutral_count"`
		NegativeCount int64 `json:"negative_count"`
		TotalCount    int64 `json:"total_count"`
	} `json:"sentiment_counts"`
}

type adminDashboardData struct {
	AdminInfo struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"admin_info"`
	Feedbacks   []adminFeedbackRow `json:"feedbacks"`
	TotalPages  int                `json:"total_pages"`
	CurrentPage int                `json:"current_page"`
}

func getStaffDashboard(t *testing.T, app *fiber.App, user *models.User, query string) (int, staffDashboardData) {
	t.Helper()
	resp, envelope := doRequest(t, app, user, fiber.MethodGet, "/feedback/dashboard/staff"+query, nil)
	var data staffDashboardData
	if resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.Unmarshal(envelope.Data, &data))
	}
	return resp.StatusCode, data
}

func getAdminDashboard(t *testing.T, app *fiber.App, user *models.User, query string) (int, adminDashboardData) {
	t.Helper()
	resp, envelope := doRequest(t, app, user, fiber.MethodGet, "/feedback/dashboard/admin"+query, nil)
	var data adminDashboardData
	if resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.Unmarshal(envelope.Data, &data))
	}
	return resp.StatusCode, data
}

func TestStaffDashboardPaginationClamps(t *testing.T) {
	app, db, _ := setupTestApp(t)
	author := createUser(t, db, "alice", models.RoleStaff)

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 25; i++ {
		createFeedback(t, db, author, "Electronics",
			fmt.Sprintf("Product %02d", i), "fine", models.SentimentNeutral,
			base.Add(time.Duration(i)*time.Minute))
	}

	status, data := getStaffDashboard(t, app, author, "?page=1")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, data.Feedbacks, 10)
	assert.Equal(t, 3, data.TotalPages)
	assert.Equal(t, 1, data.CurrentPage)
	// newest first
	assert.Equal(t, "Product 24", data.Feedbacks[0].ProductName)

	// out-of-range page clamps to the last page instead of erroring
	status, data = getStaffDashboard(t, app, author, "?page=99")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 3, data.CurrentPage)
	assert.Equal(t, 3, data.TotalPages)
	assert.Len(t, data.Feedbacks, 5)
	assert.Equal(t, "Product 04", data.Feedbacks[0].ProductName)
}

func TestStaffDashboardEmptyStillHasOnePage(t *testing.T) {
	app, db, _ := setupTestApp(t)
	author := createUser(t, db, "alice", models.RoleStaff)

	status, data := getStaffDashboard(t, app, author, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, data.Feedbacks)
	assert.Equal(t, 1, data.TotalPages)
	assert.Equal(t, 1, data.CurrentPage)
	assert.Zero(t, data.SentimentCounts.TotalCount)
}

func TestStaffDashboardScopedToOwnRecords(t *testing.T) {
	app, db, _ := setupTestApp(t)
	alice := createUser(t, db, "alice", models.RoleStaff)
	bob := createUser(t, db, "bob", models.RoleStaff)

	createFeedback(t, db, alice, "Books", "Atlas", "fine", models.SentimentNeutral, time.Now())
	createFeedback(t, db, bob, "Books", "Globe", "fine", models.SentimentNeutral, time.Now())

	status, data := getStaffDashboard(t, app, alice, "")
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, data.Feedbacks, 1)
	assert.Equal(t, "Atlas", data.Feedbacks[0].ProductName)
	assert.Equal(t, "alice test", data.StaffInfo.Name)
	assert.Equal(t, "alice@example.com", data.StaffInfo.Email)
}

func TestStaffDashboardSentimentCountsFollowFilters(t *testing.T) {
	app, db, _ := setupTestApp(t)
	author := createUser(t, db, "alice", models.RoleStaff)

	now := time.Now()
	createFeedback(t, db, author, "Electronics", "Camera One", "sharp lens", models.SentimentPositive, now)
	createFeedback(t, db, author, "Electronics", "Camera Two", "blurry mess", models.SentimentNegative, now)
	createFeedback(t, db, author, "Electronics", "Tripod", "the camera mount wobbles", models.SentimentNegative, now)
	createFeedback(t, db, author, "Books", "Cookbook", "fine", models.SentimentNeutral, now)

	// substring search is case-insensitive and spans product name and text
	status, data := getStaffDashboard(t, app, author, "?search=CAMERA")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, data.Feedbacks, 3)
	assert.Equal(t, int64(1), data.SentimentCounts.PositiveCount)
	assert.Equal(t, int64(2), data.SentimentCounts.NegativeCount)
	assert.Equal(t, int64(0), data.SentimentCounts.NeutralCount)
	assert.Equal(t, int64(3), data.SentimentCounts.TotalCount)

	// category filter is exact-match
	status, data = getStaffDashboard(t, app, author, "?category=Books")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, data.Feedbacks, 1)
	assert.Equal(t, int64(1), data.SentimentCounts.NeutralCount)
	assert.Equal(t, int64(1), data.SentimentCounts.TotalCount)
}

func TestAdminDashboardSeesAllAndSearchesUsernames(t *testing.T) {
	app, db, _ := setupTestApp(t)
	admin := createUser(t, db, "root", models.RoleAdmin)
	alice := createUser(t, db, "alicesmith", models.RoleStaff)
	bob := createUser(t, db, "bob", models.RoleStaff)

	createFeedback(t, db, alice, "Books", "Atlas", "fine", models.SentimentNeutral, time.Now())
	createFeedback(t, db, bob, "Books", "Globe", "fine", models.SentimentNeutral, time.Now())

	status, data := getAdminDashboard(t, app, admin, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, data.Feedbacks, 2)
	assert.Equal(t, "root test", data.AdminInfo.Name)

	// author columns are present
	for _, row := range data.Feedbacks {
		assert.NotEmpty(t, row.Username)
		assert.NotEmpty(t, row.Email)
	}

	// search matches the author's username as well
	status, data = getAdminDashboard(t, app, admin, "?search=alice")
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, data.Feedbacks, 1)
	assert.Equal(t, "alicesmith", data.Feedbacks[0].Username)
	assert.Equal(t, "Atlas", data.Feedbacks[0].ProductName)
}

func TestDashboardRejectsInvalidPage(t *testing.T) {
	app, db, _ := setupTestApp(t)
	author := createUser(t, db, "alice", models.RoleStaff)

	status, _ := getStaffDashboard(t, app, author, "?page=0")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
