package feedbackController

import (
	"errors"
	"log"

	"pfs/database"
	"pfs/middleware"
	"pfs/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ActiveUsers lists every active staff account.
func ActiveUsers(c *fiber.Ctx) error {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("is_active = ? AND role = ?", true, models.RoleStaff).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch active users!", nil)
	}

	rows := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		rows = append(rows, fiber.Map{
			"username":    u.Username,
			"email":       u.Email,
			"date_joined": u.CreatedAt,
			"role":        u.Role,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active users.", fiber.Map{
		"active_users": rows,
	})
}

// AdminInfo returns the requester's display name and email when they hold an
// elevated role. Unexpected storage errors surface here with their raw
// message, unlike every other handler.
func AdminInfo(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if user.Role != models.RoleStaff && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized: insufficient privileges!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account info.", fiber.Map{
		"name":  user.DisplayName(),
		"email": user.Email,
	})
}

// DeleteUser removes a staff account by username. Accounts with any other
// role are reported as not found, which keeps admin accounts undeletable
// through this endpoint.
func DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")

	db := database.Database.Db

	var target models.User
	if err := db.Where("username = ? AND role = ?", username, models.RoleStaff).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found or unauthorized.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	if err := db.Delete(&target).Error; err != nil {
		log.Printf("Error deleting user %s: %v", target.Username, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
