package authRoutes

import (
	controller "pfs/controllers/auth"
	validator "pfs/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", validator.Register(), controller.Register)
	auth.Post("/login", validator.Login(), controller.Login)
}
