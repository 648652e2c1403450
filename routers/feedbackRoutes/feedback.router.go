package feedbackRoutes

import (
	controller "pfs/controllers/feedback"
	"pfs/middleware"
	validator "pfs/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

func SetupFeedbackRoutes(app *fiber.App) {
	feedback := app.Group("/feedback")

	feedback.Post("/submit", validator.SubmitFeedback(), middleware.JWTMiddleware, controller.SubmitFeedback)
	feedback.Get("/dashboard/staff", validator.DashboardQuery(), middleware.JWTMiddleware, controller.StaffDashboard)
	feedback.Get("/dashboard/admin", validator.DashboardQuery(), middleware.JWTMiddleware, controller.AdminDashboard)
	feedback.Get("/info", middleware.JWTMiddleware, controller.AdminInfo)
	feedback.Get("/analysis", middleware.JWTMiddleware, controller.FeedbackAnalysis)
	feedback.Get("/active-users", middleware.JWTMiddleware, controller.ActiveUsers)
	feedback.Put("/:id/edit", validator.UpdateFeedback(), middleware.JWTMiddleware, controller.UpdateFeedback)
	feedback.Delete("/:id/delete", middleware.JWTMiddleware, controller.DeleteFeedback)
	feedback.Delete("/:username", middleware.JWTMiddleware, controller.DeleteUser)
}
