package routes

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/controllers"
	"bakery-api/middleware"
)

func AuthRoutes(api fiber.Router) {
	auth := api.Group("/auth")
	auth.Post("/login", controllers.Login)
	auth.Post("/register", middleware.RoleGuard("admin"), controllers.Register)
}
