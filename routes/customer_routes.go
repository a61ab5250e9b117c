package routes

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/controllers"
	"bakery-api/middleware"
)

func CustomerRoutes(api fiber.Router) {
	customer := api.Group("/customer")
	customer.Post("/", middleware.RoleGuard("admin"), controllers.CreateCustomer)
	customer.Get("/", controllers.ListCustomer)
	customer.Get("/search", controllers.SearchCustomer)
}
