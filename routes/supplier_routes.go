package routes

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/controllers"
	"bakery-api/middleware"
)

func SupplierRoutes(api fiber.Router) {
	supplier := api.Group("/supplier")
	supplier.Post("/", middleware.RoleGuard("admin"), controllers.CreateSupplier)
	supplier.Get("/", controllers.ListSupplier)
	supplier.Get("/search", controllers.SearchSupplier)
}
