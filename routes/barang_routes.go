package routes

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/controllers"
	"bakery-api/middleware"
)

func BarangRoutes(api fiber.Router) {
	barang := api.Group("/barang")
	barang.Post("/", middleware.RoleGuard("admin"), controllers.CreateBarang)
	barang.Get("/", controllers.ListBarang)
	barang.Get("/search", controllers.SearchBarang)
}
