package routes

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/controllers"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/", controllers.Root)
	app.Get("/test", controllers.TestDatabase)

	api := app.Group("/api")
	AuthRoutes(api)
	BarangRoutes(api)
	SupplierRoutes(api)
	CustomerRoutes(api)
	TransaksiRoutes(api)
	LaporanRoutes(api)
	AutocodeRoutes(api)
}
