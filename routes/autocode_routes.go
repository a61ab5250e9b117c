package routes

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/controllers"
)

func AutocodeRoutes(api fiber.Router) {
	api.Get("/autocode/:jenis", controllers.GetAutocode)
}
