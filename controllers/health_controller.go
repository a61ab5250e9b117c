package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bakery-api/config"
)

// GET / (public)
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"app": "SAE Bakery – SOP API", "status": "ok"})
}

// GET /test (public) — probe koneksi database
func TestDatabase(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	names, err := config.DB.ListCollectionNames(ctx, map[string]interface{}{})
	if err != nil {
		return c.JSON(fiber.Map{"database": "error: " + err.Error()})
	}
	return c.JSON(fiber.Map{"database": "connected", "collections": names})
}
