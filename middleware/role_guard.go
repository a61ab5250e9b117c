package middleware

import "github.com/gofiber/fiber/v2"

// RoleGuard hanya meloloskan request dengan userRole di daftar allowed.
// Dipasang setelah JWTMiddleware.
func RoleGuard(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Akses ditolak"})
	}
}
