package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bakery-api/models"
	"bakery-api/utils"
)

// UserLookup memeriksa bahwa subject token masih terdaftar di koleksi users.
// Diset dari main ke repository.GetUserByEmail; test dapat menggantinya.
var UserLookup func(email string) (*models.User, error)

// JWTMiddleware membaca JWT dari Authorization header.
// Jika tidak ada, token dari query string (?token=...) juga diterima agar
// endpoint download yang dibuka via window.open tetap bisa terautentikasi.
func JWTMiddleware(c *fiber.Ctx) error {
	tokenStr := ""

	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if tokenStr == "" {
		tokenStr = c.Query("token", "")
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak ditemukan atau format salah",
		})
	}

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak valid atau kadaluarsa",
		})
	}

	// Subject yang sudah tidak terdaftar dianggap token basi.
	if UserLookup != nil {
		user, err := UserLookup(claims.Email)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User tidak ditemukan",
			})
		}
	}

	c.Locals("userEmail", claims.Email)
	c.Locals("userRole", claims.Role)
	c.Locals("userNama", claims.Name)

	return c.Next()
}
