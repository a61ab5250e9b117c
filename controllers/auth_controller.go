package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"bakery-api/models"
	"bakery-api/repository"
	"bakery-api/utils"
)

// Login godoc
//
//	@Summary		Login
//	@Description	Login dengan email & password, mengembalikan bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.LoginInput	true	"Kredensial"
//	@Success		200		{object}	models.TokenResponse
//	@Failure		401		{object}	map[string]interface{}
//	@Router			/api/auth/login [post]
func Login(c *fiber.Ctx) error {
	var body models.LoginInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}

	user, err := repository.GetUserByEmail(body.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Terjadi kesalahan server"})
	}
	if user == nil || !utils.VerifyPassword(body.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Email atau password salah"})
	}

	token, err := utils.GenerateToken(user.Email, user.Role, user.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat token"})
	}
	return c.JSON(models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Register godoc
//
//	@Summary		Register user baru
//	@Description	Membuat user baru dengan role admin/staff (admin only)
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.RegisterInput	true	"Data user"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		403		{object}	map[string]interface{}
//	@Failure		409		{object}	map[string]interface{}
//	@Router			/api/auth/register [post]
func Register(c *fiber.Ctx) error {
	var body models.RegisterInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if body.Email == "" || body.Password == "" || body.Name == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "email, password, name wajib"})
	}
	if body.Role != "admin" && body.Role != "staff" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Role harus admin atau staff"})
	}

	existing, err := repository.GetUserByEmail(body.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Terjadi kesalahan server"})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email sudah terdaftar"})
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal hash password"})
	}
	now := time.Now().UTC()
	user := models.User{
		Email:        body.Email,
		PasswordHash: hash,
		Name:         body.Name,
		Role:         body.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repository.CreateUser(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat user"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User berhasil dibuat"})
}
