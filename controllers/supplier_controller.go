package controllers

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/models"
	"bakery-api/repository"
)

// POST /api/supplier (admin only)
func CreateSupplier(c *fiber.Ctx) error {
	var s models.Supplier
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if s.KodeSupplier == "" || s.NamaSupplier == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "kode_supplier dan nama_supplier wajib"})
	}
	if err := masterSvc.CreateSupplier(c.Context(), &s); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Supplier dibuat"})
}

// GET /api/supplier?q=&page=&size=
func ListSupplier(c *fiber.Ctx) error {
	q := c.Query("q", "")
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 50)
	list, err := repository.ListSupplier(q, page, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil supplier"})
	}
	if list == nil {
		list = []models.Supplier{}
	}
	return c.JSON(list)
}

// GET /api/supplier/search?term=
func SearchSupplier(c *fiber.Ctx) error {
	term := c.Query("term", "")
	list, err := repository.SearchSupplier(term)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mencari supplier"})
	}
	if list == nil {
		list = []models.SupplierSearchResult{}
	}
	return c.JSON(list)
}
