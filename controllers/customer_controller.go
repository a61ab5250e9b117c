package controllers

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/models"
	"bakery-api/repository"
)

// POST /api/customer (admin only)
func CreateCustomer(c *fiber.Ctx) error {
	var cu models.Customer
	if err := c.BodyParser(&cu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if cu.KodeCustomer == "" || cu.NamaCustomer == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "kode_customer dan nama_customer wajib"})
	}
	if err := masterSvc.CreateCustomer(c.Context(), &cu); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Customer dibuat"})
}

// GET /api/customer?q=&page=&size=
func ListCustomer(c *fiber.Ctx) error {
	q := c.Query("q", "")
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 50)
	list, err := repository.ListCustomer(q, page, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil customer"})
	}
	if list == nil {
		list = []models.Customer{}
	}
	return c.JSON(list)
}

// GET /api/customer/search?term=
func SearchCustomer(c *fiber.Ctx) error {
	term := c.Query("term", "")
	list, err := repository.SearchCustomer(term)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mencari customer"})
	}
	if list == nil {
		list = []models.CustomerSearchResult{}
	}
	return c.JSON(list)
}
