package controllers

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/models"
	"bakery-api/repository"
)

func satuanValid(s string) bool {
	for _, v := range models.SatuanValid {
		if s == v {
			return true
		}
	}
	return false
}

func kategoriValid(k string) bool {
	for _, v := range models.KategoriValid {
		if k == v {
			return true
		}
	}
	return false
}

// CreateBarang godoc
//
//	@Summary		Create barang
//	@Description	Membuat master barang baru (admin only)
//	@Tags			Barang
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			barang	body		models.Barang	true	"Data barang"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		409		{object}	map[string]interface{}
//	@Router			/api/barang [post]
func CreateBarang(c *fiber.Ctx) error {
	var b models.Barang
	if err := c.BodyParser(&b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if b.KodeBarang == "" || b.NamaBarang == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "kode_barang dan nama_barang wajib"})
	}
	if !satuanValid(b.Satuan) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Satuan harus Gram, Kg, Ml, atau Pcs"})
	}
	if !kategoriValid(b.Kategori) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Kategori harus Bahan Baku atau Barang Jadi"})
	}
	if err := masterSvc.CreateBarang(c.Context(), &b); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Barang dibuat"})
}

// GET /api/barang?q=&page=&size=
func ListBarang(c *fiber.Ctx) error {
	q := c.Query("q", "")
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 50)
	list, err := repository.ListBarang(q, page, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil barang"})
	}
	if list == nil {
		list = []models.Barang{}
	}
	return c.JSON(list)
}

// GET /api/barang/search?term=
func SearchBarang(c *fiber.Ctx) error {
	term := c.Query("term", "")
	list, err := repository.SearchBarang(term)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mencari barang"})
	}
	if list == nil {
		list = []models.BarangSearchResult{}
	}
	return c.JSON(list)
}
