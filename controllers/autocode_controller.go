package controllers

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/repository"
)

// GetAutocode godoc
//
//	@Summary		Autocode
//	@Description	Mengambil kode berikutnya untuk barang/supplier/customer/invoice/sales
//	@Tags			Autocode
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jenis	path		string	true	"barang | supplier | customer | invoice | sales"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/api/autocode/{jenis} [get]
func GetAutocode(c *fiber.Ctx) error {
	jenis := c.Params("jenis")
	if _, ok := repository.Autocodes[jenis]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Jenis autocode tidak dikenal"})
	}
	kode, err := repository.NextCode(jenis)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal generate kode"})
	}
	return c.JSON(fiber.Map{"kode": kode})
}
