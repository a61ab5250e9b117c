package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bakery-api/repository"
	"bakery-api/service"
)

var (
	masterSvc    = service.NewMasterService(repository.Store{})
	transaksiSvc = service.NewTransaksiService(repository.Store{}, repository.Store{}, repository.Store{})
)

// serviceError memetakan error domain ke status HTTP:
// referensi master hilang -> 400 (request tidak valid, bukan 404),
// duplikat kode/email -> 409, stok kurang -> 400, sisanya 500.
func serviceError(c *fiber.Ctx, err error) error {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": nf.Error()})
	}
	var dup *service.DuplicateError
	if errors.As(err, &dup) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": dup.Error()})
	}
	var stok *service.InsufficientStockError
	if errors.As(err, &stok) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": stok.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Terjadi kesalahan server"})
}
