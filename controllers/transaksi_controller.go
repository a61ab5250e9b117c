package controllers

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/models"
)

// CreatePembelian godoc
//
//	@Summary		Catat pembelian
//	@Description	Menyimpan pembelian bahan baku dan menambah stok per item
//	@Tags			Transaksi
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			pembelian	body		models.Pembelian	true	"Data pembelian"
//	@Success		201			{object}	map[string]interface{}
//	@Failure		400			{object}	map[string]interface{}
//	@Router			/api/transaksi/pembelian [post]
func CreatePembelian(c *fiber.Ctx) error {
	var p models.Pembelian
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if p.NomorFaktur == "" || p.Tanggal == "" || p.KodeSupplier == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "nomor_faktur, tanggal, kode_supplier wajib"})
	}
	if len(p.Items) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "items wajib"})
	}
	for _, it := range p.Items {
		if it.KodeBarang == "" {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "kode_barang wajib"})
		}
		if it.Qty <= 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "qty harus lebih dari 0"})
		}
	}
	if err := transaksiSvc.RecordPembelian(c.Context(), &p); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pembelian disimpan"})
}

// POST /api/transaksi/barang-masuk
func CreateBarangMasuk(c *fiber.Ctx) error {
	var m models.BarangMasuk
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if m.Tanggal == "" || m.KodeBarang == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "tanggal dan kode_barang wajib"})
	}
	if m.Qty <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "qty harus lebih dari 0"})
	}
	if err := transaksiSvc.RecordBarangMasuk(c.Context(), &m); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Barang masuk disimpan"})
}

// POST /api/transaksi/barang-keluar
func CreateBarangKeluar(c *fiber.Ctx) error {
	var k models.BarangKeluar
	if err := c.BodyParser(&k); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if k.Tanggal == "" || k.KodeBarang == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "tanggal dan kode_barang wajib"})
	}
	if k.Qty <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "qty harus lebih dari 0"})
	}
	if err := transaksiSvc.RecordBarangKeluar(c.Context(), &k); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Barang keluar disimpan"})
}

// CreatePenjualan godoc
//
//	@Summary		Catat penjualan
//	@Description	Menyimpan penjualan dan mengurangi stok per item; seluruh baris divalidasi sebelum ada yang disimpan
//	@Tags			Transaksi
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			penjualan	body		models.Penjualan	true	"Data penjualan"
//	@Success		201			{object}	map[string]interface{}
//	@Failure		400			{object}	map[string]interface{}
//	@Router			/api/transaksi/penjualan [post]
func CreatePenjualan(c *fiber.Ctx) error {
	var j models.Penjualan
	if err := c.BodyParser(&j); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Data tidak valid"})
	}
	if j.NomorPenjualan == "" || j.Tanggal == "" || j.KodeCustomer == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "nomor_penjualan, tanggal, kode_customer wajib"})
	}
	if len(j.Items) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "items wajib"})
	}
	for _, it := range j.Items {
		if it.KodeBarang == "" {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "kode_barang wajib"})
		}
		if it.Qty <= 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "qty harus lebih dari 0"})
		}
	}
	if err := transaksiSvc.RecordPenjualan(c.Context(), &j); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Penjualan disimpan"})
}
