package routes

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/controllers"
)

func TransaksiRoutes(api fiber.Router) {
	transaksi := api.Group("/transaksi")
	transaksi.Post("/pembelian", controllers.CreatePembelian)
	transaksi.Post("/barang-masuk", controllers.CreateBarangMasuk)
	transaksi.Post("/barang-keluar", controllers.CreateBarangKeluar)
	transaksi.Post("/penjualan", controllers.CreatePenjualan)
}
