package routes

import (
	"github.com/gofiber/fiber/v2"

	"bakery-api/controllers"
	"bakery-api/middleware"
)

func LaporanRoutes(api fiber.Router) {
	laporan := api.Group("/laporan")
	laporan.Get("/pembelian", controllers.LaporanPembelian)
	laporan.Get("/barang-masuk", controllers.LaporanBarangMasuk)
	laporan.Get("/barang-keluar", controllers.LaporanBarangKeluar)
	laporan.Get("/penjualan", controllers.LaporanPenjualan)
	laporan.Get("/stock", controllers.LaporanStock)
	// Export dibuka via window.open; JWTMiddleware menerima token via query.
	laporan.Get("/export/excel", middleware.RoleGuard("admin"), controllers.ExportExcel)
}
