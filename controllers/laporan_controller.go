package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"

	"bakery-api/models"
	"bakery-api/repository"
)

// GET /api/laporan/pembelian?tanggal=&supplier=
func LaporanPembelian(c *fiber.Ctx) error {
	filter := bson.M{}
	if tanggal := c.Query("tanggal", ""); tanggal != "" {
		filter["tanggal"] = tanggal
	}
	if supplier := c.Query("supplier", ""); supplier != "" {
		filter["kode_supplier"] = supplier
	}
	list, err := repository.ListPembelian(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil laporan pembelian"})
	}
	if list == nil {
		list = []models.Pembelian{}
	}
	return c.JSON(list)
}

// GET /api/laporan/barang-masuk?tanggal=&nama=
func LaporanBarangMasuk(c *fiber.Ctx) error {
	filter := bson.M{}
	if tanggal := c.Query("tanggal", ""); tanggal != "" {
		filter["tanggal"] = tanggal
	}
	if nama := c.Query("nama", ""); nama != "" {
		filter["nama_barang"] = bson.M{"$regex": nama, "$options": "i"}
	}
	list, err := repository.ListBarangMasuk(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil laporan barang masuk"})
	}
	if list == nil {
		list = []models.BarangMasuk{}
	}
	return c.JSON(list)
}

// GET /api/laporan/barang-keluar?tanggal=&nama=
func LaporanBarangKeluar(c *fiber.Ctx) error {
	filter := bson.M{}
	if tanggal := c.Query("tanggal", ""); tanggal != "" {
		filter["tanggal"] = tanggal
	}
	if nama := c.Query("nama", ""); nama != "" {
		filter["nama_barang"] = bson.M{"$regex": nama, "$options": "i"}
	}
	list, err := repository.ListBarangKeluar(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil laporan barang keluar"})
	}
	if list == nil {
		list = []models.BarangKeluar{}
	}
	return c.JSON(list)
}

// GET /api/laporan/penjualan?tanggal=&customer=
func LaporanPenjualan(c *fiber.Ctx) error {
	filter := bson.M{}
	if tanggal := c.Query("tanggal", ""); tanggal != "" {
		filter["tanggal"] = tanggal
	}
	if customer := c.Query("customer", ""); customer != "" {
		filter["kode_customer"] = customer
	}
	list, err := repository.ListPenjualan(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil laporan penjualan"})
	}
	if list == nil {
		list = []models.Penjualan{}
	}
	return c.JSON(list)
}

// LaporanStock godoc
//
//	@Summary		Laporan stok
//	@Description	Snapshot saldo berjalan seluruh barang
//	@Tags			Laporan
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	models.StockLevel
//	@Router			/api/laporan/stock [get]
func LaporanStock(c *fiber.Ctx) error {
	list, err := repository.GetAllStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil laporan stok"})
	}
	if list == nil {
		list = []models.StockLevel{}
	}
	return c.JSON(list)
}

// ExportExcel menghasilkan file .xlsx berisi snapshot stok plus pembelian dan
// penjualan (filter tanggal opsional berlaku untuk kedua sheet transaksi).
// Endpoint ini dibuka via window.open sehingga token boleh lewat query.
func ExportExcel(c *fiber.Ctx) error {
	tanggal := c.Query("tanggal", "")
	txFilter := bson.M{}
	if tanggal != "" {
		txFilter["tanggal"] = tanggal
	}

	stock, err := repository.GetAllStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil stok"})
	}
	pembelian, err := repository.ListPembelian(txFilter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil pembelian"})
	}
	penjualan, err := repository.ListPenjualan(txFilter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil penjualan"})
	}

	f := excelize.NewFile()
	defer f.Close()

	// Sheet Stok
	sheet := "Stok"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Kode Barang", "Nama Barang", "Stok", "Satuan"})
	for i, s := range stock {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{s.KodeBarang, s.NamaBarang, s.Stok, s.Satuan})
	}

	// Sheet Pembelian (satu baris per header)
	f.NewSheet("Pembelian")
	f.SetSheetRow("Pembelian", "A1", &[]interface{}{"Nomor Faktur", "Tanggal", "Kode Supplier", "Jumlah Item", "Grand Total"})
	for i, p := range pembelian {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow("Pembelian", cell, &[]interface{}{p.NomorFaktur, p.Tanggal, p.KodeSupplier, len(p.Items), p.GrandTotal})
	}

	// Sheet Penjualan
	f.NewSheet("Penjualan")
	f.SetSheetRow("Penjualan", "A1", &[]interface{}{"Nomor Penjualan", "Tanggal", "Kode Customer", "Jumlah Item", "Grand Total"})
	for i, j := range penjualan {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow("Penjualan", cell, &[]interface{}{j.NomorPenjualan, j.Tanggal, j.KodeCustomer, len(j.Items), j.GrandTotal})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat file Excel"})
	}

	filename := fmt.Sprintf("laporan-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
