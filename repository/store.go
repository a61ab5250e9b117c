package repository

import (
	"context"

	"bakery-api/models"
)

// Store mengadaptasi fungsi repository ke interface yang dipakai service.
// Timeout per operasi sudah ditangani di fungsi repository masing-masing.
type Store struct{}

func (Store) BarangByKode(_ context.Context, kode string) (*models.Barang, error) {
	return GetBarangByKode(kode)
}

func (Store) SupplierByKode(_ context.Context, kode string) (*models.Supplier, error) {
	return GetSupplierByKode(kode)
}

func (Store) CustomerByKode(_ context.Context, kode string) (*models.Customer, error) {
	return GetCustomerByKode(kode)
}

func (Store) InsertBarang(_ context.Context, b *models.Barang) error {
	return InsertBarang(b)
}

func (Store) InsertSupplier(_ context.Context, s *models.Supplier) error {
	return InsertSupplier(s)
}

func (Store) InsertCustomer(_ context.Context, c *models.Customer) error {
	return InsertCustomer(c)
}

func (Store) Level(_ context.Context, kode string) (*models.StockLevel, error) {
	return GetStockLevel(kode)
}

func (Store) Adjust(_ context.Context, kode, nama, satuan string, delta float64) error {
	return AdjustStock(kode, nama, satuan, delta)
}

func (Store) TryDeduct(_ context.Context, kode, nama, satuan string, qty float64) error {
	return TryDeductStock(kode, nama, satuan, qty)
}

func (Store) InsertPembelian(_ context.Context, p *models.Pembelian) error {
	return InsertPembelian(p)
}

func (Store) InsertBarangMasuk(_ context.Context, m *models.BarangMasuk) error {
	return InsertBarangMasuk(m)
}

func (Store) InsertBarangKeluar(_ context.Context, k *models.BarangKeluar) error {
	return InsertBarangKeluar(k)
}

func (Store) InsertPenjualan(_ context.Context, j *models.Penjualan) error {
	return InsertPenjualan(j)
}
