package service

import (
	"context"

	"bakery-api/models"
)

// MasterStore adalah akses per-entity ke master data. Lookup mengembalikan
// (nil, nil) jika kode tidak terdaftar.
type MasterStore interface {
	BarangByKode(ctx context.Context, kode string) (*models.Barang, error)
	SupplierByKode(ctx context.Context, kode string) (*models.Supplier, error)
	CustomerByKode(ctx context.Context, kode string) (*models.Customer, error)
	InsertBarang(ctx context.Context, b *models.Barang) error
	InsertSupplier(ctx context.Context, s *models.Supplier) error
	InsertCustomer(ctx context.Context, c *models.Customer) error
}

// StockStore adalah saldo berjalan per barang.
type StockStore interface {
	// Level mengembalikan (nil, nil) jika barang belum pernah bermutasi.
	Level(ctx context.Context, kodeBarang string) (*models.StockLevel, error)
	// Adjust menambah saldo sebesar delta (boleh negatif); entry dibuat lazy
	// dengan nama/satuan dari pemanggil.
	Adjust(ctx context.Context, kodeBarang, namaBarang, satuan string, delta float64) error
	// TryDeduct mengurangi saldo secara atomik hanya jika saldo >= qty.
	// Jika entry belum ada, entry dibuat dengan saldo -qty (perilaku lama
	// dipertahankan). Mengembalikan *InsufficientStockError jika saldo kurang.
	TryDeduct(ctx context.Context, kodeBarang, namaBarang, satuan string, qty float64) error
}

// TxStore menyimpan record transaksi; semua record immutable.
type TxStore interface {
	InsertPembelian(ctx context.Context, p *models.Pembelian) error
	InsertBarangMasuk(ctx context.Context, m *models.BarangMasuk) error
	InsertBarangKeluar(ctx context.Context, k *models.BarangKeluar) error
	InsertPenjualan(ctx context.Context, j *models.Penjualan) error
}
