package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery-api/models"
	"bakery-api/service"
)

// fakeStore adalah implementasi in-memory dari MasterStore, StockStore,
// dan TxStore dengan semantik yang sama seperti koleksi Mongo-nya.
type fakeStore struct {
	barang   map[string]*models.Barang
	supplier map[string]*models.Supplier
	customer map[string]*models.Customer

	stock map[string]*models.StockLevel

	pembelian []*models.Pembelian
	masuk     []*models.BarangMasuk
	keluar    []*models.BarangKeluar
	penjualan []*models.Penjualan
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		barang:   map[string]*models.Barang{},
		supplier: map[string]*models.Supplier{},
		customer: map[string]*models.Customer{},
		stock:    map[string]*models.StockLevel{},
	}
}

func (f *fakeStore) BarangByKode(_ context.Context, kode string) (*models.Barang, error) {
	return f.barang[kode], nil
}

func (f *fakeStore) SupplierByKode(_ context.Context, kode string) (*models.Supplier, error) {
	return f.supplier[kode], nil
}

func (f *fakeStore) CustomerByKode(_ context.Context, kode string) (*models.Customer, error) {
	return f.customer[kode], nil
}

func (f *fakeStore) InsertBarang(_ context.Context, b *models.Barang) error {
	f.barang[b.KodeBarang] = b
	return nil
}

func (f *fakeStore) InsertSupplier(_ context.Context, s *models.Supplier) error {
	f.supplier[s.KodeSupplier] = s
	return nil
}

func (f *fakeStore) InsertCustomer(_ context.Context, c *models.Customer) error {
	f.customer[c.KodeCustomer] = c
	return nil
}

func (f *fakeStore) Level(_ context.Context, kode string) (*models.StockLevel, error) {
	if lvl, ok := f.stock[kode]; ok {
		cp := *lvl
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStore) Adjust(_ context.Context, kode, nama, satuan string, delta float64) error {
	if lvl, ok := f.stock[kode]; ok {
		lvl.Stok += delta
		return nil
	}
	f.stock[kode] = &models.StockLevel{KodeBarang: kode, NamaBarang: nama, Satuan: satuan, Stok: delta}
	return nil
}

func (f *fakeStore) TryDeduct(_ context.Context, kode, nama, satuan string, qty float64) error {
	lvl, ok := f.stock[kode]
	if !ok {
		return f.Adjust(context.Background(), kode, nama, satuan, -qty)
	}
	if lvl.Stok < qty {
		return &service.InsufficientStockError{KodeBarang: kode}
	}
	lvl.Stok -= qty
	return nil
}

func (f *fakeStore) InsertPembelian(_ context.Context, p *models.Pembelian) error {
	f.pembelian = append(f.pembelian, p)
	return nil
}

func (f *fakeStore) InsertBarangMasuk(_ context.Context, m *models.BarangMasuk) error {
	f.masuk = append(f.masuk, m)
	return nil
}

func (f *fakeStore) InsertBarangKeluar(_ context.Context, k *models.BarangKeluar) error {
	f.keluar = append(f.keluar, k)
	return nil
}

func (f *fakeStore) InsertPenjualan(_ context.Context, j *models.Penjualan) error {
	f.penjualan = append(f.penjualan, j)
	return nil
}

func newTestService(t *testing.T) (*service.TransaksiService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.barang["KODE-001"] = &models.Barang{KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg"}
	store.barang["KODE-002"] = &models.Barang{KodeBarang: "KODE-002", NamaBarang: "Kue Bolu", Satuan: "Pcs"}
	store.supplier["SUP001"] = &models.Supplier{KodeSupplier: "SUP001", NamaSupplier: "Toko Bahan"}
	store.customer["CUS001"] = &models.Customer{KodeCustomer: "CUS001", NamaCustomer: "Warung Sari"}
	return service.NewTransaksiService(store, store, store), store
}

func pembelianSatuItem(kode string, qty float64) *models.Pembelian {
	return &models.Pembelian{
		NomorFaktur:  "INV-001",
		Tanggal:      "2025-01-10",
		KodeSupplier: "SUP001",
		Items: []models.PembelianItem{
			{KodeBarang: kode, NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: qty, HargaBeli: 12000},
		},
		GrandTotal: qty * 12000,
	}
}

func TestRecordPembelian_MenambahStokPerItem(t *testing.T) {
	svc, store := newTestService(t)

	p := &models.Pembelian{
		NomorFaktur:  "INV-001",
		Tanggal:      "2025-01-10",
		KodeSupplier: "SUP001",
		Items: []models.PembelianItem{
			{KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 10},
			{KodeBarang: "KODE-002", NamaBarang: "Kue Bolu", Satuan: "Pcs", Qty: 24},
		},
	}
	require.NoError(t, svc.RecordPembelian(context.Background(), p))

	require.Len(t, store.pembelian, 1)
	assert.Equal(t, 10.0, store.stock["KODE-001"].Stok)
	assert.Equal(t, 24.0, store.stock["KODE-002"].Stok)
	// Snapshot nama/satuan direkam saat entry dibuat
	assert.Equal(t, "Tepung Terigu", store.stock["KODE-001"].NamaBarang)
	assert.Equal(t, "Kg", store.stock["KODE-001"].Satuan)
}

func TestRecordPembelian_SupplierTidakDitemukan(t *testing.T) {
	svc, store := newTestService(t)

	p := pembelianSatuItem("KODE-001", 5)
	p.KodeSupplier = "SUP999"
	err := svc.RecordPembelian(context.Background(), p)

	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Supplier", nf.Entity)
	assert.Empty(t, store.pembelian)
	assert.Empty(t, store.stock)
}

func TestRecordPembelian_BarangTidakDitemukan(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.RecordPembelian(context.Background(), pembelianSatuItem("KODE-999", 5))

	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "KODE-999", nf.Kode)
	assert.Empty(t, store.pembelian)
	assert.Empty(t, store.stock)
}

func TestSaldoStok_JumlahAljabarSemuaTransaksi(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// masuk +10, pembelian +5, keluar -3, penjualan -4 => saldo 8
	require.NoError(t, svc.RecordBarangMasuk(ctx, &models.BarangMasuk{
		Tanggal: "2025-01-10", KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 10,
	}))
	require.NoError(t, svc.RecordPembelian(ctx, pembelianSatuItem("KODE-001", 5)))
	require.NoError(t, svc.RecordBarangKeluar(ctx, &models.BarangKeluar{
		Tanggal: "2025-01-11", KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 3,
	}))
	require.NoError(t, svc.RecordPenjualan(ctx, &models.Penjualan{
		NomorPenjualan: "SL-001",
		Tanggal:        "2025-01-12",
		KodeCustomer:   "CUS001",
		Items: []models.PenjualanItem{
			{KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 4, HargaJual: 15000},
		},
	}))

	assert.Equal(t, 8.0, store.stock["KODE-001"].Stok)
	assert.Len(t, store.masuk, 1)
	assert.Len(t, store.keluar, 1)
	assert.Len(t, store.penjualan, 1)
}

func TestRecordBarangKeluar_StokKurangDitolakTanpaMutasi(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordBarangMasuk(ctx, &models.BarangMasuk{
		Tanggal: "2025-01-10", KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 2,
	}))

	err := svc.RecordBarangKeluar(ctx, &models.BarangKeluar{
		Tanggal: "2025-01-11", KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 5,
	})

	var stok *service.InsufficientStockError
	require.ErrorAs(t, err, &stok)
	assert.Empty(t, store.keluar)
	assert.Equal(t, 2.0, store.stock["KODE-001"].Stok)
}

func TestRecordBarangKeluar_TanpaEntryStokLolos(t *testing.T) {
	// Barang yang belum pernah bermutasi tidak diperiksa kecukupannya;
	// entry dibuat dengan saldo negatif (perilaku lama dipertahankan).
	svc, store := newTestService(t)

	err := svc.RecordBarangKeluar(context.Background(), &models.BarangKeluar{
		Tanggal: "2025-01-11", KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 5,
	})

	require.NoError(t, err)
	require.Len(t, store.keluar, 1)
	assert.Equal(t, -5.0, store.stock["KODE-001"].Stok)
}

func TestRecordPenjualan_BarisGagalTidakMeninggalkanJejak(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordBarangMasuk(ctx, &models.BarangMasuk{
		Tanggal: "2025-01-10", KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 10,
	}))

	// Baris kedua memakai barang tak dikenal: tidak boleh ada penjualan
	// tersimpan maupun mutasi stok dari baris pertama.
	err := svc.RecordPenjualan(ctx, &models.Penjualan{
		NomorPenjualan: "SL-001",
		Tanggal:        "2025-01-12",
		KodeCustomer:   "CUS001",
		Items: []models.PenjualanItem{
			{KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 2},
			{KodeBarang: "KODE-999", NamaBarang: "???", Satuan: "Pcs", Qty: 1},
		},
	})

	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Empty(t, store.penjualan)
	assert.Equal(t, 10.0, store.stock["KODE-001"].Stok)
}

func TestRecordPenjualan_QtyDiagregasiPerBarang(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordBarangMasuk(ctx, &models.BarangMasuk{
		Tanggal: "2025-01-10", KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 5,
	}))

	// Dua baris barang yang sama dengan total melebihi saldo harus ditolak,
	// meski tiap baris sendiri-sendiri masih muat.
	err := svc.RecordPenjualan(ctx, &models.Penjualan{
		NomorPenjualan: "SL-001",
		Tanggal:        "2025-01-12",
		KodeCustomer:   "CUS001",
		Items: []models.PenjualanItem{
			{KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 3},
			{KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Qty: 3},
		},
	})

	var stok *service.InsufficientStockError
	require.ErrorAs(t, err, &stok)
	assert.Empty(t, store.penjualan)
	assert.Equal(t, 5.0, store.stock["KODE-001"].Stok)
}

func TestRecordPenjualan_CustomerTidakDitemukan(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.RecordPenjualan(context.Background(), &models.Penjualan{
		NomorPenjualan: "SL-001",
		Tanggal:        "2025-01-12",
		KodeCustomer:   "CUS999",
		Items: []models.PenjualanItem{
			{KodeBarang: "KODE-001", Qty: 1},
		},
	})

	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Customer", nf.Entity)
	assert.Empty(t, store.penjualan)
}
