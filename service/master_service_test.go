package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery-api/models"
	"bakery-api/service"
)

func TestCreateBarang_KodeBaru(t *testing.T) {
	store := newFakeStore()
	svc := service.NewMasterService(store)

	err := svc.CreateBarang(context.Background(), &models.Barang{
		KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Kategori: "Bahan Baku",
	})

	require.NoError(t, err)
	require.Contains(t, store.barang, "KODE-001")
}

func TestCreateBarang_KodeDuplikatTidakMenimpa(t *testing.T) {
	store := newFakeStore()
	svc := service.NewMasterService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateBarang(ctx, &models.Barang{
		KodeBarang: "KODE-001", NamaBarang: "Tepung Terigu", Satuan: "Kg", Kategori: "Bahan Baku",
	}))

	err := svc.CreateBarang(ctx, &models.Barang{
		KodeBarang: "KODE-001", NamaBarang: "Gula Pasir", Satuan: "Kg", Kategori: "Bahan Baku",
	})

	var dup *service.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Kode barang sudah ada", dup.Message)
	// Record lama tetap utuh
	assert.Equal(t, "Tepung Terigu", store.barang["KODE-001"].NamaBarang)
}

func TestCreateSupplier_KodeDuplikat(t *testing.T) {
	store := newFakeStore()
	svc := service.NewMasterService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateSupplier(ctx, &models.Supplier{KodeSupplier: "SUP001", NamaSupplier: "Toko Bahan"}))

	err := svc.CreateSupplier(ctx, &models.Supplier{KodeSupplier: "SUP001", NamaSupplier: "Toko Lain"})

	var dup *service.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Kode supplier sudah ada", dup.Message)
}

func TestCreateCustomer_KodeDuplikat(t *testing.T) {
	store := newFakeStore()
	svc := service.NewMasterService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateCustomer(ctx, &models.Customer{KodeCustomer: "CUS001", NamaCustomer: "Warung Sari"}))

	err := svc.CreateCustomer(ctx, &models.Customer{KodeCustomer: "CUS001", NamaCustomer: "Warung Baru"})

	var dup *service.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Kode customer sudah ada", dup.Message)
}
