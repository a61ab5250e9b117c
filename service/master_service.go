package service

import (
	"context"

	"bakery-api/models"
)

// MasterService membuat master data dengan penjagaan kode unik di level
// aplikasi (cek eksistensi sebelum insert).
type MasterService struct {
	Master MasterStore
}

func NewMasterService(master MasterStore) *MasterService {
	return &MasterService{Master: master}
}

func (s *MasterService) CreateBarang(ctx context.Context, b *models.Barang) error {
	existing, err := s.Master.BarangByKode(ctx, b.KodeBarang)
	if err != nil {
		return err
	}
	if existing != nil {
		return &DuplicateError{Message: "Kode barang sudah ada"}
	}
	return s.Master.InsertBarang(ctx, b)
}

func (s *MasterService) CreateSupplier(ctx context.Context, sp *models.Supplier) error {
	existing, err := s.Master.SupplierByKode(ctx, sp.KodeSupplier)
	if err != nil {
		return err
	}
	if existing != nil {
		return &DuplicateError{Message: "Kode supplier sudah ada"}
	}
	return s.Master.InsertSupplier(ctx, sp)
}

func (s *MasterService) CreateCustomer(ctx context.Context, cu *models.Customer) error {
	existing, err := s.Master.CustomerByKode(ctx, cu.KodeCustomer)
	if err != nil {
		return err
	}
	if existing != nil {
		return &DuplicateError{Message: "Kode customer sudah ada"}
	}
	return s.Master.InsertCustomer(ctx, cu)
}
