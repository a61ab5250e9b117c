package service

import (
	"context"

	"bakery-api/models"
)

// TransaksiService menjalankan keempat jenis transaksi dengan pola yang sama:
// validasi master data, validasi stok untuk penarikan, simpan record, lalu
// mutasi saldo. Record disimpan sebelum mutasi saldo; tidak ada rollback
// lintas koleksi.
type TransaksiService struct {
	Master MasterStore
	Stock  StockStore
	Tx     TxStore
}

func NewTransaksiService(master MasterStore, stock StockStore, tx TxStore) *TransaksiService {
	return &TransaksiService{Master: master, Stock: stock, Tx: tx}
}

// RecordPembelian memvalidasi supplier dan seluruh item sebelum menyimpan
// apa pun, lalu menambah stok per item.
func (s *TransaksiService) RecordPembelian(ctx context.Context, p *models.Pembelian) error {
	sup, err := s.Master.SupplierByKode(ctx, p.KodeSupplier)
	if err != nil {
		return err
	}
	if sup == nil {
		return &NotFoundError{Entity: "Supplier"}
	}
	for _, it := range p.Items {
		br, err := s.Master.BarangByKode(ctx, it.KodeBarang)
		if err != nil {
			return err
		}
		if br == nil {
			return &NotFoundError{Entity: "Barang", Kode: it.KodeBarang}
		}
	}

	if err := s.Tx.InsertPembelian(ctx, p); err != nil {
		return err
	}
	for _, it := range p.Items {
		if err := s.Stock.Adjust(ctx, it.KodeBarang, it.NamaBarang, it.Satuan, it.Qty); err != nil {
			return err
		}
	}
	return nil
}

func (s *TransaksiService) RecordBarangMasuk(ctx context.Context, m *models.BarangMasuk) error {
	br, err := s.Master.BarangByKode(ctx, m.KodeBarang)
	if err != nil {
		return err
	}
	if br == nil {
		return &NotFoundError{Entity: "Barang"}
	}

	if err := s.Tx.InsertBarangMasuk(ctx, m); err != nil {
		return err
	}
	return s.Stock.Adjust(ctx, m.KodeBarang, m.NamaBarang, m.Satuan, m.Qty)
}

func (s *TransaksiService) RecordBarangKeluar(ctx context.Context, k *models.BarangKeluar) error {
	br, err := s.Master.BarangByKode(ctx, k.KodeBarang)
	if err != nil {
		return err
	}
	if br == nil {
		return &NotFoundError{Entity: "Barang"}
	}
	// Validasi kecukupan terhadap entry yang ada; barang yang belum pernah
	// bermutasi lolos tanpa pemeriksaan (perilaku lama dipertahankan).
	lvl, err := s.Stock.Level(ctx, k.KodeBarang)
	if err != nil {
		return err
	}
	if lvl != nil && lvl.Stok < k.Qty {
		return &InsufficientStockError{}
	}

	if err := s.Tx.InsertBarangKeluar(ctx, k); err != nil {
		return err
	}
	return s.Stock.TryDeduct(ctx, k.KodeBarang, k.NamaBarang, k.Satuan, k.Qty)
}

// RecordPenjualan memvalidasi customer, setiap item, dan kecukupan stok per
// barang (qty diagregasi per kode agar tidak bisa dilewati lewat pemecahan
// baris) sebelum menyimpan apa pun.
func (s *TransaksiService) RecordPenjualan(ctx context.Context, j *models.Penjualan) error {
	cust, err := s.Master.CustomerByKode(ctx, j.KodeCustomer)
	if err != nil {
		return err
	}
	if cust == nil {
		return &NotFoundError{Entity: "Customer"}
	}

	aggQty := map[string]float64{}
	order := []string{}
	lineRef := map[string]models.PenjualanItem{}
	for _, it := range j.Items {
		br, err := s.Master.BarangByKode(ctx, it.KodeBarang)
		if err != nil {
			return err
		}
		if br == nil {
			return &NotFoundError{Entity: "Barang", Kode: it.KodeBarang}
		}
		if _, seen := aggQty[it.KodeBarang]; !seen {
			order = append(order, it.KodeBarang)
			lineRef[it.KodeBarang] = it
		}
		aggQty[it.KodeBarang] += it.Qty
	}
	for _, kode := range order {
		lvl, err := s.Stock.Level(ctx, kode)
		if err != nil {
			return err
		}
		if lvl != nil && lvl.Stok < aggQty[kode] {
			return &InsufficientStockError{KodeBarang: kode}
		}
	}

	if err := s.Tx.InsertPenjualan(ctx, j); err != nil {
		return err
	}
	for _, kode := range order {
		it := lineRef[kode]
		if err := s.Stock.TryDeduct(ctx, kode, it.NamaBarang, it.Satuan, aggQty[kode]); err != nil {
			return err
		}
	}
	return nil
}
