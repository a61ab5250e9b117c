package service

import "fmt"

// NotFoundError menandai referensi master data yang tidak ada. Di HTTP ini
// dipetakan ke 400 (request tidak valid), bukan 404.
type NotFoundError struct {
	Entity string
	Kode   string
}

func (e *NotFoundError) Error() string {
	if e.Kode != "" {
		return fmt.Sprintf("%s %s tidak ditemukan", e.Entity, e.Kode)
	}
	return fmt.Sprintf("%s tidak ditemukan", e.Entity)
}

// DuplicateError menandai pelanggaran keunikan kode/email (HTTP 409).
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

// InsufficientStockError menandai penarikan melebihi saldo stok (HTTP 400).
type InsufficientStockError struct {
	KodeBarang string
}

func (e *InsufficientStockError) Error() string {
	if e.KodeBarang != "" {
		return fmt.Sprintf("Stok %s tidak mencukupi", e.KodeBarang)
	}
	return "Stok tidak mencukupi"
}
