package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PembelianItem struct {
	KodeBarang string  `json:"kode_barang" bson:"kode_barang"`
	NamaBarang string  `json:"nama_barang" bson:"nama_barang"`
	Satuan     string  `json:"satuan" bson:"satuan"`
	Qty        float64 `json:"qty" bson:"qty"`
	HargaBeli  float64 `json:"harga_beli" bson:"harga_beli"`
}

// Pembelian adalah pembelian bahan baku dari supplier (header + items).
// Immutable setelah dibuat.
type Pembelian struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NomorFaktur  string             `json:"nomor_faktur" bson:"nomor_faktur"`
	Tanggal      string             `json:"tanggal" bson:"tanggal"`
	KodeSupplier string             `json:"kode_supplier" bson:"kode_supplier"`
	SupplierName string             `json:"supplier_name,omitempty" bson:"supplier_name,omitempty"`
	Keterangan   string             `json:"keterangan,omitempty" bson:"keterangan,omitempty"`
	Items        []PembelianItem    `json:"items" bson:"items"`
	GrandTotal   float64            `json:"grand_total" bson:"grand_total"`
}
