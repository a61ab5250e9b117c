package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PenjualanItem struct {
	KodeBarang string  `json:"kode_barang" bson:"kode_barang"`
	NamaBarang string  `json:"nama_barang" bson:"nama_barang"`
	Satuan     string  `json:"satuan" bson:"satuan"`
	Qty        float64 `json:"qty" bson:"qty"`
	HargaJual  float64 `json:"harga_jual" bson:"harga_jual"`
}

// Penjualan adalah penjualan ke customer (header + items).
// Immutable setelah dibuat.
type Penjualan struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NomorPenjualan string             `json:"nomor_penjualan" bson:"nomor_penjualan"`
	Tanggal        string             `json:"tanggal" bson:"tanggal"`
	KodeCustomer   string             `json:"kode_customer" bson:"kode_customer"`
	CustomerName   string             `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	Keterangan     string             `json:"keterangan,omitempty" bson:"keterangan,omitempty"`
	Items          []PenjualanItem    `json:"items" bson:"items"`
	GrandTotal     float64            `json:"grand_total" bson:"grand_total"`
}
