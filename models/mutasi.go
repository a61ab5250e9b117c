package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// BarangMasuk adalah penambahan stok di luar pembelian.
type BarangMasuk struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Tanggal    string             `json:"tanggal" bson:"tanggal"`
	KodeBarang string             `json:"kode_barang" bson:"kode_barang"`
	NamaBarang string             `json:"nama_barang" bson:"nama_barang"`
	Satuan     string             `json:"satuan" bson:"satuan"`
	Qty        float64            `json:"qty" bson:"qty"`
	Catatan    string             `json:"catatan,omitempty" bson:"catatan,omitempty"`
}

// BarangKeluar adalah pengurangan stok di luar penjualan.
type BarangKeluar struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Tanggal    string             `json:"tanggal" bson:"tanggal"`
	KodeBarang string             `json:"kode_barang" bson:"kode_barang"`
	NamaBarang string             `json:"nama_barang" bson:"nama_barang"`
	Satuan     string             `json:"satuan" bson:"satuan"`
	Qty        float64            `json:"qty" bson:"qty"`
	Catatan    string             `json:"catatan,omitempty" bson:"catatan,omitempty"`
}
