package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Satuan dan kategori yang diizinkan untuk master barang.
var (
	SatuanValid   = []string{"Gram", "Kg", "Ml", "Pcs"}
	KategoriValid = []string{"Bahan Baku", "Barang Jadi"}
)

type Barang struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	KodeBarang       string             `json:"kode_barang" bson:"kode_barang"`
	NamaBarang       string             `json:"nama_barang" bson:"nama_barang"`
	Satuan           string             `json:"satuan" bson:"satuan"`
	HargaBeliDefault float64            `json:"harga_beli_default" bson:"harga_beli_default"`
	Kategori         string             `json:"kategori" bson:"kategori"`
}

// BarangSearchResult adalah proyeksi ringkas untuk autocomplete.
type BarangSearchResult struct {
	ID               primitive.ObjectID `json:"id" bson:"_id"`
	KodeBarang       string             `json:"kode_barang" bson:"kode_barang"`
	NamaBarang       string             `json:"nama_barang" bson:"nama_barang"`
	Satuan           string             `json:"satuan" bson:"satuan"`
	HargaBeliDefault float64            `json:"harga_beli_default" bson:"harga_beli_default"`
}
