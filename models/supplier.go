package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Supplier struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	KodeSupplier string             `json:"kode_supplier" bson:"kode_supplier"`
	NamaSupplier string             `json:"nama_supplier" bson:"nama_supplier"`
	Alamat       string             `json:"alamat,omitempty" bson:"alamat,omitempty"`
	NomorHP      string             `json:"nomor_hp,omitempty" bson:"nomor_hp,omitempty"`
}

type SupplierSearchResult struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	KodeSupplier string             `json:"kode_supplier" bson:"kode_supplier"`
	NamaSupplier string             `json:"nama_supplier" bson:"nama_supplier"`
}
