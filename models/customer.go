package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Customer struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	KodeCustomer string             `json:"kode_customer" bson:"kode_customer"`
	NamaCustomer string             `json:"nama_customer" bson:"nama_customer"`
	Alamat       string             `json:"alamat,omitempty" bson:"alamat,omitempty"`
	NomorHP      string             `json:"nomor_hp,omitempty" bson:"nomor_hp,omitempty"`
}

type CustomerSearchResult struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	KodeCustomer string             `json:"kode_customer" bson:"kode_customer"`
	NamaCustomer string             `json:"nama_customer" bson:"nama_customer"`
}
