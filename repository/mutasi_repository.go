package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bakery-api/config"
	"bakery-api/models"
)

func barangMasukCol() *mongo.Collection  { return config.BarangMasukCollection }
func barangKeluarCol() *mongo.Collection { return config.BarangKeluarCollection }

func EnsureMutasiIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	idx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "kode_barang", Value: 1}}},
		{Keys: bson.D{{Key: "tanggal", Value: 1}}},
	}
	if _, err := barangMasukCol().Indexes().CreateMany(ctx, idx); err != nil {
		return err
	}
	_, err := barangKeluarCol().Indexes().CreateMany(ctx, idx)
	return err
}

func InsertBarangMasuk(m *models.BarangMasuk) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := barangMasukCol().InsertOne(ctx, m)
	return err
}

func InsertBarangKeluar(k *models.BarangKeluar) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := barangKeluarCol().InsertOne(ctx, k)
	return err
}

func ListBarangMasuk(filter bson.M) ([]models.BarangMasuk, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := barangMasukCol().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.BarangMasuk
	for cur.Next(ctx) {
		var m models.BarangMasuk
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, nil
}

func ListBarangKeluar(filter bson.M) ([]models.BarangKeluar, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := barangKeluarCol().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.BarangKeluar
	for cur.Next(ctx) {
		var k models.BarangKeluar
		if err := cur.Decode(&k); err != nil {
			return nil, err
		}
		list = append(list, k)
	}
	return list, nil
}
