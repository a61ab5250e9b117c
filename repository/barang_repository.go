package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bakery-api/config"
	"bakery-api/models"
)

func barangCol() *mongo.Collection { return config.BarangCollection }

func EnsureBarangIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "kode_barang", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := barangCol().Indexes().CreateOne(ctx, model)
	return err
}

// GetBarangByKode mengembalikan (nil, nil) jika kode tidak terdaftar.
func GetBarangByKode(kode string) (*models.Barang, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var b models.Barang
	if err := barangCol().FindOne(ctx, bson.M{"kode_barang": kode}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func InsertBarang(b *models.Barang) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := barangCol().InsertOne(ctx, b)
	return err
}

// ListBarang memfilter substring pada nama atau kode, dengan paging.
func ListBarang(q string, page, size int) ([]models.Barang, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := SearchFilter(q, "nama_barang", "kode_barang")
	opts := options.Find()
	if page > 0 && size > 0 {
		opts.SetSkip(int64((page - 1) * size)).SetLimit(int64(size))
	}
	cur, err := barangCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.Barang
	for cur.Next(ctx) {
		var b models.Barang
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, nil
}

// SearchBarang adalah lookup ringkas untuk autocomplete (maks 10 hasil).
func SearchBarang(term string) ([]models.BarangSearchResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := SearchFilter(term, "nama_barang", "kode_barang")
	opts := options.Find().
		SetLimit(10).
		SetProjection(bson.M{
			"kode_barang":        1,
			"nama_barang":        1,
			"satuan":             1,
			"harga_beli_default": 1,
		})
	cur, err := barangCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.BarangSearchResult
	for cur.Next(ctx) {
		var r models.BarangSearchResult
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}
