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

func supplierCol() *mongo.Collection { return config.SupplierCollection }

func EnsureSupplierIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "kode_supplier", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := supplierCol().Indexes().CreateOne(ctx, model)
	return err
}

func GetSupplierByKode(kode string) (*models.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var s models.Supplier
	if err := supplierCol().FindOne(ctx, bson.M{"kode_supplier": kode}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func InsertSupplier(s *models.Supplier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := supplierCol().InsertOne(ctx, s)
	return err
}

func ListSupplier(q string, page, size int) ([]models.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := SearchFilter(q, "nama_supplier", "kode_supplier")
	opts := options.Find()
	if page > 0 && size > 0 {
		opts.SetSkip(int64((page - 1) * size)).SetLimit(int64(size))
	}
	cur, err := supplierCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.Supplier
	for cur.Next(ctx) {
		var s models.Supplier
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

func SearchSupplier(term string) ([]models.SupplierSearchResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := SearchFilter(term, "nama_supplier", "kode_supplier")
	opts := options.Find().
		SetLimit(10).
		SetProjection(bson.M{"kode_supplier": 1, "nama_supplier": 1})
	cur, err := supplierCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.SupplierSearchResult
	for cur.Next(ctx) {
		var r models.SupplierSearchResult
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}
