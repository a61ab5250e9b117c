package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bakery-api/config"
	"bakery-api/models"
)

func pembelianCol() *mongo.Collection { return config.PembelianCollection }

func EnsurePembelianIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := pembelianCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "nomor_faktur", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tanggal", Value: 1}}},
		{Keys: bson.D{{Key: "kode_supplier", Value: 1}}},
	})
	return err
}

func InsertPembelian(p *models.Pembelian) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := pembelianCol().InsertOne(ctx, p)
	return err
}

func ListPembelian(filter bson.M) ([]models.Pembelian, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := pembelianCol().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.Pembelian
	for cur.Next(ctx) {
		var p models.Pembelian
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}
