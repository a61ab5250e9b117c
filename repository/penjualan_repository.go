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

func penjualanCol() *mongo.Collection { return config.PenjualanCollection }

func EnsurePenjualanIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := penjualanCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "nomor_penjualan", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tanggal", Value: 1}}},
		{Keys: bson.D{{Key: "kode_customer", Value: 1}}},
	})
	return err
}

func InsertPenjualan(j *models.Penjualan) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := penjualanCol().InsertOne(ctx, j)
	return err
}

func ListPenjualan(filter bson.M) ([]models.Penjualan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := penjualanCol().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.Penjualan
	for cur.Next(ctx) {
		var j models.Penjualan
		if err := cur.Decode(&j); err != nil {
			return nil, err
		}
		list = append(list, j)
	}
	return list, nil
}
