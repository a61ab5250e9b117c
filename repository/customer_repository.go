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

func customerCol() *mongo.Collection { return config.CustomerCollection }

func EnsureCustomerIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "kode_customer", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := customerCol().Indexes().CreateOne(ctx, model)
	return err
}

func GetCustomerByKode(kode string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var c models.Customer
	if err := customerCol().FindOne(ctx, bson.M{"kode_customer": kode}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func InsertCustomer(c *models.Customer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := customerCol().InsertOne(ctx, c)
	return err
}

func ListCustomer(q string, page, size int) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := SearchFilter(q, "nama_customer", "kode_customer")
	opts := options.Find()
	if page > 0 && size > 0 {
		opts.SetSkip(int64((page - 1) * size)).SetLimit(int64(size))
	}
	cur, err := customerCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.Customer
	for cur.Next(ctx) {
		var c models.Customer
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func SearchCustomer(term string) ([]models.CustomerSearchResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := SearchFilter(term, "nama_customer", "kode_customer")
	opts := options.Find().
		SetLimit(10).
		SetProjection(bson.M{"kode_customer": 1, "nama_customer": 1})
	cur, err := customerCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.CustomerSearchResult
	for cur.Next(ctx) {
		var r models.CustomerSearchResult
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}
