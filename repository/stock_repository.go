package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bakery-api/config"
	"bakery-api/models"
	"bakery-api/service"
)

const stockCacheKey = "laporan:stock"

func stockCol() *mongo.Collection { return config.StockCollection }

func EnsureStockIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "kode_barang", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := stockCol().Indexes().CreateOne(ctx, model)
	return err
}

// GetStockLevel mengembalikan (nil, nil) jika barang belum pernah bermutasi.
func GetStockLevel(kode string) (*models.StockLevel, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var lvl models.StockLevel
	if err := stockCol().FindOne(ctx, bson.M{"kode_barang": kode}).Decode(&lvl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &lvl, nil
}

// AdjustStock menaikkan saldo sebesar delta (boleh negatif) via upsert $inc.
// Entry baru merekam nama/satuan dari transaksi pembuatnya.
func AdjustStock(kode, nama, satuan string, delta float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := stockCol().UpdateOne(ctx,
		bson.M{"kode_barang": kode},
		bson.M{
			"$inc":         bson.M{"stok": delta},
			"$setOnInsert": bson.M{"nama_barang": nama, "satuan": satuan},
		},
		options.Update().SetUpsert(true),
	)
	if err == nil {
		invalidateStockCache()
	}
	return err
}

// TryDeductStock mengurangi saldo secara atomik hanya jika saldo >= qty,
// menutup race check-then-act antar request. Barang tanpa entry tetap boleh
// ditarik (entry dibuat dengan saldo negatif, perilaku lama).
func TryDeductStock(kode, nama, satuan string, qty float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := stockCol().UpdateOne(ctx,
		bson.M{"kode_barang": kode, "stok": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stok": -qty}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		invalidateStockCache()
		return nil
	}

	// Tidak match: bedakan entry belum ada vs saldo kurang.
	err = stockCol().FindOne(ctx, bson.M{"kode_barang": kode}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return AdjustStock(kode, nama, satuan, -qty)
	}
	if err != nil {
		return err
	}
	return &service.InsufficientStockError{KodeBarang: kode}
}

// GetAllStock mengembalikan snapshot seluruh saldo untuk laporan, dengan
// cache Redis singkat bila Redis dikonfigurasi.
func GetAllStock() ([]models.StockLevel, error) {
	if config.RedisClient != nil {
		if raw, err := config.RedisClient.Get(config.RedisCtx(), stockCacheKey).Result(); err == nil {
			var cached []models.StockLevel
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cur, err := stockCol().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []models.StockLevel
	for cur.Next(ctx) {
		var lvl models.StockLevel
		if err := cur.Decode(&lvl); err != nil {
			return nil, err
		}
		list = append(list, lvl)
	}

	if config.RedisClient != nil {
		if raw, err := json.Marshal(list); err == nil {
			config.RedisClient.Set(config.RedisCtx(), stockCacheKey, raw, 30*time.Second)
		}
	}
	return list, nil
}

func invalidateStockCache() {
	if config.RedisClient != nil {
		config.RedisClient.Del(config.RedisCtx(), stockCacheKey)
	}
}
