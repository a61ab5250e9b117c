package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variabel untuk koleksi
var (
	DB                     *mongo.Database
	UserCollection         *mongo.Collection
	BarangCollection       *mongo.Collection
	SupplierCollection     *mongo.Collection
	CustomerCollection     *mongo.Collection
	PembelianCollection    *mongo.Collection
	BarangMasukCollection  *mongo.Collection
	BarangKeluarCollection *mongo.Collection
	PenjualanCollection    *mongo.Collection
	StockCollection        *mongo.Collection
	CounterCollection      *mongo.Collection
)

func ConnectDB() {
	mongoURI := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	// Defaults for local development if env not set
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	if dbName == "" {
		dbName = "sae_bakery"
	}

	clientOptions := options.Client().ApplyURI(mongoURI)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("❌ Gagal connect ke MongoDB:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ MongoDB tidak bisa diakses:", err)
	}

	log.Println("✅ Terhubung ke MongoDB")

	DB = client.Database(dbName)

	// Inisialisasi semua koleksi
	UserCollection = DB.Collection("users")
	BarangCollection = DB.Collection("barang")
	SupplierCollection = DB.Collection("supplier")
	CustomerCollection = DB.Collection("customer")
	PembelianCollection = DB.Collection("pembelian")
	BarangMasukCollection = DB.Collection("barangmasuk")
	BarangKeluarCollection = DB.Collection("barangkeluar")
	PenjualanCollection = DB.Collection("penjualan")
	StockCollection = DB.Collection("stock")
	CounterCollection = DB.Collection("counters")
}
