package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bakery-api/config"
	"bakery-api/models"
	"bakery-api/utils"
)

// Kredensial admin bawaan; terdokumentasi, wajib dirotasi operator.
const (
	DefaultAdminEmail    = "admin@sae-bakery.local"
	DefaultAdminPassword = "admin123"
)

func userCol() *mongo.Collection { return config.UserCollection }

func EnsureUserIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := userCol().Indexes().CreateOne(ctx, model)
	return err
}

// GetUserByEmail mengembalikan (nil, nil) jika email tidak terdaftar.
func GetUserByEmail(email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var u models.User
	if err := userCol().FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func CreateUser(u *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := userCol().InsertOne(ctx, u)
	return err
}

// SeedAdmin membuat satu admin bawaan jika belum ada user ber-role admin.
// Idempotent; dijalankan sekali sebelum server menerima traffic.
func SeedAdmin() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	n, err := userCol().CountDocuments(ctx, bson.M{"role": "admin"})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := utils.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = userCol().InsertOne(ctx, models.User{
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Name:         "Admin",
		Role:         "admin",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == nil {
		log.Println("✅ Admin bawaan dibuat:", DefaultAdminEmail)
	}
	return err
}
