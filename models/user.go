package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	Name         string             `json:"name" bson:"name"`
	Role         string             `json:"role" bson:"role"` // admin / staff
	IsActive     bool               `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// RegisterInput adalah body untuk /api/auth/register (admin only)
type RegisterInput struct {
	Email    string `json:"email" example:"staff@sae-bakery.local"`
	Password string `json:"password" example:"rahasia123"`
	Name     string `json:"name" example:"Staff Toko"`
	Role     string `json:"role" example:"staff"`
}

type LoginInput struct {
	Email    string `json:"email" example:"admin@sae-bakery.local"`
	Password string `json:"password" example:"admin123"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}
