package model

import "time"

// UserEntity is a row of the user table. Email is stored lowercased.
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"phone"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter matches on every non-zero field.
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

func (f *UserFilter) IsEmpty() bool {
	return f == nil || (f.ID == 0 && f.Email == "" && f.Phone == "")
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest identifies the user by email when Identifier contains '@', by phone otherwise.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse reports CartMerged when the guest cart presented with the login was folded into the user's cart.
type LoginResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Token      string `json:"token"`
	CartMerged bool   `json:"cart_merged"`
}
