package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SignupRequest - модель регистрации пользователя, приходит извне
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required,e164"`
}

// LoginRequest - модель аутентификации пользователя
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserData - модель пользователя из хранищища
type UserData struct {
	UserID       string
	Email        string
	Phone        string
	PasswordHash string
	Balance      decimal.Decimal
	IsAdmin      bool
	CreatedAt    time.Time
}

// User - пользователь в том виде, в котором его видит клиент
type User struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Balance   decimal.Decimal `json:"balance"`
	IsAdmin   bool            `json:"isAdmin"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Public - представление пользователя без секретов
func (u UserData) Public() User {
	return User{
		ID:        u.UserID,
		Email:     u.Email,
		Phone:     u.Phone,
		Balance:   u.Balance,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse - ответ на регистрацию и вход
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreditRequest - начисление средств пользователю администратором
type CreditRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" validate:"max=255"`
}
