package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=identity.go -destination=mocks/mock_identity.go -package=mocks

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour

	ClaimUserID = "user_id"
	ClaimEmail  = "email"
	ClaimAdmin  = "admin"
)

type IdentityService interface {
	RegisterUser(ctx context.Context, req models.SignupRequest) (*models.UserData, error)
	AuthenticateUser(ctx context.Context, req models.LoginRequest) (*models.UserData, error)
	GetUser(ctx context.Context, userID string) (*models.UserData, error)
	GenerateJWT(user models.UserData) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth     *jwtauth.JWTAuth
	Storage     storage.UsersStorage
	AdminEmails map[string]struct{}
}

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	admins := make(map[string]struct{}, len(cfg.Server.AdminEmails))
	for _, email := range cfg.Server.AdminEmails {
		admins[normalizeEmail(email)] = struct{}{}
	}
	return &Identity{JWTAuth: tokenAuth, Storage: storage, AdminEmails: admins}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Регистрация нового пользователя. Права администратора получают адреса из конфигурации.
func (i *Identity) RegisterUser(ctx context.Context, req models.SignupRequest) (*models.UserData, error) {
	email := normalizeEmail(req.Email)
	logger.Info("Register user:", email)

	existing, err := i.Storage.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Error("Error checking user", err)
		return nil, err
	}
	if existing != nil {
		logger.Warn("User already exist")
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return nil, err
	}

	_, isAdmin := i.AdminEmails[email]
	user, err := i.Storage.AddUser(ctx, models.UserData{
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		IsAdmin:      isAdmin,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Error("Error registering user", email, err)
		return nil, err
	}
	return user, nil
}

// Аутентификация пользователя
func (i *Identity) AuthenticateUser(ctx context.Context, req models.LoginRequest) (*models.UserData, error) {
	email := normalizeEmail(req.Email)
	logger.Info("Authenticate user", email)

	user, err := i.Storage.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Unknown user", email)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		logger.Error("Error getting user", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Invalid password", email)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", email)
	return user, nil
}

func (i *Identity) GetUser(ctx context.Context, userID string) (*models.UserData, error) {
	return i.Storage.GetUser(ctx, userID)
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(user models.UserData) (string, error) {
	claims := map[string]interface{}{
		ClaimUserID: user.UserID,
		ClaimEmail:  user.Email,
		ClaimAdmin:  user.IsAdmin,
	}
	jwtauth.SetExpiry(claims, time.Now().Add(TokenExpirationTime))
	_, tokenString, err := i.JWTAuth.Encode(claims)
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
