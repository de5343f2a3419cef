package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/go-chi/jwtauth/v5"
)

// GetUserID - извлекает идентификатор пользователя из контекста JWT токена
func GetUserID(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	userID, ok := claims[services.ClaimUserID].(string)
	if !ok || userID == "" {
		logger.Warn("Undefined user id from token")
		return "", fmt.Errorf("undefined user id")
	}
	return userID, nil
}

// IsAdmin - признак администратора из токена
func IsAdmin(context context.Context) bool {
	_, claims, _ := jwtauth.FromContext(context)
	admin, _ := claims[services.ClaimAdmin].(bool)
	return admin
}
