package utils

import (
	"time"

	"github.com/chidupudi/ai-assistant/internal/config"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateToken issues a studio session token.
func GenerateToken(userID uint, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(cfg.JWT.ExpirationHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// GenerateClientToken issues a project-scoped token for a client whose PIN
// was accepted by the access gate. It grants selection access to exactly
// one project.
func GenerateClientToken(projectID string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"project_id": projectID,
		"scope":      "client",
		"exp":        time.Now().Add(time.Duration(cfg.JWT.ClientTokenHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}
