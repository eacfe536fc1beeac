package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"sweetdots/config"

	"github.com/golang-jwt/jwt"
)

const revokedTokenPrefix = "revokedToken:"

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "SWEETDOTS"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token with the given subject.
// The token expires after the specified duration.
func GenerateToken(subject string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// RevokeToken records the token hash in the revoked-token store until the
// token would have expired anyway.
func RevokeToken(ctx context.Context, tokenString string, until time.Duration) error {
	client := GetAuthCacheClient()
	return client.Set(ctx, revokedTokenPrefix+HashToken(tokenString), "1", until).Err()
}

// IsTokenRevoked reports whether the token hash is present in the revoked-token store.
func IsTokenRevoked(ctx context.Context, tokenString string) bool {
	client := GetAuthCacheClient()
	n, err := client.Exists(ctx, revokedTokenPrefix+HashToken(tokenString)).Result()
	return err == nil && n > 0
}
