package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret  []byte
	jwtExpires time.Duration
)

// InitJWT configures the session token secret and lifetime
func InitJWT(secret string, expiresHours int) {
	if secret == "" {
		panic("JWT secret is not set")
	}
	jwtSecret = []byte(secret)
	jwtExpires = time.Duration(expiresHours) * time.Hour
}

// GenerateToken issues a signed session token embedding the user identity
func GenerateToken(userID int64, publicAddress string) (string, error) {
	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"user_id":        userID,
		"public_address": publicAddress,
		"exp":            time.Now().Add(jwtExpires).Unix(),
		"iat":            now,
		"nbf":            now,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a session token and returns the embedded identity
func ParseToken(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}

	now := time.Now().Unix()
	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp) < now {
			return 0, "", errors.New("token expired")
		}
	}
	if nbf, ok := claims["nbf"].(float64); ok {
		if int64(nbf) > now {
			return 0, "", errors.New("token not valid yet")
		}
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("user_id not found")
	}
	publicAddress, _ := claims["public_address"].(string)

	return int64(userID), publicAddress, nil
}
