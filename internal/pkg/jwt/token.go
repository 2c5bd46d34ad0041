package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

// PurposeContactVerification marks tokens minted on successful OTP verification
const PurposeContactVerification = "contact-verification"

// GenerateVerificationToken mints a short-lived proof that the given email
// passed OTP verification. The contact submission endpoint requires it.
func GenerateVerificationToken(email string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"email":   email,
		"purpose": PurposeContactVerification,
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateVerificationToken validates a proof token and returns the email it
// was minted for. Expired, tampered or wrong-purpose tokens are rejected.
func ValidateVerificationToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if purpose, _ := claims["purpose"].(string); purpose != PurposeContactVerification {
		return "", fmt.Errorf("invalid token purpose")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("missing email claim")
	}

	return email, nil
}
