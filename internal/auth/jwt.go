// Package auth issues and verifies the HS256 access tokens that identify the
// signed-in user.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the standard registered claims plus the user's role. The
// subject carries the identity id.
type Claims struct {
	jwt.RegisteredClaims
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email,omitempty"`
	Role  models.Role `json:"role"`
}

// Identity rebuilds the identity the token was issued for.
func (c *Claims) Identity() models.Identity {
	return models.Identity{ID: c.Subject, DisplayName: c.Name, Email: c.Email, Role: c.Role}
}

func GenerateToken(identity models.Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    common.AppName,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Name:  identity.DisplayName,
		Email: identity.Email,
		Role:  identity.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString. Expired tokens
// yield common.ErrTokenExpired, anything else that fails verification
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(common.AppName),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	if _, err := models.ParseRole(string(claims.Role)); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	return claims, nil
}
