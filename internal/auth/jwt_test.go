package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var jane = models.Identity{ID: "user-123", DisplayName: "Jane Smith", Email: "jane@example.com", Role: models.RolePatient}

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(jane, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if got := claims.Identity(); got != jane {
		t.Fatalf("identity mismatch: got %+v want %+v", got, jane)
	}
	if claims.Issuer != common.AppName {
		t.Fatalf("issuer mismatch: got %q", claims.Issuer)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(jane, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(jane, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_ForeignIssuerOrRole(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	sign := func(c Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	foreign := sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "elsewhere", ExpiresAt: exp}, Role: models.RolePatient})
	if _, err := ParseToken(foreign, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("foreign issuer: expected ErrInvalidToken, got %v", err)
	}

	nurse := sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: common.AppName, ExpiresAt: exp}, Role: "nurse"})
	if _, err := ParseToken(nurse, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("unknown role: expected ErrInvalidToken, got %v", err)
	}
}
