package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "platform-identity"
)

func signAdminToken(t *testing.T, secret, issuer, sub, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iss":  issuer,
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTTokenService_Validate_Success(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, testJWTIssuer)
	tokenString := signAdminToken(t, testJWTSecret, testJWTIssuer, "99", "reviewer", time.Now().Add(time.Hour))

	claims, err := svc.Validate(tokenString)

	require.NoError(t, err)
	assert.Equal(t, int64(99), claims.AdminID)
	assert.Equal(t, "reviewer", claims.Role)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, testJWTIssuer)
	tokenString := signAdminToken(t, testJWTSecret, testJWTIssuer, "99", "reviewer", time.Now().Add(-time.Hour))

	_, err := svc.Validate(tokenString)

	assert.Error(t, err)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, testJWTIssuer)
	tokenString := signAdminToken(t, "some-other-secret-32-chars-long!!!!!", testJWTIssuer, "99", "reviewer", time.Now().Add(time.Hour))

	_, err := svc.Validate(tokenString)

	assert.Error(t, err)
}

func TestJWTTokenService_Validate_WrongIssuer(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, testJWTIssuer)
	tokenString := signAdminToken(t, testJWTSecret, "someone-else", "99", "reviewer", time.Now().Add(time.Hour))

	_, err := svc.Validate(tokenString)

	assert.Error(t, err)
}

func TestJWTTokenService_Validate_NonNumericSubject(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, testJWTIssuer)
	tokenString := signAdminToken(t, testJWTSecret, testJWTIssuer, "not-a-number", "reviewer", time.Now().Add(time.Hour))

	_, err := svc.Validate(tokenString)

	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, testJWTIssuer)

	_, err := svc.Validate("not.a.jwt")

	assert.Error(t, err)
}
