package auth

import (
	"testing"
	"time"

	"passport/config"
	domainerrors "passport/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_CreateAndDecodeToken(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: "test_secret_key_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	// Create a token and decode it back
	token, err := jwtService.CreateToken("user1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := jwtService.DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user1", subject)
}

func TestJWTService_TokenClaims(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: "test_secret_key_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.CreateToken("user1")
	assert.NoError(t, err)

	// Inspect the raw claims: sub carries the subject, exp and iat are set
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test_secret_key_very_long_for_testing"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "user1", claims.Subject)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: "test_secret_key_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.CreateToken("user1")
	assert.NoError(t, err)

	// A service holding a different secret must reject the token
	otherCfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: "ABC123",
			TokenTTL:  time.Hour,
		},
	}
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	subject, err := otherService.DecodeToken(token)
	assert.Error(t, err)
	assert.Empty(t, subject)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_EmptySubject(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: "test_secret_key_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Creating a token without a subject succeeds
	token, err := jwtService.CreateToken("")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Decoding it does not
	subject, err := jwtService.DecodeToken(token)
	assert.Error(t, err)
	assert.Empty(t, subject)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_MalformedTokens(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: "test_secret_key_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	for _, tokenString := range []string{"", "clearly-not-a-jwt-token", "a.b.c"} {
		subject, err := jwtService.DecodeToken(tokenString)
		assert.Error(t, err, "expected decode failure for %q", tokenString)
		assert.Empty(t, subject)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Negative TTL mints tokens that are already expired
	service := &jwtService{
		secret: []byte("test_secret_key_very_long_for_testing"),
		ttl:    -time.Minute,
	}

	token, err := service.CreateToken("user1")
	assert.NoError(t, err)

	subject, err := service.DecodeToken(token)
	assert.Error(t, err)
	assert.Empty(t, subject)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: "",
		},
	}

	// Should fail to create service
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret key must be provided")

	// A missing auth section fails the same way
	jwtService, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
