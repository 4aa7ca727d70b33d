package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"vidtube/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
app:
  name: vidtube-test
  version: test
  mode: test
  port: 8000
jwt:
  access_secret: test-access-secret
  refresh_secret: test-refresh-secret
  access_expire_minutes: 30
  refresh_expire_days: 14
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "vidtube-utils-test")
	if err != nil {
		panic(err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(testConfigYAML), 0644); err != nil {
		panic(err)
	}
	if _, err := config.Load(cfgPath); err != nil {
		panic(err)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
	assert.False(t, VerifyPassword("secret123", "not-a-bcrypt-hash"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	// bcrypt 每次加盐，相同密码哈希不同但都能验证通过
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("secret123", h1))
	assert.True(t, VerifyPassword("secret123", h2))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "vidtube-test", claims.Issuer)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTokenTypeConfusionRejected(t *testing.T) {
	accessToken, err := GenerateAccessToken(1)
	require.NoError(t, err)
	refreshToken, err := GenerateRefreshToken(1)
	require.NoError(t, err)

	_, err = ParseRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTypeClaimCheckedEvenWithRightSecret(t *testing.T) {
	// 用访问令牌密钥签出 token_type=refresh 的令牌，签名合法但类型不符
	claims := Claims{
		UserID:    99,
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.GetJWT().AccessSecret))
	require.NoError(t, err)

	_, err = ParseAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	claims := Claims{
		UserID:    5,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.GetJWT().AccessSecret))
	require.NoError(t, err)

	_, err = ParseAccessToken(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateAccessToken(1)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	claims := Claims{
		UserID:    1,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ParseAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
