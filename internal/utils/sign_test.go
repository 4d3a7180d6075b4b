package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyAccessToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := IssueAccessToken(42, "alice", key)
	require.NoError(t, err)

	claims, err := ParseAndVerifySign(token, &key.PublicKey)
	require.NoError(t, err)

	memberID, err := claims.MemberID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), memberID)
	assert.Equal(t, "alice", claims.Name)
}

func TestGenerateSign_KeepsRegisteredClaims(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	claims := &Claims{
		Sub:  "7",
		Name: "alice",
		Iat:  time.Now().Unix(),
		Exp:  time.Now().Add(time.Hour).Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "mychat-identity",
		},
	}

	token, err := GenerateSign(claims, key)
	require.NoError(t, err)

	parsed, err := ParseAndVerifySign(token, &key.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, "mychat-identity", parsed.Issuer)
	assert.Equal(t, "alice", parsed.Name)
}

func TestParseAndVerifySign_WrongKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := IssueAccessToken(42, "alice", key)
	require.NoError(t, err)

	_, err = ParseAndVerifySign(token, &otherKey.PublicKey)
	assert.Error(t, err)
}

func TestParseAndVerifySign_Expired(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	claims := &Claims{
		Sub: "42",
		Iat: time.Now().Add(-2 * time.Hour).Unix(),
		Exp: time.Now().Add(-time.Hour).Unix(),
	}
	token, err := GenerateSign(claims, key)
	require.NoError(t, err)

	_, err = ParseAndVerifySign(token, &key.PublicKey)
	assert.Error(t, err)
}
