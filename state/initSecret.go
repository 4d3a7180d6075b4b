package state

import (
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// InitSecret loads the RSA keypair the identity service signs tokens
// with. This service only verifies, but the private key is kept loaded
// for local token minting in development.
func InitSecret() (*JwtSecret, error) {
	privPath := os.Getenv("MYCHAT_JWT_PRIVATE_PEM")
	if privPath == "" {
		privPath = "private.pem"
	}
	pubPath := os.Getenv("MYCHAT_JWT_PUBLIC_PEM")
	if pubPath == "" {
		pubPath = "public.pem"
	}

	privKeyBytes, err := os.ReadFile(privPath)
	if err != nil {
		return nil, err
	}

	pubKeyBytes, err := os.ReadFile(pubPath)
	if err != nil {
		return nil, err
	}

	privKey, err := jwt.ParseRSAPrivateKeyFromPEM(privKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	log.Info().Msg("JWT secret initialized successfully")
	return &JwtSecret{
		Private: privKey,
		Public:  pubKey,
	}, nil
}
