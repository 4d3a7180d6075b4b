package utils

import (
	"crypto/rsa"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenTTL = time.Hour

type Claims struct {
	Sub  string `json:"sub"`
	Name string `json:"name"`
	Iat  int64  `json:"iat"`
	Exp  int64  `json:"exp"`
	jwt.RegisteredClaims
}

// MemberID decodes the subject claim written by IssueAccessToken.
func (c *Claims) MemberID() (int64, error) {
	return strconv.ParseInt(c.Sub, 10, 64)
}

func IssueAccessToken(memberID int64, name string, privateKey *rsa.PrivateKey) (string, error) {
	issueAt := time.Now().Unix()

	claims := &Claims{
		Sub:  strconv.FormatInt(memberID, 10),
		Name: name,
		Iat:  issueAt,
		Exp:  issueAt + int64(accessTokenTTL.Seconds()),
	}

	return GenerateSign(claims, privateKey)
}

// GenerateSign signs the claims struct itself, so whatever registered
// claims the caller sets survive the round trip through ParseAndVerifySign.
func GenerateSign(claims *Claims, privateKey *rsa.PrivateKey) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(privateKey)
}

func ParseAndVerifySign(token string, pubKey *rsa.PublicKey) (*Claims, error) {
	parsedToken, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return pubKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsedToken.Claims.(*Claims)
	if !ok || !parsedToken.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if time.Unix(claims.Exp, 0).Before(time.Now()) {
		return nil, fmt.Errorf("token expired")
	}

	return claims, nil
}
