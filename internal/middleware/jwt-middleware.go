package middleware

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	app_error "github.com/kjoon418/MyChat/internal/errors"
	"github.com/kjoon418/MyChat/internal/utils"
	"github.com/rs/zerolog/log"
)

type claimsKey string

// MemberIDKey carries the authenticated member's id (int64). The chat
// core never parses tokens itself; this middleware is its only contact
// with the credential subsystem.
const MemberIDKey claimsKey = "memberId"

func JWTAuth(publicKey *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Missing Authorization header", "auth"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Invalid Authorization header format", "auth"))
				return
			}

			tokenStr := parts[1]

			claims, err := utils.ParseAndVerifySign(tokenStr, publicKey)
			if err != nil {
				log.Error().Err(err).Msg("jwt verify failed")
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Invalid or expired token", "auth"))
				return
			}

			memberID, err := claims.MemberID()
			if err != nil {
				log.Error().Err(err).Msg("jwt subject is not a member id")
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Invalid token subject", "auth"))
				return
			}

			ctx := context.WithValue(r.Context(), MemberIDKey, memberID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAppError(w http.ResponseWriter, appErr *app_error.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Code)
	_ = appErr.JSON(w)
}
