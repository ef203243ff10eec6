package middleware

import (
	"net/http"
	"strings"

	"flight-booking/internal/data/repository"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the JWT from the "token" cookie or the Authorization
// header, then checks the referenced session has not been revoked.
func Auth(cfg utils.JWTConfig, sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			claims, err := utils.ParseToken(cfg, token)
			if err != nil {
				logger.Warn("Invalid auth token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := utils.ParseUUID(claims.Subject)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			sessionID, err := utils.ParseUUID(claims.ID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), sessionID)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("session_id", sessionID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Revoked or expired session", zap.String("session_id", sessionID.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Role)
			ctx = utils.SetSessionContext(ctx, sessionID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires an authenticated user whose stored role is admin. The
// role is re-read from the user store rather than trusted from claims.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Role != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}

	return ""
}
