package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/send-otp", authHandler.SendOTP)
	r.Post("/api/verify-email", authHandler.VerifyEmail)
	r.Post("/api/reset-password", authHandler.ResetPassword)

	// Protected routes
	auth := middleware.Auth(config.JWT, repo.Session, log)
	r.With(auth).Post("/api/logout", authHandler.Logout)
	r.With(auth).Get("/api/me", authHandler.Me)
}
