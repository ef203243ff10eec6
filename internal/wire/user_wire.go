package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT, repo.Session, log)
	admin := middleware.Admin(repo.User, log)

	r.Route("/api/users", func(r chi.Router) {
		r.Use(auth)
		r.Get("/profile", userHandler.GetProfile)
		r.Patch("/profile", userHandler.UpdateProfile)
		r.Post("/change-password", userHandler.ChangePassword)
		r.With(admin).Get("/{id}", userHandler.GetUser)
	})
}
