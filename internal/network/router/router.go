package router

import (
	"github.com/denmor86/lucky-triple/internal/cache"
	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/network/handlers"
	"github.com/denmor86/lucky-triple/internal/network/middleware"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config        config.Config
	Identity      services.IdentityService
	Game          services.GameService
	Withdrawals   services.WithdrawalService
	Notifications services.NotificationService
	Admin         services.AdminService
}

func NewRouter(config config.Config, storage storage.Storage, cache cache.Cache) *Router {
	return &Router{
		Config:        config,
		Identity:      services.NewIdentity(config, storage.Users),
		Game:          services.NewGame(config, storage.Settings, storage.Wagers, cache),
		Withdrawals:   services.NewWithdrawals(storage.Withdrawals),
		Notifications: services.NewNotifications(storage.Users, storage.SMS),
		Admin:         services.NewAdmin(storage.Users, storage.Stats),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Post("/auth/signup", handlers.SignupHandler(router.Identity))
		r.Post("/auth/login", handlers.LoginHandler(router.Identity))

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))

			r.Get("/auth/me", handlers.MeHandler(router.Identity))
			r.Route("/game", func(r chi.Router) {
				r.Get("/settings", handlers.GetSettingsHandler(router.Game))
				r.Post("/play", handlers.PlayHandler(router.Game))
				r.Get("/history", handlers.HistoryHandler(router.Game))
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/request", handlers.RequestWithdrawalHandler(router.Withdrawals))
				r.Get("/mine", handlers.MyWithdrawalsHandler(router.Withdrawals))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/users", handlers.ListUsersHandler(router.Admin))
				r.Delete("/users/{id}", handlers.DeleteUserHandler(router.Admin))
				r.Post("/users/{id}/credit", handlers.CreditUserHandler(router.Admin))
				r.Get("/withdrawals", handlers.ListWithdrawalsHandler(router.Withdrawals))
				r.Post("/withdrawals/{id}/approve", handlers.ApproveWithdrawalHandler(router.Withdrawals))
				r.Post("/withdrawals/{id}/reject", handlers.RejectWithdrawalHandler(router.Withdrawals))
				r.Put("/settings", handlers.UpdateSettingsHandler(router.Game))
				r.Post("/sms", handlers.SendSMSHandler(router.Notifications))
				r.Post("/sms/all", handlers.SendSMSToAllHandler(router.Notifications))
				r.Get("/sms", handlers.SMSLogsHandler(router.Notifications))
				r.Get("/stats", handlers.StatsHandler(router.Admin))
			})
		})
	})
	return r
}
