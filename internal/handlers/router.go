package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/itlaf/fotostudio/internal/middleware"
	"github.com/itlaf/fotostudio/internal/store"
)

// RouterOptions carries everything the route table needs beyond the handlers.
type RouterOptions struct {
	Secret         string
	UploadDir      string
	Users          store.UserStore
	LoginRate      float64
	LoginRateBurst int
	Logger         *slog.Logger
}

// NewRouter assembles the full route table. Auth endpoints and static uploads
// are public; everything under /api besides them requires a valid token, and
// user administration additionally requires the ADMIN role.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Logging(opts.Logger))

	loginLimiter := middleware.NewRateLimiter(opts.LoginRate, opts.LoginRateBurst)

	r.Get("/api/health", Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.With(loginLimiter.Middleware).Post("/login", h.Auth.Login)
	})

	uploads := http.FileServer(http.Dir(filepath.Clean(opts.UploadDir)))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", uploads))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(opts.Secret))

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/me", h.Users.Me)
			r.Get("/profile", h.Users.GetProfile)
			r.Put("/profile", h.Users.UpdateProfile)
			r.Put("/avatar", h.Users.UpdateAvatar)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(opts.Users))
				r.Get("/", h.Users.List)
				r.Post("/", h.Users.Create)
				r.Put("/{id}", h.Users.Update)
				r.Delete("/{id}", h.Users.Delete)
			})
		})

		r.Route("/api/clients", func(r chi.Router) {
			r.Get("/", h.Clients.List)
			r.Post("/", h.Clients.Create)
			r.Get("/{id}", h.Clients.GetByID)
			r.Put("/{id}", h.Clients.Update)
			r.Delete("/{id}", h.Clients.Delete)
		})

		r.Route("/api/sessions", func(r chi.Router) {
			r.Get("/", h.Sessions.List)
			r.Post("/", h.Sessions.Create)
			r.Get("/{id}", h.Sessions.GetByID)
			r.Put("/{id}", h.Sessions.Update)
			r.Patch("/{id}/status", h.Sessions.UpdateStatus)
			r.Delete("/{id}", h.Sessions.Delete)
			r.Post("/{id}/photos", h.Sessions.AddPhoto)
			r.Delete("/{id}/photos/{photoID}", h.Sessions.DeletePhoto)
		})

		r.Route("/api/quotes", func(r chi.Router) {
			r.Get("/", h.Quotes.List)
			r.Post("/", h.Quotes.Create)
			r.Get("/{id}", h.Quotes.GetByID)
			r.Put("/{id}", h.Quotes.Update)
			r.Patch("/{id}/status", h.Quotes.UpdateStatus)
			r.Post("/{id}/send", h.Quotes.Send)
			r.Delete("/{id}", h.Quotes.Delete)
		})

		r.Route("/api/equipments", func(r chi.Router) {
			r.Get("/", h.Equipments.List)
			r.Post("/", h.Equipments.Create)
			r.Get("/{id}", h.Equipments.GetByID)
			r.Put("/{id}", h.Equipments.Update)
			r.Delete("/{id}", h.Equipments.Delete)
		})

		r.Route("/api/transactions", func(r chi.Router) {
			r.Get("/", h.Transactions.List)
			r.Post("/", h.Transactions.Create)
			r.Get("/{id}", h.Transactions.GetByID)
			r.Put("/{id}", h.Transactions.Update)
			r.Delete("/{id}", h.Transactions.Delete)
		})

		r.Route("/api/system/configs", func(r chi.Router) {
			r.Get("/", h.System.List)
			r.Post("/", h.System.Create)
			r.Get("/{key}", h.System.GetByKey)
			r.Put("/{key}", h.System.UpdateByKey)
			r.Delete("/{key}", h.System.DeleteByKey)
		})
	})

	return r
}
