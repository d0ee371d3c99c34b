package api

import (
	"net/http"

	"github.com/eren460540/ZyraZoo/internal/api/handlers"
	"github.com/eren460540/ZyraZoo/internal/api/middleware"
	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/config"
	"github.com/eren460540/ZyraZoo/internal/service"
	ws "github.com/eren460540/ZyraZoo/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cat *catalog.Catalog, hub *ws.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	teamHandler := handlers.NewTeamHandler(services.Team)
	menagerieHandler := handlers.NewMenagerieHandler(services.Menagerie)
	catalogHandler := handlers.NewCatalogHandler(cat, services.Menagerie)
	battleHandler := handlers.NewBattleHandler(services.Battle, cfg)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/animals", catalogHandler.ListAnimals)
			r.Get("/foods", catalogHandler.ListFoods)
			r.Get("/index", catalogHandler.Index)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Post("/daily", profileHandler.ClaimDaily)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/", teamHandler.View)
				r.Put("/slots/{position}", teamHandler.SetSlot)
				r.Delete("/slots/{position}", teamHandler.ClearSlot)
				r.Put("/slots/{position}/food", teamHandler.EquipFood)
				r.Delete("/slots/{position}/food", teamHandler.UnequipFood)
			})

			r.Route("/menagerie", func(r chi.Router) {
				r.Post("/hunt", menagerieHandler.Hunt)
				r.Post("/fuse", menagerieHandler.Fuse)
				r.Post("/sell/animals", menagerieHandler.SellAnimals)
				r.Post("/sell/food", menagerieHandler.SellFood)
				r.Get("/zoo", menagerieHandler.Zoo)
				r.Get("/foods", menagerieHandler.Foods)
			})

			r.Route("/battles", func(r chi.Router) {
				r.Post("/", battleHandler.Battle)
				r.Get("/history", battleHandler.History)
			})
		})
	})

	r.Get("/ws", wsHandler.HandleWebSocket)

	return r
}
