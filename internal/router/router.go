// Package router assembles the HTTP surface: repositories, services and
// handlers wired over one store, the route table and the middleware chain.
package router

import (
	"net/http"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/handler"
	"github.com/forgo/holocron/api/internal/metrics"
	"github.com/forgo/holocron/api/internal/middleware"
	"github.com/forgo/holocron/api/internal/repository"
	"github.com/forgo/holocron/api/internal/service"
)

// Config holds the router dependencies
type Config struct {
	DB             database.Database
	AllowedOrigins []string
}

type route struct {
	pattern string
	handler handler.Func
}

// New builds the application handler with every route and global middleware
func New(cfg Config) http.Handler {
	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	characterRepo := repository.NewCharacterRepository(cfg.DB)
	planetRepo := repository.NewPlanetRepository(cfg.DB)
	favCharRepo := repository.NewFavoriteCharacterRepository(cfg.DB)
	favPlanetRepo := repository.NewFavoritePlanetRepository(cfg.DB)

	// Initialize services
	userService := service.NewUserService(service.UserServiceConfig{
		UserRepo: userRepo,
	})
	characterService := service.NewCharacterService(service.CharacterServiceConfig{
		CharacterRepo: characterRepo,
	})
	planetService := service.NewPlanetService(service.PlanetServiceConfig{
		PlanetRepo: planetRepo,
	})
	favoriteService := service.NewFavoriteService(service.FavoriteServiceConfig{
		UserRepo:              userRepo,
		CharacterRepo:         characterRepo,
		PlanetRepo:            planetRepo,
		FavoriteCharacterRepo: favCharRepo,
		FavoritePlanetRepo:    favPlanetRepo,
	})

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(cfg.DB)
	userHandler := handler.NewUserHandler(userService)
	characterHandler := handler.NewCharacterHandler(characterService)
	planetHandler := handler.NewPlanetHandler(planetService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	routes := []route{
		// Health check
		{"GET /health", healthHandler.Check},

		// User endpoints
		{"GET /user", userHandler.List},
		{"GET /user/{id}", userHandler.Get},
		{"POST /user", userHandler.Create},
		{"DELETE /user/{id}", userHandler.Delete},
		{"DELETE /delete/{id}", userHandler.Delete},

		// Character endpoints
		{"GET /characters", characterHandler.List},
		{"GET /characters/{id}", characterHandler.Get},
		{"POST /characters", characterHandler.Create},

		// Planet endpoints
		{"GET /planet", planetHandler.List},
		{"GET /planet/{id}", planetHandler.Get},
		{"POST /planet", planetHandler.Create},

		// Favorite endpoints
		{"GET /user/favoritesPlanets/{user_id}", favoriteHandler.ListPlanets},
		{"GET /user/favoritesCharacters/{user_id}", favoriteHandler.ListCharacters},
		{"POST /favorite/planet", favoriteHandler.AddPlanet},
		{"POST /favorite/character", favoriteHandler.AddCharacter},
		{"DELETE /favorite/planet/{id}", favoriteHandler.RemovePlanet},
		{"DELETE /favorite/character/{id}", favoriteHandler.RemoveCharacter},
	}

	patterns := make([]string, 0, len(routes)+2)
	patterns = append(patterns, "GET /", "GET /metrics")
	for _, rt := range routes {
		patterns = append(patterns, rt.pattern)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Wrap(handler.NewIndexHandler(patterns).Index))
	mux.Handle("GET /metrics", metrics.Handler())
	for _, rt := range routes {
		mux.HandleFunc(rt.pattern, handler.Wrap(rt.handler))
	}
	mux.HandleFunc("/", handler.Wrap(handler.NotFound))

	// Apply global middleware
	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		metrics.InstrumentHandler,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.StripSlashes,
		middleware.Compress,
	)
}
