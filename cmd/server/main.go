package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/vedran77/skillswap/internal/config"
	"github.com/vedran77/skillswap/internal/database"
	"github.com/vedran77/skillswap/internal/repository"
	memoryrepo "github.com/vedran77/skillswap/internal/repository/memory"
	postgresrepo "github.com/vedran77/skillswap/internal/repository/postgres"
	"github.com/vedran77/skillswap/internal/service"
	"github.com/vedran77/skillswap/internal/session"
	"github.com/vedran77/skillswap/internal/transport/http/handlers"
	"github.com/vedran77/skillswap/internal/transport/http/middleware"
	"github.com/vedran77/skillswap/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Repositories
	var userRepo repository.UserRepository
	var swapRepo repository.SwapRepository

	switch cfg.Store {
	case "postgres":
		pool, err := database.Connect(cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		log.Println("Connected to database")

		userRepo = postgresrepo.NewUserRepo(pool)
		swapRepo = postgresrepo.NewSwapRepo(pool)

	default:
		users := memoryrepo.NewUserRepo()
		if err := memoryrepo.Seed(context.Background(), users); err != nil {
			log.Fatal(err)
		}
		log.Println("Using in-memory store with demo roster")

		userRepo = users
		swapRepo = memoryrepo.NewSwapRepo()
	}

	// Session persistence
	sessions := session.NewFileStore(cfg.SessionFile)

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Services
	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret)
	swapService := service.NewSwapService(swapRepo, userRepo, notifier)
	directoryService := service.NewDirectoryService(userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	swapHandler := handlers.NewSwapHandler(swapService, authService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/directory", directoryHandler.Browse)

	// Protected - Session
	mux.Handle("POST /api/v1/auth/logout", auth(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/v1/auth/me", auth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PATCH /api/v1/auth/profile", auth(http.HandlerFunc(authHandler.UpdateProfile)))

	// Protected - Swap requests
	mux.Handle("POST /api/v1/swaps", auth(http.HandlerFunc(swapHandler.Send)))
	mux.Handle("GET /api/v1/swaps", auth(http.HandlerFunc(swapHandler.List)))
	mux.Handle("PATCH /api/v1/swaps/{id}/status", auth(http.HandlerFunc(swapHandler.UpdateStatus)))
	mux.Handle("DELETE /api/v1/swaps/{id}", auth(http.HandlerFunc(swapHandler.Delete)))

	// WebSocket (token via query param)
	mux.HandleFunc("GET /api/v1/ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
