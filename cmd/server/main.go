package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dimantha2004/Blog-publication/internal/config"
	"github.com/dimantha2004/Blog-publication/internal/database"
	postgresrepo "github.com/dimantha2004/Blog-publication/internal/repository/postgres"
	"github.com/dimantha2004/Blog-publication/internal/service"
	"github.com/dimantha2004/Blog-publication/internal/storage"
	"github.com/dimantha2004/Blog-publication/internal/transport/http/handlers"
	"github.com/dimantha2004/Blog-publication/internal/transport/http/middleware"
	"github.com/dimantha2004/Blog-publication/internal/transport/ws"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	if err := database.Migrate(context.Background(), pool); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	profileRepo := postgresrepo.NewProfileRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, profileRepo, cfg.JWTSecret)
	profileService := service.NewProfileService(profileRepo, userRepo)
	postService := service.NewPostService(postRepo, profileRepo, userRepo)
	billingService := service.NewBillingService(profileRepo, userRepo, cfg.CheckoutURL)

	// Live feed
	hub := ws.NewHub()
	go hub.Run()
	postService.SetNotifier(ws.NewHubNotifier(hub))

	// Storage
	store := storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	postHandler := handlers.NewPostHandler(postService, profileService)
	billingHandler := handlers.NewBillingHandler(billingService, cfg.DashboardURL)
	uploadHandler := handlers.NewUploadHandler(store)

	// Middleware
	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)
	authLimit := middleware.RateLimit(5, 10)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.Handle("POST /api/v1/auth/register", authLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/login", authLimit(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET /api/v1/profiles/{id}", profileHandler.Summary)
	mux.HandleFunc("GET /api/v1/billing/products", billingHandler.Products)

	// Catalog - public with optional viewer
	mux.Handle("GET /api/v1/posts", optionalAuth(http.HandlerFunc(postHandler.List)))
	mux.Handle("GET /api/v1/posts/{id}", optionalAuth(http.HandlerFunc(postHandler.Get)))

	// Protected
	mux.Handle("GET /api/v1/auth/me", auth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /api/v1/profile", auth(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PATCH /api/v1/profile", auth(http.HandlerFunc(profileHandler.Update)))
	mux.Handle("POST /api/v1/posts", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("PATCH /api/v1/posts/{id}", auth(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /api/v1/posts/{id}", auth(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("POST /api/v1/billing/checkout", auth(http.HandlerFunc(billingHandler.Checkout)))
	mux.Handle("GET /api/v1/billing/success", auth(http.HandlerFunc(billingHandler.Success)))
	mux.Handle("POST /api/v1/uploads", auth(http.HandlerFunc(uploadHandler.Upload)))

	// Static uploads
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.Root()))))

	// Live feed
	mux.HandleFunc("GET /ws/feed", ws.ServeWS(hub, cfg.JWTSecret))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
