package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier/auth"
	"atelier/blog"
	"atelier/config"
	"atelier/contact"
	"atelier/db"
	"atelier/instagram"
	"atelier/middleware"
	"atelier/models"
	"atelier/newsletter"
	"atelier/ratelim"
	"atelier/rdx"
	"atelier/repo"
	"atelier/routes"
	"atelier/sitesettings"
	"atelier/team"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(cfg config.Config, store *db.Store, cache *rdx.Client) *httprouter.Router {
	session := middleware.NewSession(cfg.JWTSecret)
	rateLimiter := ratelim.NewRateLimiter()

	accounts := repo.NewMongo[models.AdminAccount](store.Admins, nil)
	posts := repo.NewMongo[models.BlogPost](store.Blog, repo.DateDesc)
	members := repo.NewMongo[models.TeamMember](store.Team, nil)
	igPosts := repo.NewMongo[models.InstagramPost](store.Instagram, repo.DateDesc)
	subscribers := repo.NewMongo[models.NewsletterSubscriber](store.Subscribers, nil)
	settings := repo.NewMongo[models.SiteSettings](store.Settings, nil)

	mailer := contact.SMTPSender{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.EmailUser,
		Pass: cfg.EmailPass,
	}

	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router, auth.NewHandler(accounts, session, cache), rateLimiter)
	routes.AddBlogRoutes(router, blog.NewHandler(posts), session)
	routes.AddTeamRoutes(router, team.NewHandler(members), session)
	routes.AddInstagramRoutes(router, instagram.NewHandler(igPosts), session)
	routes.AddNewsletterRoutes(router, newsletter.NewHandler(subscribers), session, rateLimiter)
	routes.AddSettingsRoutes(router, sitesettings.NewHandler(settings, cfg.StorageBucket), session)
	routes.AddContactRoutes(router, contact.NewHandler(cfg, mailer), rateLimiter)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	cache := rdx.Connect(cfg.RedisURL)

	router := setupRouter(cfg, store, cache)

	// apply middleware: CORS → security headers → admin gate → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(middleware.AdminGate(router))

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	cache.Close()
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}

	log.Println("Server stopped cleanly")
}
