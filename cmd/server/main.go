package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the process environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/IUDAlexis/peliculas-api/internal/config"     // Internal config loader
	"github.com/IUDAlexis/peliculas-api/internal/database"   // MySQL connection pool
	"github.com/IUDAlexis/peliculas-api/internal/handler"    // HTTP handlers
	"github.com/IUDAlexis/peliculas-api/internal/middleware" // Rate limiting and response cache
	"github.com/IUDAlexis/peliculas-api/internal/queue"      // Background event consumer
	"github.com/IUDAlexis/peliculas-api/internal/repository" // MySQL repositories
	"github.com/IUDAlexis/peliculas-api/internal/router"     // Route registration
	"github.com/IUDAlexis/peliculas-api/internal/service"    // RabbitMQ event publisher
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	e := echo.New() // Create Echo instance

	// Redis backs both the token-bucket rate limiter and the media list cache.
	rdb := config.NewRedisClient()
	if rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	}
	var mediaCache echo.MiddlewareFunc
	if rdb != nil {
		mediaCache = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	}

	// Repositories over the shared pool.
	usuarios := repository.NewUsuarioRepo(db)
	generos := repository.NewGeneroRepo(db)
	directores := repository.NewDirectorRepo(db)
	productoras := repository.NewProductoraRepo(db)
	tipos := repository.NewTipoRepo(db)
	media := repository.NewMediaRepo(db)

	// Handlers.
	authH := handler.NewAuthHandler(cfg, usuarios)
	usuarioH := handler.NewUsuarioHandler(cfg, usuarios)
	generoH := handler.NewGeneroHandler(generos)
	directorH := handler.NewDirectorHandler(directores)
	productoraH := handler.NewProductoraHandler(productoras)
	tipoH := handler.NewTipoHandler(tipos)
	mediaH := handler.NewMediaHandler(media, service.NewEventPublisher())

	// Routes.
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, usuarioH, cfg.JWTSecret)
	router.RegisterUsuarios(e, usuarioH, cfg.JWTSecret)
	router.RegisterCatalogo(e, generoH, directorH, productoraH, tipoH, cfg.JWTSecret)
	router.RegisterMedia(e, mediaH, cfg.JWTSecret, mediaCache)

	// Consume catalog events in the background; the consumer reconnects on
	// its own and never takes the API down.
	go func() {
		if err := queue.StartCatalogConsumer(); err != nil {
			log.Printf("catalog consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
