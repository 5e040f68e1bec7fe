package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/domain"
	"postboard/internal/middleware"
	"postboard/internal/modules/ai"
	"postboard/internal/modules/auth"
	"postboard/internal/modules/comments"
	"postboard/internal/modules/posts"
	"postboard/internal/modules/upload"
	"postboard/internal/modules/users"
	"postboard/internal/pkg/crud"
	"postboard/internal/pkg/googleauth"
	jwtsvc "postboard/internal/pkg/jwt"
	"postboard/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	if !j.Configured() {
		log.Println("JWT_SECRET is empty: auth operations will fail until it is set")
	}
	google := googleauth.New(cfg.GoogleClientID)

	authService := auth.NewService(userRepo, tokenRepo, j, google)
	authHandler := auth.NewHandler(authService)

	postService := crud.New[domain.Post](db)
	commentService := crud.New[domain.Comment](db)
	userService := crud.New[domain.User](db)

	postHandler := posts.NewHandler(postService)
	commentHandler := comments.NewHandler(commentService, postService)
	userHandler := users.NewHandler(userService)
	uploadHandler := upload.NewHandler(upload.NewService(cfg.UploadDir, cfg.PublicBaseURL))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Static("/storage", cfg.UploadDir)

	v1 := r.Group("/")
	{
		// public
		authHandler.RegisterRoutes(v1)
		postHandler.RegisterPublicRoutes(v1)
		commentHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			postHandler.RegisterProtectedRoutes(protected)
			commentHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterProtectedRoutes(protected)

			if cfg.GeminiAPIKey != "" {
				aiService, err := ai.NewService(context.Background(), cfg.GeminiAPIKey)
				if err != nil {
					log.Printf("gemini client unavailable, /ai routes disabled: %v", err)
				} else {
					ai.NewHandler(aiService).RegisterProtectedRoutes(protected)
				}
			} else {
				log.Println("GEMINI_API_KEY is empty, /ai routes disabled")
			}
		}
	}

	log.Printf("postboard listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
