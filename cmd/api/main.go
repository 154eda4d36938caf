package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"drivemind/internal/config"
	"drivemind/internal/database"
	"drivemind/internal/middleware"
	"drivemind/internal/modules/auth"
	"drivemind/internal/modules/catalog"
	"drivemind/internal/modules/rag"
	"drivemind/internal/pkg/embed"
	"drivemind/internal/pkg/llm"
	"drivemind/internal/pkg/pdftext"
	"drivemind/internal/pkg/vector"
	"drivemind/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	adminRepo := repository.NewAdminRepository(db)
	userRepo := repository.NewUserRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	authService := auth.NewService(adminRepo, userRepo)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(folderRepo, documentRepo, userRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	ragService := rag.NewService(
		cfg.UploadDir,
		embed.NewClient(cfg.CohereAPIKey),
		vector.NewClient(cfg.PineconeAPIKey, cfg.PineconeIndex),
		llm.NewClient(cfg.GroqAPIKey),
		pdftext.Extract,
	)
	ragHandler := rag.NewHandler(ragService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/static", "./static")
	r.GET("/", func(c *gin.Context) {
		c.File("./static/login.html")
	})

	root := r.Group("/")
	{
		authHandler.RegisterRoutes(root)
		catalogHandler.RegisterRoutes(root)
		ragHandler.RegisterRoutes(root)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
