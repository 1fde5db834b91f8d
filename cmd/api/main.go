package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"corpsite_backend/internal/controller"
	"corpsite_backend/internal/middleware"
	"corpsite_backend/internal/model"
	"corpsite_backend/internal/repository"
	"corpsite_backend/internal/service"
	"corpsite_backend/pkg/config"
	"corpsite_backend/pkg/cron"
	"corpsite_backend/pkg/database"
	"corpsite_backend/pkg/email"
	"corpsite_backend/pkg/imagegen"
	"corpsite_backend/pkg/seed"
	jwtutil "corpsite_backend/pkg/utils/jwt"
)

func setupRoutes(
	app *fiber.App,
	auth *controller.AuthController,
	news *controller.NewsController,
	contact *controller.ContactController,
	users repository.UserRepository,
) {
	api := app.Group("/api")

	// Auth Routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/login", auth.Login)

	// Public Routes
	api.Post("/contact", contact.Submit)
	api.Get("/news", news.List)
	api.Get("/news/:id", news.GetByID)

	// Protected Routes
	protected := api.Group("/", middleware.AuthMiddleware(users))
	protected.Get("/me", auth.GetMe)

	// Admin Routes (rol kontrolü servis katmanında)
	admin := api.Group("/admin", middleware.AuthMiddleware(users))
	admin.Post("/news", news.Create)
	admin.Put("/news/:id", news.Update)
	admin.Delete("/news/:id", news.Delete)
	admin.Get("/news", news.ListAll)
	admin.Get("/contacts", contact.List)
	admin.Put("/contacts/:id/read", contact.MarkRead)
}

func main() {
	cfg := config.Load()

	jwtutil.Init(cfg.JWT.Secret)

	if err := email.InitEmailService(cfg.Email.ResendAPIKey, cfg.Email.OwnerEmail); err != nil {
		log.Printf("Email service disabled: %v", err)
	}

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.User{},
		&model.NewsPost{},
		&model.ContactSubmission{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	seed.SeedAdminUser(database.GetDB())

	userRepo := repository.NewUserRepository(database.GetDB())
	newsRepo := repository.NewNewsRepository(database.GetDB())
	contactRepo := repository.NewContactRepository(database.GetDB())

	var imageGen service.ImageGenerator
	if client, err := imagegen.NewClient(cfg.ImageGen.APIURL, cfg.ImageGen.APIKey); err != nil {
		log.Printf("Image generation disabled: %v", err)
	} else {
		imageGen = client
	}

	var notifier service.OwnerNotifier
	if email.GlobalEmailService != nil {
		notifier = email.GlobalEmailService
	}

	contactService := service.NewContactService(contactRepo, notifier)
	newsService := service.NewNewsService(newsRepo, imageGen)

	authController := controller.NewAuthController(userRepo)
	newsController := controller.NewNewsController(newsService)
	contactController := controller.NewContactController(contactService)

	cron.InitContactDigestCron(contactRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, authController, newsController, contactController, userRepo)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
