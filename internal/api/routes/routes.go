package routes

import (
	"context"
	"log"

	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/api/middleware"
	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/notify"
	"hackathon-portal-backend/internal/random"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator and randomness
	validator := validator.New()
	rng := random.NewCryptoRand()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	institutionRepo := repository.NewInstitutionRepository(db)
	stackRepo := repository.NewTechnologyStackRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	prefRepo := repository.NewMentorPreferenceRepository(db)
	jobRepo := repository.NewBulkUploadJobRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Identity and notifications
	provider := identity.NewLocalProvider(db, cfg.JWTSecret, cfg.JWTTTL())
	notifier, err := notify.NewMailNotifier(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, cfg.MailTemplates)
	if err != nil {
		log.Printf("Warning: mail notifier disabled: %v", err)
		notifier, _ = notify.NewMailNotifier(notify.SMTPConfig{}, "")
	}

	// GitHub client for repository provisioning; nil leaves it unconfigured
	var githubAPI service.GitHubAPI
	if cfg.GitHubToken != "" && cfg.GitHubOrg != "" {
		client, err := service.NewGitHubClient(context.Background(), cfg.GitHubToken, cfg.GitHubBaseURL)
		if err != nil {
			log.Printf("Warning: GitHub client initialization failed: %v", err)
		} else {
			githubAPI = client
		}
	}

	// Initialize services
	profileService := service.NewProfileService(profileRepo, institutionRepo, validator)
	institutionService := service.NewInstitutionService(institutionRepo, validator)
	stackService := service.NewTechnologyStackService(stackRepo, validator)
	teamService := service.NewTeamService(teamRepo, profileRepo, stackRepo, rng, cfg.MaxTeamSize, validator)
	assignmentService := service.NewMentorAssignmentService(prefRepo, teamRepo, profileRepo, stackRepo, notifier, validator)
	uploadService := service.NewBulkUploadService(jobRepo, profileRepo, institutionRepo, prefRepo, provider, notifier, rng, cfg.MentorDefaultCapacity)
	watcher := service.NewJobWatcher(jobRepo, cfg.JobPollInterval())
	provisionService := service.NewRepoProvisionService(teamRepo, profileRepo, githubAPI, notifier, cfg.GitHubOrg, cfg.GitHubConcurrency)
	sessionService := service.NewSessionService(sessionRepo, profileRepo, notifier, validator)

	// Auth middleware
	authMiddleware := auth.NewMiddleware(provider, profileRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(provider)
	profileHandler := handlers.NewProfileHandler(profileService)
	catalogHandler := handlers.NewCatalogHandler(institutionService, stackService)
	teamHandler := handlers.NewTeamHandler(teamService)
	mentorHandler := handlers.NewMentorHandler(assignmentService, provisionService)
	uploadHandler := handlers.NewBulkUploadHandler(uploadService, watcher)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	router.POST("/auth/login", authHandler.Login)

	// API routes behind authentication
	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())

	staffOnly := authMiddleware.RequireRole(models.RoleAdmin, models.RoleOrganizer)
	moderation := authMiddleware.RequireRole(models.RoleAdmin, models.RoleOrganizer, models.RoleModerator)

	// Profiles
	api.POST("/profiles", staffOnly, profileHandler.CreateProfile)
	api.GET("/profiles", profileHandler.ListProfiles)
	api.GET("/profiles/:id", profileHandler.GetProfile)
	api.PUT("/profiles/:id", profileHandler.UpdateProfile)
	api.POST("/profiles/:id/approve", moderation, profileHandler.ApproveProfile)
	api.POST("/profiles/:id/flag", moderation, profileHandler.FlagProfile)

	// Catalog
	api.POST("/institutions", staffOnly, catalogHandler.CreateInstitution)
	api.GET("/institutions", catalogHandler.ListInstitutions)
	api.POST("/tech-stacks", staffOnly, catalogHandler.CreateTechnologyStack)
	api.GET("/tech-stacks", catalogHandler.ListTechnologyStacks)

	// Teams
	api.POST("/teams", teamHandler.CreateTeam)
	api.GET("/teams", teamHandler.ListTeams)
	api.GET("/teams/:id", teamHandler.GetTeam)
	api.PUT("/teams/:id", teamHandler.UpdateTeam)
	api.PATCH("/teams/:id/status", teamHandler.SetTeamStatus)
	api.POST("/teams/join", teamHandler.JoinTeam)
	api.POST("/teams/:id/leave", teamHandler.LeaveTeam)

	// Mentor assignment and repository provisioning
	api.PUT("/mentors/preference", mentorHandler.SetPreference)
	api.GET("/mentors/:id/preference", mentorHandler.GetPreference)
	api.GET("/teams/:id/mentors/eligible", mentorHandler.EligibleMentors)
	api.POST("/teams/:id/mentors/auto-assign", staffOnly, mentorHandler.AutoAssign)
	api.POST("/teams/:id/mentors/assign", staffOnly, mentorHandler.ManualAssign)
	api.POST("/teams/:id/repository", staffOnly, mentorHandler.ProvisionRepository)

	// Bulk uploads
	api.POST("/uploads/participants", staffOnly, uploadHandler.UploadParticipants)
	api.POST("/uploads/mentors", staffOnly, uploadHandler.UploadMentors)
	api.GET("/uploads/jobs", staffOnly, uploadHandler.ListJobs)
	api.GET("/uploads/jobs/:id", staffOnly, uploadHandler.GetJob)
	api.GET("/uploads/jobs/:id/watch", staffOnly, uploadHandler.WatchJob)

	// Sessions
	api.POST("/sessions/templates", sessionHandler.CreateTemplate)
	api.GET("/sessions/mentors/:id/availabilities", sessionHandler.ListAvailabilities)
	api.GET("/sessions/mentors/:id/bookings", sessionHandler.ListMentorBookings)
	api.POST("/sessions/bookings", sessionHandler.BookSession)
	api.POST("/sessions/bookings/:id/cancel", sessionHandler.CancelBooking)
	api.GET("/sessions/profiles/:id/bookings", sessionHandler.ListBookings)

	return router
}
