package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"examsense/config"
	"examsense/database"
	_ "examsense/docs" // Swagger docs - auto-generated
	adminctrl "examsense/internal/controller/admin"
	participantctrl "examsense/internal/controller/participant"
	"examsense/internal/repository"
	"examsense/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the assessment API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,    // Provides *gorm.DB
			database.NewRedisClient, // Provides *redis.Client, nil when caching is disabled
			NewGinEngine,            // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			// The assessment repository reads through Redis when available.
			func(db *gorm.DB, client *redis.Client, cfg *config.Config) repository.AssessmentRepository {
				return repository.NewCachedAssessmentRepository(repository.NewAssessmentRepository(db), client, cfg.Redis.CacheTTL)
			},
			repository.NewAttemptRepository,
			repository.NewSnapshotRepository,
			repository.NewInteractionEventRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAnalysisClient,
			service.NewAnalysisService,
			service.NewStreamRegistry,
			service.NewTimelineService,
			service.NewSubmissionService,
			service.NewAssessmentService,
			service.NewAdminAssessmentService,
		),

		// API Controllers Layer
		fx.Provide(
			participantctrl.NewParticipantController,
			adminctrl.NewAdminAssessmentController,
		),

		fx.Invoke(database.AutoMigrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		return err
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	return nil
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts the API groups and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	participantCtrl *participantctrl.ParticipantController,
	adminCtrl *adminctrl.AdminAssessmentController,
) {
	apiV1 := router.Group("/api/v1")
	participantCtrl.RegisterRoutes(apiV1)
	adminCtrl.RegisterRoutes(apiV1.Group("/admin"))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
