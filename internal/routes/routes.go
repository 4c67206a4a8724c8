package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RebeyMasota/fittrack-backend/internal/config"
	"github.com/RebeyMasota/fittrack-backend/internal/handlers"
	"github.com/RebeyMasota/fittrack-backend/internal/middleware"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
	"github.com/RebeyMasota/fittrack-backend/internal/services"
	pushws "github.com/RebeyMasota/fittrack-backend/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *mongo.Database) {
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	healthTipRepo := repository.NewHealthTipRepository(db)
	didYouKnowRepo := repository.NewDidYouKnowRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	mealRepo := repository.NewMealRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)
	workoutLogRepo := repository.NewWorkoutLogRepository(db)
	mealLogRepo := repository.NewMealLogRepository(db)
	feedRepo := repository.NewFeedRepository(db)

	var wger services.ExerciseSource
	if cfg.WgerAPIURL != "" {
		wger = services.NewWgerClient(cfg.WgerAPIURL, cfg.WgerAPIKey)
	}
	var edamam services.MealSource
	if cfg.EdamamAPIURL != "" && cfg.EdamamAppID != "" && cfg.EdamamAppKey != "" {
		edamam = services.NewEdamamClient(cfg.EdamamAPIURL, cfg.EdamamAppID, cfg.EdamamAppKey)
	}

	hub := pushws.NewHub()
	go hub.Run()

	metricsService := services.NewMetricsService(userRepo, metricsRepo)
	profileService := services.NewProfileService(userRepo, metricsService)
	contentService := services.NewContentService(userRepo, courseRepo, healthTipRepo, didYouKnowRepo)
	recommendationService := services.NewRecommendationService(
		userRepo, recommendationRepo, exerciseRepo, mealRepo, metricsService, hub,
	)
	catalogService := services.NewCatalogService(exerciseRepo, mealRepo, wger, edamam)
	activityService := services.NewActivityService(
		userRepo, exerciseRepo, mealRepo, workoutLogRepo, mealLogRepo, metricsService,
	)
	feedService := services.NewFeedService(feedRepo, userRepo)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profileService)
	contentHandler := handlers.NewContentHandler(contentService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, activityService)
	feedHandler := handlers.NewFeedHandler(feedService)
	wsHandler := handlers.NewWSHandler(hub, cfg.JWTSecret)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	v1 := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	users := v1.Group("/users")
	users.Get("/profile", profileHandler.GetProfile)
	users.Post("/profile/complete", profileHandler.CompleteProfile)
	users.Put("/profile", profileHandler.UpdateProfile)

	metrics := v1.Group("/metrics")
	metrics.Get("", metricsHandler.GetUserMetrics)
	metrics.Post("/steps", metricsHandler.LogSteps)
	metrics.Post("/water", metricsHandler.LogWater)
	metrics.Post("/sleep", metricsHandler.LogSleep)

	content := v1.Group("/content")
	content.Get("/courses", contentHandler.GetCourses)
	content.Get("/courses/:id", contentHandler.GetCourse)
	content.Get("/health-tips", contentHandler.GetHealthTips)
	content.Get("/facts", contentHandler.GetDidYouKnowFacts)

	recommendations := v1.Group("/recommendations")
	recommendations.Get("", recommendationHandler.GetRecommendations)
	recommendations.Get("/cards", recommendationHandler.GetCards)

	catalog := v1.Group("/catalog")
	catalog.Get("/exercises", catalogHandler.GetExercises)
	catalog.Get("/exercises/:id", catalogHandler.GetExercise)
	catalog.Get("/meals", catalogHandler.GetMeals)
	catalog.Get("/meals/:id", catalogHandler.GetMeal)

	activity := v1.Group("/activity")
	activity.Post("/workouts", catalogHandler.LogWorkout)
	activity.Get("/workouts", catalogHandler.WorkoutHistory)
	activity.Post("/meals", catalogHandler.LogMeal)
	activity.Get("/meals", catalogHandler.MealHistory)

	feed := v1.Group("/feed")
	feed.Get("", feedHandler.GetFeed)
	feed.Post("", feedHandler.CreatePost)
	feed.Get("/:id", feedHandler.GetPost)
	feed.Put("/:id", feedHandler.UpdatePost)
	feed.Delete("/:id", feedHandler.DeletePost)
	feed.Post("/:id/like", feedHandler.ToggleLike)
	feed.Post("/:id/comments", feedHandler.CommentPost)

	admin := v1.Group("/admin", middleware.AdminRequired())
	admin.Get("/courses", contentHandler.GetAllCourses)
	admin.Post("/courses", contentHandler.CreateCourse)
	admin.Put("/courses/:id", contentHandler.UpdateCourse)
	admin.Delete("/courses/:id", contentHandler.DeleteCourse)
	admin.Get("/health-tips", contentHandler.GetAllHealthTips)
	admin.Post("/health-tips", contentHandler.CreateHealthTip)
	admin.Put("/health-tips/:id", contentHandler.UpdateHealthTip)
	admin.Delete("/health-tips/:id", contentHandler.DeleteHealthTip)
	admin.Get("/facts", contentHandler.GetAllDidYouKnowFacts)
	admin.Post("/facts", contentHandler.CreateDidYouKnow)
	admin.Put("/facts/:id", contentHandler.UpdateDidYouKnow)
	admin.Delete("/facts/:id", contentHandler.DeleteDidYouKnow)
	admin.Get("/recommendations", recommendationHandler.GetAllRecommendations)
	admin.Post("/recommendations", recommendationHandler.CreateRecommendation)
	admin.Put("/recommendations/:id", recommendationHandler.UpdateRecommendation)
	admin.Delete("/recommendations/:id", recommendationHandler.DeleteRecommendation)

	// Mounted outside the v1 group: browser websocket clients cannot set
	// an Authorization header, so WebSocketAuth accepts the token from the
	// query string as well.
	api.Use("/ws", wsHandler.WebSocketAuth)
	api.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
