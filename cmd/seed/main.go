package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/RebeyMasota/fittrack-backend/internal/config"
	"github.com/RebeyMasota/fittrack-backend/internal/database"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
	"github.com/RebeyMasota/fittrack-backend/pkg/utils"
)

// Seeds the default catalog: one filter-free recommendation per
// category so every profile always resolves something, a handful of
// baseline exercises and meals, and optionally an admin account when
// ADMIN_EMAIL and ADMIN_PASSWORD are set.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.MongoURL == "" {
		log.Fatal("MONGO_URL is required")
	}
	if err := database.ConnectDB(cfg.MongoURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedRecommendations(ctx)
	seedContent(ctx)
	seedExercises(ctx)
	seedMeals(ctx)
	seedAdmin(ctx)

	log.Println("Seed complete")
}

func seedRecommendations(ctx context.Context) {
	repo := repository.NewRecommendationRepository(database.DB)

	dailyGoalMl := 2500
	sleepGoal := 8.0
	defaults := []models.Recommendation{
		{
			Category:    models.CategoryWorkout,
			Title:       "Move Every Day",
			Description: "A daily walk or light session keeps your training habit alive.",
			Steps: []models.RecommendationStep{
				{Title: "Warm up", Description: "Five minutes of light movement before you start."},
				{Title: "Main effort", Description: "Twenty minutes at a pace where you can still talk."},
			},
			Tips: []string{"Schedule workouts like meetings", "Rest days are part of the plan"},
		},
		{
			Category:    models.CategoryNutrition,
			Title:       "Balance Your Plate",
			Description: "Half vegetables, a quarter protein, a quarter whole grains.",
			Tips:        []string{"Cook once, eat twice", "Protein with every meal"},
		},
		{
			Category:    models.CategoryHydration,
			Title:       "Steady Hydration",
			Description: "Spread your water intake across the day instead of catching up at night.",
			Reminders:   []string{"Glass of water with every meal", "Refill before your bottle is empty"},
			DailyGoalMl: &dailyGoalMl,
		},
		{
			Category:       models.CategoryRest,
			Title:          "Protect Your Sleep",
			Description:    "A consistent bedtime does more for recovery than any supplement.",
			Tips:           []string{"Screens off thirty minutes before bed", "Keep the room cool and dark"},
			SleepGoalHours: &sleepGoal,
		},
	}

	for i := range defaults {
		existing, err := repo.Find(ctx, bson.M{"category": defaults[i].Category}, 1)
		if err != nil {
			log.Fatalf("Check recommendations for %s: %v", defaults[i].Category, err)
		}
		if len(existing) > 0 {
			continue
		}
		if err := repo.Create(ctx, &defaults[i]); err != nil {
			log.Fatalf("Seed recommendation %s: %v", defaults[i].Category, err)
		}
		log.Printf("Seeded default %s recommendation", defaults[i].Category)
	}
}

func seedContent(ctx context.Context) {
	tipRepo := repository.NewHealthTipRepository(database.DB)
	factRepo := repository.NewDidYouKnowRepository(database.DB)
	courseRepo := repository.NewCourseRepository(database.DB)

	existingTips, err := tipRepo.Find(ctx, bson.M{}, 1)
	if err != nil {
		log.Fatalf("Check health tips: %v", err)
	}
	if len(existingTips) == 0 {
		tips := []models.HealthTip{
			{
				Title:       "Walk After Meals",
				Description: "A ten minute walk after eating helps regulate blood sugar.",
				Category:    "activity",
				Icon:        "walk",
			},
			{
				Title:       "Front-Load Your Water",
				Description: "Drinking most of your water before the evening improves sleep.",
				Category:    "hydration",
				Icon:        "water",
			},
			{
				Title:       "Keep a Consistent Bedtime",
				Description: "Going to bed at the same time anchors your whole sleep cycle.",
				Category:    "sleep",
				Icon:        "moon",
			},
		}
		for i := range tips {
			if err := tipRepo.Create(ctx, &tips[i]); err != nil {
				log.Fatalf("Seed health tip %q: %v", tips[i].Title, err)
			}
		}
		log.Printf("Seeded %d health tips", len(tips))
	}

	existingFacts, err := factRepo.Find(ctx, bson.M{}, 1)
	if err != nil {
		log.Fatalf("Check facts: %v", err)
	}
	if len(existingFacts) == 0 {
		facts := []models.DidYouKnow{
			{
				Fact:   "Muscle tissue burns more calories at rest than fat tissue does.",
				Source: "National Institutes of Health",
			},
			{
				Fact:   "Even mild dehydration can measurably reduce concentration.",
				Source: "Journal of Nutrition",
			},
			{
				Fact:   "Adults who sleep under seven hours are more likely to gain weight.",
				Source: "Sleep Foundation",
			},
		}
		for i := range facts {
			if err := factRepo.Create(ctx, &facts[i]); err != nil {
				log.Fatalf("Seed fact: %v", err)
			}
		}
		log.Printf("Seeded %d facts", len(facts))
	}

	existingCourses, err := courseRepo.Find(ctx, bson.M{}, 1)
	if err != nil {
		log.Fatalf("Check courses: %v", err)
	}
	if len(existingCourses) == 0 {
		courses := []models.Course{
			{
				Title:       "Foundations of Strength",
				Description: "Learn the core movement patterns behind every strength program.",
				Level:       models.LevelBeginner,
				Topics: []models.CourseTopic{
					{
						ID:    "movement-basics",
						Title: "Movement Basics",
						Steps: []models.CourseStep{
							{ID: "squat", Title: "The Squat", Content: "Hip hinge, knees tracking over toes, neutral spine."},
							{ID: "push", Title: "The Push", Content: "Press patterns for chest and shoulders with full range."},
						},
					},
				},
			},
			{
				Title:       "Eating for Energy",
				Description: "Build meals that keep you full and fuel your training.",
				Level:       models.LevelBeginner,
				Topics: []models.CourseTopic{
					{
						ID:    "plate-method",
						Title: "The Plate Method",
						Steps: []models.CourseStep{
							{ID: "portions", Title: "Portions", Content: "Half vegetables, a quarter protein, a quarter whole grains."},
						},
					},
				},
			},
		}
		for i := range courses {
			if err := courseRepo.Create(ctx, &courses[i]); err != nil {
				log.Fatalf("Seed course %q: %v", courses[i].Title, err)
			}
		}
		log.Printf("Seeded %d courses", len(courses))
	}
}

func seedExercises(ctx context.Context) {
	repo := repository.NewExerciseRepository(database.DB)

	existing, err := repo.Find(ctx, repository.ExerciseFilter{})
	if err != nil {
		log.Fatalf("Check exercises: %v", err)
	}
	if len(existing) > 0 {
		return
	}

	exercises := []models.Exercise{
		{
			Name:            "Bodyweight Squat",
			Type:            models.WorkoutStrength,
			MuscleGroup:     "Legs",
			Difficulty:      models.LevelBeginner,
			EquipmentNeeded: []string{"None"},
			Instructions:    []string{"Stand with feet shoulder width apart", "Lower until thighs are parallel to the floor", "Drive back up through your heels"},
		},
		{
			Name:            "Push-Up",
			Type:            models.WorkoutStrength,
			MuscleGroup:     "Chest",
			Difficulty:      models.LevelBeginner,
			EquipmentNeeded: []string{"None"},
			Instructions:    []string{"Hands under shoulders, body in a straight line", "Lower your chest to just above the floor", "Press back up without letting your hips sag"},
		},
		{
			Name:            "Dumbbell Row",
			Type:            models.WorkoutStrength,
			MuscleGroup:     "Back",
			Difficulty:      models.LevelIntermediate,
			EquipmentNeeded: []string{"Dumbbells"},
			Instructions:    []string{"Hinge forward with a flat back", "Pull the dumbbell to your hip", "Lower under control"},
		},
		{
			Name:            "Brisk Walking",
			Type:            models.WorkoutCardio,
			MuscleGroup:     "Full Body",
			Difficulty:      models.LevelBeginner,
			EquipmentNeeded: []string{"None"},
			Instructions:    []string{"Walk at a pace where conversation takes effort", "Keep it up for at least twenty minutes"},
		},
		{
			Name:            "Interval Running",
			Type:            models.WorkoutCardio,
			MuscleGroup:     "Legs",
			Difficulty:      models.LevelIntermediate,
			EquipmentNeeded: []string{"None"},
			Instructions:    []string{"Alternate one minute hard with two minutes easy", "Repeat eight times after a warm up"},
		},
	}
	for i := range exercises {
		if err := repo.Create(ctx, &exercises[i]); err != nil {
			log.Fatalf("Seed exercise %q: %v", exercises[i].Name, err)
		}
	}
	log.Printf("Seeded %d exercises", len(exercises))
}

func seedMeals(ctx context.Context) {
	repo := repository.NewMealRepository(database.DB)

	existing, err := repo.Find(ctx, repository.MealFilter{})
	if err != nil {
		log.Fatalf("Check meals: %v", err)
	}
	if len(existing) > 0 {
		return
	}

	meals := []models.Meal{
		{
			Name:             "Grilled Chicken Bowl",
			Calories:         450,
			Macros:           models.Macros{Protein: 38, Carbs: 42, Fats: 12},
			DietaryTags:      []string{"None"},
			PrepInstructions: "Grill the chicken, serve over rice with roasted vegetables.",
		},
		{
			Name:             "Lentil Curry",
			Calories:         420,
			Macros:           models.Macros{Protein: 22, Carbs: 58, Fats: 10},
			DietaryTags:      []string{"Vegan", "Vegetarian"},
			PrepInstructions: "Simmer lentils with tomatoes, coconut milk and curry spices.",
		},
		{
			Name:             "Salmon and Greens",
			Calories:         480,
			Macros:           models.Macros{Protein: 34, Carbs: 18, Fats: 28},
			DietaryTags:      []string{"None", "Gluten-Free"},
			PrepInstructions: "Bake the salmon, serve with steamed broccoli and olive oil.",
		},
		{
			Name:             "Greek Yogurt Parfait",
			Calories:         320,
			Macros:           models.Macros{Protein: 24, Carbs: 36, Fats: 8},
			DietaryTags:      []string{"Vegetarian"},
			PrepInstructions: "Layer yogurt with berries and a handful of granola.",
		},
	}
	for i := range meals {
		if err := repo.Create(ctx, &meals[i]); err != nil {
			log.Fatalf("Seed meal %q: %v", meals[i].Name, err)
		}
	}
	log.Printf("Seeded %d meals", len(meals))
}

func seedAdmin(ctx context.Context) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	repo := repository.NewUserRepository(database.DB)
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Hash admin password: %v", err)
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	}
	if err := repo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Printf("Admin %s already exists", email)
			return
		}
		log.Fatalf("Seed admin: %v", err)
	}
	log.Printf("Seeded admin %s", email)
}
