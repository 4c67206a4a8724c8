package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultDBName = "fittrack"

const (
	UsersCollection           = "users"
	UserMetricsCollection     = "user_metrics"
	CoursesCollection         = "courses"
	HealthTipsCollection      = "health_tips"
	DidYouKnowCollection      = "did_you_know"
	RecommendationsCollection = "recommendations"
	ExercisesCollection       = "exercises"
	MealsCollection           = "meals"
	WorkoutLogsCollection     = "workout_logs"
	MealLogsCollection        = "meal_logs"
	SocialFeedCollection      = "social_feed"
)

var (
	client *mongo.Client
	DB     *mongo.Database
)

func ConnectDB(mongoURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	DB = client.Database(databaseFromURL(mongoURL))

	if err := ensureIndexes(ctx, DB); err != nil {
		return err
	}

	fmt.Println("Connected to MongoDB successfully")
	return nil
}

func CloseDB() {
	if client != nil {
		_ = client.Disconnect(context.Background())
	}
}

// ensureIndexes creates the indexes the services rely on. The unique
// (user_id, date) index on user_metrics makes the daily upsert race safe:
// two concurrent first-requests-of-the-day cannot create duplicate records.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}

	metrics := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("user_date_unique").SetUnique(true),
		},
	}
	if _, err := db.Collection(UserMetricsCollection).Indexes().CreateMany(ctx, metrics); err != nil {
		return fmt.Errorf("ensure metrics indexes: %w", err)
	}

	recency := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
	}
	for _, name := range []string{CoursesCollection, HealthTipsCollection, DidYouKnowCollection} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, recency); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}

	// Unique sparse external_id keeps concurrent or repeated catalog
	// fills from inserting the same upstream exercise or meal twice;
	// sparse so locally authored documents without an external_id are
	// not constrained.
	external := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "external_id", Value: 1}},
			Options: options.Index().SetName("external_id_unique").SetUnique(true).SetSparse(true),
		},
	}
	for _, name := range []string{ExercisesCollection, MealsCollection} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, external); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}

	recs := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("category_created_desc"),
		},
	}
	if _, err := db.Collection(RecommendationsCollection).Indexes().CreateMany(ctx, recs); err != nil {
		return fmt.Errorf("ensure recommendation indexes: %w", err)
	}

	return nil
}

func databaseFromURL(mongoURL string) string {
	u, err := url.Parse(mongoURL)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
