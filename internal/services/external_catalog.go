package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
)

// ExerciseSource supplies exercises from an external catalog when the
// local collection has no match.
type ExerciseSource interface {
	FetchExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error)
}

// MealSource supplies recipes from an external catalog when the local
// collection has no match.
type MealSource interface {
	FetchMeals(ctx context.Context, dietaryTag string) ([]models.Meal, error)
}

// WgerClient pulls exercises from the wger workout manager API.
type WgerClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewWgerClient(baseURL, apiKey string) *WgerClient {
	return &WgerClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

func (c *WgerClient) FetchExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error) {
	query := url.Values{}
	query.Set("language", "2")
	query.Set("limit", "20")
	requestURL := fmt.Sprintf("%s/exercise/?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build wger request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Token "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch wger exercises: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("fetch wger exercises: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Results []struct {
			ID          int    `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			Category    struct {
				Name string `json:"name"`
			} `json:"category"`
			Muscles []struct {
				NameEn string `json:"name_en"`
			} `json:"muscles"`
			Equipment []struct {
				Name string `json:"name"`
			} `json:"equipment"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode wger response: %w", err)
	}

	exercises := make([]models.Exercise, 0, len(payload.Results))
	for _, result := range payload.Results {
		if result.Name == "" {
			continue
		}
		externalID := "wger-" + strconv.Itoa(result.ID)
		exercise := models.Exercise{
			ExternalID:  &externalID,
			Name:        result.Name,
			Type:        exerciseType,
			Difficulty:  models.LevelBeginner,
			MuscleGroup: "Full Body",
		}
		if len(result.Muscles) > 0 && result.Muscles[0].NameEn != "" {
			exercise.MuscleGroup = result.Muscles[0].NameEn
		}
		for _, equipment := range result.Equipment {
			if equipment.Name != "" {
				exercise.EquipmentNeeded = append(exercise.EquipmentNeeded, equipment.Name)
			}
		}
		if instructions := stripHTML(result.Description); instructions != "" {
			exercise.Instructions = []string{instructions}
		}
		exercises = append(exercises, exercise)
	}
	return exercises, nil
}

// EdamamClient pulls recipes from the Edamam recipe search API.
type EdamamClient struct {
	baseURL    string
	appID      string
	appKey     string
	httpClient *http.Client
}

func NewEdamamClient(baseURL, appID, appKey string) *EdamamClient {
	return &EdamamClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
		appKey:     appKey,
		httpClient: http.DefaultClient,
	}
}

func (c *EdamamClient) FetchMeals(ctx context.Context, dietaryTag string) ([]models.Meal, error) {
	query := url.Values{}
	query.Set("type", "public")
	query.Set("q", "healthy meal")
	query.Set("app_id", c.appID)
	query.Set("app_key", c.appKey)
	if health := edamamHealthLabel(dietaryTag); health != "" {
		query.Set("health", health)
	}
	requestURL := fmt.Sprintf("%s/api/recipes/v2?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build edamam request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch edamam recipes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("fetch edamam recipes: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Hits []struct {
			Recipe struct {
				URI             string   `json:"uri"`
				Label           string   `json:"label"`
				Calories        float64  `json:"calories"`
				Yield           float64  `json:"yield"`
				Image           string   `json:"image"`
				IngredientLines []string `json:"ingredientLines"`
				TotalNutrients  struct {
					Protein struct {
						Quantity float64 `json:"quantity"`
					} `json:"PROCNT"`
					Carbs struct {
						Quantity float64 `json:"quantity"`
					} `json:"CHOCDF"`
					Fat struct {
						Quantity float64 `json:"quantity"`
					} `json:"FAT"`
				} `json:"totalNutrients"`
			} `json:"recipe"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode edamam response: %w", err)
	}

	meals := make([]models.Meal, 0, len(payload.Hits))
	for _, hit := range payload.Hits {
		recipe := hit.Recipe
		if recipe.Label == "" {
			continue
		}
		servings := recipe.Yield
		if servings <= 0 {
			servings = 1
		}
		externalID := recipe.URI
		meal := models.Meal{
			ExternalID: &externalID,
			Name:       recipe.Label,
			Calories:   int(recipe.Calories / servings),
			Macros: models.Macros{
				Protein: recipe.TotalNutrients.Protein.Quantity / servings,
				Carbs:   recipe.TotalNutrients.Carbs.Quantity / servings,
				Fats:    recipe.TotalNutrients.Fat.Quantity / servings,
			},
			PrepInstructions: strings.Join(recipe.IngredientLines, "\n"),
		}
		if dietaryTag != "" {
			meal.DietaryTags = []string{dietaryTag}
		}
		if recipe.Image != "" {
			image := recipe.Image
			meal.ImageURL = &image
		}
		meals = append(meals, meal)
	}
	return meals, nil
}

func edamamHealthLabel(dietaryTag string) string {
	switch dietaryTag {
	case "Vegan":
		return "vegan"
	case "Vegetarian":
		return "vegetarian"
	case "Gluten-Free":
		return "gluten-free"
	case "Dairy-Free":
		return "dairy-free"
	case "Keto":
		return "keto-friendly"
	default:
		return ""
	}
}

// stripHTML flattens the markup wger uses in exercise descriptions into
// plain text.
func stripHTML(value string) string {
	var builder strings.Builder
	inTag := false
	for _, r := range value {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			builder.WriteRune(r)
		}
	}
	return strings.TrimSpace(builder.String())
}
