package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

type stubExerciseStore struct {
	local     []models.Exercise
	created   []models.Exercise
	createErr error
}

func (s *stubExerciseStore) Find(ctx context.Context, filter repository.ExerciseFilter) ([]models.Exercise, error) {
	return s.local, nil
}

func (s *stubExerciseStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Exercise, error) {
	return nil, repository.ErrNotFound
}

func (s *stubExerciseStore) Create(ctx context.Context, exercise *models.Exercise) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, *exercise)
	s.local = append(s.local, *exercise)
	return nil
}

type stubExerciseSource struct {
	exercises []models.Exercise
	err       error
	calls     int
}

func (s *stubExerciseSource) FetchExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.exercises, nil
}

func TestGetExercisesSkipsExternalWhenLocalHasResults(t *testing.T) {
	store := &stubExerciseStore{local: []models.Exercise{{Name: "Push-Up"}}}
	source := &stubExerciseSource{}
	service := NewCatalogService(store, nil, source, nil)

	exercises, err := service.GetExercises(context.Background(), repository.ExerciseFilter{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(exercises) != 1 {
		t.Fatalf("Expected local result, got %d", len(exercises))
	}
	if source.calls != 0 {
		t.Errorf("External source must not be hit when local results exist")
	}
}

func TestGetExercisesFillsFromExternalSource(t *testing.T) {
	store := &stubExerciseStore{}
	source := &stubExerciseSource{exercises: []models.Exercise{
		{Name: "Interval Running"},
		{Name: "Brisk Walking"},
	}}
	service := NewCatalogService(store, nil, source, nil)

	exercises, err := service.GetExercises(context.Background(), repository.ExerciseFilter{Type: models.WorkoutCardio})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(exercises) != 2 {
		t.Fatalf("Expected fetched exercises after fill, got %d", len(exercises))
	}
	if len(store.created) != 2 {
		t.Errorf("Fetched exercises must be stored, got %d", len(store.created))
	}
}

func TestGetExercisesFillToleratesDuplicates(t *testing.T) {
	store := &stubExerciseStore{createErr: repository.ErrDuplicate}
	source := &stubExerciseSource{exercises: []models.Exercise{{Name: "Push-Up"}}}
	service := NewCatalogService(store, nil, source, nil)

	// A concurrent fill already stored the fetched exercise; the
	// duplicate insert must not surface as an error.
	exercises, err := service.GetExercises(context.Background(), repository.ExerciseFilter{})
	if err != nil {
		t.Fatalf("Duplicate inserts must be tolerated, got %v", err)
	}
	if len(exercises) != 0 {
		t.Errorf("Expected the re-query result, got %d", len(exercises))
	}
}

func TestGetExercisesSwallowsExternalFailure(t *testing.T) {
	store := &stubExerciseStore{}
	source := &stubExerciseSource{err: errors.New("upstream down")}
	service := NewCatalogService(store, nil, source, nil)

	exercises, err := service.GetExercises(context.Background(), repository.ExerciseFilter{})
	if err != nil {
		t.Fatalf("External failures must not surface, got %v", err)
	}
	if len(exercises) != 0 {
		t.Errorf("Expected empty result on external failure, got %d", len(exercises))
	}
	if source.calls != 1 {
		t.Errorf("Expected one external attempt, got %d", source.calls)
	}
}

func TestGetExercisesWithoutConfiguredSource(t *testing.T) {
	store := &stubExerciseStore{}
	service := NewCatalogService(store, nil, nil, nil)

	exercises, err := service.GetExercises(context.Background(), repository.ExerciseFilter{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(exercises) != 0 {
		t.Errorf("Expected empty result, got %d", len(exercises))
	}
}
