package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RebeyMasota/fittrack-backend/internal/matching"
	"github.com/RebeyMasota/fittrack-backend/internal/models"
	"github.com/RebeyMasota/fittrack-backend/internal/repository"
)

const (
	healthTipLimit  = 3
	didYouKnowLimit = 4
)

type CourseStore interface {
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.Course, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id primitive.ObjectID, course models.Course) (*models.Course, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type HealthTipStore interface {
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.HealthTip, error)
	Create(ctx context.Context, tip *models.HealthTip) error
	Update(ctx context.Context, id primitive.ObjectID, tip models.HealthTip) (*models.HealthTip, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DidYouKnowStore interface {
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.DidYouKnow, error)
	Create(ctx context.Context, item *models.DidYouKnow) error
	Update(ctx context.Context, id primitive.ObjectID, item models.DidYouKnow) (*models.DidYouKnow, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ContentService serves profile-targeted catalog content. Personalized
// reads run the layered attribute predicate and degrade to a goal-only
// query before returning an empty result; admin listings bypass
// personalization entirely.
type ContentService struct {
	users   UserGetter
	courses CourseStore
	tips    HealthTipStore
	facts   DidYouKnowStore
}

func NewContentService(users UserGetter, courses CourseStore, tips HealthTipStore, facts DidYouKnowStore) *ContentService {
	return &ContentService{users: users, courses: courses, tips: tips, facts: facts}
}

// GetCourses returns courses matching the caller's profile, newest first.
// An empty match retries with only the fitness goal constraint.
func (s *ContentService) GetCourses(ctx context.Context, userID primitive.ObjectID) ([]models.Course, error) {
	profile, err := s.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.Find(ctx, matching.Build(profile).BSON(), 0)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		courses, err = s.courses.Find(ctx, matching.GoalOnly(profile), 0)
		if err != nil {
			return nil, err
		}
	}
	return courses, nil
}

func (s *ContentService) GetCourse(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetHealthTips returns up to three tips matching the caller's profile.
func (s *ContentService) GetHealthTips(ctx context.Context, userID primitive.ObjectID) ([]models.HealthTip, error) {
	profile, err := s.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	tips, err := s.tips.Find(ctx, matching.Build(profile).BSON(), healthTipLimit)
	if err != nil {
		return nil, err
	}
	if len(tips) == 0 {
		tips, err = s.tips.Find(ctx, matching.GoalOnly(profile), healthTipLimit)
		if err != nil {
			return nil, err
		}
	}
	return tips, nil
}

// GetDidYouKnowFacts returns up to four facts matching the caller's profile.
func (s *ContentService) GetDidYouKnowFacts(ctx context.Context, userID primitive.ObjectID) ([]models.DidYouKnow, error) {
	profile, err := s.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	facts, err := s.facts.Find(ctx, matching.Build(profile).BSON(), didYouKnowLimit)
	if err != nil {
		return nil, err
	}
	if len(facts) == 0 {
		facts, err = s.facts.Find(ctx, matching.GoalOnly(profile), didYouKnowLimit)
		if err != nil {
			return nil, err
		}
	}
	return facts, nil
}

// GetAllCourses is the admin listing: unfiltered except for an optional
// goal equality, unlimited, no fallback.
func (s *ContentService) GetAllCourses(ctx context.Context, callerID primitive.ObjectID, goal string) ([]models.Course, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	return s.courses.Find(ctx, equalityFilter("fitness_goal", goal), 0)
}

func (s *ContentService) GetAllHealthTips(ctx context.Context, callerID primitive.ObjectID, category string) ([]models.HealthTip, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	return s.tips.Find(ctx, equalityFilter("category", category), 0)
}

func (s *ContentService) GetAllDidYouKnowFacts(ctx context.Context, callerID primitive.ObjectID, goal string) ([]models.DidYouKnow, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	return s.facts.Find(ctx, equalityFilter("fitness_goal", goal), 0)
}

func (s *ContentService) CreateCourse(ctx context.Context, callerID primitive.ObjectID, course *models.Course) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	return s.courses.Create(ctx, course)
}

func (s *ContentService) UpdateCourse(ctx context.Context, callerID, id primitive.ObjectID, course models.Course) (*models.Course, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	updated, err := s.courses.Update(ctx, id, course)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *ContentService) DeleteCourse(ctx context.Context, callerID, id primitive.ObjectID) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ContentService) CreateHealthTip(ctx context.Context, callerID primitive.ObjectID, tip *models.HealthTip) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	return s.tips.Create(ctx, tip)
}

func (s *ContentService) UpdateHealthTip(ctx context.Context, callerID, id primitive.ObjectID, tip models.HealthTip) (*models.HealthTip, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	updated, err := s.tips.Update(ctx, id, tip)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *ContentService) DeleteHealthTip(ctx context.Context, callerID, id primitive.ObjectID) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if err := s.tips.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ContentService) CreateDidYouKnow(ctx context.Context, callerID primitive.ObjectID, item *models.DidYouKnow) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	return s.facts.Create(ctx, item)
}

func (s *ContentService) UpdateDidYouKnow(ctx context.Context, callerID, id primitive.ObjectID, item models.DidYouKnow) (*models.DidYouKnow, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	updated, err := s.facts.Update(ctx, id, item)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *ContentService) DeleteDidYouKnow(ctx context.Context, callerID, id primitive.ObjectID) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if err := s.facts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ContentService) profileFor(ctx context.Context, userID primitive.ObjectID) (matching.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return matching.Profile{}, ErrProfileNotFound
		}
		return matching.Profile{}, err
	}
	return matching.ProfileOf(user), nil
}

func (s *ContentService) requireAdmin(ctx context.Context, callerID primitive.ObjectID) error {
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	if user.Role != models.RoleAdmin {
		return ErrNotAuthorized
	}
	return nil
}

func equalityFilter(field, value string) bson.M {
	if value == "" {
		return bson.M{}
	}
	return bson.M{field: value}
}
