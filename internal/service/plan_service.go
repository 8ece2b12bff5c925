package service

import (
	"context"
	"errors"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/store"
)

// --- Error Definitions ---
var (
	ErrInvalidParty = errors.New("invalid trainer or client")
	ErrNotConnected = errors.New("client not connected to trainer")
)

// PlanService creates and lists workout and meal plans on behalf of
// trainers.
type PlanService interface {
	CreateWorkoutPlan(ctx context.Context, plan *domain.WorkoutPlan) (string, error)
	ListWorkoutPlans(ctx context.Context, trainerID, clientID string, active bool) ([]store.Document, error)
	CreateMealPlan(ctx context.Context, plan *domain.MealPlan) (string, error)
	ListMealPlans(ctx context.Context, trainerID, clientID string, active bool) ([]store.Document, error)
}

type planService struct {
	store store.Store
}

// NewPlanService creates a new instance of planService.
func NewPlanService(st store.Store) PlanService {
	return &planService{store: st}
}

func (s *planService) CreateWorkoutPlan(ctx context.Context, plan *domain.WorkoutPlan) (string, error) {
	if err := s.authorize(ctx, plan.TrainerID, plan.ClientID); err != nil {
		return "", err
	}
	return s.store.Insert(ctx, store.WorkoutPlans, plan)
}

func (s *planService) ListWorkoutPlans(ctx context.Context, trainerID, clientID string, active bool) ([]store.Document, error) {
	return s.store.Query(ctx, store.WorkoutPlans, planFilter(trainerID, clientID, active), 0)
}

func (s *planService) CreateMealPlan(ctx context.Context, plan *domain.MealPlan) (string, error) {
	if err := s.authorize(ctx, plan.TrainerID, plan.ClientID); err != nil {
		return "", err
	}
	return s.store.Insert(ctx, store.MealPlans, plan)
}

func (s *planService) ListMealPlans(ctx context.Context, trainerID, clientID string, active bool) ([]store.Document, error) {
	return s.store.Query(ctx, store.MealPlans, planFilter(trainerID, clientID, active), 0)
}

// authorize enforces the trainer/client connection invariant: both
// parties must exist with the right role, and the client's stored
// trainer reference must equal the plan's trainer. Checked on every
// plan creation, never cached, because the link can change between
// calls.
func (s *planService) authorize(ctx context.Context, trainerID, clientID string) error {
	trainers, err := s.store.Query(ctx, store.Users, store.Filter{"id": trainerID, "role": string(domain.RoleTrainer)}, 1)
	if err != nil {
		return err
	}
	clients, err := s.store.Query(ctx, store.Users, store.Filter{"id": clientID, "role": string(domain.RoleClient)}, 1)
	if err != nil {
		return err
	}
	if len(trainers) == 0 || len(clients) == 0 {
		return ErrInvalidParty
	}

	var client domain.User
	if err := store.Decode(clients[0], &client); err != nil {
		return err
	}
	if client.TrainerID != trainerID {
		return ErrNotConnected
	}
	return nil
}

func planFilter(trainerID, clientID string, active bool) store.Filter {
	filter := store.Filter{"is_active": active}
	if trainerID != "" {
		filter["trainer_id"] = trainerID
	}
	if clientID != "" {
		filter["client_id"] = clientID
	}
	return filter
}
