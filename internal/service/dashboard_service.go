package service

import (
	"context"
	"time"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/store"
)

// DashboardService assembles the role-shaped overview for the apps'
// home screens.
type DashboardService interface {
	Summary(ctx context.Context, userID string) (*domain.DashboardSummary, error)
}

type dashboardService struct {
	store store.Store
	now   func() time.Time
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(st store.Store) DashboardService {
	return &dashboardService{store: st, now: time.Now}
}

func (s *dashboardService) Summary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	docs, err := s.store.Query(ctx, store.Users, store.Filter{"id": userID}, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrUserNotFound
	}

	var user domain.User
	if err := store.Decode(docs[0], &user); err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{
		UserID: user.ID,
		Role:   user.Role,
	}

	if user.IsTrainer() {
		return summary, s.fillTrainer(ctx, summary)
	}
	return summary, s.fillClient(ctx, &user, summary)
}

func (s *dashboardService) fillTrainer(ctx context.Context, summary *domain.DashboardSummary) error {
	clientDocs, err := s.store.Query(ctx, store.Users,
		store.Filter{"role": string(domain.RoleClient), "trainer_id": summary.UserID}, 0)
	if err != nil {
		return err
	}
	clients := make([]domain.User, 0, len(clientDocs))
	for _, doc := range clientDocs {
		var client domain.User
		if err := store.Decode(doc, &client); err != nil {
			return err
		}
		clients = append(clients, client)
	}
	summary.Clients = clients
	summary.Connected = len(clients) > 0

	summary.ActiveWorkoutPlans, err = s.countActivePlans(ctx, store.WorkoutPlans, "trainer_id", summary.UserID)
	if err != nil {
		return err
	}
	summary.ActiveMealPlans, err = s.countActivePlans(ctx, store.MealPlans, "trainer_id", summary.UserID)
	return err
}

func (s *dashboardService) fillClient(ctx context.Context, user *domain.User, summary *domain.DashboardSummary) error {
	summary.Connected = user.TrainerID != ""

	var err error
	summary.ActiveWorkoutPlans, err = s.countActivePlans(ctx, store.WorkoutPlans, "client_id", user.ID)
	if err != nil {
		return err
	}
	summary.ActiveMealPlans, err = s.countActivePlans(ctx, store.MealPlans, "client_id", user.ID)
	if err != nil {
		return err
	}

	logs, err := s.store.Query(ctx, store.DailyLogs, store.Filter{"client_id": user.ID}, 0)
	if err != nil {
		return err
	}
	dates := make([]string, 0, len(logs))
	for _, entry := range logs {
		if d, ok := entry["log_date"].(string); ok {
			dates = append(dates, d)
		}
	}
	summary.StreakDays = streakDays(dates, s.now().UTC())
	return nil
}

func (s *dashboardService) countActivePlans(ctx context.Context, collection, field, id string) (int, error) {
	docs, err := s.store.Query(ctx, collection, store.Filter{field: id, "is_active": true}, 0)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// streakDays counts consecutive logged days ending today. A missing
// entry for today does not break the streak yet, so a streak ending
// yesterday still counts.
func streakDays(dates []string, today time.Time) int {
	logged := make(map[string]bool, len(dates))
	for _, d := range dates {
		logged[d] = true
	}

	day := today.Truncate(24 * time.Hour)
	if !logged[day.Format(domain.LogDateLayout)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for logged[day.Format(domain.LogDateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
