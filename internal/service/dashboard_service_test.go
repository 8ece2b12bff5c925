package service

import (
	"context"
	"testing"
	"time"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakDays(t *testing.T) {
	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no logs", nil, 0},
		{"only today", []string{"2026-08-29"}, 1},
		{"three days ending today", []string{"2026-08-27", "2026-08-28", "2026-08-29"}, 3},
		{"today missing keeps yesterday's streak", []string{"2026-08-27", "2026-08-28"}, 2},
		{"gap breaks the streak", []string{"2026-08-25", "2026-08-28", "2026-08-29"}, 2},
		{"stale logs only", []string{"2026-08-20"}, 0},
		{"duplicates count once", []string{"2026-08-29", "2026-08-29"}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, streakDays(tc.dates, today))
		})
	}
}

func TestSummary_Client(t *testing.T) {
	st := memory.New()
	trainerID, clientID := connectedPair(t, st)

	plans := NewPlanService(st)
	_, err := plans.CreateWorkoutPlan(context.Background(), workoutPlan(trainerID, clientID))
	require.NoError(t, err)

	logs := NewLogService(st)
	today := time.Now().UTC().Format(domain.LogDateLayout)
	_, err = logs.AddLog(context.Background(), &domain.DailyLog{ClientID: clientID, LogDate: today, Calories: 2100})
	require.NoError(t, err)

	svc := NewDashboardService(st)
	summary, err := svc.Summary(context.Background(), clientID)
	require.NoError(t, err)

	assert.Equal(t, clientID, summary.UserID)
	assert.Equal(t, domain.RoleClient, summary.Role)
	assert.True(t, summary.Connected)
	assert.Equal(t, 1, summary.ActiveWorkoutPlans)
	assert.Equal(t, 0, summary.ActiveMealPlans)
	assert.Equal(t, 1, summary.StreakDays)
	assert.Empty(t, summary.Clients)
}

func TestSummary_Trainer(t *testing.T) {
	st := memory.New()
	trainerID, clientID := connectedPair(t, st)

	plans := NewPlanService(st)
	_, err := plans.CreateWorkoutPlan(context.Background(), workoutPlan(trainerID, clientID))
	require.NoError(t, err)
	meal := &domain.MealPlan{TrainerID: trainerID, ClientID: clientID, Title: "Bulk"}
	meal.ApplyDefaults()
	_, err = plans.CreateMealPlan(context.Background(), meal)
	require.NoError(t, err)

	svc := NewDashboardService(st)
	summary, err := svc.Summary(context.Background(), trainerID)
	require.NoError(t, err)

	assert.Equal(t, domain.RoleTrainer, summary.Role)
	assert.True(t, summary.Connected)
	require.Len(t, summary.Clients, 1)
	assert.Equal(t, clientID, summary.Clients[0].ID)
	assert.Equal(t, 1, summary.ActiveWorkoutPlans)
	assert.Equal(t, 1, summary.ActiveMealPlans)
}

func TestSummary_UnconnectedClient(t *testing.T) {
	st := memory.New()
	users := NewUserService(st)
	clientID := newClient(t, users, "solo@x.com")

	svc := NewDashboardService(st)
	summary, err := svc.Summary(context.Background(), clientID)
	require.NoError(t, err)

	assert.False(t, summary.Connected)
	assert.Zero(t, summary.ActiveWorkoutPlans)
	assert.Zero(t, summary.StreakDays)
}

func TestSummary_UserNotFound(t *testing.T) {
	svc := NewDashboardService(memory.New())
	_, err := svc.Summary(context.Background(), "665f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
