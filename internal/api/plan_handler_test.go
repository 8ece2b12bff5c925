package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workoutPlanBody(trainerID, clientID string) gin.H {
	return gin.H{
		"trainer_id":     trainerID,
		"client_id":      clientID,
		"title":          "Push",
		"goal":           "hypertrophy",
		"duration_weeks": 8,
		"schedule": []gin.H{
			{
				"day":   "Mon",
				"focus": "Push",
				"exercises": []gin.H{
					{"name": "Bench Press", "sets": 4, "reps": "8-10", "rest_seconds": 90, "notes": "pause reps"},
				},
			},
		},
	}
}

// The full linking scenario: signup both parties, connect, issue a
// workout plan, and verify a swapped-party meal plan is rejected.
func TestTrainerClientLinkingScenario(t *testing.T) {
	router := newMemoryRouter(t)

	trainerID := createUser(t, router, "Coach T", "t@x.com", "trainer")
	clientID := createUser(t, router, "Client C", "c@x.com", "client")

	// before connecting, plan creation is forbidden
	w := doJSON(t, router, http.MethodPost, "/api/workout-plans", workoutPlanBody(trainerID, clientID))
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not connected")

	connectPair(t, router, trainerID, "c@x.com")

	w = doJSON(t, router, http.MethodPost, "/api/workout-plans", workoutPlanBody(trainerID, clientID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.ID)

	// swapped ids: both parties have the wrong role
	w = doJSON(t, router, http.MethodPost, "/api/meal-plans", gin.H{
		"trainer_id": clientID,
		"client_id":  trainerID,
		"title":      "Cut",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid trainer or client")
}

func TestCreateWorkoutPlan_RoundTrip(t *testing.T) {
	router := newMemoryRouter(t)

	trainerID := createUser(t, router, "Coach", "t@x.com", "trainer")
	clientID := createUser(t, router, "Ana", "c@x.com", "client")
	connectPair(t, router, trainerID, "c@x.com")

	w := doJSON(t, router, http.MethodPost, "/api/workout-plans", workoutPlanBody(trainerID, clientID))
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	w = doJSON(t, router, http.MethodGet, "/api/workout-plans?trainer_id="+trainerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []map[string]any
	decodeBody(t, w, &plans)
	require.Len(t, plans, 1)

	plan := plans[0]
	assert.Equal(t, created.ID, plan["id"])
	assert.Equal(t, "Push", plan["title"])
	assert.Equal(t, "hypertrophy", plan["goal"])
	assert.Equal(t, float64(8), plan["duration_weeks"])
	assert.Equal(t, true, plan["is_active"])

	schedule, ok := plan["schedule"].([]any)
	require.True(t, ok)
	require.Len(t, schedule, 1)
	day := schedule[0].(map[string]any)
	assert.Equal(t, "Mon", day["day"])
	exercises := day["exercises"].([]any)
	require.Len(t, exercises, 1)
	ex := exercises[0].(map[string]any)
	assert.Equal(t, "Bench Press", ex["name"])
	assert.Equal(t, float64(4), ex["sets"])
	assert.Equal(t, "8-10", ex["reps"])
	assert.Equal(t, float64(90), ex["rest_seconds"])
}

func TestCreateWorkoutPlan_Validation(t *testing.T) {
	router := newMemoryRouter(t)
	trainerID := createUser(t, router, "Coach", "t@x.com", "trainer")
	clientID := createUser(t, router, "Ana", "c@x.com", "client")
	connectPair(t, router, trainerID, "c@x.com")

	mutate := func(fn func(body gin.H)) gin.H {
		body := workoutPlanBody(trainerID, clientID)
		fn(body)
		return body
	}

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing title", mutate(func(b gin.H) { delete(b, "title") })},
		{"duration too long", mutate(func(b gin.H) { b["duration_weeks"] = 53 })},
		{"unknown day", mutate(func(b gin.H) {
			b["schedule"] = []gin.H{{"day": "Monday", "exercises": []gin.H{}}}
		})},
		{"too many sets", mutate(func(b gin.H) {
			b["schedule"] = []gin.H{{"day": "Mon", "exercises": []gin.H{{"name": "Squat", "sets": 11}}}}
		})},
		{"negative rest", mutate(func(b gin.H) {
			b["schedule"] = []gin.H{{"day": "Mon", "exercises": []gin.H{{"name": "Squat", "rest_seconds": -1}}}}
		})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/workout-plans", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Validation error")
		})
	}
}

func TestCreateMealPlan_Validation(t *testing.T) {
	router := newMemoryRouter(t)
	trainerID := createUser(t, router, "Coach", "t@x.com", "trainer")
	clientID := createUser(t, router, "Ana", "c@x.com", "client")
	connectPair(t, router, trainerID, "c@x.com")

	w := doJSON(t, router, http.MethodPost, "/api/meal-plans", gin.H{
		"trainer_id": trainerID,
		"client_id":  clientID,
		"title":      "Cut",
		"meals":      []gin.H{{"name": "Oats", "calories": -5}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/meal-plans", gin.H{
		"trainer_id": trainerID,
		"client_id":  clientID,
		"title":      "Cut",
		"meals":      []gin.H{{"name": "Oats", "calories": 400, "time_of_day": "brunch"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/meal-plans", gin.H{
		"trainer_id": trainerID,
		"client_id":  clientID,
		"title":      "Cut",
		"meals":      []gin.H{{"name": "Oats", "calories": 400, "protein_g": 20, "time_of_day": "breakfast"}},
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestListPlans_ActiveParam(t *testing.T) {
	router := newMemoryRouter(t)
	trainerID := createUser(t, router, "Coach", "t@x.com", "trainer")
	clientID := createUser(t, router, "Ana", "c@x.com", "client")
	connectPair(t, router, trainerID, "c@x.com")

	body := workoutPlanBody(trainerID, clientID)
	body["is_active"] = false
	w := doJSON(t, router, http.MethodPost, "/api/workout-plans", body)
	require.Equal(t, http.StatusOK, w.Code)

	// active defaults to true, so the archived plan is hidden
	w = doJSON(t, router, http.MethodGet, "/api/workout-plans?trainer_id="+trainerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []map[string]any
	decodeBody(t, w, &plans)
	assert.Empty(t, plans)

	w = doJSON(t, router, http.MethodGet, "/api/workout-plans?trainer_id="+trainerID+"&active=false", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &plans)
	assert.Len(t, plans, 1)

	w = doJSON(t, router, http.MethodGet, "/api/workout-plans?active=banana", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
