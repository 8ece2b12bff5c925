package domain

// DashboardSummary is the role-shaped overview returned to the apps'
// home screens.
type DashboardSummary struct {
	UserID             string `json:"user_id"`
	Role               Role   `json:"role"`
	Connected          bool   `json:"connected"`
	Clients            []User `json:"clients,omitempty"` // trainer only
	ActiveWorkoutPlans int    `json:"active_workout_plans"`
	ActiveMealPlans    int    `json:"active_meal_plans"`
	StreakDays         int    `json:"streak_days"` // client only: consecutive days with a daily log
}
