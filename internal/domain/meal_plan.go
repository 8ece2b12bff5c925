package domain

// DefaultDailyCalorieTarget is used when a meal plan omits its target.
const DefaultDailyCalorieTarget = 2000

// Meal is a single meal entry inside a meal plan.
type Meal struct {
	Name      string `bson:"name" json:"name" binding:"required"`
	Calories  int    `bson:"calories" json:"calories" binding:"gte=0"`
	ProteinG  int    `bson:"protein_g" json:"protein_g" binding:"gte=0"`
	CarbsG    int    `bson:"carbs_g" json:"carbs_g" binding:"gte=0"`
	FatsG     int    `bson:"fats_g" json:"fats_g" binding:"gte=0"`
	TimeOfDay string `bson:"time_of_day,omitempty" json:"time_of_day,omitempty" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// MealPlan is a nutrition plan a trainer issues to a connected client.
type MealPlan struct {
	ID                 string `bson:"id,omitempty" json:"id,omitempty"`
	TrainerID          string `bson:"trainer_id" json:"trainer_id" binding:"required"`
	ClientID           string `bson:"client_id" json:"client_id" binding:"required"`
	Title              string `bson:"title" json:"title" binding:"required"`
	DailyCalorieTarget int    `bson:"daily_calorie_target" json:"daily_calorie_target" binding:"gte=0"`
	Meals              []Meal `bson:"meals" json:"meals" binding:"omitempty,dive"`
	IsActive           *bool  `bson:"is_active" json:"is_active"`
}

// ApplyDefaults fills zero-valued optional fields, same convention as
// WorkoutPlan.ApplyDefaults.
func (p *MealPlan) ApplyDefaults() {
	if p.DailyCalorieTarget == 0 {
		p.DailyCalorieTarget = DefaultDailyCalorieTarget
	}
	if p.IsActive == nil {
		active := true
		p.IsActive = &active
	}
	if p.Meals == nil {
		p.Meals = []Meal{}
	}
}
