package domain

// Defaults applied to zero-valued optional plan fields, matching the
// shapes the mobile clients send.
const (
	DefaultDurationWeeks = 4
	DefaultSets          = 3
	DefaultReps          = "10-12"
	DefaultRestSeconds   = 60
)

// Exercise is a single exercise prescription inside a workout day.
type Exercise struct {
	Name        string `bson:"name" json:"name" binding:"required"`
	Sets        int    `bson:"sets" json:"sets" binding:"omitempty,gte=1,lte=10"`
	Reps        string `bson:"reps" json:"reps"` // free text, e.g. "8-10" or "AMRAP"
	RestSeconds *int   `bson:"rest_seconds" json:"rest_seconds" binding:"omitempty,gte=0"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutDay groups the exercises prescribed for one day of the week.
type WorkoutDay struct {
	Day       string     `bson:"day" json:"day" binding:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Focus     string     `bson:"focus,omitempty" json:"focus,omitempty"` // e.g. Push, Pull, Legs
	Exercises []Exercise `bson:"exercises" json:"exercises" binding:"omitempty,dive"`
}

// WorkoutPlan is a weekly training schedule a trainer issues to a
// connected client.
type WorkoutPlan struct {
	ID            string       `bson:"id,omitempty" json:"id,omitempty"`
	TrainerID     string       `bson:"trainer_id" json:"trainer_id" binding:"required"`
	ClientID      string       `bson:"client_id" json:"client_id" binding:"required"`
	Title         string       `bson:"title" json:"title" binding:"required"`
	Goal          string       `bson:"goal,omitempty" json:"goal,omitempty"`
	DurationWeeks int          `bson:"duration_weeks" json:"duration_weeks" binding:"omitempty,gte=1,lte=52"`
	Schedule      []WorkoutDay `bson:"schedule" json:"schedule" binding:"omitempty,dive"`
	IsActive      *bool        `bson:"is_active" json:"is_active"`
}

// ApplyDefaults fills zero-valued optional fields with the documented
// defaults. A zero value is indistinguishable from an absent field
// after JSON binding, so an explicit zero is defaulted too.
func (p *WorkoutPlan) ApplyDefaults() {
	if p.DurationWeeks == 0 {
		p.DurationWeeks = DefaultDurationWeeks
	}
	if p.IsActive == nil {
		active := true
		p.IsActive = &active
	}
	if p.Schedule == nil {
		p.Schedule = []WorkoutDay{}
	}
	for di := range p.Schedule {
		day := &p.Schedule[di]
		if day.Exercises == nil {
			day.Exercises = []Exercise{}
		}
		for ei := range day.Exercises {
			ex := &day.Exercises[ei]
			if ex.Sets == 0 {
				ex.Sets = DefaultSets
			}
			if ex.Reps == "" {
				ex.Reps = DefaultReps
			}
			if ex.RestSeconds == nil {
				rest := DefaultRestSeconds
				ex.RestSeconds = &rest
			}
		}
	}
}
