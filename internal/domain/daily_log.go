package domain

// LogDateLayout is the wire format for daily log dates.
const LogDateLayout = "2006-01-02"

// DailyLog is one per-day nutrition/weight entry recorded by a client.
type DailyLog struct {
	ID       string   `bson:"id,omitempty" json:"id,omitempty"`
	ClientID string   `bson:"client_id" json:"client_id" binding:"required"`
	LogDate  string   `bson:"log_date" json:"log_date" binding:"required,datetime=2006-01-02"`
	Calories int      `bson:"calories" json:"calories" binding:"gte=0"`
	ProteinG int      `bson:"protein_g" json:"protein_g" binding:"gte=0"`
	WeightKg *float64 `bson:"weight_kg,omitempty" json:"weight_kg,omitempty" binding:"omitempty,gte=0"`
	Notes    string   `bson:"notes,omitempty" json:"notes,omitempty"`
}
