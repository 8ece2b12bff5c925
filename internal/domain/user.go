package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// User represents a user in the system (either a Trainer or a Client).
// References to other users are stored as plain hex strings, exactly as
// the documents hold them.
type User struct {
	ID             string `bson:"id,omitempty" json:"id,omitempty"`
	Name           string `bson:"name" json:"name" binding:"required"`
	Email          string `bson:"email" json:"email" binding:"required,email"` // Should be unique
	Role           Role   `bson:"role" json:"role" binding:"required,oneof=trainer client"`
	TrainerID      string `bson:"trainer_id,omitempty" json:"trainer_id,omitempty"`           // Set on clients linked to a trainer
	ConnectionCode string `bson:"connection_code,omitempty" json:"connection_code,omitempty"` // Reserved for client self-service linking
	AvatarURL      string `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Bio            string `bson:"bio,omitempty" json:"bio,omitempty"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}
