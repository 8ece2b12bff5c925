package domain

// Message is one entry in a trainer/client chat thread. The
// conversation id is the derived key "<trainerID>_<clientID>".
type Message struct {
	ID             string `bson:"id,omitempty" json:"id,omitempty"`
	ConversationID string `bson:"conversation_id" json:"conversation_id"`
	SenderID       string `bson:"sender_id" json:"sender_id"`
	Content        string `bson:"content" json:"content"`
	Read           bool   `bson:"read" json:"read"`
}
