package service

import (
	"context"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/store"
)

// ChatService stores and retrieves chat messages. A conversation is
// the two-party thread keyed by "<trainerID>_<clientID>".
type ChatService interface {
	SendMessage(ctx context.Context, msg *domain.Message) (string, error)
	ListMessages(ctx context.Context, conversationID string, limit int64) ([]store.Document, error)
}

type chatService struct {
	store store.Store
}

// NewChatService creates a new instance of chatService.
func NewChatService(st store.Store) ChatService {
	return &chatService{store: st}
}

func (s *chatService) SendMessage(ctx context.Context, msg *domain.Message) (string, error) {
	return s.store.Insert(ctx, store.Messages, msg)
}

// ListMessages returns up to limit messages of one conversation in
// store-native order.
func (s *chatService) ListMessages(ctx context.Context, conversationID string, limit int64) ([]store.Document, error) {
	return s.store.Query(ctx, store.Messages, store.Filter{"conversation_id": conversationID}, limit)
}
