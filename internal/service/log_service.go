package service

import (
	"context"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/store"
)

// LogService records and lists the per-day health logs clients keep.
type LogService interface {
	AddLog(ctx context.Context, entry *domain.DailyLog) (string, error)
	ListLogs(ctx context.Context, clientID string, limit int64) ([]store.Document, error)
}

type logService struct {
	store store.Store
}

// NewLogService creates a new instance of logService.
func NewLogService(st store.Store) LogService {
	return &logService{store: st}
}

func (s *logService) AddLog(ctx context.Context, entry *domain.DailyLog) (string, error) {
	return s.store.Insert(ctx, store.DailyLogs, entry)
}

func (s *logService) ListLogs(ctx context.Context, clientID string, limit int64) ([]store.Document, error) {
	return s.store.Query(ctx, store.DailyLogs, store.Filter{"client_id": clientID}, limit)
}
