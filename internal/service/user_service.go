package service

import (
	"context"
	"errors"
	"strings"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/store"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrEmailTaken      = errors.New("email already exists")
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrUserNotFound    = errors.New("user not found")
)

// UserService covers account creation, listing and the trainer/client
// connect operation.
type UserService interface {
	CreateUser(ctx context.Context, user *domain.User) (string, error)
	ListUsers(ctx context.Context, role string) ([]store.Document, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	Connect(ctx context.Context, trainerID, clientEmail string) error
	SetAvatarURL(ctx context.Context, userID, avatarURL string) error
}

type userService struct {
	store store.Store
}

// NewUserService creates a new instance of userService.
func NewUserService(st store.Store) UserService {
	return &userService{store: st}
}

// CreateUser registers a new user after checking email uniqueness.
// Trainers that did not bring a connection code get one generated.
func (s *userService) CreateUser(ctx context.Context, user *domain.User) (string, error) {
	existing, err := s.store.Query(ctx, store.Users, store.Filter{"email": user.Email}, 1)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return "", ErrEmailTaken
	}

	if user.IsTrainer() && user.ConnectionCode == "" {
		user.ConnectionCode = newConnectionCode()
	}

	return s.store.Insert(ctx, store.Users, user)
}

// ListUsers returns all users, optionally restricted to one role.
func (s *userService) ListUsers(ctx context.Context, role string) ([]store.Document, error) {
	filter := store.Filter{}
	if role != "" {
		filter["role"] = role
	}
	return s.store.Query(ctx, store.Users, filter, 0)
}

// GetUser fetches a single user by identifier.
func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	docs, err := s.store.Query(ctx, store.Users, store.Filter{"id": userID}, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrUserNotFound
	}

	var user domain.User
	if err := store.Decode(docs[0], &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Connect links a client to a trainer by setting the client's stored
// trainer reference. Reconnecting the same pair is a no-op, so the
// operation is idempotent. The lookup and the update are two separate
// store calls; two racing connects on the same client resolve as last
// write wins.
func (s *userService) Connect(ctx context.Context, trainerID, clientEmail string) error {
	trainers, err := s.store.Query(ctx, store.Users, store.Filter{"id": trainerID, "role": string(domain.RoleTrainer)}, 1)
	if err != nil {
		return err
	}
	if len(trainers) == 0 {
		return ErrTrainerNotFound
	}

	clients, err := s.store.Query(ctx, store.Users, store.Filter{"email": clientEmail, "role": string(domain.RoleClient)}, 1)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		return ErrClientNotFound
	}

	clientID, _ := clients[0]["id"].(string)
	return s.store.UpdateOne(ctx, store.Users,
		store.Filter{"id": clientID},
		store.Filter{"trainer_id": trainerID},
	)
}

// SetAvatarURL records the public URL of a freshly uploaded avatar.
func (s *userService) SetAvatarURL(ctx context.Context, userID, avatarURL string) error {
	err := s.store.UpdateOne(ctx, store.Users,
		store.Filter{"id": userID},
		store.Filter{"avatar_url": avatarURL},
	)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// newConnectionCode produces a short human-shareable code.
func newConnectionCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
