package storage

import (
	"context"

	"kamingo-landing/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// Provider is the persistence surface for user profile mirrors. The OAuth
// callback upserts by subject identifier; the admin panel reads and edits.
type Provider interface {
	Close()
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error

	UpsertUser(ctx context.Context, sub, name, email, picture string) (*models.User, error)
	GetUserBySub(ctx context.Context, sub string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, name, email, picture string) (*models.User, error)
}
