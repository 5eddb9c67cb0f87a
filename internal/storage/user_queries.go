package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"kamingo-landing/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

const userColumns = "id, sub, name, email, picture, last_logged_in, created_at"

// UpsertUser inserts a user keyed by the provider subject identifier, or
// refreshes the profile fields and login timestamp of the existing record.
func (p *DatabaseProvider) UpsertUser(ctx context.Context, sub, name, email, picture string) (*models.User, error) {
	query := `
		INSERT INTO users (sub, name, email, picture, last_logged_in, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (sub)
		DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			picture = EXCLUDED.picture,
			last_logged_in = CURRENT_TIMESTAMP
		RETURNING ` + userColumns

	user, err := p.scanUser(p.pool.QueryRow(ctx, query, sub, name, email, picture))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// GetUserBySub returns a user given their provider subject identifier.
func (p *DatabaseProvider) GetUserBySub(ctx context.Context, sub string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE sub = $1`

	user, err := p.scanUser(p.pool.QueryRow(ctx, query, sub))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by sub: %w", err)
	}

	return user, nil
}

func (p *DatabaseProvider) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := p.scanUser(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// ListUsers returns all user records ordered by id for the admin panel.
func (p *DatabaseProvider) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := p.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// UpdateUser applies an admin edit to the mutable profile fields.
func (p *DatabaseProvider) UpdateUser(ctx context.Context, id int64, name, email, picture string) (*models.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, picture = $4
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := p.scanUser(p.pool.QueryRow(ctx, query, id, name, email, picture))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (p *DatabaseProvider) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Sub,
		&user.Name,
		&user.Email,
		&user.Picture,
		&user.LastLoggedIn,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
