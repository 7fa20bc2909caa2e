package repository

import (
	"context"
	"fmt"

	"cinema-social/internal/data/entity"
	"cinema-social/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByCredentials(ctx context.Context, username, passwordHash string) (*entity.User, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*entity.User, error)
	Search(ctx context.Context, search string, limit int) ([]*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database.
// Uniqueness of username and email is enforced by the table constraints;
// a violation surfaces as a wrapped pgconn.PgError with code 23505.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

// FindByCredentials looks the user up by username AND password digest in
// one query. A miss never reveals which of the two did not match.
func (ur *userRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (*entity.User, error) {
	query := `
		SELECT id, username, email, display_name, created_at, updated_at
		FROM users
		WHERE username = $1 AND password_hash = $2
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, username, passwordHash).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by credentials",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by credentials %s: %w", username, err)
	}

	return &user, nil
}

// UpdateDisplayName updates display_name and updated_at, returning the
// updated row. Returns nil without error when no row matched.
func (ur *userRepository) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*entity.User, error) {
	query := `
		UPDATE users
		SET display_name = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, username, email, display_name, created_at, updated_at
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id, displayName).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to update display name",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("update display name for user %s: %w", id.String(), err)
	}

	return &user, nil
}

// Search lists users, optionally matching the search term against
// username or display_name (case-insensitive, partial).
func (ur *userRepository) Search(ctx context.Context, search string, limit int) ([]*entity.User, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if search != "" {
		query := `
			SELECT id, username, display_name
			FROM users
			WHERE username ILIKE $1 OR display_name ILIKE $1
			LIMIT $2
		`
		rows, err = ur.db.Query(ctx, query, "%"+search+"%", limit)
	} else {
		query := `
			SELECT id, username, display_name
			FROM users
			LIMIT $1
		`
		rows, err = ur.db.Query(ctx, query, limit)
	}

	if err != nil {
		ur.log.Error("Failed to search users",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("search users %q: %w", search, err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.DisplayName,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}
