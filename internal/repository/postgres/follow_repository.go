package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *domain.Follow) error {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, follow.FollowerID, follow.FolloweeID).Scan(&follow.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrAlreadyFollowing
	}
	return err
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	result, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, followerID, followeeID)
	return exists, err
}

func (r *followRepository) ListFollowing(ctx context.Context, followerID string, limit, offset int) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		JOIN follows ON follows.followee_id = profiles.id
		WHERE follows.follower_id = $1
		ORDER BY follows.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, followerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *followRepository) ListFollowers(ctx context.Context, followeeID string, limit, offset int) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		JOIN follows ON follows.follower_id = profiles.id
		WHERE follows.followee_id = $1
		ORDER BY follows.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, followeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}
