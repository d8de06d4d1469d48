package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	var group domain.Group
	query := `SELECT * FROM groups WHERE id = $1`
	err := r.db.GetContext(ctx, &group, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) NationwideOfficial(ctx context.Context) ([]*domain.Group, error) {
	var groups []*domain.Group
	query := `
		SELECT * FROM groups
		WHERE category = $1
		  AND prefecture IS NULL
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &groups, query, domain.GroupCategoryOfficial)
	return groups, err
}

func (r *groupRepository) OfficialByPrefecture(ctx context.Context, prefecture string) (*domain.Group, error) {
	var group domain.Group
	query := `
		SELECT * FROM groups
		WHERE category = $1
		  AND prefecture = $2
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &group, query, domain.GroupCategoryOfficial, prefecture)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}
