package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository"
)

type recruitmentRepository struct {
	db *sqlx.DB
}

func NewRecruitmentRepository(db *sqlx.DB) repository.RecruitmentRepository {
	return &recruitmentRepository{db: db}
}

func (r *recruitmentRepository) Create(ctx context.Context, recruitment *domain.Recruitment) error {
	query := `
		INSERT INTO recruitments (
			id, profile_id, title, description, target_body_part,
			scheduled_at, location, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		recruitment.ID, recruitment.ProfileID, recruitment.Title, recruitment.Description,
		recruitment.TargetBodyPart, recruitment.ScheduledAt, recruitment.Location,
		recruitment.Status,
	).Scan(&recruitment.CreatedAt, &recruitment.UpdatedAt)
}

func (r *recruitmentRepository) GetByID(ctx context.Context, id string) (*domain.Recruitment, error) {
	var recruitment domain.Recruitment
	query := `SELECT * FROM recruitments WHERE id = $1`
	err := r.db.GetContext(ctx, &recruitment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecruitmentNotFound
		}
		return nil, err
	}
	return &recruitment, nil
}

func (r *recruitmentRepository) ListByProfile(ctx context.Context, profileID string, limit, offset int) ([]*domain.Recruitment, error) {
	var recruitments []*domain.Recruitment
	query := `
		SELECT * FROM recruitments
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &recruitments, query, profileID, limit, offset)
	return recruitments, err
}

func (r *recruitmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE recruitments
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecruitmentNotFound
	}
	return nil
}

func (r *recruitmentRepository) OpenByLocation(ctx context.Context, fragment string, limit int) ([]*domain.Recruitment, error) {
	var recruitments []*domain.Recruitment
	query := `
		SELECT * FROM recruitments
		WHERE status = $1
		  AND location ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
		LIMIT $3
	`
	err := r.db.SelectContext(ctx, &recruitments, query, domain.RecruitmentStatusOpen, fragment, limit)
	return recruitments, err
}

func (r *recruitmentRepository) OpenByBodyParts(ctx context.Context, parts []string, limit int) ([]*domain.Recruitment, error) {
	var recruitments []*domain.Recruitment
	query := `
		SELECT * FROM recruitments
		WHERE status = $1
		  AND target_body_part = ANY($2)
		ORDER BY created_at DESC
		LIMIT $3
	`
	err := r.db.SelectContext(ctx, &recruitments, query, domain.RecruitmentStatusOpen, pq.Array(parts), limit)
	return recruitments, err
}

func (r *recruitmentRepository) RecentOpen(ctx context.Context, limit int) ([]*domain.Recruitment, error) {
	var recruitments []*domain.Recruitment
	query := `
		SELECT * FROM recruitments
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &recruitments, query, domain.RecruitmentStatusOpen, limit)
	return recruitments, err
}
