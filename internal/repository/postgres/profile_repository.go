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

// profileColumns is the full column list scanned by scanProfile.
const profileColumns = `
	id, nickname, username, bio, avatar_url, header_url,
	prefecture, home_gym, exercises, birth_date,
	is_age_public, is_prefecture_public, is_home_gym_public,
	email_confirmed, created_at, updated_at
`

// candidateFilter is the query-layer pre-filter for discovery queries. It only
// rejects NULLs; empty-string and whitespace-only rows still come back and are
// dropped in-process by domain.IsProfileCompleted.
const candidateFilter = `
	(nickname IS NOT NULL OR username IS NOT NULL)
	AND avatar_url IS NOT NULL
	AND bio IS NOT NULL
	AND prefecture IS NOT NULL
	AND exercises IS NOT NULL
`

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.Nickname, &p.Username, &p.Bio, &p.AvatarURL, &p.HeaderURL,
		&p.Prefecture, &p.HomeGym, pq.Array(&p.Exercises), &p.BirthDate,
		&p.IsAgePublic, &p.IsPrefecturePublic, &p.IsHomeGymPublic,
		&p.EmailConfirmed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProfiles(rows *sql.Rows) ([]*domain.Profile, error) {
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, nickname, username, bio, avatar_url, header_url,
			prefecture, home_gym, exercises, birth_date,
			is_age_public, is_prefecture_public, is_home_gym_public, email_confirmed
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.Nickname, profile.Username, profile.Bio,
		profile.AvatarURL, profile.HeaderURL, profile.Prefecture, profile.HomeGym,
		pq.Array(profile.Exercises), profile.BirthDate,
		profile.IsAgePublic, profile.IsPrefecturePublic, profile.IsHomeGymPublic,
		profile.EmailConfirmed,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET nickname = $1, username = $2, bio = $3, avatar_url = $4, header_url = $5,
		    prefecture = $6, home_gym = $7, exercises = $8, birth_date = $9,
		    is_age_public = $10, is_prefecture_public = $11, is_home_gym_public = $12,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $13
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Nickname, profile.Username, profile.Bio, profile.AvatarURL, profile.HeaderURL,
		profile.Prefecture, profile.HomeGym, pq.Array(profile.Exercises), profile.BirthDate,
		profile.IsAgePublic, profile.IsPrefecturePublic, profile.IsHomeGymPublic,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) SetEmailConfirmed(ctx context.Context, id string, confirmed bool) error {
	query := `
		UPDATE profiles
		SET email_confirmed = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, confirmed, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) FindByHomeGym(ctx context.Context, fragment, excludeID string, limit int) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE home_gym ILIKE '%' || $1 || '%'
		  AND id <> $2
		  AND ` + candidateFilter + `
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, fragment, excludeID, limit)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *profileRepository) FindByPrefecture(ctx context.Context, prefecture, excludeID string, limit int) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE prefecture = $1
		  AND id <> $2
		  AND ` + candidateFilter + `
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, prefecture, excludeID, limit)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *profileRepository) FindByExercises(ctx context.Context, exercises []string, excludeID string, limit int) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE exercises && $1
		  AND id <> $2
		  AND ` + candidateFilter + `
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(exercises), excludeID, limit)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *profileRepository) Random(ctx context.Context, excludeIDs []string, count int) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id <> ALL($1)
		  AND ` + candidateFilter + `
		ORDER BY random()
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(excludeIDs), count)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *profileRepository) Newest(ctx context.Context, excludeID string, limit int) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE email_confirmed = TRUE
		  AND ($1 = '' OR id <> $1)
		  AND ` + candidateFilter + `
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, excludeID, limit)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}
