package repository

import (
	"context"

	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
)

type GroupRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	// NationwideOfficial returns official groups with no prefecture, oldest
	// first.
	NationwideOfficial(ctx context.Context) ([]*domain.Group, error)
	// OfficialByPrefecture returns the official group scoped to the given
	// prefecture, or domain.ErrGroupNotFound.
	OfficialByPrefecture(ctx context.Context, prefecture string) (*domain.Group, error)
}
