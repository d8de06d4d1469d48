package recommend

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository"
	"go.uber.org/zap"
)

// Default result caps for the discovery surfaces.
const (
	DefaultUserLimit       = 5
	DefaultWorkoutLimit    = 10
	DefaultNewArrivalLimit = 7
)

// newArrivalOverfetch is how many times the requested limit the newest-users
// query asks for, leaving headroom for rows the completion check drops.
const newArrivalOverfetch = 3

// UseCase produces bounded, deduplicated candidate lists for discovery
// surfaces. Every method takes the store handles injected at construction,
// reads only, and degrades to an empty result instead of surfacing store
// errors to the caller.
type UseCase struct {
	profileRepo     repository.ProfileRepository
	recruitmentRepo repository.RecruitmentRepository
	groupRepo       repository.GroupRepository
	logger          *zap.Logger
}

func NewUseCase(
	profileRepo repository.ProfileRepository,
	recruitmentRepo repository.RecruitmentRepository,
	groupRepo repository.GroupRepository,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		profileRepo:     profileRepo,
		recruitmentRepo: recruitmentRepo,
		groupRepo:       groupRepo,
		logger:          logger,
	}
}

// UserSummary is the card shown on discovery surfaces. Prefecture and home
// gym honor the profile's visibility flags.
type UserSummary struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Bio        string   `json:"bio"`
	AvatarURL  string   `json:"avatar_url"`
	Prefecture *string  `json:"prefecture,omitempty"`
	HomeGym    *string  `json:"home_gym,omitempty"`
	Exercises  []string `json:"exercises"`
}

// NewArrival is a UserSummary plus the join timestamp for "joined on" display.
type NewArrival struct {
	UserSummary
	CreatedAt time.Time `json:"created_at"`
}

func summarize(p *domain.Profile) UserSummary {
	s := UserSummary{
		ID:        p.ID,
		Name:      p.DisplayName(),
		Exercises: p.Exercises,
	}
	if p.Bio != nil {
		s.Bio = *p.Bio
	}
	if p.AvatarURL != nil {
		s.AvatarURL = *p.AvatarURL
	}
	if p.IsPrefecturePublic {
		s.Prefecture = p.Prefecture
	}
	if p.IsHomeGymPublic {
		s.HomeGym = p.HomeGym
	}
	return s
}

type candidateQuery func(ctx context.Context) ([]*domain.Profile, error)

// runCandidateQueries fires every query concurrently and joins them. Each
// query carries its own error boundary: a failed query contributes an empty
// bucket so its siblings still count. Bucket order matches query order, so the
// merge downstream is deterministic no matter which query finishes first.
func (uc *UseCase) runCandidateQueries(ctx context.Context, queries []candidateQuery) [][]*domain.Profile {
	buckets := make([][]*domain.Profile, len(queries))
	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query candidateQuery) {
			defer wg.Done()
			rows, err := query(ctx)
			if err != nil {
				uc.logger.Warn("candidate query failed", zap.Int("query", i), zap.Error(err))
				return
			}
			buckets[i] = rows
		}(i, query)
	}
	wg.Wait()
	return buckets
}

// RecommendedUsers returns up to limit users similar to the seed profile:
// same home gym first, then same prefecture, then overlapping exercises.
// When the targeted queries under-fill the cap, random complete profiles top
// the list up. The caller's own profile never appears and no id appears
// twice; every returned row passed domain.IsProfileCompleted even though the
// store already pre-filtered, because the query-layer filter only rejects
// NULLs. The result may be shorter than limit when the store runs out of
// qualifying rows.
func (uc *UseCase) RecommendedUsers(ctx context.Context, seed domain.SeedProfile, myID string, limit int) []UserSummary {
	if limit <= 0 {
		limit = DefaultUserLimit
	}

	var queries []candidateQuery
	if gym := strings.TrimSpace(seed.HomeGym); gym != "" {
		queries = append(queries, func(ctx context.Context) ([]*domain.Profile, error) {
			return uc.profileRepo.FindByHomeGym(ctx, gym, myID, limit)
		})
	}
	if pref := strings.TrimSpace(seed.Prefecture); pref != "" {
		queries = append(queries, func(ctx context.Context) ([]*domain.Profile, error) {
			return uc.profileRepo.FindByPrefecture(ctx, pref, myID, limit)
		})
	}
	if len(seed.Exercises) > 0 {
		queries = append(queries, func(ctx context.Context) ([]*domain.Profile, error) {
			return uc.profileRepo.FindByExercises(ctx, seed.Exercises, myID, limit)
		})
	}

	seen := map[string]struct{}{myID: {}}
	var picked []*domain.Profile
	if len(queries) > 0 {
		for _, bucket := range uc.runCandidateQueries(ctx, queries) {
			for _, p := range bucket {
				if len(picked) >= limit {
					break
				}
				if _, dup := seen[p.ID]; dup {
					continue
				}
				if !domain.IsProfileCompleted(p) {
					continue
				}
				seen[p.ID] = struct{}{}
				picked = append(picked, p)
			}
		}
	}

	if need := limit - len(picked); need > 0 {
		exclude := make([]string, 0, len(picked)+1)
		exclude = append(exclude, myID)
		for _, p := range picked {
			exclude = append(exclude, p.ID)
		}
		extra, err := uc.profileRepo.Random(ctx, exclude, need)
		if err != nil {
			// Backfill is best effort; the targeted results stand on their own.
			uc.logger.Warn("random backfill failed", zap.Error(err))
		} else {
			for _, p := range extra {
				if _, dup := seen[p.ID]; dup {
					continue
				}
				if !domain.IsProfileCompleted(p) {
					continue
				}
				seen[p.ID] = struct{}{}
				picked = append(picked, p)
			}
		}
	}

	summaries := make([]UserSummary, 0, len(picked))
	for _, p := range picked {
		summaries = append(summaries, summarize(p))
	}
	return summaries
}

// RecommendedWorkouts returns up to limit open recruitment posts relevant to
// the seed: posts near the seed's prefecture and posts targeting one of the
// seed's exercises, merged and sorted newest first. A seed with neither
// criterion gets the most recent open posts instead.
func (uc *UseCase) RecommendedWorkouts(ctx context.Context, seed domain.SeedProfile, limit int) []*domain.Recruitment {
	if limit <= 0 {
		limit = DefaultWorkoutLimit
	}

	type workoutQuery func(ctx context.Context) ([]*domain.Recruitment, error)
	var queries []workoutQuery
	if pref := strings.TrimSpace(seed.Prefecture); pref != "" {
		queries = append(queries, func(ctx context.Context) ([]*domain.Recruitment, error) {
			return uc.recruitmentRepo.OpenByLocation(ctx, pref, limit)
		})
	}
	if len(seed.Exercises) > 0 {
		queries = append(queries, func(ctx context.Context) ([]*domain.Recruitment, error) {
			return uc.recruitmentRepo.OpenByBodyParts(ctx, seed.Exercises, limit)
		})
	}
	if len(queries) == 0 {
		recent, err := uc.recruitmentRepo.RecentOpen(ctx, limit)
		if err != nil {
			uc.logger.Warn("recent recruitments query failed", zap.Error(err))
			return []*domain.Recruitment{}
		}
		return recent
	}

	buckets := make([][]*domain.Recruitment, len(queries))
	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query workoutQuery) {
			defer wg.Done()
			rows, err := query(ctx)
			if err != nil {
				uc.logger.Warn("recruitment query failed", zap.Int("query", i), zap.Error(err))
				return
			}
			buckets[i] = rows
		}(i, query)
	}
	wg.Wait()

	seen := make(map[string]struct{})
	var merged []*domain.Recruitment
	for _, bucket := range buckets {
		for _, rec := range bucket {
			if _, dup := seen[rec.ID]; dup {
				continue
			}
			seen[rec.ID] = struct{}{}
			merged = append(merged, rec)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	if merged == nil {
		merged = []*domain.Recruitment{}
	}
	return merged
}

// GeneralOfficialGroups returns the nationwide official groups, oldest first.
func (uc *UseCase) GeneralOfficialGroups(ctx context.Context) []*domain.Group {
	groups, err := uc.groupRepo.NationwideOfficial(ctx)
	if err != nil {
		uc.logger.Warn("nationwide official groups query failed", zap.Error(err))
		return []*domain.Group{}
	}
	if groups == nil {
		groups = []*domain.Group{}
	}
	return groups
}

// OfficialGroupForPrefecture returns the official group for the given
// prefecture, or nil when the input is blank, no such group exists or the
// store fails. A blank input short-circuits before any store call.
func (uc *UseCase) OfficialGroupForPrefecture(ctx context.Context, prefecture string) *domain.Group {
	prefecture = strings.TrimSpace(prefecture)
	if prefecture == "" {
		return nil
	}
	group, err := uc.groupRepo.OfficialByPrefecture(ctx, prefecture)
	if err != nil {
		if err != domain.ErrGroupNotFound {
			uc.logger.Warn("official group query failed",
				zap.String("prefecture", prefecture), zap.Error(err))
		}
		return nil
	}
	return group
}

// NewArrivalUsers returns up to limit of the most recently created complete
// profiles with a confirmed email, excluding the caller. The store query
// over-fetches to survive the in-process completion check; when it errors or
// comes back empty the same query is retried once before giving up.
func (uc *UseCase) NewArrivalUsers(ctx context.Context, myID string, limit int) []NewArrival {
	if limit <= 0 {
		limit = DefaultNewArrivalLimit
	}

	rows, err := uc.profileRepo.Newest(ctx, myID, limit*newArrivalOverfetch)
	if err != nil || len(rows) == 0 {
		if err != nil {
			uc.logger.Warn("new arrivals query failed, retrying", zap.Error(err))
		}
		rows, err = uc.profileRepo.Newest(ctx, myID, limit*newArrivalOverfetch)
		if err != nil {
			uc.logger.Warn("new arrivals retry failed", zap.Error(err))
			return []NewArrival{}
		}
	}

	arrivals := make([]NewArrival, 0, limit)
	for _, p := range rows {
		if len(arrivals) >= limit {
			break
		}
		if p.ID == myID {
			continue
		}
		if !domain.IsProfileCompleted(p) {
			continue
		}
		arrivals = append(arrivals, NewArrival{
			UserSummary: summarize(p),
			CreatedAt:   p.CreatedAt,
		})
	}
	return arrivals
}
