package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// SnapshotCache abstracts the weather cache (Redis). A cache outage must
// never break the endpoint, so callers treat errors as a miss.
type SnapshotCache interface {
	Get(ctx context.Context, city string) (*domain.WeatherSnapshot, bool, error)
	Set(ctx context.Context, city string, snap *domain.WeatherSnapshot) error
}

// WeatherService resolves the caller's profile city and serves a snapshot
// for it, preferring the cache over the upstream provider.
type WeatherService struct {
	users    ports.AuthRepository
	provider ports.WeatherProvider
	cache    SnapshotCache
	logger   zerolog.Logger
}

func NewWeatherService(users ports.AuthRepository, provider ports.WeatherProvider, cache SnapshotCache, logger zerolog.Logger) *WeatherService {
	return &WeatherService{users: users, provider: provider, cache: cache, logger: logger}
}

func (s *WeatherService) ForUser(ctx context.Context, userID uint) (*domain.WeatherSnapshot, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.City == "" {
		return nil, domain.ErrCityNotSet
	}

	if snap, ok, err := s.cache.Get(ctx, user.City); err != nil {
		s.logger.Warn().Err(err).Str("city", user.City).Msg("weather cache read failed, fetching upstream")
	} else if ok {
		return snap, nil
	}

	snap, err := s.provider.Fetch(ctx, user.City)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, user.City, snap); err != nil {
		s.logger.Warn().Err(err).Str("city", user.City).Msg("failed to cache weather snapshot")
	}

	return snap, nil
}
