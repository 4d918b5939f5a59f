package feed

import (
	"PassPlotApi/internal/passplot"
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Service is the fetch path the game-detail handlers use: Redis first, the
// upstream feed on a miss. Cache trouble degrades to a direct fetch; only a
// failed fetch surfaces as an error, and no state is mutated on that path.
type Service struct {
	client *Client
	cache  *Cache
	logger zerolog.Logger
}

func NewService(client *Client, cache *Cache, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

func (s *Service) PlayByPlay(ctx context.Context, gameID string) (*passplot.RawPayload, error) {
	if s.cache != nil {
		payload, err := s.cache.ReadPlayByPlay(ctx, gameID)
		switch {
		case err == nil:
			return payload, nil
		case !errors.Is(err, redis.Nil):
			s.logger.Warn().Err(err).Str("game_id", gameID).Msg("play-by-play cache read failed")
		}
	}

	payload, err := s.client.PlayByPlay(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.WritePlayByPlay(ctx, gameID, payload); err != nil {
			s.logger.Warn().Err(err).Str("game_id", gameID).Msg("play-by-play cache write failed")
		}
	}

	return payload, nil
}
