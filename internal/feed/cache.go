package feed

import (
	"PassPlotApi/internal/passplot"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Play-by-play changes while a game is live and then never again; the TTL
// only has to cover the live window.
const PlayByPlayTTL = 2 * time.Hour

// Cache keeps fetched payloads in Redis keyed by game ID.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{
		client: client,
	}
}

func (c *Cache) ReadPlayByPlay(ctx context.Context, gameID string) (*passplot.RawPayload, error) {
	key := playByPlayKey(gameID)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var payload passplot.RawPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("unmarshaling cached play-by-play: %w", err)
	}

	return &payload, nil
}

func (c *Cache) WritePlayByPlay(ctx context.Context, gameID string, payload *passplot.RawPayload) error {
	key := playByPlayKey(gameID)

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling play-by-play: %w", err)
	}

	return c.client.Set(ctx, key, data, PlayByPlayTTL).Err()
}

func playByPlayKey(gameID string) string {
	return fmt.Sprintf("game:%s:playbyplay", gameID)
}
