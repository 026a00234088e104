package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/notakto/internal/entity"
)

const (
	statsKeyPrefix = "stats:"

	fieldFirstWins  = "first"
	fieldSecondWins = "second"
)

type StatsRepository interface {
	RecordWin(ctx context.Context, mode entity.Mode, winner entity.Turn) error
	Get(ctx context.Context, mode entity.Mode) (entity.Stats, error)
}

type memoryStats struct {
	mu    sync.Mutex
	stats map[entity.Mode]entity.Stats
}

// NewMemoryStatsRepository counts wins for the lifetime of the process.
func NewMemoryStatsRepository() StatsRepository {
	return &memoryStats{
		stats: make(map[entity.Mode]entity.Stats),
	}
}

func (that *memoryStats) RecordWin(_ context.Context, mode entity.Mode, winner entity.Turn) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats := that.stats[mode]
	stats.Mode = mode
	if winner == entity.TurnFirst {
		stats.FirstWins++
	} else {
		stats.SecondWins++
	}
	that.stats[mode] = stats

	return nil
}

func (that *memoryStats) Get(_ context.Context, mode entity.Mode) (entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats := that.stats[mode]
	stats.Mode = mode

	return stats, nil
}

type redisStats struct {
	client *redis.Client
}

// NewRedisStatsRepository keeps counters in the hash stats:<mode>.
func NewRedisStatsRepository(client *redis.Client) StatsRepository {
	return &redisStats{
		client: client,
	}
}

func statsKey(mode entity.Mode) string {
	return statsKeyPrefix + mode.String()
}

func (that *redisStats) RecordWin(ctx context.Context, mode entity.Mode, winner entity.Turn) error {
	field := fieldSecondWins
	if winner == entity.TurnFirst {
		field = fieldFirstWins
	}

	if err := that.client.HIncrBy(ctx, statsKey(mode), field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

func (that *redisStats) Get(ctx context.Context, mode entity.Mode) (entity.Stats, error) {
	values, err := that.client.HGetAll(ctx, statsKey(mode)).Result()
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := entity.Stats{Mode: mode}
	if stats.FirstWins, err = parseCounter(values[fieldFirstWins]); err != nil {
		return entity.Stats{}, err
	}
	if stats.SecondWins, err = parseCounter(values[fieldSecondWins]); err != nil {
		return entity.Stats{}, err
	}

	return stats, nil
}

func parseCounter(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	counter, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse counter %q: %w", value, err)
	}

	return counter, nil
}
