package sortedstorage

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazesolver/domain"
	"github.com/beka-birhanu/mazesolver/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "mazesolver"
	defaultSize   = 10
	boardKeyFmt   = "%s:leaderboard:%s:%s"
	lockSuffix    = ":lock"
)

var ErrNilRun = errors.New("run is nil")

// RedisLeaderboard keeps the shortest successful runs of every maze and
// algorithm in a Redis sorted set scored by step count.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	size   int64
	ttl    time.Duration
}

var _ i.Leaderboard = &RedisLeaderboard{}

// NewRedisLeaderboard initializes a RedisLeaderboard that keeps size entries
// per board and lets idle boards expire after ttl. A non-positive ttl keeps
// boards forever.
func NewRedisLeaderboard(client *redis.Client, prefix string, size int64, ttl time.Duration) *RedisLeaderboard {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if size <= 0 {
		size = defaultSize
	}

	pool := goredis.NewPool(client)
	return &RedisLeaderboard{
		client: client,
		locker: redsync.New(pool),
		prefix: prefix,
		size:   size,
		ttl:    ttl,
	}
}

// Key returns the sorted set holding the board of one maze and algorithm.
func (lb *RedisLeaderboard) Key(fingerprint, algorithm string) string {
	return fmt.Sprintf(boardKeyFmt, lb.prefix, fingerprint, algorithm)
}

// Record adds a successful run to its board and trims the board to size.
// Runs that did not reach the exit are ignored.
func (lb *RedisLeaderboard) Record(ctx context.Context, run *dmn.Run) error {
	if run == nil {
		return ErrNilRun
	}
	if !run.Found {
		return nil
	}

	key := lb.Key(run.MazeFingerprint, run.Algorithm)
	mutex := lb.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	pipe := lb.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(run.Steps), Member: run.ID.String()})
	pipe.ZRemRangeByRank(ctx, key, lb.size, -1)
	if lb.ttl > 0 {
		pipe.Expire(ctx, key, lb.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Top returns up to n entries of a board, fewest steps first.
func (lb *RedisLeaderboard) Top(ctx context.Context, fingerprint, algorithm string, n int64) ([]i.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}

	zs, err := lb.client.ZRangeWithScores(ctx, lb.Key(fingerprint, algorithm), 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	return toEntries(zs)
}

// Count returns the number of entries on a board.
func (lb *RedisLeaderboard) Count(ctx context.Context, fingerprint, algorithm string) (int64, error) {
	return lb.client.ZCard(ctx, lb.Key(fingerprint, algorithm)).Result()
}

func toEntries(zs []redis.Z) ([]i.LeaderboardEntry, error) {
	entries := make([]i.LeaderboardEntry, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected leaderboard member %v", z.Member)
		}
		id, err := uuid.Parse(member)
		if err != nil {
			return nil, fmt.Errorf("leaderboard member %q: %w", member, err)
		}
		entries = append(entries, i.LeaderboardEntry{RunID: id, Steps: int64(z.Score)})
	}
	return entries, nil
}
