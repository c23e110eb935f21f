package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// GrantEntry описывает данные, которые мы храним в Redis по jti гранта.
// Кэш — только быстрый отсекатель отозванных грантов: положительный ответ
// не отменяет проверку в БД, источником истины остаётся хранилище.
type GrantEntry struct {
	GrantID   uuid.UUID
	UserID    uuid.UUID
	Revoked   bool
	ExpiresAt time.Time
}

// GrantCache — минимальный контракт кэша грантов.
type GrantCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, jti string) (*GrantEntry, bool, error)
	// Set сохраняет запись с TTL (обычно ExpiresAt-now).
	Set(ctx context.Context, jti string, e *GrantEntry, ttl time.Duration) error
	// MarkRevoked помечает ключ revoked=true, сохраняя остаточный TTL.
	MarkRevoked(ctx context.Context, jti string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "tokens:grant:".
func NewRedisCache(redisURL, prefix string) (GrantCache, error) {
	if prefix == "" {
		prefix = "tokens:grant:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(jti string) string { return c.prefix + jti }

// Храним как Redis Hash с полями: gid, uid, rev (0/1), exp (unix).
func (c *redisCache) Get(ctx context.Context, jti string) (*GrantEntry, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(jti)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	gid, err := uuid.Parse(m["gid"])
	if err != nil {
		return nil, false, err
	}

	uid, err := uuid.Parse(m["uid"])
	if err != nil {
		return nil, false, err
	}
	rev := m["rev"] == "1"

	expUnix, err := strconv.ParseInt(m["exp"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &GrantEntry{
		GrantID:   gid,
		UserID:    uid,
		Revoked:   rev,
		ExpiresAt: time.Unix(expUnix, 0).UTC(),
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, jti string, e *GrantEntry, ttl time.Duration) error {
	kv := map[string]string{
		"gid": e.GrantID.String(),
		"uid": e.UserID.String(),
		"rev": boolTo01(e.Revoked),
		"exp": strconv.FormatInt(e.ExpiresAt.Unix(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(jti), kv)
	pipe.Expire(ctx, c.key(jti), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) MarkRevoked(ctx context.Context, jti string) error {
	return c.rdb.HSet(ctx, c.key(jti), "rev", "1").Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }

func boolTo01(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
