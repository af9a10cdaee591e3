package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"

	backend "github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces the counter key.
const DefaultRedisPrefix = "treeview:session:"

// raiseScript sets KEYS[1] to ARGV[1] only when it is larger than the stored
// value, so concurrent writers can never move the counter backwards.
var raiseScript = backend.NewScript(`
local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
local n = tonumber(ARGV[1])
if n > cur then
	redis.call("SET", KEYS[1], ARGV[1])
	return n
end
return cur
`)

// RedisStore keeps the last used index in Redis so several processes
// writing to one shared output area never hand out the same index twice
// after it was recorded.
type RedisStore struct {
	client *backend.Client
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisPrefix sets the key prefix.
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedisStore connects to the Redis server at addr.
func NewRedisStore(addr, password string, db int, opts ...RedisOption) *RedisStore {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreFromClient(client, opts...)
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: DefaultRedisPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key() string { return s.prefix + "last" }

func (s *RedisStore) NextIndex(ctx context.Context) (int, error) {
	val, err := s.client.Get(ctx, s.key()).Result()
	if stderrors.Is(err, backend.Nil) {
		return FirstIndex, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", s.key(), err)
	}
	last, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("redis key %s holds %q: %w", s.key(), val, err)
	}
	return max(last+1, FirstIndex), nil
}

func (s *RedisStore) RecordUsed(ctx context.Context, n int) error {
	if err := raiseScript.Run(ctx, s.client, []string{s.key()}, n).Err(); err != nil {
		return fmt.Errorf("redis record %d: %w", n, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
