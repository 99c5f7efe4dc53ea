package queue

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "queue:offline_actions:"

// RedisStore keeps the per-user action list in a redis list, one JSON
// document per entry, left-to-right in enqueue order.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context, userID string) ([]Action, error) {
	raw, err := s.rdb.LRange(ctx, keyPrefix+userID, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "load queue")
	}
	actions := make([]Action, 0, len(raw))
	for _, item := range raw {
		var a Action
		if err := json.Unmarshal([]byte(item), &a); err != nil {
			return nil, errors.Wrap(err, "decode queued action")
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Users scans for queue keys and returns the user IDs behind them.
func (s *RedisStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		users = append(users, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "scan queue keys")
	}
	return users, nil
}

func (s *RedisStore) Replace(ctx context.Context, userID string, actions []Action) error {
	key := keyPrefix + userID
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	for _, a := range actions {
		data, err := json.Marshal(a)
		if err != nil {
			return errors.Wrap(err, "encode queued action")
		}
		pipe.RPush(ctx, key, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "replace queue")
	}
	return nil
}
