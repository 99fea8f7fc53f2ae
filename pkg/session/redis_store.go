package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix      = "session:"
	redisIdentityPrefix = "session:identity:"
)

// RedisStore implements Store on a Redis server, the distributed substitute
// for MemoryStore when sessions must survive a process or be shared across
// processes. Expiry is enforced through key TTLs that mirror the sliding
// window; a per-identity token set supports DeleteByIdentity.
type RedisStore struct {
	db redis.UniversalClient
}

// NewRedisStore creates a session store on the given Redis client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{db: client}
}

func redisKey(token string) string {
	return redisKeyPrefix + token
}

func redisIdentityKey(identityID int64) string {
	return redisIdentityPrefix + strconv.FormatInt(identityID, 10)
}

// Create stores a new session under its token, refusing live duplicates.
func (r *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrInvalidSession
	}

	ok, err := r.db.SetNX(ctx, redisKey(session.Token), data, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrTokenExists
	}

	return r.db.SAdd(ctx, redisIdentityKey(session.IdentityID), session.Token).Err()
}

// Get retrieves a session by token. Redis evicts expired keys itself, so a
// missing key is indistinguishable from an expired one; a session that is
// past its deadline but not yet evicted is removed here.
func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.db.Get(ctx, redisKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	if session.IsExpired() {
		pipe := r.db.TxPipeline()
		pipe.Del(ctx, redisKey(token))
		pipe.SRem(ctx, redisIdentityKey(session.IdentityID), token)
		_, _ = pipe.Exec(ctx)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Touch refreshes the sliding window, re-setting the key only if it still
// exists so a deleted session is never resurrected.
func (r *RedisStore) Touch(ctx context.Context, token string, lastActivity, expiresAt time.Time) error {
	session, err := r.Get(ctx, token)
	if errors.Is(err, ErrSessionExpired) {
		return ErrSessionNotFound
	}
	if err != nil {
		return err
	}

	session.LastActivityAt = lastActivity
	session.ExpiresAt = expiresAt

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ok, err := r.db.SetXX(ctx, redisKey(token), data, time.Until(expiresAt)).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

// Delete removes a session by token.
func (r *RedisStore) Delete(ctx context.Context, token string) (bool, error) {
	session, err := r.Get(ctx, token)
	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionExpired) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	pipe := r.db.TxPipeline()
	del := pipe.Del(ctx, redisKey(token))
	pipe.SRem(ctx, redisIdentityKey(session.IdentityID), token)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return del.Val() > 0, nil
}

// DeleteByIdentity removes every session belonging to the identity.
func (r *RedisStore) DeleteByIdentity(ctx context.Context, identityID int64) (int, error) {
	idxKey := redisIdentityKey(identityID)

	tokens, err := r.db.SMembers(ctx, idxKey).Result()
	if err != nil {
		return 0, err
	}

	if len(tokens) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(tokens))
	for _, token := range tokens {
		keys = append(keys, redisKey(token))
	}

	pipe := r.db.TxPipeline()
	del := pipe.Del(ctx, keys...)
	pipe.Del(ctx, idxKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(del.Val()), nil
}

// DeleteExpired is a no-op: Redis evicts expired keys natively.
func (r *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}
