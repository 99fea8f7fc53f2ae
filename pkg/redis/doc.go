// Package redis provides connection helpers for the Redis server that backs
// the distributed session store.
//
// Connect wraps the go-redis client with retry logic so process startup can
// tolerate a Redis that is still coming up:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil { ... }
//
//	store := session.NewRedisStore(client)
//
// Config fields are populated from environment variables via
// github.com/caarlos0/env tags.
package redis
