// Package config loads typed configuration structs from environment
// variables, with optional .env files for local development.
//
// Struct fields declare their sources through github.com/caarlos0/env tags:
//
//	type RedisConfig struct {
//	    URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//	}
//
// Load parses each distinct struct type once and caches the result, so the
// same configuration can be requested from multiple call sites without
// re-reading the environment. Tests that change the environment between
// loads call ResetCache.
package config
