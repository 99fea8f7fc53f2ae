package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrParsingConfig is returned when environment parsing fails.
	ErrParsingConfig = errors.New("config.parsing_failed")

	// ErrConfigNotLoaded indicates a cache inconsistency after parsing.
	ErrConfigNotLoaded = errors.New("config.not_loaded")

	// ErrLoadingEnvFile is returned when an env file cannot be read.
	ErrLoadingEnvFile = errors.New("config.env_file_load_failed")
)
