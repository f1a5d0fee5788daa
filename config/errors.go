package config

import "errors"

var (
	// ErrAlreadySet is returned by TrySet once a configuration has been
	// published, explicitly or by a lazy Get.
	ErrAlreadySet = errors.New("response config has already been set")

	// ErrInvalidConfig wraps validation failures.
	ErrInvalidConfig = errors.New("invalid response config")

	// ErrParsingEnv is returned when environment variables cannot be parsed.
	ErrParsingEnv = errors.New("failed to parse response config from environment")
)
