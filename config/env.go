package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	BodyField           string `env:"BODY_FIELD" envDefault:"body"`
	ErrorMessageField   string `env:"ERROR_MESSAGE_FIELD" envDefault:"error-message"`
	FixedField          bool   `env:"FIXED_FIELD" envDefault:"true"`
	StatusSignEnabled   bool   `env:"STATUS_SIGN_ENABLED" envDefault:"true"`
	StatusSignField     string `env:"STATUS_SIGN_FIELD" envDefault:"is-ok"`
	StatusSignType      string `env:"STATUS_SIGN_TYPE" envDefault:"bool"`
	StatusSignOK        string `env:"STATUS_SIGN_OK"`
	StatusSignFail      string `env:"STATUS_SIGN_FAIL"`
	ExtraMessageEnabled bool   `env:"EXTRA_MESSAGE_ENABLED" envDefault:"true"`
	ExtraMessageField   string `env:"EXTRA_MESSAGE_FIELD" envDefault:"extra-msg"`
	ExtraHeaderEnabled  bool   `env:"EXTRA_HEADER_ENABLED" envDefault:"true"`
	ExtraHeader         string `env:"EXTRA_HEADER" envDefault:"extra-error"`
	ContentType         string `env:"CONTENT_TYPE" envDefault:"application/json"`
}

// FromEnv builds a Config from environment variables named with prefix,
// for example RESP_BODY_FIELD or RESP_STATUS_SIGN_TYPE for prefix "RESP_".
// Unset variables keep the defaults of New.
//
// STATUS_SIGN_TYPE is one of bool, reversed, number or string. The number
// and string encodings read their values from STATUS_SIGN_OK and
// STATUS_SIGN_FAIL.
func FromEnv(prefix string) (Config, error) {
	var raw envConfig
	if err := env.ParseWithOptions(&raw, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}

	opts := []Option{
		WithBodyField(raw.BodyField),
		WithErrorMessageField(raw.ErrorMessageField),
		WithFixedField(raw.FixedField),
		WithContentType(raw.ContentType),
	}

	if raw.StatusSignEnabled {
		sign, err := parseSign(raw)
		if err != nil {
			return Config{}, err
		}
		opts = append(opts, WithStatusSign(sign))
	} else {
		opts = append(opts, WithoutStatusSign())
	}

	if raw.ExtraMessageEnabled {
		opts = append(opts, WithExtraMessageField(raw.ExtraMessageField))
	} else {
		opts = append(opts, WithoutExtraMessageField())
	}
	if raw.ExtraHeaderEnabled {
		opts = append(opts, WithExtraHeader(raw.ExtraHeader))
	} else {
		opts = append(opts, WithoutExtraHeader())
	}

	cfg := New(opts...)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustFromEnv is FromEnv that panics on error.
func MustFromEnv(prefix string) Config {
	cfg, err := FromEnv(prefix)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func parseSign(raw envConfig) (StatusSign, error) {
	switch strings.ToLower(strings.TrimSpace(raw.StatusSignType)) {
	case "", "bool":
		return BoolSign(raw.StatusSignField), nil
	case "reversed":
		return ReversedBoolSign(raw.StatusSignField), nil
	case "number":
		ok, err := strconv.ParseUint(raw.StatusSignOK, 10, 8)
		if err != nil {
			return StatusSign{}, fmt.Errorf("%w: status sign ok value %q: %w", ErrParsingEnv, raw.StatusSignOK, err)
		}
		fail, err := strconv.ParseUint(raw.StatusSignFail, 10, 8)
		if err != nil {
			return StatusSign{}, fmt.Errorf("%w: status sign fail value %q: %w", ErrParsingEnv, raw.StatusSignFail, err)
		}
		return NumberSign(raw.StatusSignField, uint8(ok), uint8(fail)), nil
	case "string":
		if raw.StatusSignOK == "" || raw.StatusSignFail == "" {
			return StatusSign{}, fmt.Errorf("%w: string status sign needs both ok and fail values", ErrParsingEnv)
		}
		return StringSign(raw.StatusSignField, raw.StatusSignOK, raw.StatusSignFail), nil
	default:
		return StatusSign{}, fmt.Errorf("%w: unknown status sign type %q", ErrParsingEnv, raw.StatusSignType)
	}
}
