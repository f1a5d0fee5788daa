package config

import (
	"fmt"

	"golang.org/x/net/http/httpguts"
)

const (
	DefaultBodyField         = "body"
	DefaultErrorMessageField = "error-message"
	DefaultStatusSignField   = "is-ok"
	DefaultExtraMessageField = "extra-msg"
	DefaultExtraHeader       = "extra-error"
	DefaultContentType       = "application/json"
)

// Option mutates a Config under construction.
type Option func(*Config)

// Config is an immutable response shape. Build it with New; the zero value
// is not usable.
type Config struct {
	bodyField    string
	messageField string
	fixedField   bool
	sign         *StatusSign
	extraField   string
	extraHeader  string
	contentType  string

	// sizes[0] holds the counts without the extra message capability,
	// sizes[1] with it.
	sizes [2][2]int
}

// New builds a Config from the defaults and the supplied options.
func New(opts ...Option) Config {
	sign := BoolSign(DefaultStatusSignField)
	cfg := Config{
		bodyField:    DefaultBodyField,
		messageField: DefaultErrorMessageField,
		fixedField:   true,
		sign:         &sign,
		extraField:   DefaultExtraMessageField,
		extraHeader:  DefaultExtraHeader,
		contentType:  DefaultContentType,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	for i, extra := range [2]bool{false, true} {
		ok, fail := FieldSizes(cfg, extra)
		cfg.sizes[i] = [2]int{ok, fail}
	}
	return cfg
}

// Default returns the shape used when nothing was set:
// {"is-ok":…,"extra-msg":…,"error-message":…,"body":…}.
func Default() Config {
	return New()
}

// WithBodyField renames the payload field.
func WithBodyField(name string) Option {
	return func(c *Config) { c.bodyField = name }
}

// WithErrorMessageField renames the error message field.
func WithErrorMessageField(name string) Option {
	return func(c *Config) { c.messageField = name }
}

// WithFixedField toggles fixed field mode. When enabled every structurally
// possible field is written, absent ones as null; otherwise they are omitted.
func WithFixedField(fixed bool) Option {
	return func(c *Config) { c.fixedField = fixed }
}

// WithStatusSign enables the status sign field with the given encoding.
func WithStatusSign(sign StatusSign) Option {
	return func(c *Config) { c.sign = &sign }
}

// WithoutStatusSign disables the status sign field.
func WithoutStatusSign() Option {
	return func(c *Config) { c.sign = nil }
}

// WithExtraMessageField renames the extra message field and enables it.
func WithExtraMessageField(name string) Option {
	return func(c *Config) { c.extraField = name }
}

// WithoutExtraMessageField disables the extra message field.
func WithoutExtraMessageField() Option {
	return func(c *Config) { c.extraField = "" }
}

// WithExtraHeader sends the extra message of failures in the named header.
func WithExtraHeader(name string) Option {
	return func(c *Config) { c.extraHeader = name }
}

// WithoutExtraHeader stops sending the extra message as a header.
func WithoutExtraHeader() Option {
	return func(c *Config) { c.extraHeader = "" }
}

// WithContentType replaces the media type sent with every response.
func WithContentType(contentType string) Option {
	return func(c *Config) { c.contentType = contentType }
}

// BodyField returns the payload field name.
func (c Config) BodyField() string { return c.bodyField }

// ErrorMessageField returns the error message field name.
func (c Config) ErrorMessageField() string { return c.messageField }

// FixedField reports whether absent fields are written as null.
func (c Config) FixedField() bool { return c.fixedField }

// StatusSign returns the status sign and whether it is enabled.
func (c Config) StatusSign() (StatusSign, bool) {
	if c.sign == nil {
		return StatusSign{}, false
	}
	return *c.sign, true
}

// ExtraMessageField returns the extra message field name and whether it is
// enabled.
func (c Config) ExtraMessageField() (string, bool) {
	return c.extraField, c.extraField != ""
}

// ExtraHeader returns the extra message header name and whether it is
// enabled.
func (c Config) ExtraHeader() (string, bool) {
	return c.extraHeader, c.extraHeader != ""
}

// ContentType returns the media type of serialized bodies.
func (c Config) ContentType() string { return c.contentType }

// FieldSizes returns the cached field counts of the success and failure
// objects for a failure type with or without the extra message capability.
func (c Config) FieldSizes(extraEnabled bool) (success, failure int) {
	i := 0
	if extraEnabled {
		i = 1
	}
	return c.sizes[i][0], c.sizes[i][1]
}

// Validate reports configuration mistakes that would produce malformed or
// ambiguous responses.
func (c Config) Validate() error {
	if c.bodyField == "" {
		return fmt.Errorf("%w: body field name is empty", ErrInvalidConfig)
	}
	if c.messageField == "" {
		return fmt.Errorf("%w: error message field name is empty", ErrInvalidConfig)
	}
	if c.contentType == "" || !httpguts.ValidHeaderFieldValue(c.contentType) {
		return fmt.Errorf("%w: invalid content type %q", ErrInvalidConfig, c.contentType)
	}
	if c.extraHeader != "" && !httpguts.ValidHeaderFieldName(c.extraHeader) {
		return fmt.Errorf("%w: invalid extra header name %q", ErrInvalidConfig, c.extraHeader)
	}

	seen := map[string]string{
		c.bodyField: "body",
	}
	fields := []struct{ role, name string }{{"error message", c.messageField}}
	if c.sign != nil {
		if c.sign.field == "" {
			return fmt.Errorf("%w: status sign field name is empty", ErrInvalidConfig)
		}
		fields = append(fields, struct{ role, name string }{"status sign", c.sign.field})
	}
	if c.extraField != "" {
		fields = append(fields, struct{ role, name string }{"extra message", c.extraField})
	}
	for _, f := range fields {
		if other, dup := seen[f.name]; dup {
			return fmt.Errorf("%w: %s field %q collides with %s field", ErrInvalidConfig, f.role, f.name, other)
		}
		seen[f.name] = f.role
	}
	return nil
}
