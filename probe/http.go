package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/drblury/respweaver/config"
	"github.com/drblury/respweaver/jsonutil"
)

// maxEnvelopeBytes bounds how much of a response WithEnvelope reads.
const maxEnvelopeBytes = 1 << 20

var errEnvelopeFailure = errors.New("dependency reported failure")

// HTTPDoer represents the subset of *http.Client required by the HTTP probe helper.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPStatusExpectation determines whether a given HTTP status code is acceptable.
type HTTPStatusExpectation func(status int) bool

// HTTPRequestMutator allows callers to tweak the outbound request prior to dispatch.
type HTTPRequestMutator func(req *http.Request) error

// HTTPResponseValidator inspects the received response and can veto the probe.
type HTTPResponseValidator func(resp *http.Response) error

// HTTPProbeOption configures the behaviour of NewHTTPProbe.
type HTTPProbeOption func(*httpCheck)

type httpCheck struct {
	name       string
	method     string
	target     string
	client     HTTPDoer
	expect     HTTPStatusExpectation
	mutators   []HTTPRequestMutator
	validators []HTTPResponseValidator
	drain      bool
}

// NewHTTPProbe creates a Func that performs an HTTP request against the
// supplied endpoint. By default the probe succeeds for any 2xx status.
func NewHTTPProbe(name, method, target string, client HTTPDoer, opts ...HTTPProbeOption) Func {
	check := &httpCheck{
		name:   name,
		method: strings.ToUpper(strings.TrimSpace(method)),
		target: strings.TrimSpace(target),
		client: client,
		drain:  true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(check)
		}
	}
	if check.method == "" {
		check.method = http.MethodGet
	}
	if check.client == nil {
		check.client = http.DefaultClient
	}
	if check.expect == nil {
		check.expect = is2xx
	}

	return func(ctx context.Context) *Error {
		if err := check.run(contextOrBackground(ctx)); err != nil {
			return Fail(check.name, err)
		}
		return nil
	}
}

func (c *httpCheck) run(ctx context.Context) error {
	if c.target == "" {
		return errors.New("target URL is required")
	}

	req, err := http.NewRequestWithContext(ctx, c.method, c.target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for _, mutate := range c.mutators {
		if err := mutate(req); err != nil {
			return fmt.Errorf("request mutation failed: %w", err)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if !c.expect(resp.StatusCode) {
		return fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	for _, validate := range c.validators {
		if err := validate(resp); err != nil {
			return err
		}
	}

	if c.drain {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			return fmt.Errorf("failed to drain response body: %w", err)
		}
	}
	return nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// WithHTTPClient overrides the HTTP client used for the probe.
func WithHTTPClient(client HTTPDoer) HTTPProbeOption {
	return func(c *httpCheck) {
		if client != nil {
			c.client = client
		}
	}
}

// WithHTTPStatusExpectation installs a custom status validation function.
func WithHTTPStatusExpectation(expect HTTPStatusExpectation) HTTPProbeOption {
	return func(c *httpCheck) {
		c.expect = expect
	}
}

// WithHTTPAllowedStatuses restricts the probe to succeed only for the
// provided status codes. With no codes the 2xx default applies.
func WithHTTPAllowedStatuses(statuses ...int) HTTPProbeOption {
	if len(statuses) == 0 {
		return WithHTTPStatusExpectation(is2xx)
	}
	allowed := make(map[int]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}
	return WithHTTPStatusExpectation(func(status int) bool {
		_, ok := allowed[status]
		return ok
	})
}

// WithHTTPRequestMutator registers a mutator that runs before the request is dispatched.
func WithHTTPRequestMutator(mutator HTTPRequestMutator) HTTPProbeOption {
	return func(c *httpCheck) {
		if mutator != nil {
			c.mutators = append(c.mutators, mutator)
		}
	}
}

// WithHTTPResponseValidator registers a validator that runs after a response is received.
func WithHTTPResponseValidator(validator HTTPResponseValidator) HTTPProbeOption {
	return func(c *httpCheck) {
		if validator != nil {
			c.validators = append(c.validators, validator)
		}
	}
}

// WithHTTPDrainResponseBody toggles draining of the response body after validation.
func WithHTTPDrainResponseBody(enabled bool) HTTPProbeOption {
	return func(c *httpCheck) {
		c.drain = enabled
	}
}

// WithEnvelope accepts any status and instead decodes the body as a response
// shaped by cfg. The probe fails when the envelope reports failure: through
// the status sign when cfg has one, otherwise through a non-null error
// message.
func WithEnvelope(cfg config.Config) HTTPProbeOption {
	return func(c *httpCheck) {
		c.expect = func(int) bool { return true }
		c.validators = append(c.validators, func(resp *http.Response) error {
			return checkEnvelope(cfg, resp)
		})
	}
}

func checkEnvelope(cfg config.Config, resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxEnvelopeBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope map[string]any
	if err := jsonutil.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("response is not an envelope: %w", err)
	}

	if sign, ok := cfg.StatusSign(); ok {
		got, present := envelope[sign.Field()]
		if !present {
			return fmt.Errorf("response lacks status field %q", sign.Field())
		}
		if fmt.Sprint(got) != fmt.Sprint(sign.Value(true)) {
			return fmt.Errorf("%w: %s=%v, status %d", errEnvelopeFailure, sign.Field(), got, resp.StatusCode)
		}
		return nil
	}

	if msg := envelope[cfg.ErrorMessageField()]; msg != nil {
		return fmt.Errorf("%w: %v, status %d", errEnvelopeFailure, msg, resp.StatusCode)
	}
	return nil
}
