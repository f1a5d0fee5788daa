package info

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/drblury/respweaver/config"
	"github.com/drblury/respweaver/responder"
)

// envelope mirrors the default response shape.
type envelope struct {
	IsOK    bool            `json:"is-ok"`
	Extra   any             `json:"extra-msg"`
	Message *string         `json:"error-message"`
	Body    json.RawMessage `json:"body"`
}

func newTestHandler(logs *bytes.Buffer, opts ...InfoOption) *InfoHandler {
	logger := slog.New(slog.NewTextHandler(logs, nil))
	resp := responder.NewResponder(
		responder.WithLogger(logger),
		responder.WithConfig(config.Default()),
	)
	return NewInfoHandler(append([]InfoOption{WithInfoResponder(resp)}, opts...)...)
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("failed to decode envelope: %v (body: %s)", err, string(body))
	}
	return env
}

func decodeProbeStatus(t *testing.T, body []byte) ProbeStatus {
	t.Helper()

	env := decodeEnvelope(t, body)
	if !env.IsOK {
		t.Fatalf("expected success envelope, got %s", string(body))
	}
	var payload ProbeStatus
	if err := json.Unmarshal(env.Body, &payload); err != nil {
		t.Fatalf("failed to decode probe payload: %v (body: %s)", err, string(body))
	}
	return payload
}
