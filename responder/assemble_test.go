package responder_test

import (
	"net/http"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drblury/respweaver/config"
	"github.com/drblury/respweaver/effect"
	"github.com/drblury/respweaver/jsonutil"
	"github.com/drblury/respweaver/outcome"
	"github.com/drblury/respweaver/resperr"
	"github.com/drblury/respweaver/responder"
)

type plainErr struct {
	msg  string
	code int
}

func (e plainErr) LogMessage() string { return e.msg }
func (e plainErr) HTTPCode() int      { return e.code }

type codedErr struct {
	msg   string
	code  int
	extra any
}

func (e codedErr) LogMessage() string               { return "log: " + e.msg }
func (e codedErr) RespMessage() string              { return e.msg }
func (e codedErr) HTTPCode() int                    { return e.code }
func (e codedErr) ExtraMessage() any                { return e.extra }
func (codedErr) DefaultExtraMessage() (any, bool)   { return 0, true }
func (codedErr) DefaultRespMessage() (string, bool) { return "", true }

func TestAssembleScenarioA(t *testing.T) {
	t.Parallel()

	d := responder.Assemble(config.Default(), outcome.Success[plainErr]("hello"))

	assert.Equal(t, http.StatusOK, d.Status)
	assert.Equal(t, `{"is-ok":true,"error-message":null,"body":"hello"}`, string(d.Body))
	assert.Equal(t, "application/json", d.Header.Get("Content-Type"))
}

func TestAssemblePointerErrorSuccess(t *testing.T) {
	t.Parallel()

	var d responder.Descriptor
	require.NotPanics(t, func() {
		d = responder.Assemble(config.Default(), outcome.Success[*codedErr]("hi"))
	})

	assert.Equal(t, http.StatusOK, d.Status)
	assert.Equal(t, `{"is-ok":true,"extra-msg":0,"error-message":"","body":"hi"}`, string(d.Body))
}

func TestAssembleScenarioB(t *testing.T) {
	t.Parallel()

	d := responder.Assemble(config.Default(), outcome.Failure[string](plainErr{msg: "boom", code: http.StatusBadRequest}))

	assert.Equal(t, http.StatusBadRequest, d.Status)
	assert.Equal(t, `{"is-ok":false,"error-message":"boom","body":null}`, string(d.Body))
	assert.Empty(t, d.Header.Get("Extra-Error"))
}

func TestAssembleScenarioC(t *testing.T) {
	t.Parallel()

	o := outcome.Success[plainErr](map[string]int{"x": 1}).WithEffects(
		effect.EmptyBody(),
		effect.SetStatus(http.StatusNotModified),
		effect.RemoveHeader("Content-Type"),
	)
	d := responder.Assemble(config.Default(), o)

	assert.Empty(t, d.Body)
	assert.Equal(t, http.StatusNotModified, d.Status)
	_, present := d.Header["Content-Type"]
	assert.False(t, present)
}

func TestAssembleScenarioD(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.WithoutStatusSign(), config.WithFixedField(false))
	d := responder.Assemble(cfg, outcome.Success[plainErr](42))

	assert.Equal(t, `{"body":42}`, string(d.Body))
	assert.Equal(t, http.StatusOK, d.Status)
}

func TestAssembleExtraMessage(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	t.Run("failure carries field and header", func(t *testing.T) {
		d := responder.Assemble(cfg, outcome.Failure[int](codedErr{msg: "taken", code: http.StatusConflict, extra: "E1001"}))
		assert.Equal(t, http.StatusConflict, d.Status)
		assert.Equal(t, `{"is-ok":false,"extra-msg":"E1001","error-message":"taken","body":null}`, string(d.Body))
		assert.Equal(t, "E1001", d.Header.Get("extra-error"))
	})

	t.Run("success uses type defaults", func(t *testing.T) {
		d := responder.Assemble(cfg, outcome.Success[codedErr](1))
		assert.Equal(t, `{"is-ok":true,"extra-msg":0,"error-message":"","body":1}`, string(d.Body))
		assert.Empty(t, d.Header.Get("extra-error"))
	})

	t.Run("numeric extra is displayed in header", func(t *testing.T) {
		d := responder.Assemble(cfg, outcome.Failure[int](codedErr{msg: "x", code: 418, extra: 7}))
		assert.Equal(t, "7", d.Header.Get("extra-error"))
	})

	t.Run("nil extra writes null and no header", func(t *testing.T) {
		d := responder.Assemble(cfg, outcome.Failure[int](resperr.ErrNotFound))
		assert.Equal(t, `{"is-ok":false,"extra-msg":null,"error-message":"not_found","body":null}`, string(d.Body))
		_, present := d.Header["Extra-Error"]
		assert.False(t, present)
	})

	t.Run("header disabled", func(t *testing.T) {
		d := responder.Assemble(config.New(config.WithoutExtraHeader()),
			outcome.Failure[int](codedErr{msg: "x", code: 400, extra: "E1"}))
		assert.Empty(t, d.Header.Get("extra-error"))
		assert.Contains(t, string(d.Body), `"extra-msg":"E1"`)
	})

	t.Run("field disabled keeps header", func(t *testing.T) {
		d := responder.Assemble(config.New(config.WithoutExtraMessageField()),
			outcome.Failure[int](codedErr{msg: "x", code: 400, extra: "E1"}))
		assert.Equal(t, `{"is-ok":false,"error-message":"x","body":null}`, string(d.Body))
		assert.Equal(t, "E1", d.Header.Get("extra-error"))
	})
}

func TestAssembleStatusSigns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sign        config.StatusSign
		wantSuccess string
		wantFailure string
	}{
		{"reversed", config.ReversedBoolSign("is-err"), `{"is-err":false,"body":1}`, `{"is-err":true,"error-message":"x"}`},
		{"number", config.NumberSign("code", 0, 1), `{"code":0,"body":1}`, `{"code":1,"error-message":"x"}`},
		{"string", config.StringSign("status", "ok", "fail"), `{"status":"ok","body":1}`, `{"status":"fail","error-message":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(config.WithStatusSign(tt.sign), config.WithFixedField(false))
			ok := responder.Assemble(cfg, outcome.Success[plainErr](1))
			fail := responder.Assemble(cfg, outcome.Failure[int](plainErr{msg: "x", code: 400}))
			assert.Equal(t, tt.wantSuccess, string(ok.Body))
			assert.Equal(t, tt.wantFailure, string(fail.Body))
		})
	}
}

func TestAssembleStatusPrecedence(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	d := responder.Assemble(cfg, outcome.Success[plainErr]("x").WithEffects(effect.SetStatus(http.StatusCreated)))
	assert.Equal(t, http.StatusCreated, d.Status)

	d = responder.Assemble(cfg, outcome.Failure[string](plainErr{msg: "x", code: 404}).WithEffects(effect.SetStatus(http.StatusGone)))
	assert.Equal(t, http.StatusGone, d.Status)

	combined := effect.Combine(effect.SetStatus(201), effect.SetStatus(202))
	added := effect.Effects{}.Add(effect.SetStatus(201)).Add(effect.SetStatus(202))
	merged := effect.Effects{effect.SetStatus(201)}.Merge(effect.Effects{effect.SetStatus(202)})
	for _, effs := range []effect.Effects{combined, added, merged} {
		d := responder.Assemble(cfg, outcome.Success[plainErr](1).WithEffectSet(effs))
		assert.Equal(t, 202, d.Status)
	}
}

func TestAssembleDefaultStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, responder.Assemble(config.Default(), outcome.Success[plainErr](1)).Status)
	assert.Equal(t, http.StatusTeapot, responder.Assemble(config.Default(), outcome.Failure[int](plainErr{msg: "x", code: 418})).Status)

	d := responder.Assemble(config.Default(), outcome.Failure[int](bareErr("no code")))
	assert.Equal(t, http.StatusInternalServerError, d.Status)
	assert.Equal(t, `{"is-ok":false,"error-message":"no code","body":null}`, string(d.Body))
}

type bareErr string

func (e bareErr) LogMessage() string { return string(e) }

func TestAssembleBodySuppression(t *testing.T) {
	t.Parallel()

	big := make([]int, 10_000)
	d := responder.Assemble(config.Default(), outcome.Success[plainErr](big).WithEffects(effect.EmptyBody()))
	assert.Empty(t, d.Body)

	d = responder.Assemble(config.Default(), outcome.Success[plainErr](make(chan int)).WithEffects(effect.EmptyBody()))
	assert.Empty(t, d.Body)
	assert.Equal(t, http.StatusOK, d.Status)
}

func TestAssembleHeaderEffects(t *testing.T) {
	t.Parallel()

	o := outcome.Failure[int](codedErr{msg: "x", code: 429, extra: "slow-down"}).WithEffects(
		effect.InsertHeader("Retry-After", "30"),
		effect.AppendHeader("Vary", "Accept"),
		effect.AppendHeader("Vary", "Origin"),
		effect.RemoveHeader("Vary"),
		effect.InsertHeader("extra-error", "overridden"),
		effect.RemoveHeader("Content-Type"),
		effect.InsertHeader("Content-Type", "application/vnd.error+json"),
	)
	d := responder.Assemble(config.Default(), o)

	assert.Equal(t, "30", d.Header.Get("Retry-After"))
	assert.Equal(t, []string{"Accept", "Origin"}, d.Header.Values("Vary"))
	assert.Equal(t, "overridden", d.Header.Get("extra-error"))
	assert.Equal(t, "application/vnd.error+json", d.Header.Get("Content-Type"))
}

func TestAssembleAdHocEffect(t *testing.T) {
	t.Parallel()

	o := outcome.Failure[int](codedErr{msg: "x", code: 429, extra: "slow-down"}).WithEffects(
		effect.AdHoc(func(h http.Header) {
			h.Set("X-Extra-Seen", h.Get("extra-error"))
			h.Del("extra-error")
		}),
		effect.InsertHeader("Retry-After", "30"),
	)
	d := responder.Assemble(config.Default(), o)

	assert.Equal(t, http.StatusTooManyRequests, d.Status)
	assert.Equal(t, "slow-down", d.Header.Get("X-Extra-Seen"))
	assert.Empty(t, d.Header.Values("extra-error"))
	assert.Equal(t, "30", d.Header.Get("Retry-After"))
}

func TestAssembleSerializationFailure(t *testing.T) {
	t.Parallel()

	o := outcome.Success[plainErr](make(chan int)).WithEffects(
		effect.SetStatus(http.StatusCreated),
		effect.InsertHeader("X-Custom", "1"),
	)

	var d responder.Descriptor
	require.NotPanics(t, func() { d = responder.Assemble(config.Default(), o) })

	assert.Equal(t, http.StatusInternalServerError, d.Status)
	assert.Equal(t, "application/problem+json", d.Header.Get("Content-Type"))
	assert.Empty(t, d.Header.Get("X-Custom"))

	var problem responder.ProblemDetails
	require.NoError(t, jsonutil.Unmarshal(d.Body, &problem))
	assert.Equal(t, http.StatusInternalServerError, problem.Status)
	assert.NotEmpty(t, problem.TraceID)
	assert.Equal(t, "Internal Server Error", problem.Title)

	fail := responder.Assemble(config.Default(), outcome.Failure[int](codedErr{msg: "x", code: 400, extra: make(chan int)}))
	assert.Equal(t, http.StatusInternalServerError, fail.Status)
}

func TestAssembleInvalidStatusPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		responder.Assemble(config.Default(), outcome.Failure[int](plainErr{msg: "x", code: 42}))
	})
}

func TestAssembleFieldCountProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("serialized field count matches precomputed sizes", prop.ForAll(
		func(signOn, fixed, extraField, extraCapable, success bool, payload int, msg string) bool {
			opts := []config.Option{config.WithFixedField(fixed)}
			if !signOn {
				opts = append(opts, config.WithoutStatusSign())
			}
			if !extraField {
				opts = append(opts, config.WithoutExtraMessageField())
			}
			cfg := config.New(opts...)

			var res responder.Result
			switch {
			case extraCapable && success:
				res = outcome.Success[codedErr](payload)
			case extraCapable:
				res = outcome.Failure[int](codedErr{msg: msg, code: 400, extra: payload})
			case success:
				res = outcome.Success[plainErr](payload)
			default:
				res = outcome.Failure[int](plainErr{msg: msg, code: 400})
			}

			d := responder.Assemble(cfg, res)
			var fields map[string]any
			if err := jsonutil.Unmarshal(d.Body, &fields); err != nil {
				return false
			}

			want, wantFailure := config.FieldSizes(cfg, extraCapable)
			if !success {
				want = wantFailure
			}
			return len(fields) == want
		},
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
		gen.Int(), gen.AlphaString(),
	))

	properties.TestingRun(t)
}
