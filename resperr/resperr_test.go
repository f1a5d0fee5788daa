package resperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drblury/respweaver/resperr"
)

type plainErr struct{ msg string }

func (e plainErr) LogMessage() string { return e.msg }

type richErr struct{}

func (richErr) LogMessage() string                 { return "rich log" }
func (richErr) RespMessage() string                { return "rich resp" }
func (richErr) HTTPCode() int                      { return http.StatusTeapot }
func (richErr) ExtraMessage() any                  { return 1001 }
func (richErr) DefaultRespMessage() (string, bool) { return "Success", true }
func (richErr) DefaultExtraMessage() (any, bool)   { return 0, true }

type ptrErr struct{ code int }

func (e *ptrErr) LogMessage() string { return "ptr" }
func (e *ptrErr) ExtraMessage() any  { return e.code }

type valueDefaultsErr struct{ code int }

func (e valueDefaultsErr) LogMessage() string                 { return "value defaults" }
func (e valueDefaultsErr) DefaultRespMessage() (string, bool) { return "ok", true }
func (e valueDefaultsErr) DefaultExtraMessage() (any, bool)   { return e.code, true }

type codedIface interface {
	resperr.Error
	resperr.ExtraMessager
}

func TestAccessorDefaults(t *testing.T) {
	t.Parallel()

	e := plainErr{msg: "boom"}
	assert.Equal(t, "boom", resperr.RespMessage(e))
	assert.Equal(t, http.StatusInternalServerError, resperr.HTTPCode(e))

	extra, ok := resperr.ExtraMessage(e)
	assert.False(t, ok)
	assert.Nil(t, extra)
}

func TestAccessorOverrides(t *testing.T) {
	t.Parallel()

	e := richErr{}
	assert.Equal(t, "rich resp", resperr.RespMessage(e))
	assert.Equal(t, http.StatusTeapot, resperr.HTTPCode(e))

	extra, ok := resperr.ExtraMessage(e)
	assert.True(t, ok)
	assert.Equal(t, 1001, extra)
}

func TestTraitsOf(t *testing.T) {
	t.Parallel()

	t.Run("plain type", func(t *testing.T) {
		t.Parallel()
		traits := resperr.TraitsOf[plainErr]()
		assert.False(t, traits.ExtraEnabled)
		assert.Nil(t, traits.DefaultMessage)
		assert.Nil(t, traits.DefaultExtra)
	})

	t.Run("defaults from zero value", func(t *testing.T) {
		t.Parallel()
		traits := resperr.TraitsOf[richErr]()
		assert.True(t, traits.ExtraEnabled)
		require.NotNil(t, traits.DefaultMessage)
		assert.Equal(t, "Success", *traits.DefaultMessage)
		assert.Equal(t, 0, traits.DefaultExtra)
	})

	t.Run("pointer receiver", func(t *testing.T) {
		t.Parallel()
		traits := resperr.TraitsOf[*ptrErr]()
		assert.True(t, traits.ExtraEnabled)
		assert.Nil(t, traits.DefaultMessage)
	})

	t.Run("pointer to value receiver defaults", func(t *testing.T) {
		t.Parallel()
		var traits resperr.Traits
		require.NotPanics(t, func() { traits = resperr.TraitsOf[*valueDefaultsErr]() })
		require.NotNil(t, traits.DefaultMessage)
		assert.Equal(t, "ok", *traits.DefaultMessage)
		assert.Equal(t, 0, traits.DefaultExtra)
	})

	t.Run("interface type", func(t *testing.T) {
		t.Parallel()
		assert.True(t, resperr.TraitsOf[codedIface]().ExtraEnabled)
		assert.False(t, resperr.TraitsOf[resperr.Error]().ExtraEnabled)
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("messages", func(t *testing.T) {
		t.Parallel()
		e := resperr.New(http.StatusNotFound, "user not found")
		assert.Equal(t, "user not found", e.RespMessage())
		assert.Equal(t, "user not found", e.LogMessage())
		assert.Equal(t, http.StatusNotFound, e.HTTPCode())
		assert.Nil(t, e.ExtraMessage())
	})

	t.Run("cause is logged not shown", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("pq: connection refused")
		e := resperr.Wrap(http.StatusServiceUnavailable, "storage unavailable", cause)
		assert.Equal(t, "storage unavailable", e.RespMessage())
		assert.Equal(t, "storage unavailable: pq: connection refused", e.LogMessage())
		assert.ErrorIs(t, e, cause)
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()
		var e resperr.HTTPError
		assert.Equal(t, http.StatusInternalServerError, e.HTTPCode())
		assert.Equal(t, "Internal Server Error", e.RespMessage())
	})

	t.Run("builders copy", func(t *testing.T) {
		t.Parallel()
		base := resperr.ErrConflict
		e := base.WithExtra("E409").WithLog("duplicate key")
		assert.Equal(t, "E409", e.ExtraMessage())
		assert.Equal(t, "duplicate key", e.LogMessage())
		assert.Nil(t, base.Extra)
	})

	t.Run("from error", func(t *testing.T) {
		t.Parallel()
		wrapped := errors.Join(errors.New("ctx"), resperr.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, resperr.FromError(wrapped).HTTPCode())

		plain := resperr.FromError(errors.New("disk full"))
		assert.Equal(t, http.StatusInternalServerError, plain.HTTPCode())
		assert.Equal(t, "internal_server_error", plain.RespMessage())
		assert.Contains(t, plain.LogMessage(), "disk full")
	})
}

func TestValidStatus(t *testing.T) {
	t.Parallel()
	assert.True(t, resperr.ValidStatus(http.StatusOK))
	assert.True(t, resperr.ValidStatus(999))
	assert.False(t, resperr.ValidStatus(99))
	assert.False(t, resperr.ValidStatus(1000))
}
