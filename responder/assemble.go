package responder

import (
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"

	"github.com/drblury/respweaver/config"
	"github.com/drblury/respweaver/effect"
	"github.com/drblury/respweaver/jsonutil"
	"github.com/drblury/respweaver/resperr"
)

// Result is the untyped view of an outcome used during assembly. Every
// outcome.Outcome implements it.
type Result interface {
	IsSuccess() bool
	Payload() any
	Failure() resperr.Error
	Effects() effect.Effects
	Traits() resperr.Traits
}

// Descriptor is an assembled response, ready to be written by a host
// framework.
type Descriptor struct {
	Body   []byte
	Status int
	Header http.Header
}

// Assemble builds the response for res under cfg. A serialisation failure
// yields the 500 problem document instead; use Responder.Respond to have
// the cause logged.
func Assemble(cfg config.Config, res Result) Descriptor {
	d, err := assemble(cfg, res)
	if err != nil {
		return problemDescriptor(nil, newTraceID(), defaultStatusMetadata()[http.StatusInternalServerError])
	}
	return d
}

type field struct {
	name  string
	value any
}

func assemble(cfg config.Config, res Result) (Descriptor, error) {
	effs := res.Effects()
	traits := res.Traits()
	success := res.IsSuccess()

	var failure resperr.Error
	status := http.StatusOK
	if !success {
		failure = res.Failure()
		status = resperr.HTTPCode(failure)
		if !resperr.ValidStatus(status) {
			panic(fmt.Sprintf("responder: %T reported invalid HTTP status %d", failure, status))
		}
	}

	var body []byte
	if !effs.SuppressesBody() {
		var fields []field
		var size int
		successSize, failureSize := cfg.FieldSizes(traits.ExtraEnabled)
		if success {
			fields, size = successFields(cfg, traits, res.Payload()), successSize
		} else {
			fields, size = failureFields(cfg, traits, failure), failureSize
		}

		var err error
		if body, err = encodeObject(size, fields); err != nil {
			return Descriptor{}, err
		}
	}

	if override, ok := effs.Status(); ok {
		status = override
	}

	header := make(http.Header, 2)
	header.Set("Content-Type", cfg.ContentType())
	if !success && traits.ExtraEnabled {
		setExtraHeader(cfg, header, failure)
	}
	effs.ApplyHeaders(header)

	return Descriptor{Body: body, Status: status, Header: header}, nil
}

func successFields(cfg config.Config, traits resperr.Traits, payload any) []field {
	fields := make([]field, 0, 4)
	if sign, ok := cfg.StatusSign(); ok {
		fields = append(fields, field{sign.Field(), sign.Value(true)})
	}
	if cfg.FixedField() {
		if name, ok := cfg.ExtraMessageField(); ok && traits.ExtraEnabled {
			fields = append(fields, field{name, traits.DefaultExtra})
		}
		var msg any
		if traits.DefaultMessage != nil {
			msg = *traits.DefaultMessage
		}
		fields = append(fields, field{cfg.ErrorMessageField(), msg})
	}
	return append(fields, field{cfg.BodyField(), payload})
}

func failureFields(cfg config.Config, traits resperr.Traits, failure resperr.Error) []field {
	fields := make([]field, 0, 4)
	if sign, ok := cfg.StatusSign(); ok {
		fields = append(fields, field{sign.Field(), sign.Value(false)})
	}
	if name, ok := cfg.ExtraMessageField(); ok && traits.ExtraEnabled {
		extra, _ := resperr.ExtraMessage(failure)
		fields = append(fields, field{name, extra})
	}
	fields = append(fields, field{cfg.ErrorMessageField(), resperr.RespMessage(failure)})
	if cfg.FixedField() {
		fields = append(fields, field{cfg.BodyField(), nil})
	}
	return fields
}

func encodeObject(size int, fields []field) ([]byte, error) {
	enc := jsonutil.NewObjectEncoder(size)
	for _, f := range fields {
		if err := enc.Field(f.name, f.value); err != nil {
			return nil, err
		}
	}
	return enc.Finish()
}

// setExtraHeader sends the display form of the extra message. Nil extras
// and values that are not valid header values are not sent.
func setExtraHeader(cfg config.Config, header http.Header, failure resperr.Error) {
	name, ok := cfg.ExtraHeader()
	if !ok {
		return
	}
	extra, ok := resperr.ExtraMessage(failure)
	if !ok || extra == nil {
		return
	}
	value := fmt.Sprint(extra)
	if !httpguts.ValidHeaderFieldValue(value) {
		return
	}
	header.Set(name, value)
}
