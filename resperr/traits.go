package resperr

import (
	"reflect"
	"sync"
)

// Traits are the type level facts about a failure type that shape the
// success branch of a response, where no failure value exists.
type Traits struct {
	// ExtraEnabled is true when the type implements ExtraMessager.
	ExtraEnabled bool
	// DefaultMessage is written as the message placeholder. Nil means null.
	DefaultMessage *string
	// DefaultExtra is written as the extra message placeholder. Nil means null.
	DefaultExtra any
}

var (
	extraMessagerType = reflect.TypeFor[ExtraMessager]()
	traitsCache       sync.Map // reflect.Type -> Traits
)

// TraitsOf derives the traits of E. Results are cached per type.
func TraitsOf[E Error]() Traits {
	t := reflect.TypeFor[E]()
	if cached, ok := traitsCache.Load(t); ok {
		return cached.(Traits)
	}

	traits := Traits{ExtraEnabled: t.Implements(extraMessagerType)}
	zero := zeroValue[E](t)
	if d, ok := zero.(DefaultMessager); ok {
		if msg, present := d.DefaultRespMessage(); present {
			traits.DefaultMessage = &msg
		}
	}
	if d, ok := zero.(DefaultExtraMessager); ok {
		if extra, present := d.DefaultExtraMessage(); present {
			traits.DefaultExtra = extra
		}
	}

	actual, _ := traitsCache.LoadOrStore(t, traits)
	return actual.(Traits)
}

// zeroValue returns the zero value of E. For a pointer type it is a pointer
// to a zero element, so value receiver defaults can be read without a nil
// dereference.
func zeroValue[E Error](t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	var zero E
	return zero
}
