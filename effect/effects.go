package effect

import (
	"net/http"
	"slices"
)

// Effects is an ordered collection of effects. Methods never modify the
// receiver's backing array.
type Effects []Effect

// Combine joins single effects into a collection, in argument order.
func Combine(a, b Effect, rest ...Effect) Effects {
	out := make(Effects, 0, 2+len(rest))
	out = append(out, a, b)
	return append(out, rest...)
}

// Add returns a new collection with effs appended.
func (es Effects) Add(effs ...Effect) Effects {
	if len(effs) == 0 {
		return es
	}
	out := make(Effects, 0, len(es)+len(effs))
	out = append(out, es...)
	return append(out, effs...)
}

// Merge returns a new collection holding es followed by other.
func (es Effects) Merge(other Effects) Effects {
	return es.Add(other...)
}

// SuppressesBody reports whether any effect empties the body.
func (es Effects) SuppressesBody() bool {
	return slices.ContainsFunc(es, func(e Effect) bool { return e.kind == KindEmptyBody })
}

// Status returns the last status override, if any.
func (es Effects) Status() (int, bool) {
	for i := len(es) - 1; i >= 0; i-- {
		if es[i].kind == KindSetStatus {
			return es[i].status, true
		}
	}
	return 0, false
}

// ApplyHeaders runs every removal, then every set, then every ad-hoc function,
// each group in collection order.
func (es Effects) ApplyHeaders(h http.Header) {
	for _, e := range es {
		if e.kind == KindRemoveHeader {
			h.Del(e.key)
		}
	}
	for _, e := range es {
		if e.kind != KindSetHeader {
			continue
		}
		if e.mode == Append {
			h.Add(e.key, e.value)
		} else {
			h.Set(e.key, e.value)
		}
	}
	for _, e := range es {
		if e.kind == KindAdHoc {
			e.adhoc(h)
		}
	}
}
