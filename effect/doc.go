// Package effect holds Response-Shape Effects: ad hoc directives a handler
// attaches to an outcome to bend the otherwise uniform response. An effect
// can suppress the body, override the status, or remove and set headers.
//
// Effects combine into an ordered collection:
//
//	effs := effect.Combine(effect.EmptyBody(), effect.SetStatus(http.StatusNotModified))
//	effs = effs.Add(effect.RemoveHeader("Content-Type"))
//
// During assembly body suppression is checked first, the last status override
// wins, and header removals run before header sets so that a later set for a
// removed key still takes effect.
package effect
