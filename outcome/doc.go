// Package outcome provides Outcome, the two variant return value of response
// handlers, and the helpers that turn ordinary Go results into outcomes.
//
// An Outcome is either a success carrying a payload of type T or a failure
// carrying an error of type E, where E satisfies resperr.Error. The zero
// value is a success holding the zero T. Outcomes are values: every method
// returns a new Outcome and never modifies its receiver.
//
// Handlers usually build outcomes with Success and Failure, or convert a
// (value, error) pair with FromError:
//
//	func getUser(ctx context.Context, id string) outcome.Outcome[User, resperr.HTTPError] {
//		u, err := store.Find(ctx, id)
//		return outcome.FromError(u, err, resperr.FromError)
//	}
//
// Check and its variants provide early return for multi step handlers:
//
//	acct, err := store.Account(ctx, id)
//	acct, fail, ok := outcome.CheckErr[Invoice](acct, err, resperr.FromError)
//	if !ok {
//		return fail
//	}
//
// Effects attached with WithEffects adjust the final response: an empty
// body, a status override, or header changes.
package outcome
