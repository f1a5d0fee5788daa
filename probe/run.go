package probe

import (
	"context"
	"time"
)

// Run executes checks in order under a shared timeout and returns the first
// failure. A non positive timeout leaves ctx untouched.
func Run(ctx context.Context, timeout time.Duration, checks ...Func) *Error {
	if len(checks) == 0 {
		return nil
	}

	ctx = contextOrBackground(ctx)
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	for _, check := range checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}
