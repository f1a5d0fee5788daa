package probe

import (
	"context"
	"fmt"
)

func contextOrBackground(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func nilComponentError(name, component string) *Error {
	return Fail(name, fmt.Errorf("%s is nil", component))
}
