package repokit

import (
	"context"
	"fmt"
	"time"
)

// DefaultGuardTimeout bounds MustGuard when ctx has no deadline
const DefaultGuardTimeout = 5 * time.Second

// Guarder is anything that can check its dependencies, like *store.Store
type Guarder interface {
	Guard(context.Context) error
}

// MustGuard panics when g reports a failed dependency
func MustGuard(ctx context.Context, g Guarder) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultGuardTimeout)
		defer cancel()
	}
	if err := g.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
