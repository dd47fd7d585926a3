package runner

import (
	"context"
	"time"
)

// WithTimeout bounds every Run of r by d. A non-positive d returns r as is.
func WithTimeout(r Runner, d time.Duration) Runner {
	if d <= 0 {
		return r
	}
	return Func(func(ctx context.Context, argv []string) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return r.Run(ctx, argv)
	})
}
