package turbo_test

import (
	"context"
	"testing"

	"github.com/turbodsl/turbo"
)

// runScope executes fn inside a fresh root scope. Most tests exercise
// jobs and groups through this to stay on the public surface.
func runScope[T any](t *testing.T, fn func(s *turbo.Scope) (T, error), opts ...turbo.Option) (T, error) {
	t.Helper()
	return turbo.Execute(context.Background(), struct{}{}, func(s *turbo.Scope, _ struct{}) (T, error) {
		return fn(s)
	}, opts...)
}
