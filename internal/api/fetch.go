package api

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAll runs every fetch concurrently and waits for all of them. If any
// one fails the whole join fails, the shared context is cancelled, and the
// caller must apply none of the partial results. Pages that load several
// resources at once (registration dropdowns, course+quiz pairs) use this
// so state is never partially populated.
func FetchAll(ctx context.Context, fetches ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		fetch := fetch
		g.Go(func() error { return fetch(ctx) })
	}
	return g.Wait()
}
