package api

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllRunsEveryFetch(t *testing.T) {
	var ran int32
	err := FetchAll(context.Background(),
		func(context.Context) error { atomic.AddInt32(&ran, 1); return nil },
		func(context.Context) error { atomic.AddInt32(&ran, 1); return nil },
		func(context.Context) error { atomic.AddInt32(&ran, 1); return nil },
	)
	require.NoError(t, err)
	assert.EqualValues(t, 3, ran)
}

func TestFetchAllFailsWhenAnyLegFails(t *testing.T) {
	boom := errors.New("boom")
	err := FetchAll(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) error { return boom },
	)
	require.ErrorIs(t, err, boom)
}

func TestFetchAllCancelsSiblingsOnFailure(t *testing.T) {
	cancelled := make(chan struct{})
	err := FetchAll(context.Background(),
		func(context.Context) error { return errors.New("fast failure") },
		func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				close(cancelled)
				return ctx.Err()
			case <-time.After(2 * time.Second):
				return errors.New("sibling was not cancelled")
			}
		},
	)
	require.Error(t, err)
	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("sibling fetch never observed cancellation")
	}
}

func TestFetchAllWithNoFetchesSucceeds(t *testing.T) {
	require.NoError(t, FetchAll(context.Background()))
}
