package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/felixgeelhaar/fortify/ferrors"
	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsTypedValue(t *testing.T) {
	cb := newBreaker(slog.Default())

	got, err := run(context.Background(), cb, func(context.Context) (int64, error) {
		return 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	user, err := run(context.Background(), cb, func(context.Context) (*struct{}, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRun_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := newBreaker(slog.Default())
	boom := errors.New("server selection timeout")
	calls := 0

	fail := func(context.Context) (int, error) {
		calls++
		return 0, boom
	}

	for range breakerFailures {
		_, err := run(context.Background(), cb, fail)
		assert.ErrorIs(t, err, boom)
	}
	require.Equal(t, breakerFailures, calls)

	// Open: the operation is no longer attempted
	_, err := run(context.Background(), cb, fail)
	assert.ErrorIs(t, err, ferrors.ErrCircuitOpen)
	assert.Equal(t, breakerFailures, calls)
}

func TestRun_AnswersDoNotTrip(t *testing.T) {
	cb := newBreaker(slog.Default())
	calls := 0

	for range breakerFailures * 2 {
		_, err := run(context.Background(), cb, func(context.Context) (bool, error) {
			calls++
			return true, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, breakerFailures*2, calls)
}

func TestProductQuery(t *testing.T) {
	assert.Empty(t, productQuery(domain.ProductFilter{}))

	q := productQuery(domain.ProductFilter{FeaturedOnly: true, Category: "shoes"})
	require.Len(t, q, 2)
	assert.Equal(t, "featured", q[0].Key)
	assert.Equal(t, true, q[0].Value)
	assert.Equal(t, "category", q[1].Key)
	assert.Equal(t, "shoes", q[1].Value)
}

func TestRun_CanceledCallsDoNotTrip(t *testing.T) {
	cb := newBreaker(slog.Default())

	for range breakerFailures * 2 {
		ctx, cancel := context.WithCancel(context.Background())
		_, err := run(ctx, cb, func(ctx context.Context) (int, error) {
			cancel()
			return 0, fmt.Errorf("find user: %w", ctx.Err())
		})
		assert.ErrorIs(t, err, context.Canceled)
	}

	called := false
	_, err := run(context.Background(), cb, func(context.Context) (int, error) {
		called = true
		return 1, nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreHealthy(t *testing.T) {
	assert.True(t, storeHealthy(nil))
	assert.True(t, storeHealthy(fmt.Errorf("list products: %w", context.Canceled)))
	assert.False(t, storeHealthy(context.DeadlineExceeded))
	assert.False(t, storeHealthy(errors.New("connection refused")))
}
