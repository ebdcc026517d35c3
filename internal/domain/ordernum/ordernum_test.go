//go:build unit

package ordernum_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"proposal-service/internal/domain/ordernum"

	"github.com/stretchr/testify/assert"
)

type latestFunc func(ctx context.Context, prefix string) (string, error)

func (f latestFunc) LatestOrderID(ctx context.Context, prefix string) (string, error) {
	return f(ctx, prefix)
}

func fixedLatest(latest string, err error) latestFunc {
	return func(context.Context, string) (string, error) { return latest, err }
}

func TestFormat(t *testing.T) {
	march := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		seq  int
		now  time.Time
		want string
	}{
		{name: "pads sequence to five digits", seq: 7, now: march, want: "XMA-2024-03-00007"},
		{name: "large sequence", seq: 12345, now: march, want: "XMA-2024-03-12345"},
		{name: "december is two digits", seq: 1, now: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), want: "XMA-2026-12-00001"},
		{name: "zero sequence substitutes one", seq: 0, now: march, want: "XMA-2024-03-00001"},
		{name: "negative sequence substitutes one", seq: -5, now: march, want: "XMA-2024-03-00001"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ordernum.Format(c.seq, c.now)
			assert.Equal(t, c.want, got)
			assert.Regexp(t, ordernum.Pattern, got)
		})
	}
}

func TestMonthPrefix(t *testing.T) {
	assert.Equal(t, "XMA-2024-03-", ordernum.MonthPrefix(2024, time.March))
	assert.Equal(t, "XMA-2026-12-", ordernum.MonthPrefix(2026, time.December))
}

func TestNext(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		latest string
		err    error
		want   int
	}{
		{name: "continues from latest issued", latest: "XMA-2024-03-00007", want: 8},
		{name: "empty store starts at one", latest: "", want: 1},
		{name: "new month starts at one", latest: "", want: 1},
		{name: "read error falls back to one", latest: "", err: errors.New("connection refused"), want: 1},
		{name: "corrupt suffix falls back to one", latest: "XMA-2024-03-garbage", want: 1},
		{name: "missing separator falls back to one", latest: "XMA20240300007", want: 1},
		{name: "trailing separator falls back to one", latest: "XMA-2024-03-", want: 1},
		{name: "zero stored sequence falls back to one", latest: "XMA-2024-03-00000", want: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ordernum.Next(ctx, fixedLatest(c.latest, c.err), 2024, time.March)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNextQueriesMonthScopedPrefix(t *testing.T) {
	var seenPrefix string
	reader := latestFunc(func(_ context.Context, prefix string) (string, error) {
		seenPrefix = prefix
		return "", nil
	})

	ordernum.Next(context.Background(), reader, 2026, time.August)

	assert.Equal(t, "XMA-2026-08-", seenPrefix)
}

// Two concurrent allocations that read the same store state compute the
// same number. The unique index on the proposals table is what turns
// this into a retry instead of a duplicate identifier.
func TestNextConcurrentAllocationsCollide(t *testing.T) {
	reader := fixedLatest("XMA-2024-03-00007", nil)

	results := make(chan int, 2)
	for range 2 {
		go func() {
			results <- ordernum.Next(context.Background(), reader, 2024, time.March)
		}()
	}

	first := <-results
	second := <-results
	assert.Equal(t, 8, first)
	assert.Equal(t, first, second)
}
