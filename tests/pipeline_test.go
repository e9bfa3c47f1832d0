package tests

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ib-77/neat/pkg/neat"
	"github.com/ib-77/neat/pkg/neat/batch"
	"github.com/ib-77/neat/pkg/neat/catch"
	"github.com/ib-77/neat/pkg/neat/chain"
	"github.com/ib-77/neat/pkg/neat/retry"
	"github.com/ib-77/neat/pkg/neat/wrap"

	"github.com/stretchr/testify/assert"
)

// TestURLProcessingDirectly runs the whole surface end to end: wrap the
// fetch, collect a batch concurrently, and reduce each slot to a label.
func TestURLProcessingDirectly(t *testing.T) {
	urls := []string{
		// valid by structure (nothing is actually fetched)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",

		// invalid by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(urls)

	assert.Equal(t, len(urls), len(results))

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}
	assert.Equal(t, 2, invalidCount)
}

func processRequest(urls []string) []string {
	ctx := context.Background()

	fetchTitle := wrap.Fn1(mockFetchTitle)

	ops := make([]catch.Operation[int], len(urls))
	for i, url := range urls {
		url := url
		ops[i] = func(ctx context.Context) (int, error) {
			title, err := fetchTitle(ctx, url).Unpack()
			if err != nil {
				return 0, err
			}
			return len(title), nil
		}
	}

	b := batch.All(ctx, ops)

	out := make([]string, len(urls))
	for i := range urls {
		if b.Results != nil && b.Results[i] != nil {
			out[i] = fmt.Sprintf("title length: %d", *b.Results[i])
		} else {
			out[i] = "invalid"
		}
	}
	return out
}

func mockFetchTitle(ctx context.Context, url string) (string, error) {
	if !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("invalid URL: %s", url)
	}
	return "Mock Page Title for " + url, nil
}

// TestRetryThenChain drives a flaky operation through the retry driver and
// feeds the final outcome into a chain.
func TestRetryThenChain(t *testing.T) {
	ctx := context.Background()

	calls := 0
	out := retry.Do(ctx, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("transient %d", calls)
		}
		return "payload", nil
	}, retry.WithMaxRetries(5), retry.WithDelay(time.Millisecond))

	assert.Equal(t, 3, calls)
	assert.True(t, out.IsSuccess())

	final := chain.Start(ctx, out).
		Map(func(ctx context.Context, s string) string { return strings.ToUpper(s) }).
		Finally(
			func(ctx context.Context, s string) string { return s },
			func(ctx context.Context, err error) string { return "fallback" },
		)
	assert.Equal(t, "PAYLOAD", final)
}

// TestTransformFailureSurfacesBothLegs checks the aggregate error shape a
// consumer would pattern-match on.
func TestTransformFailureSurfacesBothLegs(t *testing.T) {
	ctx := context.Background()

	out := catch.Do(ctx, func(ctx context.Context) (int, error) {
		return 0, fmt.Errorf("operation failed")
	}, func(failure error) error {
		panic("converter is broken")
	})

	assert.True(t, out.IsFailure())
	legs := neat.Errors(out.Err())
	assert.Len(t, legs, 2)
	assert.Equal(t, "operation failed", legs[0].Error())
	assert.Contains(t, legs[1].Error(), "converter is broken")
}

// TestBatchCollapse covers the absent-if-empty policy across the public API.
func TestBatchCollapse(t *testing.T) {
	ctx := context.Background()

	allGood := batch.All(ctx, []catch.Operation[int]{
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 2, nil },
	})
	assert.Nil(t, allGood.Errors)
	assert.True(t, allGood.AllSucceeded())

	allBad := batch.All(ctx, []catch.Operation[int]{
		func(ctx context.Context) (int, error) { return 0, fmt.Errorf("a") },
		func(ctx context.Context) (int, error) { return 0, fmt.Errorf("b") },
	})
	assert.Nil(t, allBad.Results)
	assert.True(t, allBad.AllFailed())
}
