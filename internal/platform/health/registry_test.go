package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jsamuelsen11/todo-list-api/internal/platform/health"
)

// fakeChecker reports a fixed result and records the context it was given.
type fakeChecker struct {
	name string
	err  error

	mu      sync.Mutex
	lastCtx context.Context
}

func (c *fakeChecker) Name() string { return c.name }

func (c *fakeChecker) HealthCheck(ctx context.Context) error {
	c.mu.Lock()
	c.lastCtx = ctx
	c.mu.Unlock()
	return c.err
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(&fakeChecker{name: "db"})
	r.Register(&fakeChecker{name: "cache"})

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["db"] != nil {
		t.Errorf("db check = %v, want nil", results["db"])
	}
	if results["cache"] != nil {
		t.Errorf("cache check = %v, want nil", results["cache"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	unhealthyErr := errors.New("connection refused")

	r := health.New()
	r.Register(&fakeChecker{name: "db"})
	r.Register(&fakeChecker{name: "files", err: unhealthyErr})

	results := r.CheckAll(context.Background())

	if results["db"] != nil {
		t.Errorf("db check = %v, want nil", results["db"])
	}
	if results["files"] == nil {
		t.Fatal("files check = nil, want error")
	}
	if results["files"].Error() != "connection refused" {
		t.Errorf("files check = %q, want %q", results["files"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := &fakeChecker{name: "db"}
	r := health.New()
	r.Register(checker)

	r.CheckAll(ctx)

	checker.mu.Lock()
	defer checker.mu.Unlock()
	if checker.lastCtx == nil || checker.lastCtx.Err() == nil {
		t.Error("checker did not receive the caller's canceled context")
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	secondErr := errors.New("second failure")

	r := health.New()
	r.Register(&fakeChecker{name: "db"})
	r.Register(&fakeChecker{name: "db", err: secondErr})

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["db"]
	if !ok {
		t.Fatal(`expected result for key "db", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("db check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				r.Register(&fakeChecker{name: "checker"})
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
