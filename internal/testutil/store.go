package testutil

import (
	"testing"
	"time"

	"dailyspend/internal/clock"
	"dailyspend/internal/storage/sqlite"
	"dailyspend/internal/store"
)

// FixedClock is a clock pinned to a single instant.
type FixedClock struct {
	Time time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.Time
}

// Advance moves the clock forward.
func (c *FixedClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}

var _ clock.Clock = (*FixedClock)(nil)

// SetupTestStore returns a store over an in-memory sqlite backend with an
// open category set, pinned to clk.
func SetupTestStore(t *testing.T, clk clock.Clock) *store.Store {
	t.Helper()

	backend, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test storage: %v", err)
	}

	t.Cleanup(func() {
		if closeErr := backend.Close(); closeErr != nil {
			t.Errorf("Failed to close test storage: %v", closeErr)
		}
	})

	s, err := store.New(backend, clk, nil)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	return s
}
