package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiterWithConfig(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("request over the limit should be rejected")
	}
	if !rl.allow("10.0.0.2") {
		t.Fatal("a different client should not share the counter")
	}
}

func TestRateLimiterWindowElapses(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)

	current := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	if !rl.allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("second request in the same window should be rejected")
	}

	current = current.Add(time.Minute)
	if !rl.allow("10.0.0.1") {
		t.Fatal("request after the window elapsed should be allowed")
	}
}

func TestRateLimiterCleanupDropsElapsedWindows(t *testing.T) {
	rl := NewRateLimiterWithConfig(5, time.Minute)

	current := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	rl.allow("10.0.0.1")
	current = current.Add(2 * time.Minute)
	rl.allow("10.0.0.2")

	rl.Cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.windows["10.0.0.1"]; ok {
		t.Fatal("elapsed window should have been dropped")
	}
	if _, ok := rl.windows["10.0.0.2"]; !ok {
		t.Fatal("active window should have been kept")
	}
}
