package middleware

import (
	"testing"
	"time"
)

func TestTokenBucketAllowsBurst(t *testing.T) {
	store := newRateLimiterStore(1, 3)

	for i := 0; i < 3; i++ {
		if !store.allow("10.0.0.1") {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if store.allow("10.0.0.1") {
		t.Error("request beyond burst should be rejected")
	}
}

func TestTokenBucketIsolatesClients(t *testing.T) {
	store := newRateLimiterStore(1, 1)

	if !store.allow("10.0.0.1") {
		t.Fatal("first client should be allowed")
	}
	if store.allow("10.0.0.1") {
		t.Error("first client should be exhausted")
	}
	if !store.allow("10.0.0.2") {
		t.Error("second client should have its own bucket")
	}
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	store := newRateLimiterStore(1000, 1)
	store.allow("10.0.0.1")

	// At 1000 tokens/s the bucket refills within milliseconds, after
	// which cleanup considers it idle and drops it.
	time.Sleep(10 * time.Millisecond)
	store.cleanup()
	if len(store.buckets) != 0 {
		t.Error("expected idle bucket to be cleaned up")
	}
}
