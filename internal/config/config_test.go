package config

import (
	"testing"
	"time"

	"github.com/tskir/opentargets-test/internal/opentargets"
)

func TestInitializeDefaults(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if got := APIEndpoint(); got != opentargets.DefaultAPIEndpoint {
		t.Errorf("APIEndpoint: got %q, want default", got)
	}
	if got := PageSize(); got != opentargets.DefaultPageSize {
		t.Errorf("PageSize: got %d, want %d", got, opentargets.DefaultPageSize)
	}
	if got := HTTPTimeout(); got != 30*time.Second {
		t.Errorf("HTTPTimeout: got %v, want 30s", got)
	}

	p := RetryPolicy()
	if p.Attempts != 5 {
		t.Errorf("retry attempts: got %d, want 5", p.Attempts)
	}
	if p.InitialDelay != 5*time.Second {
		t.Errorf("retry initial delay: got %v, want 5s", p.InitialDelay)
	}
	if p.Multiplier != 1.2 {
		t.Errorf("retry multiplier: got %v, want 1.2", p.Multiplier)
	}
	if p.JitterMin != 1*time.Second || p.JitterMax != 3*time.Second {
		t.Errorf("retry jitter: got [%v, %v], want [1s, 3s]", p.JitterMin, p.JitterMax)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("OT_API_ENDPOINT", "http://localhost:9999/filter")
	t.Setenv("OT_RETRY_ATTEMPTS", "2")
	t.Setenv("OT_PAGE_SIZE", "10")

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if got := APIEndpoint(); got != "http://localhost:9999/filter" {
		t.Errorf("APIEndpoint: got %q, want env override", got)
	}
	if got := RetryPolicy().Attempts; got != 2 {
		t.Errorf("retry attempts: got %d, want 2", got)
	}
	if got := PageSize(); got != 10 {
		t.Errorf("PageSize: got %d, want 10", got)
	}
}
