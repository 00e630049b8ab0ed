package services

import (
	"context"
	"errors"
	"testing"
)

func TestResolveFallbackReturnsFirstSuccess(t *testing.T) {
	calls := []string{}

	tiers := []Tier[int]{
		{Name: "a", Run: func(ctx context.Context) (int, error) {
			calls = append(calls, "a")
			return 0, errors.New("a down")
		}},
		{Name: "b", Run: func(ctx context.Context) (int, error) {
			calls = append(calls, "b")
			return 7, nil
		}},
		{Name: "c", Run: func(ctx context.Context) (int, error) {
			calls = append(calls, "c")
			return 9, nil
		}},
	}

	got, tier := ResolveFallback(context.Background(), "test", tiers, -1)
	if got != 7 {
		t.Errorf("result = %d, want 7", got)
	}
	if tier != "b" {
		t.Errorf("tier = %q, want %q", tier, "b")
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("calls = %v, tier c must never run after b succeeds", calls)
	}
}

func TestResolveFallbackExhaustionReturnsTerminal(t *testing.T) {
	down := func(ctx context.Context) (int, error) { return 0, errors.New("down") }

	tiers := []Tier[int]{
		{Name: "a", Run: down},
		{Name: "b", Run: down},
	}

	got, tier := ResolveFallback(context.Background(), "test", tiers, 42)
	if got != 42 {
		t.Errorf("result = %d, want terminal 42", got)
	}
	if tier != DefaultTier {
		t.Errorf("tier = %q, want %q", tier, DefaultTier)
	}
}

func TestResolveFallbackNoTiers(t *testing.T) {
	got, tier := ResolveFallback(context.Background(), "test", nil, 5)
	if got != 5 || tier != DefaultTier {
		t.Errorf("got (%d, %q), want (5, %q)", got, tier, DefaultTier)
	}
}
