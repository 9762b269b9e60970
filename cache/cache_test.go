package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestService(t *testing.T, ttl time.Duration) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(func() redis.UniversalClient { return client }, ttl), mr
}

func TestSetRawGetRaw(t *testing.T) {
	svc, _ := newTestService(t, time.Minute)
	ctx := context.Background()

	if _, ok, err := svc.GetRaw(ctx, "stats:summary"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v, want miss", ok, err)
	}

	payload := []byte(`{"totalAssets":4}`)
	if err := svc.SetRaw(ctx, "stats:summary", payload); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}

	raw, ok, err := svc.GetRaw(ctx, "stats:summary")
	if err != nil || !ok {
		t.Fatalf("GetRaw after set: ok=%v err=%v", ok, err)
	}
	if string(raw) != string(payload) {
		t.Fatalf("cached bytes = %s, want %s", raw, payload)
	}
}

func TestTTLExpiry(t *testing.T) {
	svc, mr := newTestService(t, 5*time.Second)
	ctx := context.Background()

	if err := svc.SetRaw(ctx, "k", []byte(`1`)); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	mr.FastForward(6 * time.Second)

	if _, ok, err := svc.GetRaw(ctx, "k"); err != nil || ok {
		t.Fatalf("after TTL: ok=%v err=%v, want miss", ok, err)
	}
}

func TestSetMarshals(t *testing.T) {
	svc, _ := newTestService(t, time.Minute)
	ctx := context.Background()

	if err := svc.Set(ctx, "obj", map[string]int{"n": 3}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	raw, ok, err := svc.GetRaw(ctx, "obj")
	if err != nil || !ok {
		t.Fatalf("GetRaw: ok=%v err=%v", ok, err)
	}
	if string(raw) != `{"n":3}` {
		t.Fatalf("cached = %s", raw)
	}
}

func TestNilProviderDegradesToMiss(t *testing.T) {
	svc := New(func() redis.UniversalClient { return nil }, time.Minute)
	ctx := context.Background()

	if err := svc.SetRaw(ctx, "k", []byte(`1`)); err != nil {
		t.Fatalf("SetRaw with nil client should be a no-op, got %v", err)
	}
	if _, ok, err := svc.GetRaw(ctx, "k"); err != nil || ok {
		t.Fatalf("GetRaw with nil client: ok=%v err=%v, want miss", ok, err)
	}
}

func TestKeysAreNamespaced(t *testing.T) {
	svc, mr := newTestService(t, time.Minute)
	if err := svc.SetRaw(context.Background(), "stats:summary", []byte(`1`)); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	if !mr.Exists("dashboard:stats:summary") {
		t.Fatalf("expected namespaced key, got keys %v", mr.Keys())
	}
}
